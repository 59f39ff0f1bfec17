package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikv/parentportal/internal/app/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

const attendanceColumns = `id, student_id, total, present, absent, month, percentage`

func scanAttendanceRows(rows pgx.Rows) ([]*models.Attendance, error) {
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Total, &a.Present, &a.Absent, &a.Month, &a.Percentage); err != nil {
			return nil, err
		}
		records = append(records, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByStudent retrieves attendance history for a hall ticket number,
// optionally restricted to one month, newest month first.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID, month string) ([]*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE student_id = $1`
	args := []interface{}{studentID}

	if month != "" {
		query += ` AND month = $2`
		args = append(args, month)
	}

	query += ` ORDER BY month DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}

	return scanAttendanceRows(rows)
}

// GetLatest retrieves the most recent attendance record for a student.
// Returns nil without error when the student has no records.
func (r *AttendanceRepository) GetLatest(ctx context.Context, studentID string) (*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE student_id = $1 ORDER BY month DESC LIMIT 1`

	var a models.Attendance
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&a.ID, &a.StudentID, &a.Total, &a.Present, &a.Absent, &a.Month, &a.Percentage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving latest attendance: %w", err)
	}

	return &a, nil
}

// ListSeries retrieves the attendance series for a student ordered by month
// ascending, for the performance time line.
func (r *AttendanceRepository) ListSeries(ctx context.Context, studentID string) ([]*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE student_id = $1 ORDER BY month`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance series: %w", err)
	}

	return scanAttendanceRows(rows)
}
