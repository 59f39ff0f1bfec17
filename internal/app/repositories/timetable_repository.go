package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikv/parentportal/internal/app/models"
)

// TimetableFilter narrows a timetable listing. Zero values mean no restriction.
type TimetableFilter struct {
	Branch   string
	Day      string
	Semester int
}

// TimetableRepository handles database operations for timetable slots
type TimetableRepository struct {
	db *pgxpool.Pool
}

// NewTimetableRepository creates a new timetable repository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{
		db: db,
	}
}

// List retrieves timetable slots with optional AND-combined filters,
// ordered by day then period.
func (r *TimetableRepository) List(ctx context.Context, filter TimetableFilter) ([]*models.TimetableSlot, error) {
	query := `SELECT id, day, period, subject, teacher, room, branch, semester FROM timetable`
	var args []interface{}
	var conditions []string

	if filter.Branch != "" {
		args = append(args, filter.Branch)
		conditions = append(conditions, fmt.Sprintf("branch = $%d", len(args)))
	}

	if filter.Day != "" {
		args = append(args, filter.Day)
		conditions = append(conditions, fmt.Sprintf("day = $%d", len(args)))
	}

	if filter.Semester != 0 {
		args = append(args, filter.Semester)
		conditions = append(conditions, fmt.Sprintf("semester = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += ` ORDER BY day, period`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving timetable: %w", err)
	}
	defer rows.Close()

	var slots []*models.TimetableSlot
	for rows.Next() {
		var s models.TimetableSlot
		if err := rows.Scan(&s.ID, &s.Day, &s.Period, &s.Subject, &s.Teacher, &s.Room, &s.Branch, &s.Semester); err != nil {
			return nil, err
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

// DistinctSubjects lists the distinct subjects taught for a branch and semester.
func (r *TimetableRepository) DistinctSubjects(ctx context.Context, branch string, semester int) ([]string, error) {
	query := `
		SELECT DISTINCT subject FROM timetable
		WHERE branch = $1 AND semester = $2
		ORDER BY subject
	`

	return r.queryStrings(ctx, query, branch, semester)
}

// DistinctTeachers lists the distinct teachers for a branch.
func (r *TimetableRepository) DistinctTeachers(ctx context.Context, branch string) ([]string, error) {
	query := `
		SELECT DISTINCT teacher FROM timetable
		WHERE branch = $1
		ORDER BY teacher
	`

	return r.queryStrings(ctx, query, branch)
}

func (r *TimetableRepository) queryStrings(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving timetable lookup: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return values, nil
}
