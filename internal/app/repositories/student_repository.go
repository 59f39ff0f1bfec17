package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/pkg/apperrors"
	"github.com/karthikv/parentportal/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// CreateStudentTx inserts a student row within an existing transaction.
func (r *StudentRepository) CreateStudentTx(ctx context.Context, tx pgx.Tx, student *models.Student) (int64, error) {
	query := `
		INSERT INTO students (name, email, hallticketnumber, branch)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		student.Name, student.Email, student.HallTicketNumber, student.Branch,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrIdentifierExists
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return student.ID, nil
}

// GetByHallTicket retrieves a student by hall ticket number.
func (r *StudentRepository) GetByHallTicket(ctx context.Context, hallTicket string) (*models.Student, error) {
	query := `
		SELECT id, name, email, hallticketnumber, branch
		FROM students
		WHERE hallticketnumber = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, hallTicket).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.HallTicketNumber,
		&student.Branch,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetOverviewByHallTicket retrieves a student joined with the users table
// for branch and semester, keyed by hall ticket number.
func (r *StudentRepository) GetOverviewByHallTicket(ctx context.Context, hallTicket string) (*models.Student, error) {
	query := `
		SELECT s.id, s.name, s.email, s.hallticketnumber, u.branch, u.semester
		FROM students s
		JOIN users u ON s.hallticketnumber = u.hallticketnumber
		WHERE s.hallticketnumber = $1
	`

	return r.scanOverview(r.db.QueryRow(ctx, query, hallTicket))
}

// GetOverviewByID is the same join keyed by the students.id a parent row references.
func (r *StudentRepository) GetOverviewByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT s.id, s.name, s.email, s.hallticketnumber, u.branch, u.semester
		FROM students s
		JOIN users u ON s.hallticketnumber = u.hallticketnumber
		WHERE s.id = $1
	`

	return r.scanOverview(r.db.QueryRow(ctx, query, id))
}

func (r *StudentRepository) scanOverview(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var semester int
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.HallTicketNumber,
		&student.Branch,
		&semester,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.Semester = &semester
	return &student, nil
}
