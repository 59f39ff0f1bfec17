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

// ParentRepository handles database operations for parents
type ParentRepository struct {
	db *pgxpool.Pool
}

// NewParentRepository creates a new parent repository
func NewParentRepository(db *pgxpool.Pool) *ParentRepository {
	return &ParentRepository{
		db: db,
	}
}

// Create inserts a parent linked to a student.
func (r *ParentRepository) Create(ctx context.Context, parent *models.Parent) (int64, error) {
	query := `
		INSERT INTO parents (name, email, phone, password, student_id, relation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		parent.Name, parent.Email, parent.Phone, parent.Password, parent.StudentID, parent.Relation,
	).Scan(&parent.ID)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating parent: %w", err)
	}

	return parent.ID, nil
}

// GetByEmail retrieves a parent by email. Returns ErrParentNotFound on no match.
func (r *ParentRepository) GetByEmail(ctx context.Context, email string) (*models.Parent, error) {
	query := `
		SELECT id, name, email, phone, password, student_id, relation
		FROM parents
		WHERE email = $1
	`

	var parent models.Parent
	err := r.db.QueryRow(ctx, query, email).Scan(
		&parent.ID,
		&parent.Name,
		&parent.Email,
		&parent.Phone,
		&parent.Password,
		&parent.StudentID,
		&parent.Relation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrParentNotFound
		}
		return nil, fmt.Errorf("error retrieving parent: %w", err)
	}

	return &parent, nil
}

// UpdatePassword overwrites a parent's password hash, keyed by email.
func (r *ParentRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE parents SET password = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		return fmt.Errorf("error updating parent password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParentNotFound
	}

	return nil
}
