package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/pkg/apperrors"
	"github.com/karthikv/parentportal/internal/pkg/helpers"
)

// FeesFilter narrows a fee listing. Paid is a tri-state: nil means no restriction.
type FeesFilter struct {
	FeeType string
	Paid    *bool
}

// FeeRepository handles database operations for fees
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
	}
}

// ListByStudent retrieves fee records for a hall ticket number with optional
// AND-combined filters, ordered by due date.
func (r *FeeRepository) ListByStudent(ctx context.Context, studentID string, filter FeesFilter) ([]*models.Fee, error) {
	query := `
		SELECT id, student_id, fee_type, amount, due_date, paid, paid_date, transaction_id
		FROM fees
		WHERE student_id = $1
	`
	args := []interface{}{studentID}

	if filter.FeeType != "" {
		args = append(args, filter.FeeType)
		query += fmt.Sprintf(" AND fee_type = $%d", len(args))
	}

	if filter.Paid != nil {
		args = append(args, *filter.Paid)
		query += fmt.Sprintf(" AND paid = $%d", len(args))
	}

	query += ` ORDER BY due_date`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving fees: %w", err)
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		var f models.Fee
		var paidDate, transactionID sql.NullString
		if err := rows.Scan(&f.ID, &f.StudentID, &f.FeeType, &f.Amount, &f.DueDate, &f.Paid, &paidDate, &transactionID); err != nil {
			return nil, err
		}
		f.PaidDate = helpers.StringOrNil(paidDate)
		f.TransactionID = helpers.StringOrNil(transactionID)
		fees = append(fees, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}

// CountUnpaid counts a student's unpaid fee rows.
func (r *FeeRepository) CountUnpaid(ctx context.Context, studentID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM fees WHERE student_id = $1 AND paid = false`, studentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unpaid fees: %w", err)
	}

	return count, nil
}

// MarkPaid stamps a fee row paid. A later call overwrites the earlier stamp;
// the lifecycle has no reversals.
func (r *FeeRepository) MarkPaid(ctx context.Context, feeID int64, paidDate, transactionID string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE fees SET paid = true, paid_date = $1, transaction_id = $2 WHERE id = $3`,
		helpers.NullStringValue(paidDate), helpers.NullStringValue(transactionID), feeID,
	)
	if err != nil {
		return fmt.Errorf("error updating fee payment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}
