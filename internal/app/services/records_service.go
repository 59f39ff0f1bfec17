package services

import (
	"context"
	"time"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/app/repositories"
	"github.com/karthikv/parentportal/internal/pkg/apperrors"
)

// RecordsService serves per-student academic and financial history:
// attendance, marks and fees, keyed throughout by hall ticket number.
type RecordsService struct {
	attendance AttendanceStore
	marks      MarkStore
	fees       FeeStore
}

// NewRecordsService creates a new records service.
func NewRecordsService(attendance AttendanceStore, marks MarkStore, fees FeeStore) *RecordsService {
	return &RecordsService{
		attendance: attendance,
		marks:      marks,
		fees:       fees,
	}
}

// ListAttendance returns a student's attendance history, newest month first.
func (s *RecordsService) ListAttendance(ctx context.Context, studentID, month string) ([]*models.Attendance, error) {
	return s.attendance.ListByStudent(ctx, studentID, month)
}

// ListMarks returns a student's marks, ordered by subject then exam type.
func (s *RecordsService) ListMarks(ctx context.Context, studentID string, filter repositories.MarksFilter) ([]*models.Mark, error) {
	return s.marks.ListByStudent(ctx, studentID, filter)
}

// ListFees returns a student's fee records ordered by due date.
func (s *RecordsService) ListFees(ctx context.Context, studentID string, filter repositories.FeesFilter) ([]*models.Fee, error) {
	return s.fees.ListByStudent(ctx, studentID, filter)
}

// PayFee records a payment against a fee row, stamping today's date and the
// transaction id. A repeated call overwrites the earlier stamp; paid never
// transitions back.
func (s *RecordsService) PayFee(ctx context.Context, feeID int64, transactionID string) error {
	if transactionID == "" {
		return apperrors.NewValidationError("Transaction ID is required.")
	}

	paidDate := time.Now().Format("2006-01-02")
	return s.fees.MarkPaid(ctx, feeID, paidDate, transactionID)
}
