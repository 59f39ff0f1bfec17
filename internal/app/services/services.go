package services

import (
	"context"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/app/repositories"
)

// Store interfaces name the repository surface each service consumes.
// The pgx repositories satisfy them; tests substitute fakes.

// UserStore is the account lookup surface of the user repository.
type UserStore interface {
	GetByIdentifier(ctx context.Context, identifier, role string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// StudentStore is the student lookup surface of the student repository.
type StudentStore interface {
	GetByHallTicket(ctx context.Context, hallTicket string) (*models.Student, error)
	GetOverviewByHallTicket(ctx context.Context, hallTicket string) (*models.Student, error)
	GetOverviewByID(ctx context.Context, id int64) (*models.Student, error)
}

// ParentStore is the parent account surface of the parent repository.
type ParentStore interface {
	Create(ctx context.Context, parent *models.Parent) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Parent, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// AccountCreator persists a user and, for students, the linked students row
// in one transaction.
type AccountCreator interface {
	CreateAccount(ctx context.Context, user *models.User, student *models.Student) (int64, error)
}

// AttendanceStore is the attendance surface consumed by records and dashboards.
type AttendanceStore interface {
	ListByStudent(ctx context.Context, studentID, month string) ([]*models.Attendance, error)
	GetLatest(ctx context.Context, studentID string) (*models.Attendance, error)
	ListSeries(ctx context.Context, studentID string) ([]*models.Attendance, error)
}

// MarkStore is the marks surface consumed by records and dashboards.
type MarkStore interface {
	ListByStudent(ctx context.Context, studentID string, filter repositories.MarksFilter) ([]*models.Mark, error)
	BestBySubject(ctx context.Context, studentID string) ([]repositories.SubjectBest, error)
}

// FeeStore is the fees surface consumed by records and dashboards.
type FeeStore interface {
	ListByStudent(ctx context.Context, studentID string, filter repositories.FeesFilter) ([]*models.Fee, error)
	CountUnpaid(ctx context.Context, studentID string) (int, error)
	MarkPaid(ctx context.Context, feeID int64, paidDate, transactionID string) error
}

// NotificationStore is the global notification surface of the notification
// repository.
type NotificationStore interface {
	List(ctx context.Context, category, target string) ([]*models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) (int64, error)
}

// TimetableStore is the timetable surface consumed by the academic service.
type TimetableStore interface {
	List(ctx context.Context, filter repositories.TimetableFilter) ([]*models.TimetableSlot, error)
	DistinctSubjects(ctx context.Context, branch string, semester int) ([]string, error)
	DistinctTeachers(ctx context.Context, branch string) ([]string, error)
}

// ParentMessageStore is the message surface consumed by the parent service.
type ParentMessageStore interface {
	ListByParent(ctx context.Context, parentID int64) ([]*models.ParentMessage, error)
	Create(ctx context.Context, message *models.ParentMessage) (int64, error)
}

// ParentNotificationStore is the per-parent notice surface.
type ParentNotificationStore interface {
	ListByParent(ctx context.Context, parentID int64, isRead *bool) ([]*models.ParentNotification, error)
	CountUnread(ctx context.Context, parentID int64) (int, error)
	MarkRead(ctx context.Context, id int64) error
}
