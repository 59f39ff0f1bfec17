package services

import (
	"context"
	"time"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/app/repositories"
	"github.com/karthikv/parentportal/internal/pkg/apperrors"
)

// AcademicService serves the shared reference data: global notifications,
// timetable slots and the distinct subject/teacher lookups.
type AcademicService struct {
	notifications NotificationStore
	timetable     TimetableStore
}

// NewAcademicService creates a new academic service.
func NewAcademicService(notifications NotificationStore, timetable TimetableStore) *AcademicService {
	return &AcademicService{
		notifications: notifications,
		timetable:     timetable,
	}
}

// ListNotifications returns notifications filtered by category and target
// audience. A target filter always admits 'all'-targeted rows.
func (s *AcademicService) ListNotifications(ctx context.Context, category, target string) ([]*models.Notification, error) {
	return s.notifications.List(ctx, category, target)
}

// CreateNotification publishes a notification. An empty date defaults to
// today and an empty target to 'all'.
func (s *AcademicService) CreateNotification(ctx context.Context, notification *models.Notification) (int64, error) {
	if notification.Message == "" || notification.Category == "" {
		return 0, apperrors.NewValidationError("Message and category are required.")
	}

	if notification.Date == "" {
		notification.Date = time.Now().Format("2006-01-02")
	}
	if notification.Target == "" {
		notification.Target = "all"
	}

	return s.notifications.Create(ctx, notification)
}

// ListTimetable returns timetable slots for the given filters, ordered by
// day then period.
func (s *AcademicService) ListTimetable(ctx context.Context, filter repositories.TimetableFilter) ([]*models.TimetableSlot, error) {
	return s.timetable.List(ctx, filter)
}

// ListSubjects returns the distinct subjects taught for a branch and semester.
func (s *AcademicService) ListSubjects(ctx context.Context, branch string, semester int) ([]string, error) {
	return s.timetable.DistinctSubjects(ctx, branch, semester)
}

// ListTeachers returns the distinct teachers for a branch.
func (s *AcademicService) ListTeachers(ctx context.Context, branch string) ([]string, error) {
	return s.timetable.DistinctTeachers(ctx, branch)
}
