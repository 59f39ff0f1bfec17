package services

import (
	"context"
	"time"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/app/models/dto"
	"github.com/karthikv/parentportal/internal/pkg/apperrors"
)

// ParentService serves per-parent notices and the parent-to-staff message
// thread.
type ParentService struct {
	notifications ParentNotificationStore
	messages      ParentMessageStore
}

// NewParentService creates a new parent service.
func NewParentService(notifications ParentNotificationStore, messages ParentMessageStore) *ParentService {
	return &ParentService{
		notifications: notifications,
		messages:      messages,
	}
}

// ListNotifications returns a parent's notices, newest first, optionally
// restricted by read state.
func (s *ParentService) ListNotifications(ctx context.Context, parentID int64, isRead *bool) ([]*models.ParentNotification, error) {
	return s.notifications.ListByParent(ctx, parentID, isRead)
}

// MarkNotificationRead flags a notice as read. Unknown ids succeed silently.
func (s *ParentService) MarkNotificationRead(ctx context.Context, id int64) error {
	return s.notifications.MarkRead(ctx, id)
}

// ListMessages returns a parent's message thread, newest first.
func (s *ParentService) ListMessages(ctx context.Context, parentID int64) ([]*models.ParentMessage, error) {
	return s.messages.ListByParent(ctx, parentID)
}

// SendMessage stores a new unread message stamped with the current time.
func (s *ParentService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageData, error) {
	if req.ParentID == 0 || req.Message == "" {
		return nil, apperrors.NewValidationError("Parent ID and message are required.")
	}

	message := &models.ParentMessage{
		ParentID:  req.ParentID,
		TeacherID: req.TeacherID,
		Message:   req.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	messageID, err := s.messages.Create(ctx, message)
	if err != nil {
		return nil, err
	}

	return &dto.SendMessageData{MessageID: messageID}, nil
}
