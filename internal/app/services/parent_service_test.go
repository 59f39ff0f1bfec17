package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/app/models/dto"
	"github.com/karthikv/parentportal/internal/pkg/apperrors"
)

func newParentFixture() (*fakeParentNotificationStore, *fakeParentMessageStore, *ParentService) {
	notifications := &fakeParentNotificationStore{notifications: []*models.ParentNotification{
		{ID: 1, ParentID: 1, Message: "Rajesh scored 85% in Machine Learning mid-term exam", Date: "2025-01-12", IsRead: false},
		{ID: 2, ParentID: 1, Message: "Fee reminder", Date: "2025-01-25", IsRead: true},
		{ID: 3, ParentID: 2, Message: "Other parent's notice", Date: "2025-01-15", IsRead: false},
	}}
	messages := &fakeParentMessageStore{}

	return notifications, messages, NewParentService(notifications, messages)
}

func TestListNotificationsFiltersByParentAndReadState(t *testing.T) {
	_, _, service := newParentFixture()

	all, err := service.ListNotifications(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	unread := false
	filtered, err := service.ListNotifications(context.Background(), 1, &unread)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)
}

func TestMarkNotificationRead(t *testing.T) {
	notifications, _, service := newParentFixture()

	require.NoError(t, service.MarkNotificationRead(context.Background(), 1))
	assert.True(t, notifications.notifications[0].IsRead)
}

func TestMarkNotificationReadUnknownIDSucceeds(t *testing.T) {
	notifications, _, service := newParentFixture()

	assert.NoError(t, service.MarkNotificationRead(context.Background(), 9999))
	assert.Contains(t, notifications.markedRead, int64(9999))
}

func TestSendMessage(t *testing.T) {
	_, messages, service := newParentFixture()

	data, err := service.SendMessage(context.Background(), &dto.SendMessageRequest{
		ParentID: 1,
		Message:  "When can we schedule a meeting?",
	})
	require.NoError(t, err)
	assert.NotZero(t, data.MessageID)

	require.Len(t, messages.messages, 1)
	stored := messages.messages[0]
	assert.Equal(t, int64(1), stored.ParentID)
	assert.Nil(t, stored.TeacherID)
	assert.False(t, stored.IsRead)

	ts, err := time.Parse(time.RFC3339, stored.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestSendMessageValidation(t *testing.T) {
	_, _, service := newParentFixture()

	_, err := service.SendMessage(context.Background(), &dto.SendMessageRequest{ParentID: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	_, err = service.SendMessage(context.Background(), &dto.SendMessageRequest{Message: "hello"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}
