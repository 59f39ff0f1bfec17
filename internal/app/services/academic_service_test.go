package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/app/repositories"
	"github.com/karthikv/parentportal/internal/pkg/apperrors"
)

func newAcademicFixture() (*AcademicService, *fakeNotificationStore) {
	notifications := &fakeNotificationStore{
		notifications: []*models.Notification{
			{ID: 1, Message: "Fee deadline extended", Date: "2025-01-05", Category: "fee", Target: "all"},
			{ID: 2, Message: "Campus recruitment drive", Date: "2025-01-15", Category: "placement", Target: "students"},
			{ID: 3, Message: "Parent-Teacher Meeting", Date: "2025-02-01", Category: "meeting", Target: "parents"},
		},
	}
	timetable := &fakeTimetableStore{
		slots: []*models.TimetableSlot{
			{ID: 1, Day: "Monday", Period: 1, Subject: "Machine Learning", Teacher: "Dr. Ramakrishna", Room: "A101", Branch: "CSE", Semester: 8},
			{ID: 2, Day: "Monday", Period: 2, Subject: "Cloud Computing", Teacher: "Prof. Lakshmi", Room: "A102", Branch: "CSE", Semester: 8},
			{ID: 3, Day: "Tuesday", Period: 1, Subject: "Machine Learning", Teacher: "Dr. Ramakrishna", Room: "A101", Branch: "CSE", Semester: 8},
		},
	}
	return NewAcademicService(notifications, timetable), notifications
}

func TestListNotificationsTargetAdmitsAll(t *testing.T) {
	service, _ := newAcademicFixture()

	out, err := service.ListNotifications(context.Background(), "", "parents")
	require.NoError(t, err)

	require.Len(t, out, 2)
	for _, n := range out {
		assert.Contains(t, []string{"parents", "all"}, n.Target)
	}
}

func TestCreateNotificationDefaults(t *testing.T) {
	service, store := newAcademicFixture()

	notification := &models.Notification{Message: "Campus closed tomorrow", Category: "academic"}
	id, err := service.CreateNotification(context.Background(), notification)
	require.NoError(t, err)

	assert.NotZero(t, id)
	assert.Equal(t, time.Now().Format("2006-01-02"), notification.Date)
	assert.Equal(t, "all", notification.Target)
	assert.Equal(t, notification, store.notifications[len(store.notifications)-1])
}

func TestCreateNotificationRequiresMessageAndCategory(t *testing.T) {
	service, _ := newAcademicFixture()

	_, err := service.CreateNotification(context.Background(), &models.Notification{Category: "academic"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.CreateNotification(context.Background(), &models.Notification{Message: "No category"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateNotificationStoreFailure(t *testing.T) {
	service, store := newAcademicFixture()
	store.createErr = errors.New("insert failed")

	_, err := service.CreateNotification(context.Background(), &models.Notification{
		Message: "Exam hall change", Category: "academic",
	})
	assert.Error(t, err)
}

func TestListSubjectsAndTeachers(t *testing.T) {
	service, _ := newAcademicFixture()

	subjects, err := service.ListSubjects(context.Background(), "CSE", 8)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Machine Learning", "Cloud Computing"}, subjects)

	teachers, err := service.ListTeachers(context.Background(), "CSE")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Dr. Ramakrishna", "Prof. Lakshmi"}, teachers)
}

func TestListTimetableFilters(t *testing.T) {
	service, _ := newAcademicFixture()

	slots, err := service.ListTimetable(context.Background(), repositories.TimetableFilter{Day: "Monday"})
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}
