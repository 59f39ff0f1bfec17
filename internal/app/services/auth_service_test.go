package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/app/models/dto"
	"github.com/karthikv/parentportal/internal/pkg/apperrors"
	"github.com/karthikv/parentportal/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

type authFixture struct {
	users       *fakeUserStore
	students    *fakeStudentStore
	parents     *fakeParentStore
	parentNotes *fakeParentNotificationStore
	service     *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	users := &fakeUserStore{}
	students := &fakeStudentStore{}
	parents := &fakeParentStore{}
	parentNotes := &fakeParentNotificationStore{}
	accounts := &fakeAccountCreator{users: users, students: students}

	service := NewAuthService(users, students, parents, accounts, parentNotes,
		newTestJWTService(), zerolog.Nop())

	return &authFixture{
		users:       users,
		students:    students,
		parents:     parents,
		parentNotes: parentNotes,
		service:     service,
	}
}

func registerStudent(t *testing.T, f *authFixture) *dto.RegisterData {
	t.Helper()

	data, err := f.service.Register(context.Background(), &dto.RegisterRequest{
		Name:             "Rajesh Kumar",
		Username:         "rajesh",
		Email:            "rajesh@example.com",
		Phone:            "9876543210",
		Branch:           "CSE",
		HallTicketNumber: "19BD1A05J1",
		Password:         "password123",
	})
	require.NoError(t, err)
	return data
}

func TestRegisterCreatesUserAndStudent(t *testing.T) {
	f := newAuthFixture(t)

	data := registerStudent(t, f)
	assert.NotZero(t, data.UserID)
	assert.NotEmpty(t, data.Token)

	user, err := f.users.GetByIdentifier(context.Background(), "rajesh", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "password123", user.Password, "password must be stored hashed")

	student, err := f.students.GetByHallTicket(context.Background(), "19BD1A05J1")
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Kumar", student.Name)
}

func TestRegisterStudentRequiresBranchAndHallTicket(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Rajesh Kumar",
		Username: "rajesh",
		Email:    "rajesh@example.com",
		Phone:    "9876543210",
		Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestRegisterDuplicateIdentifier(t *testing.T) {
	f := newAuthFixture(t)
	registerStudent(t, f)

	_, err := f.service.Register(context.Background(), &dto.RegisterRequest{
		Name:             "Someone Else",
		Username:         "rajesh",
		Email:            "someone@example.com",
		Phone:            "1112223334",
		Branch:           "ECE",
		HallTicketNumber: "19BD1A05ZZ",
		Password:         "password123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrIdentifierExists))
}

func TestLoginAcceptsAllIdentifierForms(t *testing.T) {
	f := newAuthFixture(t)
	registerStudent(t, f)

	for _, identifier := range []string{"rajesh", "rajesh@example.com", "19BD1A05J1"} {
		data, err := f.service.Login(context.Background(), &dto.LoginRequest{
			Username: identifier,
			Password: "password123",
		})
		require.NoError(t, err, "identifier %q", identifier)
		require.NotNil(t, data.User)
		assert.Equal(t, "rajesh", data.User.Username)
		assert.NotEmpty(t, data.Token)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	registerStudent(t, f)

	_, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Username: "rajesh",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownIdentifier(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterParentAndLoginFallback(t *testing.T) {
	f := newAuthFixture(t)
	registerStudent(t, f)

	parentData, err := f.service.RegisterParent(context.Background(), &dto.RegisterParentRequest{
		Name:                    "Ramesh Kumar",
		Email:                   "ramesh@example.com",
		Phone:                   "9876543211",
		Password:                "parent123",
		StudentHallTicketNumber: "19BD1A05J1",
		Relation:                "Father",
	})
	require.NoError(t, err)
	require.NotZero(t, parentData.ParentID)

	f.parentNotes.notifications = []*models.ParentNotification{
		{ID: 1, ParentID: parentData.ParentID, Message: "note", Date: "2025-01-12", IsRead: false},
		{ID: 2, ParentID: parentData.ParentID, Message: "seen", Date: "2025-01-15", IsRead: true},
	}

	// The unified login endpoint falls back to the parents table for email
	// identifiers with no matching user.
	data, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Username: "ramesh@example.com",
		Password: "parent123",
	})
	require.NoError(t, err)
	require.NotNil(t, data.Parent)
	assert.Nil(t, data.User)
	assert.Equal(t, models.RoleParent, data.Parent.Role)
	require.NotNil(t, data.Parent.Student)
	assert.Equal(t, "19BD1A05J1", data.Parent.Student.HallTicketNumber)
	assert.Equal(t, 1, data.Parent.UnreadNotifications)
}

func TestRegisterParentUnknownStudent(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.RegisterParent(context.Background(), &dto.RegisterParentRequest{
		Name:                    "Ramesh Kumar",
		Email:                   "ramesh@example.com",
		Phone:                   "9876543211",
		Password:                "parent123",
		StudentHallTicketNumber: "NOPE",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	assert.Contains(t, err.Error(), "Student not found")
}

func TestLoginParentRejectsWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	registerStudent(t, f)

	_, err := f.service.RegisterParent(context.Background(), &dto.RegisterParentRequest{
		Name:                    "Ramesh Kumar",
		Email:                   "ramesh@example.com",
		Phone:                   "9876543211",
		Password:                "parent123",
		StudentHallTicketNumber: "19BD1A05J1",
	})
	require.NoError(t, err)

	_, err = f.service.LoginParent(context.Background(), &dto.ParentLoginRequest{
		Email:    "ramesh@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUpdatePassword(t *testing.T) {
	f := newAuthFixture(t)
	registerStudent(t, f)

	err := f.service.UpdatePassword(context.Background(), &dto.UpdatePasswordRequest{
		Identifier:  "rajesh",
		OldPassword: "password123",
		NewPassword: "newpass456",
	})
	require.NoError(t, err)

	_, err = f.service.Login(context.Background(), &dto.LoginRequest{
		Username: "rajesh",
		Password: "newpass456",
	})
	assert.NoError(t, err)

	_, err = f.service.Login(context.Background(), &dto.LoginRequest{
		Username: "rajesh",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUpdatePasswordWrongOldPassword(t *testing.T) {
	f := newAuthFixture(t)
	registerStudent(t, f)

	err := f.service.UpdatePassword(context.Background(), &dto.UpdatePasswordRequest{
		Identifier:  "rajesh",
		OldPassword: "wrong",
		NewPassword: "newpass456",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	assert.Contains(t, err.Error(), "incorrect old password")
}

func TestForgotPassword(t *testing.T) {
	f := newAuthFixture(t)
	registerStudent(t, f)

	err := f.service.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{
		Identifier:  "rajesh@example.com",
		NewPassword: "resetpass789",
	})
	require.NoError(t, err)

	_, err = f.service.Login(context.Background(), &dto.LoginRequest{
		Username: "rajesh",
		Password: "resetpass789",
	})
	assert.NoError(t, err)
}

func TestForgotPasswordUnknownAccount(t *testing.T) {
	f := newAuthFixture(t)

	err := f.service.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{
		Identifier:  "nobody@example.com",
		NewPassword: "whatever",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
