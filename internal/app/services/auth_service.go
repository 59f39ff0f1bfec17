package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/app/models/dto"
	"github.com/karthikv/parentportal/internal/pkg/apperrors"
	"github.com/karthikv/parentportal/internal/pkg/auth"
)

// defaultSemester is stamped on new student accounts; the portal serves the
// final-year cohort.
const defaultSemester = 8

// AuthService handles registration, login and password management for all
// three account types.
type AuthService struct {
	users       UserStore
	students    StudentStore
	parents     ParentStore
	accounts    AccountCreator
	parentNotes ParentNotificationStore
	jwt         *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	users UserStore,
	students StudentStore,
	parents ParentStore,
	accounts AccountCreator,
	parentNotes ParentNotificationStore,
	jwt *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		students:    students,
		parents:     parents,
		accounts:    accounts,
		parentNotes: parentNotes,
		jwt:         jwt,
		logger:      logger,
	}
}

// Register creates a user account and, for students, the matching students
// row. Students must supply branch and hall ticket number.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterData, error) {
	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	if role == models.RoleStudent && (req.Branch == "" || req.HallTicketNumber == "") {
		return nil, apperrors.NewValidationError("Branch and Hall Ticket Number are required for students.")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:             req.Name,
		Username:         req.Username,
		Email:            req.Email,
		Phone:            req.Phone,
		Branch:           req.Branch,
		HallTicketNumber: req.HallTicketNumber,
		Password:         passwordHash,
		Role:             role,
		Semester:         defaultSemester,
	}

	var student *models.Student
	if role == models.RoleStudent {
		student = &models.Student{
			Name:             req.Name,
			Email:            req.Email,
			HallTicketNumber: req.HallTicketNumber,
			Branch:           req.Branch,
		}
	}

	userID, err := s.accounts.CreateAccount(ctx, user, student)
	if err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwt.GenerateToken(userID, user.Email, role)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to issue token after registration")
		return &dto.RegisterData{UserID: userID}, nil
	}

	return &dto.RegisterData{UserID: userID, Token: token, ExpiresIn: expiresIn}, nil
}

// RegisterParent creates a parent account linked to an existing student
// identified by hall ticket number.
func (s *AuthService) RegisterParent(ctx context.Context, req *dto.RegisterParentRequest) (*dto.RegisterParentData, error) {
	student, err := s.students.GetByHallTicket(ctx, req.StudentHallTicketNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.NewNotFoundError("Student not found with the provided hall ticket number.")
		}
		return nil, err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	relation := req.Relation
	if relation == "" {
		relation = "Parent"
	}

	parent := &models.Parent{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  passwordHash,
		StudentID: student.ID,
		Relation:  relation,
	}

	parentID, err := s.parents.Create(ctx, parent)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterParentData{ParentID: parentID}, nil
}

// Login authenticates against the users table first, matching the
// identifier to username, email or hall ticket number. When no user
// matches and the identifier looks like an email, it falls back to the
// parents table.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginData, error) {
	user, err := s.users.GetByIdentifier(ctx, req.Username, req.Role)
	switch {
	case err == nil && auth.CheckPassword(user.Password, req.Password):
		token, expiresIn, tokenErr := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
		if tokenErr != nil {
			return nil, fmt.Errorf("failed to issue token: %w", tokenErr)
		}
		return &dto.LoginData{User: user, Token: token, ExpiresIn: expiresIn}, nil

	case err != nil && !errors.Is(err, apperrors.ErrUserNotFound):
		return nil, err
	}

	// No user row (or wrong password); emails get one more chance as parents.
	if !strings.Contains(req.Username, "@") {
		return nil, apperrors.ErrInvalidCredentials
	}

	account, err := s.authenticateParent(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwt.GenerateToken(account.ID, account.Email, models.RoleParent)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.LoginData{Parent: account, Token: token, ExpiresIn: expiresIn}, nil
}

// LoginParent authenticates against the parents table only.
func (s *AuthService) LoginParent(ctx context.Context, req *dto.ParentLoginRequest) (*dto.ParentLoginData, error) {
	account, err := s.authenticateParent(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwt.GenerateToken(account.ID, account.Email, models.RoleParent)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.ParentLoginData{
		Parent:    account,
		Student:   account.Student,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// authenticateParent checks parent credentials and enriches the account with
// the linked student and unread notice count. The enrichment lookups are
// best-effort: a missing student join yields a nil student, a failed count
// yields zero.
func (s *AuthService) authenticateParent(ctx context.Context, email, password string) (*dto.ParentAccount, error) {
	parent, err := s.parents.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrParentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(parent.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	account := &dto.ParentAccount{
		Parent: *parent,
		Role:   models.RoleParent,
	}

	student, err := s.students.GetOverviewByID(ctx, parent.StudentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		s.logger.Warn().Int64("parentID", parent.ID).Msg("Parent has no linked student row")
	} else {
		account.Student = student
	}

	unread, err := s.parentNotes.CountUnread(ctx, parent.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("parentID", parent.ID).Msg("Error getting notification count")
	} else {
		account.UnreadNotifications = unread
	}

	return account, nil
}

// UpdatePassword changes a password after verifying the old one. Parents are
// located by email, everyone else by any of the three identifier forms.
func (s *AuthService) UpdatePassword(ctx context.Context, req *dto.UpdatePasswordRequest) error {
	newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if req.Role == models.RoleParent {
		parent, err := s.parents.GetByEmail(ctx, req.Identifier)
		if err != nil || !auth.CheckPassword(parent.Password, req.OldPassword) {
			if err != nil && !errors.Is(err, apperrors.ErrParentNotFound) {
				return err
			}
			return apperrors.NewNotFoundError("Parent not found or incorrect old password!")
		}
		return s.parents.UpdatePassword(ctx, parent.Email, newHash)
	}

	user, err := s.users.GetByIdentifier(ctx, req.Identifier, "")
	if err != nil || !auth.CheckPassword(user.Password, req.OldPassword) {
		if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
			return err
		}
		return apperrors.NewNotFoundError("User not found or incorrect old password!")
	}
	return s.users.UpdatePassword(ctx, user.ID, newHash)
}

// ForgotPassword resets a password without the old-password check. Password
// strength is deliberately not re-validated here.
func (s *AuthService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if req.Role == models.RoleParent {
		parent, err := s.parents.GetByEmail(ctx, req.Identifier)
		if err != nil {
			if errors.Is(err, apperrors.ErrParentNotFound) {
				return apperrors.NewNotFoundError("Parent not found!")
			}
			return err
		}
		return s.parents.UpdatePassword(ctx, parent.Email, newHash)
	}

	user, err := s.users.GetByIdentifier(ctx, req.Identifier, "")
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.NewNotFoundError("User not found!")
		}
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, newHash)
}

// GetProfile returns the account row behind an authenticated token.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}
