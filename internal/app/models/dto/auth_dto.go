package dto

import "github.com/karthikv/parentportal/internal/app/models"

// RegisterRequest carries a new user registration. Branch and hall ticket
// number are required only when the role resolves to student; that rule is
// enforced in the service.
type RegisterRequest struct {
	Name             string `json:"name" binding:"required" example:"Rajesh Kumar"`
	Username         string `json:"username" binding:"required" example:"rajesh"`
	Email            string `json:"email" binding:"required,email" example:"rajesh@example.com"`
	Phone            string `json:"phone" binding:"required" example:"9876543210"`
	Branch           string `json:"branch" example:"CSE"`
	HallTicketNumber string `json:"hallticketnumber" example:"19BD1A05J1"`
	Password         string `json:"password" binding:"required" example:"password123"`
	Role             string `json:"role" example:"student"`
}

// RegisterParentRequest carries a parent registration linked to an
// existing student by hall ticket number.
type RegisterParentRequest struct {
	Name                   string `json:"name" binding:"required" example:"Ramesh Kumar"`
	Email                  string `json:"email" binding:"required,email" example:"ramesh@example.com"`
	Phone                  string `json:"phone" binding:"required" example:"9876543211"`
	Password               string `json:"password" binding:"required" example:"parent123"`
	StudentHallTicketNumber string `json:"student_hallticketnumber" binding:"required" example:"19BD1A05J1"`
	Relation               string `json:"relation" example:"Father"`
}

// LoginRequest carries unified login credentials. Username accepts a
// username, email or hall ticket number interchangeably.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"rajesh"`
	Password string `json:"password" binding:"required" example:"password123"`
	Role     string `json:"role" example:"student"`
}

// ParentLoginRequest carries credentials for the parent-only login path.
type ParentLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ramesh@example.com"`
	Password string `json:"password" binding:"required" example:"parent123"`
}

// UpdatePasswordRequest changes a password after verifying the old one.
type UpdatePasswordRequest struct {
	Identifier  string `json:"identifier" binding:"required" example:"rajesh@example.com"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
	Role        string `json:"role" example:"student"`
}

// ForgotPasswordRequest resets a password without the old-password check.
type ForgotPasswordRequest struct {
	Identifier  string `json:"identifier" binding:"required" example:"rajesh@example.com"`
	NewPassword string `json:"newPassword" binding:"required"`
	Role        string `json:"role" example:"student"`
}

// ParentAccount is a parent row enriched for login payloads with the
// linked student and the unread notification count.
type ParentAccount struct {
	models.Parent
	Role                string          `json:"role" example:"parent"`
	Student             *models.Student `json:"student,omitempty"`
	UnreadNotifications int             `json:"unreadNotifications" example:"2"`
}

// RegisterData is the payload returned on successful registration.
type RegisterData struct {
	UserID    int64  `json:"userId" example:"7"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expiresIn,omitempty" example:"43200"`
}

// RegisterParentData is the payload returned on successful parent registration.
type RegisterParentData struct {
	ParentID int64 `json:"parentId" example:"6"`
}

// LoginData is the payload of the unified login endpoint. User is set for
// student/admin logins, Parent for the email fallback path.
type LoginData struct {
	User      *models.User   `json:"user,omitempty"`
	Parent    *ParentAccount `json:"parent,omitempty"`
	Token     string         `json:"token,omitempty"`
	ExpiresIn int            `json:"expiresIn,omitempty" example:"43200"`
}

// ParentLoginData is the payload of the dedicated parent login endpoint.
type ParentLoginData struct {
	Parent    *ParentAccount  `json:"parent"`
	Student   *models.Student `json:"student"`
	Token     string          `json:"token,omitempty"`
	ExpiresIn int             `json:"expiresIn,omitempty" example:"43200"`
}
