// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/karthikv/parentportal/internal/app/models/dto"
	"github.com/karthikv/parentportal/internal/app/services"
	"github.com/karthikv/parentportal/internal/middleware"
)

// AuthController handles registration, login and password management.
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a student or admin account. Student registrations also create the student record and require branch and hall ticket number.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterData} "Registration successful!"
// @Failure 400 {object} dto.APIResponse "Missing or invalid fields"
// @Failure 409 {object} dto.APIResponse "Username, email or hall ticket already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	data, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Registration successful!", data))
}

// RegisterParent handles parent registration
// @Summary Register a parent account
// @Description Creates a parent account linked to an existing student by hall ticket number.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterParentRequest true "Parent registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterParentData} "Parent registration successful!"
// @Failure 400 {object} dto.APIResponse "Missing or invalid fields"
// @Failure 404 {object} dto.APIResponse "No student with the given hall ticket number"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Router /auth/register/parent [post]
func (c *AuthController) RegisterParent(ctx *gin.Context) {
	var req dto.RegisterParentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid parent registration payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	data, err := c.authService.RegisterParent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Parent registration successful!", data))
}

// Login handles the unified login endpoint
// @Summary Log in
// @Description Authenticates by username, email or hall ticket number. Email identifiers fall back to the parents table when no user matches.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginData} "Login successful!"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	data, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Login successful!", data))
}

// LoginParent handles the parent-only login endpoint
// @Summary Log in as a parent
// @Description Authenticates against the parents table and returns the parent enriched with the linked student and unread notification count.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ParentLoginRequest true "Parent login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.ParentLoginData} "Parent login successful!"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/login/parent [post]
func (c *AuthController) LoginParent(ctx *gin.Context) {
	var req dto.ParentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	data, err := c.authService.LoginParent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Parent login successful!", data))
}

// UpdatePassword handles password changes
// @Summary Update password
// @Description Changes an account password after verifying the current one.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UpdatePasswordRequest true "Password change request"
// @Success 200 {object} dto.APIResponse "Password updated successfully!"
// @Failure 404 {object} dto.APIResponse "Account not found or incorrect old password"
// @Router /auth/update-password [put]
func (c *AuthController) UpdatePassword(ctx *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.authService.UpdatePassword(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Password updated successfully!", nil))
}

// ForgotPassword handles password resets
// @Summary Reset a forgotten password
// @Description Sets a new password for the account matching the identifier. No old-password check.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Password reset request"
// @Success 200 {object} dto.APIResponse "Password reset successfully!"
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Router /auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.authService.ForgotPassword(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Password reset successfully!", nil))
}

// GetProfile returns the authenticated account
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 401 {object} dto.APIResponse "Missing or invalid token"
// @Router /auth/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	accountID, exists := ctx.Get(middleware.ContextAccountID)
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.authService.GetProfile(ctx.Request.Context(), accountID.(int64))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Profile retrieved successfully", user))
}
