package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/karthikv/parentportal/internal/app/models/dto"
	"github.com/karthikv/parentportal/internal/app/services"
	"github.com/karthikv/parentportal/internal/middleware"
)

// ParentController serves parent notifications and parent-teacher messages.
type ParentController struct {
	parentService *services.ParentService
	logger        zerolog.Logger
}

// NewParentController creates a new ParentController
func NewParentController(parentService *services.ParentService, logger zerolog.Logger) *ParentController {
	return &ParentController{
		parentService: parentService,
		logger:        logger,
	}
}

// GetNotifications lists a parent's notifications
// @Summary List a parent's notifications
// @Tags parent
// @Produce json
// @Param parentId path int true "Parent id"
// @Param isRead query boolean false "Filter by read status"
// @Success 200 {object} dto.APIResponse{data=[]models.ParentNotification}
// @Router /parent-notifications/{parentId} [get]
func (c *ParentController) GetNotifications(ctx *gin.Context) {
	parentID, err := strconv.ParseInt(ctx.Param("parentId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid parent ID.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var isRead *bool
	if raw := ctx.Query("isRead"); raw != "" {
		read := raw == "true"
		isRead = &read
	}

	notifications, err := c.parentService.ListNotifications(ctx.Request.Context(), parentID, isRead)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Parent notifications retrieved successfully", notifications))
}

// MarkNotificationRead marks a parent notification as read
// @Summary Mark a parent notification as read
// @Description Sets is_read on the notification. Unknown ids are treated as already handled.
// @Tags parent
// @Produce json
// @Param id path int true "Notification id"
// @Success 200 {object} dto.APIResponse "Notification marked as read successfully!"
// @Router /parent-notifications/{id}/read [put]
func (c *ParentController) MarkNotificationRead(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid notification ID.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.parentService.MarkNotificationRead(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notification marked as read successfully!", nil))
}

// GetMessages lists a parent's messages
// @Summary List a parent's messages to staff
// @Description Returns messages newest first, including any staff replies.
// @Tags parent
// @Produce json
// @Param parentId path int true "Parent id"
// @Success 200 {object} dto.APIResponse{data=[]models.ParentMessage}
// @Router /parent-messages/{parentId} [get]
func (c *ParentController) GetMessages(ctx *gin.Context) {
	parentID, err := strconv.ParseInt(ctx.Param("parentId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid parent ID.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	messages, err := c.parentService.ListMessages(ctx.Request.Context(), parentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Parent messages retrieved successfully", messages))
}

// SendMessage stores a new parent message
// @Summary Send a message to staff
// @Tags parent
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.SendMessageData} "Message sent successfully!"
// @Failure 400 {object} dto.APIResponse "Missing parent id or message"
// @Router /parent-messages [post]
func (c *ParentController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Parent ID and message are required.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	data, err := c.parentService.SendMessage(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Message sent successfully!", data))
}
