package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/app/models/dto"
	"github.com/karthikv/parentportal/internal/app/repositories"
	"github.com/karthikv/parentportal/internal/app/services"
	"github.com/karthikv/parentportal/internal/middleware"
)

// AcademicController serves college-wide notifications and timetable data.
type AcademicController struct {
	academicService *services.AcademicService
	logger          zerolog.Logger
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(academicService *services.AcademicService, logger zerolog.Logger) *AcademicController {
	return &AcademicController{
		academicService: academicService,
		logger:          logger,
	}
}

// GetNotifications lists college notifications
// @Summary List notifications
// @Description Returns notifications newest first. A target filter also matches rows targeted at 'all'.
// @Tags academic
// @Produce json
// @Param category query string false "Filter by category"
// @Param target query string false "Filter by target audience"
// @Success 200 {object} dto.APIResponse{data=[]models.Notification}
// @Router /notifications [get]
func (c *AcademicController) GetNotifications(ctx *gin.Context) {
	notifications, err := c.academicService.ListNotifications(
		ctx.Request.Context(), ctx.Query("category"), ctx.Query("target"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notifications retrieved successfully", notifications))
}

// CreateNotification publishes a college notification
// @Summary Publish a notification
// @Description Admin-only. Date defaults to today and target to 'all' when omitted.
// @Tags academic
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Notification details"
// @Success 201 {object} dto.APIResponse{data=models.Notification}
// @Failure 400 {object} dto.APIResponse "Missing message or category"
// @Failure 403 {object} dto.APIResponse "Caller is not an admin"
// @Security BearerAuth
// @Router /notifications [post]
func (c *AcademicController) CreateNotification(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Message and category are required.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	notification := &models.Notification{
		Message:  req.Message,
		Date:     req.Date,
		Category: req.Category,
		Target:   req.Target,
	}

	if _, err := c.academicService.CreateNotification(ctx.Request.Context(), notification); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Notification published successfully!", notification))
}

// GetTimetable lists timetable slots
// @Summary List timetable slots
// @Tags academic
// @Produce json
// @Param branch query string false "Filter by branch"
// @Param day query string false "Filter by day"
// @Param semester query int false "Filter by semester"
// @Success 200 {object} dto.APIResponse{data=[]models.TimetableSlot}
// @Failure 400 {object} dto.APIResponse "Non-numeric semester"
// @Router /timetable [get]
func (c *AcademicController) GetTimetable(ctx *gin.Context) {
	semester, ok := parseSemester(ctx, ctx.Query("semester"))
	if !ok {
		return
	}

	filter := repositories.TimetableFilter{
		Branch:   ctx.Query("branch"),
		Day:      ctx.Query("day"),
		Semester: semester,
	}

	slots, err := c.academicService.ListTimetable(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Timetable retrieved successfully", slots))
}

// GetSubjects lists the distinct subjects taught to a branch and semester
// @Summary List subjects for a branch and semester
// @Tags academic
// @Produce json
// @Param branch path string true "Branch code"
// @Param semester path int true "Semester number"
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Failure 400 {object} dto.APIResponse "Non-numeric semester"
// @Router /subjects/{branch}/{semester} [get]
func (c *AcademicController) GetSubjects(ctx *gin.Context) {
	semester, ok := parseSemester(ctx, ctx.Param("semester"))
	if !ok {
		return
	}

	subjects, err := c.academicService.ListSubjects(
		ctx.Request.Context(), ctx.Param("branch"), semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Subjects retrieved successfully", subjects))
}

// GetTeachers lists the distinct teachers of a branch
// @Summary List teachers for a branch
// @Tags academic
// @Produce json
// @Param branch path string true "Branch code"
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /teachers/{branch} [get]
func (c *AcademicController) GetTeachers(ctx *gin.Context) {
	teachers, err := c.academicService.ListTeachers(ctx.Request.Context(), ctx.Param("branch"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Teachers retrieved successfully", teachers))
}

// parseSemester converts a semester path or query value. An empty value means
// no filter; a non-numeric value writes a 400 and reports false.
func parseSemester(ctx *gin.Context, raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}

	semester, err := strconv.Atoi(raw)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}

	return semester, true
}
