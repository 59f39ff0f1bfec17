package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/karthikv/parentportal/internal/app/models/dto"
	"github.com/karthikv/parentportal/internal/app/repositories"
	"github.com/karthikv/parentportal/internal/app/services"
	"github.com/karthikv/parentportal/internal/middleware"
)

// RecordsController serves per-student attendance, marks and fee records.
type RecordsController struct {
	recordsService *services.RecordsService
	logger         zerolog.Logger
}

// NewRecordsController creates a new RecordsController
func NewRecordsController(recordsService *services.RecordsService, logger zerolog.Logger) *RecordsController {
	return &RecordsController{
		recordsService: recordsService,
		logger:         logger,
	}
}

// GetAttendance lists attendance records for a student
// @Summary List a student's attendance records
// @Description Returns attendance rows newest month first. The studentId path segment is the hall ticket number.
// @Tags records
// @Produce json
// @Param studentId path string true "Student hall ticket number"
// @Param month query string false "Filter by month (YYYY-MM)"
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance}
// @Router /attendance/{studentId} [get]
func (c *RecordsController) GetAttendance(ctx *gin.Context) {
	records, err := c.recordsService.ListAttendance(
		ctx.Request.Context(), ctx.Param("studentId"), ctx.Query("month"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Attendance retrieved successfully", records))
}

// GetMarks lists marks for a student
// @Summary List a student's marks
// @Tags records
// @Produce json
// @Param studentId path string true "Student hall ticket number"
// @Param subject query string false "Filter by subject"
// @Param examType query string false "Filter by exam type"
// @Param semester query int false "Filter by semester"
// @Success 200 {object} dto.APIResponse{data=[]models.Mark}
// @Failure 400 {object} dto.APIResponse "Non-numeric semester"
// @Router /marks/{studentId} [get]
func (c *RecordsController) GetMarks(ctx *gin.Context) {
	semester, ok := parseSemester(ctx, ctx.Query("semester"))
	if !ok {
		return
	}

	filter := repositories.MarksFilter{
		Subject:  ctx.Query("subject"),
		ExamType: ctx.Query("examType"),
		Semester: semester,
	}

	marks, err := c.recordsService.ListMarks(ctx.Request.Context(), ctx.Param("studentId"), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Marks retrieved successfully", marks))
}

// GetFees lists fee records for a student
// @Summary List a student's fees
// @Tags records
// @Produce json
// @Param studentId path string true "Student hall ticket number"
// @Param feeType query string false "Filter by fee type"
// @Param paid query boolean false "Filter by payment status"
// @Success 200 {object} dto.APIResponse{data=[]models.Fee}
// @Router /fees/{studentId} [get]
func (c *RecordsController) GetFees(ctx *gin.Context) {
	filter := repositories.FeesFilter{
		FeeType: ctx.Query("feeType"),
	}
	if raw := ctx.Query("paid"); raw != "" {
		paid := raw == "true"
		filter.Paid = &paid
	}

	fees, err := c.recordsService.ListFees(ctx.Request.Context(), ctx.Param("studentId"), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fees retrieved successfully", fees))
}

// PayFee records a fee payment
// @Summary Record a fee payment
// @Description Marks the fee paid with today's date and the supplied transaction id. Repeating the call overwrites the previous payment details.
// @Tags records
// @Accept json
// @Produce json
// @Param feeId path int true "Fee record id"
// @Param request body dto.PayFeeRequest true "Payment details"
// @Success 200 {object} dto.APIResponse "Fee payment recorded successfully!"
// @Failure 400 {object} dto.APIResponse "Missing transaction id or bad fee id"
// @Failure 404 {object} dto.APIResponse "No fee record with that id"
// @Router /pay-fee/{feeId} [post]
func (c *RecordsController) PayFee(ctx *gin.Context) {
	feeID, err := strconv.ParseInt(ctx.Param("feeId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid fee ID.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.PayFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Transaction ID is required.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.recordsService.PayFee(ctx.Request.Context(), feeID, req.TransactionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fee payment recorded successfully!", nil))
}
