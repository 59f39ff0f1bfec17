package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/karthikv/parentportal/internal/app/models/dto"
	"github.com/karthikv/parentportal/internal/app/services"
	"github.com/karthikv/parentportal/internal/middleware"
)

// DashboardController serves the aggregated dashboard endpoints.
type DashboardController struct {
	dashboardService *services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetParentDashboard assembles the parent dashboard for a student
// @Summary Get the parent dashboard summary for a student
// @Description Returns the student overview with latest attendance, unpaid fee count and best marks per subject. Sub-lookups degrade to empty defaults on failure; only a missing student is fatal.
// @Tags dashboard
// @Produce json
// @Param studentId path string true "Student hall ticket number"
// @Success 200 {object} dto.APIResponse{data=dto.ParentDashboardData}
// @Failure 404 {object} dto.APIResponse "No student with that hall ticket number"
// @Router /parent-dashboard/{studentId} [get]
func (c *DashboardController) GetParentDashboard(ctx *gin.Context) {
	data, err := c.dashboardService.GetParentDashboard(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Parent dashboard retrieved successfully", data))
}

// GetStudentPerformance assembles attendance and marks trends for a student
// @Summary Get a student's performance summary
// @Description Returns the attendance series in month order, every mark with its percentage, and the per-subject percentage averages.
// @Tags dashboard
// @Produce json
// @Param studentId path string true "Student hall ticket number"
// @Success 200 {object} dto.APIResponse{data=dto.StudentPerformanceData}
// @Router /student-performance/{studentId} [get]
func (c *DashboardController) GetStudentPerformance(ctx *gin.Context) {
	data, err := c.dashboardService.GetStudentPerformance(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student performance retrieved successfully", data))
}
