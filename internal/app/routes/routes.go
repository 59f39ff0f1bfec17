package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthikv/parentportal/internal/app/controllers"
	"github.com/karthikv/parentportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	academicController *controllers.AcademicController,
	recordsController *controllers.RecordsController,
	parentController *controllers.ParentController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/register/parent", authController.RegisterParent)
		auth.POST("/login", authController.Login)
		auth.POST("/login/parent", authController.LoginParent)
		auth.PUT("/update-password", authController.UpdatePassword)
		auth.POST("/forgot-password", authController.ForgotPassword)

		authProtected := auth.Group("")
		authProtected.Use(authMiddleware.JWTAuth())
		{
			authProtected.GET("/profile", authController.GetProfile)
		}
	}

	// --- College-wide data ---
	v1.GET("/notifications", academicController.GetNotifications)
	v1.POST("/notifications",
		authMiddleware.JWTAuth(), authMiddleware.RoleRequired("admin"),
		academicController.CreateNotification)
	v1.GET("/timetable", academicController.GetTimetable)
	v1.GET("/subjects/:branch/:semester", academicController.GetSubjects)
	v1.GET("/teachers/:branch", academicController.GetTeachers)

	// --- Per-student records (studentId is the hall ticket number) ---
	v1.GET("/attendance/:studentId", recordsController.GetAttendance)
	v1.GET("/marks/:studentId", recordsController.GetMarks)
	v1.GET("/fees/:studentId", recordsController.GetFees)
	v1.POST("/pay-fee/:feeId", recordsController.PayFee)

	// --- Parent notifications and messages ---
	v1.GET("/parent-notifications/:parentId", parentController.GetNotifications)
	v1.PUT("/parent-notifications/:id/read", parentController.MarkNotificationRead)
	v1.GET("/parent-messages/:parentId", parentController.GetMessages)
	v1.POST("/parent-messages", parentController.SendMessage)

	// --- Dashboards ---
	v1.GET("/parent-dashboard/:studentId", dashboardController.GetParentDashboard)
	v1.GET("/student-performance/:studentId", dashboardController.GetStudentPerformance)
}
