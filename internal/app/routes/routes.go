package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mkarvonen/placementtrack/internal/app/controllers"
	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/middleware"
)

// SetupRouter configures all application routes. The paths mirror the
// legacy browser client, so they stay flat instead of forming a single
// versioned API group.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	companyController *controllers.CompanyController,
	placementController *controllers.PlacementController,
	reportController *controllers.ReportController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	// The minimal student and company lists feed the registration form's
	// pickers, which render before any session exists.
	router.POST("/api/login", authController.Login)
	router.POST("/api/refresh", authController.RefreshToken)
	router.POST("/add-user", authController.Register)
	router.POST("/check-email", authController.CheckEmail)
	router.POST("/reset-password", authController.ResetPassword)
	router.GET("/students", studentController.ListRefs)
	router.GET("/companies", companyController.ListRefs)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/students-full", studentController.ListFull)
		authenticated.GET("/companies-full", companyController.ListFull)
		authenticated.POST("/add-company", companyController.Create)

		authenticated.GET("/workplace", placementController.List)
		authenticated.POST("/workplace", placementController.Create)
		// Kept as an alias of POST /workplace for the legacy client
		authenticated.POST("/add-workplace", placementController.Create)
		authenticated.PUT("/workplace", placementController.Update)
		authenticated.DELETE("/workplace", placementController.Delete)

		authenticated.GET("/report", reportController.PlacementReport)
		authenticated.GET("/company-report", reportController.CompanyReport)

		authenticated.POST("/user/change-password", authController.ChangePassword)

		// Teacher-only reference data management
		teacherOnly := authenticated.Group("")
		teacherOnly.Use(authMiddleware.RoleRequired(models.RoleTeacher))
		{
			teacherOnly.POST("/add-student", studentController.Create)
			teacherOnly.PUT("/students/:id", studentController.Update)
			teacherOnly.PUT("/companies/:id", companyController.Update)
		}

		// Admin panel
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/users", adminController.ListUsers)
			admin.POST("/reset-user-password", adminController.ResetUserPassword)
		}
	}
}
