package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reposapp/backend/internal/app/controllers"
	"github.com/reposapp/backend/internal/app/models"
	"github.com/reposapp/backend/internal/app/models/dto"
	"github.com/reposapp/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	studentController *controllers.StudentController,
	scheduleController *controllers.ScheduleController,
	replacementController *controllers.ReplacementController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/users", userController.CreateUser)
	v1.POST("/users/login", authController.Login)
	v1.POST("/students/login", studentController.StudentLogin)

	// Schedule and replacement listings stay readable without a token so the
	// student-facing client can show open slots
	v1.GET("/schedules", scheduleController.GetAllSchedules)
	v1.GET("/schedules/:id", scheduleController.GetScheduleByID)
	v1.GET("/replacements", replacementController.GetAllReplacements)
	v1.GET("/replacements/:id", replacementController.GetReplacementByID)

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}, ""))
	})

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("", userController.GetAllUsers)
			users.GET("/:id", userController.GetUserByID)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.DELETE("/:id", studentController.DeleteStudent)

			studentsStaffProtected := students.Group("")
			studentsStaffProtected.Use(authMiddleware.PositionRequired(models.PositionCoordenacao, models.PositionPreceptor))
			{
				studentsStaffProtected.POST("", studentController.CreateStudent)
				studentsStaffProtected.PUT("/:id", studentController.UpdateStudent)
			}
		}

		schedules := authenticated.Group("/schedules")
		{
			schedulesStaffProtected := schedules.Group("")
			schedulesStaffProtected.Use(authMiddleware.PositionRequired(models.PositionCoordenacao, models.PositionPreceptor))
			{
				schedulesStaffProtected.POST("", scheduleController.CreateSchedule)
			}

			schedulesCoordProtected := schedules.Group("")
			schedulesCoordProtected.Use(authMiddleware.PositionRequired(models.PositionCoordenacao))
			{
				schedulesCoordProtected.PUT("/:id", scheduleController.UpdateSchedule)
				schedulesCoordProtected.DELETE("/:id", scheduleController.DeleteSchedule)
			}
		}

		replacements := authenticated.Group("/replacements")
		{
			replacements.PUT("/:id", replacementController.UpdateReplacement)
			replacements.DELETE("/:id", replacementController.DeleteReplacement)

			replacementsStaffProtected := replacements.Group("")
			replacementsStaffProtected.Use(authMiddleware.PositionRequired(models.PositionCoordenacao, models.PositionPreceptor))
			{
				replacementsStaffProtected.POST("", replacementController.CreateReplacement)
			}
		}
	}
}
