package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/akshat/marksheet/internal/app/controllers"
	"github.com/akshat/marksheet/internal/app/models/dto"
	"github.com/akshat/marksheet/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	marksController *controllers.MarksController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.POST("/token", authController.Login)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.Authenticated())

	authenticated.GET("/users/:username", authController.GetUser)

	// Student routes; reads allow self-access, mutations are admin-only
	students := authenticated.Group("/students")
	{
		students.GET("/:id", studentController.Get)

		studentsAdmin := students.Group("")
		studentsAdmin.Use(authMiddleware.AdminRequired())
		{
			studentsAdmin.GET("", studentController.List)
			studentsAdmin.POST("", studentController.Create)
			studentsAdmin.PUT("/:id", studentController.UpdateByID)
			studentsAdmin.DELETE("/:id", studentController.DeleteByID)
			studentsAdmin.PUT("/by-roll/:roll", studentController.UpdateByRoll)
			studentsAdmin.DELETE("/by-roll/:roll", studentController.DeleteByRoll)
		}
	}

	// Marks routes; per-student reads allow self-access
	marks := authenticated.Group("/marks")
	{
		marks.GET("/:student_id", marksController.ForStudent)
		marks.GET("/by-roll/:roll", marksController.ForStudent)
		marks.GET("/id/:marks_id", marksController.GetByID)

		marksAdmin := marks.Group("")
		marksAdmin.Use(authMiddleware.AdminRequired())
		{
			marksAdmin.GET("", marksController.ListAll)
			marksAdmin.POST("", marksController.Add)
			marksAdmin.PUT("/:marks_id", marksController.UpdateByID)
			marksAdmin.DELETE("/:marks_id", marksController.DeleteByID)
		}
	}

	// Report routes (admin only)
	reports := authenticated.Group("/reports")
	reports.Use(authMiddleware.AdminRequired())
	{
		reports.GET("/class-performance", reportController.ClassPerformance)
		reports.GET("/subject-performance", reportController.SubjectPerformance)
		reports.GET("/top-performers", reportController.TopPerformers)
	}
}
