package app

import (
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/config"
	"trainrec_backend/internal/middleware"
	"trainrec_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg, repos.user))
	{
		api.GET("/auth/profile", c.auth.GetProfile)

		courses := api.Group("/courses")
		{
			courses.GET("", middleware.Authorize(authz.ResCourses, authz.ActionRead), c.course.ListCourses)
			courses.GET("/:id", middleware.Authorize(authz.ResCourses, authz.ActionRead), c.course.GetCourse)
			courses.POST("", middleware.Authorize(authz.ResCourses, authz.ActionWrite), c.course.CreateCourse)
			courses.PUT("/:id", middleware.Authorize(authz.ResCourses, authz.ActionWrite), c.course.UpdateCourse)
			courses.DELETE("/:id", middleware.Authorize(authz.ResCourses, authz.ActionDelete), c.course.DeleteCourse)
			courses.POST("/:id/complete", middleware.Authorize(authz.ResCourses, authz.ActionRead), c.course.CompleteCourse)
			courses.POST("/:id/modules", middleware.Authorize(authz.ResCourses, authz.ActionWrite), c.course.CreateModule)

			courses.GET("/:id/assignments", middleware.Authorize(authz.ResAssignments, authz.ActionRead), c.assignment.ListByCourse)
			courses.POST("/:id/assignments", middleware.Authorize(authz.ResAssignments, authz.ActionWrite), c.assignment.Assign)
		}

		modules := api.Group("/modules")
		{
			modules.GET("/:id", middleware.Authorize(authz.ResCourses, authz.ActionRead), c.course.GetModule)
			modules.PUT("/:id", middleware.Authorize(authz.ResCourses, authz.ActionWrite), c.course.UpdateModule)
			modules.DELETE("/:id", middleware.Authorize(authz.ResCourses, authz.ActionDelete), c.course.DeleteModule)
			modules.POST("/:id/lessons", middleware.Authorize(authz.ResCourses, authz.ActionWrite), c.course.CreateLesson)
		}

		lessons := api.Group("/lessons")
		{
			lessons.GET("/:id", middleware.Authorize(authz.ResCourses, authz.ActionRead), c.course.GetLesson)
			lessons.PUT("/:id", middleware.Authorize(authz.ResCourses, authz.ActionWrite), c.course.UpdateLesson)
			lessons.DELETE("/:id", middleware.Authorize(authz.ResCourses, authz.ActionDelete), c.course.DeleteLesson)
			lessons.POST("/:id/complete", middleware.Authorize(authz.ResCourses, authz.ActionRead), c.course.CompleteLesson)
		}

		assignments := api.Group("/assignments")
		{
			assignments.PUT("/:id", middleware.Authorize(authz.ResAssignments, authz.ActionWrite), c.assignment.UpdateStatus)
			assignments.DELETE("/:id", middleware.Authorize(authz.ResAssignments, authz.ActionDelete), c.assignment.Remove)
		}

		personnel := api.Group("/personnel")
		{
			personnel.GET("", middleware.Authorize(authz.ResPersonnel, authz.ActionRead), c.personnel.List)
			personnel.GET("/:id", middleware.Authorize(authz.ResPersonnel, authz.ActionRead), c.personnel.Get)
			personnel.POST("", middleware.Authorize(authz.ResPersonnel, authz.ActionWrite), c.personnel.Create)
			personnel.PUT("/:id", middleware.Authorize(authz.ResPersonnel, authz.ActionWrite), c.personnel.Update)
			personnel.DELETE("/:id", middleware.Authorize(authz.ResPersonnel, authz.ActionDelete), c.personnel.Delete)
			personnel.POST("/:id/create-account", middleware.Authorize(authz.ResUsers, authz.ActionWrite), c.personnel.CreateAccount)
		}

		crews := api.Group("/crews")
		{
			crews.GET("", middleware.Authorize(authz.ResCrews, authz.ActionRead), c.crew.List)
			crews.GET("/:id", middleware.Authorize(authz.ResCrews, authz.ActionRead), c.crew.Get)
			crews.POST("", middleware.Authorize(authz.ResCrews, authz.ActionWrite), c.crew.Create)
			crews.PUT("/:id", middleware.Authorize(authz.ResCrews, authz.ActionWrite), c.crew.Update)
			crews.DELETE("/:id", middleware.Authorize(authz.ResCrews, authz.ActionDelete), c.crew.Delete)
			crews.PUT("/:id/members", middleware.Authorize(authz.ResCrews, authz.ActionWrite), c.crew.SetMembers)
		}

		equipment := api.Group("/equipment")
		{
			equipment.GET("", middleware.Authorize(authz.ResEquipment, authz.ActionRead), c.equipment.List)
			equipment.GET("/:id", middleware.Authorize(authz.ResEquipment, authz.ActionRead), c.equipment.Get)
			equipment.POST("", middleware.Authorize(authz.ResEquipment, authz.ActionWrite), c.equipment.Create)
			equipment.PUT("/:id", middleware.Authorize(authz.ResEquipment, authz.ActionWrite), c.equipment.Update)
			equipment.DELETE("/:id", middleware.Authorize(authz.ResEquipment, authz.ActionDelete), c.equipment.Delete)
		}

		knowledge := api.Group("/knowledge")
		{
			knowledge.GET("/categories", middleware.Authorize(authz.ResKnowledge, authz.ActionRead), c.knowledge.ListCategories)
			knowledge.GET("/categories/:id", middleware.Authorize(authz.ResKnowledge, authz.ActionRead), c.knowledge.GetCategory)
			knowledge.POST("/categories", middleware.Authorize(authz.ResKnowledge, authz.ActionWrite), c.knowledge.CreateCategory)
			knowledge.PUT("/categories/:id", middleware.Authorize(authz.ResKnowledge, authz.ActionWrite), c.knowledge.UpdateCategory)
			knowledge.DELETE("/categories/:id", middleware.Authorize(authz.ResKnowledge, authz.ActionDelete), c.knowledge.DeleteCategory)

			knowledge.GET("/materials", middleware.Authorize(authz.ResKnowledge, authz.ActionRead), c.knowledge.ListMaterials)
			knowledge.GET("/materials/:id", middleware.Authorize(authz.ResKnowledge, authz.ActionRead), c.knowledge.GetMaterial)
			knowledge.POST("/materials", middleware.Authorize(authz.ResKnowledge, authz.ActionWrite), c.knowledge.CreateMaterial)
			knowledge.PUT("/materials/:id", middleware.Authorize(authz.ResKnowledge, authz.ActionWrite), c.knowledge.UpdateMaterial)
			knowledge.DELETE("/materials/:id", middleware.Authorize(authz.ResKnowledge, authz.ActionDelete), c.knowledge.DeleteMaterial)
		}

		files := api.Group("/files")
		{
			files.POST("/upload", middleware.Authorize(authz.ResFiles, authz.ActionWrite), c.file.Upload)
			files.GET("/progress/:id", middleware.Authorize(authz.ResFiles, authz.ActionWrite), c.file.Progress)
		}

		users := api.Group("/users")
		{
			users.GET("", middleware.Authorize(authz.ResUsers, authz.ActionRead), c.user.List)
			users.PUT("/:id/active", middleware.Authorize(authz.ResUsers, authz.ActionWrite), c.user.SetActive)
		}
	}
}
