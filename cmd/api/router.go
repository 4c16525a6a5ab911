package main

import (
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// The public contact form posts here, outside the versioned API.
	router.POST("/api/contact", c.ContactHandler.Submit)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", c.HealthHandler.Health)
		v1.GET("/db-status", c.HealthHandler.DBStatus)

		setupAuthRoutes(v1, c)
		setupContentRoutes(v1, c)
		setupProjectRoutes(v1, c)
		setupProfileRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Logout)
		auth.GET("/session", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Session)
	}
}

// setupContentRoutes wires the editable site sections: reads are
// public, writes need a session.
func setupContentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authRequired := middleware.AuthMiddleware(c.JWTManager)

	v1.GET("/introduction", c.IntroductionHandler.Get)
	v1.PUT("/introduction", authRequired, c.IntroductionHandler.Upsert)

	v1.GET("/experience", c.ExperienceHandler.List)
	v1.PUT("/experience", authRequired, c.ExperienceHandler.Upsert)
	v1.DELETE("/experience/:id", authRequired, c.ExperienceHandler.Delete)

	v1.GET("/studies", c.StudyHandler.List)
	v1.PUT("/studies", authRequired, c.StudyHandler.Upsert)
	v1.DELETE("/studies/:id", authRequired, c.StudyHandler.Delete)

	v1.GET("/skills", c.SkillHandler.List)
	v1.PUT("/skills", authRequired, c.SkillHandler.Upsert)
	v1.DELETE("/skills/:id", authRequired, c.SkillHandler.Delete)
}

func setupProjectRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authRequired := middleware.AuthMiddleware(c.JWTManager)

	projects := v1.Group("/projects")
	{
		// OptionalAuth lets a signed-in owner see drafts in the same
		// listing anonymous visitors use.
		projects.GET("", middleware.OptionalAuth(c.JWTManager), c.ProjectHandler.List)
		projects.GET("/:slug", c.ProjectHandler.GetBySlug)

		projects.POST("", authRequired, c.ProjectHandler.Create)
		projects.PUT("/:id", authRequired, c.ProjectHandler.Update)
		projects.DELETE("/:id", authRequired, c.ProjectHandler.Delete)
		projects.POST("/:id/images/:index", authRequired, c.ProjectHandler.UploadImage)
	}
}

func setupProfileRoutes(v1 *gin.RouterGroup, c *container.Container) {
	profile := v1.Group("/profile")
	profile.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		profile.GET("", c.UserHandler.GetProfile)
		profile.PUT("", c.UserHandler.UpdateProfile)
		profile.POST("/avatar", c.UserHandler.UploadAvatar)
	}
}
