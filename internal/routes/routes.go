// Package routes defines HTTP routes for the portfolio backend.
package routes

import (
	"github.com/codeyousef/portfolio-sub001/internal/config"
	"github.com/codeyousef/portfolio-sub001/internal/handlers"
	"github.com/codeyousef/portfolio-sub001/internal/middleware"
	"github.com/codeyousef/portfolio-sub001/internal/models"
	"github.com/codeyousef/portfolio-sub001/internal/monitoring"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the HTTP handlers wired into the router.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Blog     *handlers.BlogHandler
	Projects *handlers.ProjectHandler
	Services *handlers.ServiceHandler
	Users    *handlers.UserHandler
	Health   *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application. The access guard
// runs before every handler; its decision happens-before any protected
// operation.
func Setup(router *gin.Engine, cfg *config.Config, resolver middleware.SessionResolver, h Handlers) {
	router.Use(middleware.RequestLogger())
	router.Use(monitoring.RequestMetrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(middleware.CSRF(cfg.AllowedOrigins))
	router.Use(middleware.Guard(resolver))

	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET(middleware.LoginPath, h.Auth.LoginPage)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", h.Auth.Me)
	}

	contributor := middleware.RequireRole(models.RoleContributor)
	admin := middleware.RequireRole(models.RoleAdmin)

	blog := v1.Group("/blog")
	{
		blog.GET("", h.Blog.ListPublished)
		blog.GET("/tag/:tag", h.Blog.ListByTag)
		blog.GET("/:slug", h.Blog.GetBySlug)
		blog.POST("", contributor, h.Blog.Create)
		blog.PUT("/:id", contributor, h.Blog.Update)
		blog.POST("/:id/toggle-published", contributor, h.Blog.TogglePublished)
		blog.DELETE("/:id", contributor, h.Blog.Delete)
	}
	v1.GET("/admin/blog", contributor, h.Blog.ListAll)

	projects := v1.Group("/projects")
	{
		projects.GET("", h.Projects.List)
		projects.GET("/featured", h.Projects.ListFeatured)
		projects.GET("/:id", h.Projects.Get)
		projects.POST("", contributor, h.Projects.Create)
		projects.PUT("/:id", contributor, h.Projects.Update)
		projects.POST("/:id/toggle-featured", contributor, h.Projects.ToggleFeatured)
		projects.DELETE("/:id", contributor, h.Projects.Delete)
	}

	services := v1.Group("/services")
	{
		services.GET("", h.Services.List)
		services.GET("/featured", h.Services.ListFeatured)
		services.GET("/:id", h.Services.Get)
		services.POST("", contributor, h.Services.Create)
		services.PUT("/:id", contributor, h.Services.Update)
		services.POST("/:id/toggle-featured", contributor, h.Services.ToggleFeatured)
		services.DELETE("/:id", contributor, h.Services.Delete)
	}

	users := v1.Group("/admin/users", admin)
	{
		users.GET("", h.Users.List)
		users.POST("", h.Users.Create)
		users.PUT("/:id", h.Users.Update)
	}
}
