package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "bookshelf-api/docs"
	"bookshelf-api/internal/shared/middleware"
	"bookshelf-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.RequireJSON(),
	)

	// ========================================
	// OPERATIONAL ROUTES (public)
	// ========================================
	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))
	router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/docs/doc.json"))))

	setupAuthRoutes(router, c)

	// ========================================
	// RESOURCE ROUTES (authenticated)
	// ========================================
	api := router.Group("")
	api.Use(middleware.AuthMiddleware(c.UserService, c.JWTManager, c.Config.Auth.Realm))
	{
		c.AuthorHandler.RegisterRoutes(api)
		c.BookHandler.RegisterRoutes(api)
		c.UserHandler.RegisterRoutes(api)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	auth := router.Group("/auth")
	{
		auth.POST("/token", middleware.BasicAuth(c.UserService, c.Config.Auth.Realm), c.UserHandler.IssueToken)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		components := c.Health(checkCtx)
		status := http.StatusOK
		for _, v := range components {
			if strings.HasPrefix(v, "down") {
				status = http.StatusServiceUnavailable
			}
		}

		ctx.JSON(status, gin.H{
			"status":      http.StatusText(status),
			"service":     c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"components":  components,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
