package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doghotel-backend/internal/shared/middleware"
	"doghotel-backend/pkg/container"
)

// SetupRouter wires middleware and domain routes onto a gin engine.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
				ctx.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unhealthy",
					"error":  err.Error(),
				})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"status":  "healthy",
				"version": c.Config.App.Version,
			})
		})

		c.BookingHandler.RegisterRoutes(v1)
		c.DogHandler.RegisterRoutes(v1)
	}

	return router
}
