package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stayhub.admin/internal/interfaces/http/handlers"
	"stayhub.admin/internal/interfaces/http/middleware"
	"stayhub.admin/pkg/jwt"
	"stayhub.admin/pkg/metrics"
)

type routeDeps struct {
	authHandler  *handlers.AuthHandler
	userHandler  *handlers.UserHandler
	verifHandler *handlers.VerificationHandler
}

func buildRouter(jwtService *jwt.JWTService, d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	registerAPIV1Routes(r, jwtService, d)
	return r
}

func registerAPIV1Routes(r *gin.Engine, jwtService *jwt.JWTService, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", middleware.AuthMiddleware(jwtService), d.authHandler.Me)
		}

		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(jwtService), middleware.RequireSuperAdmin())
		{
			// Unified users
			authed.GET("/users", d.userHandler.List)
			authed.GET("/users/:id", d.userHandler.Get)
			authed.PATCH("/users/:id/status", d.userHandler.UpdateStatus)

			// Verification review
			authed.GET("/verification/queue", d.verifHandler.Queue)
			authed.GET("/verification/statistics", d.verifHandler.Statistics)
			authed.GET("/verification/:id", d.verifHandler.Details)
			authed.POST("/verification/:id/approve", middleware.IdempotencyMiddleware(), d.verifHandler.Approve)
			authed.POST("/verification/:id/reject", middleware.IdempotencyMiddleware(), d.verifHandler.Reject)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, Idempotency-Key")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "stayhub-admin-api",
		})
	})
}
