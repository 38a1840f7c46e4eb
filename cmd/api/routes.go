package main

import (
	"github.com/gin-gonic/gin"

	"pbx-dialplan/internal/httpapi"
	"pbx-dialplan/internal/rbac"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers delegate to the engine.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, authMW gin.HandlerFunc) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.POST("/v1/auth/token", h.IssueToken)

	// protected API group
	v1 := r.Group("/v1")
	v1.Use(authMW)
	{
		v1.POST("/resolve", rbac.RequireAnyRole(rbac.RoleOperator), h.Resolve)
		v1.GET("/extensions", rbac.RequireAnyRole(rbac.RoleAdmin), h.ListExtensions)
	}
}
