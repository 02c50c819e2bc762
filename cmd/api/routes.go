package main

import (
	"net/http"

	"notify-dispatch/internal/auth"
	"notify-dispatch/internal/httpapi"
	"notify-dispatch/internal/rbac"

	"github.com/gin-gonic/gin"
)

// notifyPrefixes are the mount points of the notify routes. /api/notify is kept
// for callers that reach the service through the /api gateway prefix.
var notifyPrefixes = []string{"/notify", "/api/notify"}

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
// authManager may be nil, in which case the notify routes are public.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, authManager *auth.Manager) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/readyz", h.Ready)

	for _, prefix := range notifyPrefixes {
		notify := r.Group(prefix)
		smsChain := []gin.HandlerFunc{h.SendSMS}
		callChain := []gin.HandlerFunc{h.PlaceCall}

		if authManager != nil {
			notify.Use(auth.RequireAccessToken(authManager))
			smsChain = append([]gin.HandlerFunc{rbac.RequireAnyRole(rbac.RoleNotifier, rbac.RoleSMS)}, smsChain...)
			callChain = append([]gin.HandlerFunc{rbac.RequireAnyRole(rbac.RoleNotifier, rbac.RoleVoice)}, callChain...)
		}

		notify.POST("/sms", smsChain...)
		notify.POST("/call", callChain...)
	}
}
