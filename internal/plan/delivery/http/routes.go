package http

import (
	"github.com/gin-gonic/gin"

	"mom-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only plan generation is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.PUT("/:id/input", h.SetInput)
		sessions.POST("/:id/input/pdf", h.UploadPDF)
		sessions.POST("/:id/plan", mw.RateLimit(), h.Generate)
		sessions.DELETE("/:id/plan/generation", h.CancelGeneration)
		sessions.PATCH("/:id/plan/items/:index/due-date", h.UpdateDueDate)
		sessions.PATCH("/:id/plan/items/:index/status", h.UpdateStatus)
		sessions.POST("/:id/plan/items/:index/notify", h.NotifyItem)
		sessions.PUT("/:id/reminders", h.SetReminders)
	}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("/permission", h.GetPermission)
		notifications.POST("/permission", h.RequestPermission)
	}
}
