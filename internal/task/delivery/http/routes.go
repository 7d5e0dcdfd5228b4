package http

import (
	"github.com/gin-gonic/gin"

	"task-master/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods under rg
// (normally /api/v1). Every group is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.PUT("", h.Reorder)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.Toggle)
		tasks.GET("/:id/share", h.Share)
	}

	agenda := rg.Group("/agenda", mw.RateLimit())
	{
		agenda.GET("/day", h.Day)
		agenda.GET("/progress", h.Progress)
		agenda.GET("/weekly", h.Weekly)
		agenda.GET("/calendar", h.Calendar)
	}

	sessions := rg.Group("/voice/sessions", mw.RateLimit())
	{
		sessions.GET("/:session", h.GetDraft)
		sessions.POST("/:session", h.ApplyTranscript)
		sessions.DELETE("/:session", h.DiscardDraft)
	}
}
