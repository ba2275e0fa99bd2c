package http

import (
	"ai-calendar-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Listing allows anonymous requests (the signed-out calendar is empty);
// every mutation requires the auth provider's identity.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("", mw.OptionalAuth(), h.List)
		events.POST("", mw.Auth(), h.Create)
		events.GET("/:id", mw.Auth(), h.Detail)
		events.PUT("/:id", mw.Auth(), h.Update)
		events.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
