package http

import (
	"ai-calendar-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every
// chat route requires a signed-in identity; sending is additionally
// rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	messages := rg.Group("/chat/messages")
	{
		messages.POST("", mw.Auth(), mw.ChatRateLimit(), h.Send)
		messages.GET("", mw.Auth(), h.History)
		messages.DELETE("", mw.Auth(), h.Reset)
	}
}
