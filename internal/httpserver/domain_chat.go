package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "ai-calendar-assistant/internal/chat/delivery/http"
	"ai-calendar-assistant/internal/chat/transcript"
	chatUC "ai-calendar-assistant/internal/chat/usecase"
	"ai-calendar-assistant/internal/event"
	"ai-calendar-assistant/internal/middleware"
)

// setupChatDomain initializes the chat domain and registers its routes.
// It reuses the event use case so assistant-created events go through
// the same validation as the calendar form.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, events event.UseCase) error {
	// 1. Transcript store
	store, err := transcript.NewStore(srv.chatCfg.MaxSessions, srv.chatCfg.HistoryLimit)
	if err != nil {
		return err
	}

	// 2. UseCase
	uc := chatUC.New(events, srv.llm, store, srv.cal, srv.l)

	// 3. HTTP Handler
	h := chatHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/chat/messages
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
