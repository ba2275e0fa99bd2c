package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"ai-calendar-assistant/internal/event"
	eventHTTP "ai-calendar-assistant/internal/event/delivery/http"
	eventRepo "ai-calendar-assistant/internal/event/repository/postgre"
	eventUC "ai-calendar-assistant/internal/event/usecase"
	"ai-calendar-assistant/internal/middleware"
)

// setupEventDomain initializes the event domain and registers its
// routes. The use case is returned so the chat domain can create
// events through the same path.
func (srv *HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (event.UseCase, error) {
	// 1. Repository
	repo := eventRepo.New(srv.postgresDB.DB, srv.l)

	// 2. UseCase
	uc := eventUC.New(repo, srv.mirror, srv.cal, srv.calendarID, srv.l)

	// 3. HTTP Handler
	h := eventHTTP.New(srv.l, uc, srv.cal)

	// 4. Routes: registers /api/v1/events
	eventHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Event domain registered")
	return uc, nil
}
