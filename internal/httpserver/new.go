package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-calendar-assistant/config"
	"ai-calendar-assistant/internal/database"
	"ai-calendar-assistant/pkg/dateutil"
	"ai-calendar-assistant/pkg/gcalendar"
	"ai-calendar-assistant/pkg/gemini"
	"ai-calendar-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *database.DB
	mirror     gcalendar.Mirror
	llm        *gemini.Client
	cal        *dateutil.Calendar
	calendarID string

	authCfg config.AuthConfig
	chatCfg config.ChatConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *database.DB
	Mirror     gcalendar.Mirror
	LLM        *gemini.Client
	Calendar   *dateutil.Calendar
	CalendarID string

	Auth config.AuthConfig
	Chat config.ChatConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		mirror:      cfg.Mirror,
		llm:         cfg.LLM,
		cal:         cfg.Calendar,
		calendarID:  cfg.CalendarID,
		authCfg:     cfg.Auth,
		chatCfg:     cfg.Chat,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.mirror == nil {
		return errors.New("calendar mirror is required")
	}
	if srv.llm == nil {
		return errors.New("generative client is required")
	}
	if srv.cal == nil {
		return errors.New("calendar timezone helper is required")
	}
	return nil
}
