package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-calendar-assistant/config"
	_ "ai-calendar-assistant/docs" // Swagger docs
	"ai-calendar-assistant/internal/database"
	"ai-calendar-assistant/internal/httpserver"
	"ai-calendar-assistant/pkg/dateutil"
	"ai-calendar-assistant/pkg/gcalendar"
	"ai-calendar-assistant/pkg/gemini"
	"ai-calendar-assistant/pkg/log"
)

// @title       AI Calendar Assistant API
// @description Calendar CRUD backed by Postgres with a Gemini-powered chat assistant and optional Google Calendar mirroring.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Event store
	db, err := database.Connect(ctx, cfg.Postgres.URI)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to event store: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to run migrations: %v", err)
	}

	// 4. Service timezone
	cal, err := dateutil.NewCalendar(cfg.Gemini.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Gemini.Timezone, err)
		cal, _ = dateutil.NewCalendar("UTC")
	}

	// 5. Google Calendar mirror (optional)
	var mirror gcalendar.Mirror = gcalendar.Noop{}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			logger.Info(ctx, "Google Calendar mirror initialized")
			mirror = client
		}
	}

	// 6. Gemini LLM client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Mirror:      mirror,
		LLM:         geminiClient,
		Calendar:    cal,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
		Auth:        cfg.Auth,
		Chat:        cfg.Chat,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
