package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-assistant/config"
	calendarUC "calendar-assistant/internal/calendar/usecase"
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/internal/nlp"
	nlpUC "calendar-assistant/internal/nlp/usecase"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/openai"
	"calendar-assistant/pkg/parsecache"
)

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

	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Remote parsing model (optional: without a key every parse runs locally)
	var llm openai.IOpenAI
	if cfg.OpenAI.APIKey != "" {
		llm, err = openai.New(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
			return
		}
		logger.Infof(ctx, "✅ Remote parsing enabled (model %s)", llm.Model())
	} else {
		logger.Warn(ctx, "Remote parsing skipped: OPENAI_API_KEY is missing, all parsing runs locally")
	}

	// 4. Parse cache
	cache, err := parsecache.New[nlp.ParsedCommand](parsecache.Config{
		Size:       cfg.NLP.CacheSize,
		DefaultTTL: cfg.NLP.CacheTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize parse cache: ", err)
		return
	}
	defer cache.Close()

	// 5. NLP domain
	parser := nlpUC.New(logger, llm, cache, nlpUC.Config{
		Timezone:      cfg.NLP.Timezone,
		CacheTTL:      cfg.NLP.CacheTTL,
		RetryAttempts: cfg.NLP.RetryAttempts,
		RetryDelay:    cfg.NLP.RetryDelay,
	})

	serverCfg := httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		NLPUseCase:      parser,
	}

	// 6. Calendar domain (optional)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
			serverCfg.CalendarUseCase = calendarUC.New(logger, calendarClient,
				cfg.GoogleCalendar.CalendarID, cfg.NLP.Timezone)
		}
	} else {
		logger.Warn(ctx, "Calendar domain skipped: GOOGLE_CALENDAR_CREDENTIALS is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, serverCfg)
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
