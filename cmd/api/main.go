package main

import (
	"context"
	"path/filepath"
	"time"

	"obsidianlist/config"
	"obsidianlist/internal/agent"
	"obsidianlist/internal/agent/orchestrator"
	"obsidianlist/internal/agent/tools"
	chatGormDB "obsidianlist/internal/chat/repository/gormdb"
	chatUC "obsidianlist/internal/chat/usecase"
	"obsidianlist/internal/httpserver"
	"obsidianlist/internal/metrics"
	"obsidianlist/internal/middleware"
	"obsidianlist/internal/notify"
	"obsidianlist/internal/reminder"
	"obsidianlist/internal/storage"
	taskGormDB "obsidianlist/internal/task/repository/gormdb"
	taskUC "obsidianlist/internal/task/usecase"
	userGormDB "obsidianlist/internal/user/repository/gormdb"
	userUC "obsidianlist/internal/user/usecase"
	"obsidianlist/pkg/llmprovider"
	"obsidianlist/pkg/log"
	"obsidianlist/pkg/resend"
	"obsidianlist/pkg/scope"
)

func main() {
	ctx := context.Background()

	// 1. Config and logger
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 2. Storage
	db, err := storage.NewDB(cfg.Database.DSN)
	if err != nil {
		logger.Fatalf(ctx, "failed to open database: %v", err)
	}

	reg := metrics.New()

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "failed to initialize LLM providers: %v", err)
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger)

	// 4. Repositories and use cases
	taskRepo := taskGormDB.New(db, logger)
	chatRepo := chatGormDB.New(db, logger)
	userRepo := userGormDB.New(db, logger)

	// Reminder date-times are interpreted in the same fixed offset the
	// scheduler scans with.
	userZone := time.FixedZone("user", cfg.Scheduler.UTCOffsetHours*3600)
	taskUseCase := taskUC.New(taskRepo, logger, userZone)

	tokens := scope.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	userUseCase := userUC.New(userRepo, tokens, logger)

	// 5. Agent: tools, executor, orchestrator
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewAddTaskTool(taskUseCase))
	registry.Register(tools.NewViewTaskTool(taskUseCase))
	registry.Register(tools.NewUpdateTaskTool(taskUseCase))
	registry.Register(tools.NewMarkAsCompletedTaskTool(taskUseCase))
	registry.Register(tools.NewDeleteTaskTool(taskUseCase))

	executor := agent.NewExecutor(registry, logger, reg)
	agentCore := orchestrator.New(llm, registry, executor, logger, orchestrator.Config{
		HistoryWindow: cfg.Chat.HistoryWindow,
		Temperature:   cfg.Chat.Temperature,
		MaxTokens:     cfg.Chat.MaxTokens,
	})

	chatUseCase := chatUC.New(chatRepo, agentCore, logger, reg, cfg.Chat.HistoryWindow)

	// 6. Reminder checker, only when email delivery is configured
	var checker *reminder.Checker
	if cfg.Email.APIKey != "" {
		mailClient, err := resend.New(resend.Config{APIKey: cfg.Email.APIKey})
		if err != nil {
			logger.Fatalf(ctx, "failed to initialize email client: %v", err)
		}

		templatePath := ""
		if cfg.Email.TemplateDir != "" {
			templatePath = filepath.Join(cfg.Email.TemplateDir, "reminder_email.html")
		}
		mailer := notify.NewMailer(mailClient, logger, notify.Config{
			FromAddress:  cfg.Email.FromAddress,
			AppURL:       cfg.Email.AppURL,
			TemplatePath: templatePath,
		})

		checker = reminder.NewChecker(taskRepo, userRepo, mailer, logger, reg, reminder.Config{
			Interval:            cfg.Scheduler.Interval,
			Lookahead:           cfg.Scheduler.Lookahead,
			UTCOffsetHours:      cfg.Scheduler.UTCOffsetHours,
			MaxDeliveryAttempts: cfg.Scheduler.MaxDeliveryAttempts,
		})
		if err := checker.Start(); err != nil {
			logger.Fatalf(ctx, "failed to start reminder checker: %v", err)
		}
	} else {
		logger.Warn(ctx, "email API key not configured, reminder checker disabled")
	}

	// 7. HTTP server
	mw := middleware.New(logger, tokens)
	srv, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Mw:          mw,
		Metrics:     reg,
		TaskUseCase: taskUseCase,
		ChatUseCase: chatUseCase,
		UserUseCase: userUseCase,
		Checker:     checker,
	})
	if err != nil {
		logger.Fatalf(ctx, "failed to initialize HTTP server: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "server stopped with error: %v", err)
	}
	logger.Info(ctx, "server stopped gracefully")
}
