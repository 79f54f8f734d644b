package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"service-desk-bot/config"
	_ "service-desk-bot/docs" // Swagger docs
	"service-desk-bot/internal/httpserver"
	"service-desk-bot/internal/messenger"
	"service-desk-bot/internal/reply"
	"service-desk-bot/internal/router"
	tgDelivery "service-desk-bot/internal/support/delivery/telegram"
	"service-desk-bot/internal/support/usecase"
	"service-desk-bot/internal/webhook"
	"service-desk-bot/pkg/log"
	"service-desk-bot/pkg/telegram"
)

// @title       Service Desk Bot API
// @description Telegram webhook bot for service desk requests.
// @version     1
// @host        localhost:8080
// @schemes     http https
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Service Desk Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Webhook verification: %s (secret configured: %t)", cfg.Webhook.VerifyMode, cfg.Webhook.Secret != "")
	if cfg.Telegram.AdminChatID == 0 {
		logger.Warn(ctx, "TELEGRAM_ADMIN_CHAT_ID is not set, free-text messages will not be forwarded")
	}

	// 3. Support domain
	telegramBot := telegram.NewBot(cfg.Telegram.BotToken, cfg.Telegram.APITimeout)
	msg := messenger.New(logger, telegramBot)

	supportUC := usecase.New(logger, router.New(), reply.New(cfg.Telegram.AdminChatID), msg)

	security := webhook.NewSecurityValidator(webhook.SecurityConfig{
		BotToken: cfg.Telegram.BotToken,
		Secret:   cfg.Webhook.Secret,
		Mode:     cfg.Webhook.VerifyMode,
	})
	telegramHandler := tgDelivery.New(logger, supportUC, security)

	registrar := webhook.NewRegistrar(logger, telegramBot, msg, webhook.RegistrarConfig{
		URL:                cfg.WebhookURL(),
		Secret:             cfg.Webhook.Secret,
		DropPendingUpdates: cfg.Telegram.DropPendingUpdates,
		AdminChatID:        cfg.Telegram.AdminChatID,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
		OnListen:        registrar.Register,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run; the webhook is registered once the port is bound
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	if cfg.Telegram.DeleteWebhookOnShutdown {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telegram.DefaultTimeout)
		registrar.Unregister(shutdownCtx)
		cancel()
	}

	logger.Info(ctx, "Server stopped gracefully")
}
