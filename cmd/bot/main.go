package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Could not load application configuration")
	}

	if err := logger.Init(cfg); err != nil {
		logger.Log.WithError(err).Fatal("Could not initialize logger")
	}
	defer logger.Close()
	mainLogger := logger.Component("main")
	mainLogger.WithField("chat_id", cfg.TelegramChatID).Info("Configuration loaded, all required environment variables are present")

	// Initialize Telegram Bot
	bot, err := telegram.NewBot(telegram.BotSettings{
		Token:  cfg.TelegramToken,
		APIURL: cfg.TelegramAPIURL,
	}, logger.Component("telebot"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	telegramClient := telegram.NewTelebotAdapter(bot, cfg.TelegramSendInterval)
	notifier := app.NewTelegramNotifier(telegramClient, cfg.TelegramChatID, logger.Component("notifier"))
	mainLogger.Info("Telegram notifier initialized.")

	practicumClient := practicum.NewClient(
		&http.Client{Timeout: cfg.PracticumTimeout},
		cfg.PracticumEndpoint,
		cfg.PracticumToken,
		logger.Component("practicum"),
	)

	pollScheduler, err := scheduler.NewPollScheduler(cfg.PollSchedule, logger.Component("scheduler"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create poll scheduler")
	}

	poller := app.NewStatusPoller(practicumClient, notifier, pollScheduler, logger.Component("poller"), time.Now())

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mainLogger.Info("Application setup complete. Polling homework statuses...")
	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Poller stopped unexpectedly")
		logger.Close()
		os.Exit(1)
	}
	mainLogger.Info("Application shut down gracefully.")
}
