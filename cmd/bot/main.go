package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		// The logger depends on config, so report with a bare logrus instance.
		logrus.WithError(err).Fatal("Required configuration is missing, bot is not started")
	}

	log := logger.New(cfg)
	mainLogger := log.WithField("component", "main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":    cfg.LogLevel,
		"environment":  cfg.Environment,
		"endpoint":     cfg.Endpoint,
		"retry_period": cfg.RetryPeriod.String(),
	}).Info("Configuration loaded.")

	// Initialize Telegram Bot (send-only)
	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.RequestTimeout)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logrus.NewEntry(log))

	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout)
	statusService := app.NewStatusService(
		apiClient,
		notifier,
		app.NewChangeTracker(),
		homework.CursorAt(time.Now()),
		logrus.NewEntry(log),
	)
	mainLogger.Info("Status service initialized.")

	pollScheduler := scheduler.NewPollScheduler(statusService, cfg.RetryPeriod, logrus.NewEntry(log))
	pollScheduler.Start(context.Background())

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit // Block until a signal is received

	mainLogger.WithField("signal", sig.String()).Info("Shutting down application...")
	pollScheduler.Stop()
	mainLogger.Info("Application shut down gracefully.")
}
