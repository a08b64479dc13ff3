package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/grodno-ai/club-backend/internal/config"
	"github.com/grodno-ai/club-backend/internal/database"
	"github.com/grodno-ai/club-backend/internal/logger"
	"github.com/grodno-ai/club-backend/internal/models"
	"github.com/grodno-ai/club-backend/internal/server"
	"github.com/grodno-ai/club-backend/internal/services"
	"github.com/grodno-ai/club-backend/internal/version"
)

func main() {
	// Setup logging with rotation
	logDir := filepath.Join("data", "logs")
	_ = os.MkdirAll(logDir, 0o755)

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "club.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	mw := io.MultiWriter(os.Stdout, rotator)
	logger.Init(cfg.Environment == "development", mw)
	log.SetOutput(mw)

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	// Handle CLI commands
	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		if len(os.Args) != 4 {
			log.Fatalf("Usage: %s reset-password <email> <new-password>", os.Args[0])
		}
		email := os.Args[2]
		newPassword := os.Args[3]

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			log.Fatalf("user not found: %v", err)
		}
		if err := user.SetPassword(newPassword); err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		if err := db.Save(&user).Error; err != nil {
			log.Fatalf("failed to save user: %v", err)
		}

		log.Printf("Password updated successfully for user %s", email)
		return
	}

	log.Printf("starting %s backend version %s", version.Name, version.Full())

	srv, err := server.New(db, cfg)
	if err != nil {
		log.Fatalf("setup server: %v", err)
	}

	// Nightly activity-log retention pruning
	activityLog := services.NewActivityLogService(db)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		retention := time.Duration(cfg.LogRetentionDays) * 24 * time.Hour
		removed, err := activityLog.PruneOlderThan(retention)
		if err != nil {
			logger.Log().WithError(err).Warn("activity log pruning failed")
			return
		}
		logger.WithFields(map[string]interface{}{"removed": removed}).Info("pruned old activity log entries")
	}); err != nil {
		log.Fatalf("schedule log pruning: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("listening on :%s", cfg.HTTPPort)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
