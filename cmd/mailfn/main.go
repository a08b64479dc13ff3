package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/grodno-ai/club-backend/internal/config"
	"github.com/grodno-ai/club-backend/internal/logger"
	"github.com/grodno-ai/club-backend/internal/mailfn"
	"github.com/grodno-ai/club-backend/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(cfg.Environment == "development", os.Stdout)

	gin.SetMode(gin.ReleaseMode)
	if cfg.Environment == "development" {
		gin.SetMode(gin.DebugMode)
	}

	var sender mailfn.Sender
	switch cfg.MailFnMode {
	case "smtp":
		sender = &mailfn.SMTPSender{}
	default:
		sender = &mailfn.SimulatedSender{}
	}

	router := mailfn.Router(sender)

	log.Printf("starting %s delivery function (%s mode) on :%s", version.Name, cfg.MailFnMode, cfg.MailFnPort)
	if err := router.Run(":" + cfg.MailFnPort); err != nil {
		log.Fatalf("delivery function error: %v", err)
	}
}
