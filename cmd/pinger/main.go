package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/config"
	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/logging"
	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/notify"
	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/pinger"
	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/probe"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	checker := probe.NewHealthChecker(cfg.PingTimeout)

	var alerts *pinger.AlertTracker
	if slack := notify.NewSlack(cfg.SlackWebhook); slack != nil {
		alerts = pinger.NewAlertTracker(logger, slack, cfg.AlertCooldown, true)
	}

	p := pinger.New(logger, checker, alerts, pinger.Config{
		TargetURL: cfg.BackendURL,
		Path:      cfg.PingPath,
		Interval:  cfg.PingInterval,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("pinger_start",
		zap.String("target", p.URL()),
		zap.Duration("interval", cfg.PingInterval),
		zap.Duration("timeout", cfg.PingTimeout),
	)

	// blocks until a signal cancels ctx; in-flight checks are abandoned
	p.Run(ctx)
}
