package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/auth"
	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/config"
	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/httpapi"
	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	issuer := auth.NewJWTIssuer(cfg.JWTSecret, 0)
	svc := auth.NewService(logger, issuer)
	api := httpapi.NewServer(logger, svc)

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: api.Router(httpapi.RouterOptions{
			FrontendURL: cfg.FrontendURL,
			AuthRPM:     cfg.AuthRPM,
			AuthBurst:   cfg.AuthBurst,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("api_listen", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("api_serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	logger.Info("api_stopped")
}
