package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"marketplace/internal/api"

	"github.com/sirupsen/logrus"
)

// @title Specialist Marketplace API
// @version 1.0
// @description Каталог карточек специалистов с комиссией площадки
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logrus.Info("App start")

	if err := run(); err != nil {
		logrus.WithError(err).Error("App failed")
		os.Exit(1)
	}

	logrus.Info("App terminated")
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return api.StartServer(ctx)
}
