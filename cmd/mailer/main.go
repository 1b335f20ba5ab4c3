package main

import (
	"context"
	"github.com/ATenderholt/rainbow-mailer/internal/logging"
	"github.com/ATenderholt/rainbow-mailer/internal/settings"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
	"os"
)

var logger *zap.SugaredLogger

func init() {
	logger = logging.NewLogger().Named("main")
}

func main() {
	cfg, err := settings.FromEnv(os.Getenv)
	if err != nil {
		logger.Fatalf("Unable to load settings: %v", err)
	}

	logging.SetDebug(cfg.IsDebug)

	svc, err := InjectNotificationService(context.Background(), cfg)
	if err != nil {
		logger.Fatalf("Unable to initialize handler: %v", err)
	}

	logger.Infof("Starting handler, notifications go to %s", cfg.ReceiverEmail)
	lambda.Start(svc.Handle)
}
