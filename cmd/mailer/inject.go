//go:build wireinject
// +build wireinject

package main

import (
	"context"
	"github.com/ATenderholt/rainbow-mailer/internal/clients"
	"github.com/ATenderholt/rainbow-mailer/internal/mail"
	"github.com/ATenderholt/rainbow-mailer/internal/service"
	"github.com/ATenderholt/rainbow-mailer/internal/settings"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/google/wire"
)

var delivery = wire.NewSet(
	clients.NewAwsConfig,
	clients.NewSesClient,
	wire.Bind(new(mail.SendEmailAPI), new(*sesv2.Client)),
	mail.NewMailer,
	wire.Bind(new(service.Dispatcher), new(*mail.Mailer)),
)

func InjectNotificationService(ctx context.Context, cfg *settings.Config) (*service.NotificationService, error) {
	wire.Build(
		service.NewNotificationService,
		delivery,
	)
	return nil, nil
}
