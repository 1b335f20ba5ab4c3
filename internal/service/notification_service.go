package service

import (
	"context"
	"encoding/json"
	"github.com/ATenderholt/rainbow-mailer/internal/domain"
	"github.com/ATenderholt/rainbow-mailer/internal/mail"
	"github.com/ATenderholt/rainbow-mailer/internal/settings"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/google/uuid"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, msg mail.Message) (*sesv2.SendEmailOutput, error)
}

type NotificationService struct {
	cfg        *settings.Config
	dispatcher Dispatcher
}

func NewNotificationService(config *settings.Config, dispatcher Dispatcher) *NotificationService {
	return &NotificationService{
		cfg:        config,
		dispatcher: dispatcher,
	}
}

// Handle turns one S3 event notification into one email. It has the shape
// lambda.Start expects. Errors are returned unchanged so the runtime marks the
// invocation as failed and applies its own retry policy.
func (service NotificationService) Handle(ctx context.Context, payload json.RawMessage) error {
	log := logger.With("invocation", invocationId(ctx))

	event, err := domain.ParseEvent(payload)
	if err != nil {
		log.Error(err)
		return err
	}

	if len(event.Records) > 1 {
		log.Warnf("Notification has %d records, only the first is processed", len(event.Records))
	}

	fields, err := domain.ExtractFields(event)
	if err != nil {
		log.Error(err)
		return err
	}

	log.Infof("Processing %s for s3://%s/%s", fields.EventType, fields.BucketName, fields.ObjectKey)
	if !domain.IsObjectCreated(fields.EventType) {
		log.Debugf("Event %s is not an object-created event", fields.EventType)
	}

	body, err := domain.FormatNotification(fields)
	if err != nil {
		log.Error(err)
		return err
	}

	_, err = service.dispatcher.Dispatch(ctx, service.Message(body))
	if err != nil {
		log.Error(err)
		return err
	}

	return nil
}

func (service NotificationService) Message(body string) mail.Message {
	return mail.Message{
		Sender:    service.cfg.SenderEmail,
		Recipient: service.cfg.ReceiverEmail,
		Subject:   service.cfg.Subject,
		Body:      body,
		Charset:   service.cfg.Charset,
	}
}

func invocationId(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}

	return uuid.NewString()
}
