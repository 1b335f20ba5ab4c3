package mail

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

const DefaultCharset = "UTF-8"

// SendEmailAPI is the part of *sesv2.Client used here.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type Message struct {
	Sender    string
	Recipient string
	Subject   string
	Body      string // sent as the HTML part
	Charset   string
}

type Mailer struct {
	client SendEmailAPI
}

func NewMailer(client SendEmailAPI) *Mailer {
	return &Mailer{
		client: client,
	}
}

// Dispatch sends msg to its single recipient. The SES response is returned as
// is; failures are wrapped in a DeliveryError and never retried.
func (m *Mailer) Dispatch(ctx context.Context, msg Message) (*sesv2.SendEmailOutput, error) {
	charset := msg.Charset
	if charset == "" {
		charset = DefaultCharset
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.Sender),
		Destination: &types.Destination{
			ToAddresses: []string{msg.Recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Charset: aws.String(charset),
					Data:    aws.String(msg.Subject),
				},
				Body: &types.Body{
					Html: &types.Content{
						Charset: aws.String(charset),
						Data:    aws.String(msg.Body),
					},
				},
			},
		},
	}

	logger.Debugf("Sending email from %s to %s with subject %q", msg.Sender, msg.Recipient, msg.Subject)

	output, err := m.client.SendEmail(ctx, input)
	if err != nil {
		err := &DeliveryError{
			sender:    msg.Sender,
			recipient: msg.Recipient,
			base:      err,
		}
		logger.Error(err)
		return output, err
	}

	var messageId string
	if output != nil {
		messageId = aws.ToString(output.MessageId)
	}

	logger.Infof("Sent email to %s with message id %s", msg.Recipient, messageId)
	return output, nil
}
