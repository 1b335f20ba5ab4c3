package mail_test

import (
	"context"
	"errors"
	"github.com/ATenderholt/rainbow-mailer/internal/mail"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type FakeSes struct {
	inputs []*sesv2.SendEmailInput
	output *sesv2.SendEmailOutput
	err    error
}

func (f *FakeSes) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	return f.output, f.err
}

func TestDispatch(t *testing.T) {
	expected := &sesv2.SendEmailOutput{MessageId: aws.String("0100018c-abcd")}
	ses := &FakeSes{output: expected}
	mailer := mail.NewMailer(ses)

	output, err := mailer.Dispatch(context.Background(), mail.Message{
		Sender:    "sender@example.com",
		Recipient: "receiver@example.com",
		Subject:   "S3 Event Notification",
		Body:      `{"bucket_name":"my-bucket"}`,
		Charset:   "UTF-8",
	})
	require.NoError(t, err)
	assert.Same(t, expected, output)

	require.Len(t, ses.inputs, 1)
	input := ses.inputs[0]
	assert.Equal(t, "sender@example.com", aws.ToString(input.FromEmailAddress))
	assert.Equal(t, []string{"receiver@example.com"}, input.Destination.ToAddresses)
	assert.Empty(t, input.Destination.CcAddresses)
	assert.Empty(t, input.Destination.BccAddresses)

	simple := input.Content.Simple
	require.NotNil(t, simple)
	assert.Equal(t, "S3 Event Notification", aws.ToString(simple.Subject.Data))
	assert.Equal(t, "UTF-8", aws.ToString(simple.Subject.Charset))
	assert.Equal(t, `{"bucket_name":"my-bucket"}`, aws.ToString(simple.Body.Html.Data))
	assert.Equal(t, "UTF-8", aws.ToString(simple.Body.Html.Charset))
	assert.Nil(t, simple.Body.Text)
}

func TestDispatchDefaultCharset(t *testing.T) {
	ses := &FakeSes{output: &sesv2.SendEmailOutput{}}
	mailer := mail.NewMailer(ses)

	_, err := mailer.Dispatch(context.Background(), mail.Message{
		Sender:    "sender@example.com",
		Recipient: "receiver@example.com",
		Subject:   "subject",
		Body:      "body",
	})
	require.NoError(t, err)

	require.Len(t, ses.inputs, 1)
	assert.Equal(t, mail.DefaultCharset, aws.ToString(ses.inputs[0].Content.Simple.Subject.Charset))
	assert.Equal(t, mail.DefaultCharset, aws.ToString(ses.inputs[0].Content.Simple.Body.Html.Charset))
}

func TestDispatchError(t *testing.T) {
	apiErr := &smithy.GenericAPIError{
		Code:    "MessageRejected",
		Message: "Email address is not verified.",
	}
	ses := &FakeSes{err: apiErr}
	mailer := mail.NewMailer(ses)

	_, err := mailer.Dispatch(context.Background(), mail.Message{
		Sender:    "unverified@example.com",
		Recipient: "receiver@example.com",
	})
	require.Error(t, err)
	assert.Len(t, ses.inputs, 1)

	var deliveryErr *mail.DeliveryError
	assert.True(t, errors.As(err, &deliveryErr))

	var smithyErr smithy.APIError
	require.True(t, errors.As(err, &smithyErr))
	assert.Equal(t, "MessageRejected", smithyErr.ErrorCode())
	assert.Contains(t, err.Error(), "unverified@example.com")
}
