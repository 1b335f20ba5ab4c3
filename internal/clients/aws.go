package clients

import (
	"context"
	"github.com/ATenderholt/rainbow-mailer/internal/settings"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

// Local emulators accept any credentials.
var localCredentials aws.CredentialsProviderFunc = func(ctx context.Context) (aws.Credentials, error) {
	return aws.Credentials{AccessKeyID: "ABC", SecretAccessKey: "EFG", CanExpire: false}, nil
}

func LoadAwsConfig(ctx context.Context, region string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return aws.Config{}, AwsConfigError{region: region, base: err}
	}

	return cfg, nil
}

func NewAwsConfig(ctx context.Context, cfg *settings.Config) (aws.Config, error) {
	return LoadAwsConfig(ctx, cfg.Region)
}

func NewSesClient(awsCfg aws.Config, cfg *settings.Config) *sesv2.Client {
	return sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if cfg.SesEndpoint != "" {
			logger.Infof("Using SES endpoint %s", cfg.SesEndpoint)
			o.BaseEndpoint = aws.String(cfg.SesEndpoint)
		}
	})
}

// NewLambdaClient targets the Lambda service, or a local emulator when
// endpoint is set.
func NewLambdaClient(awsCfg aws.Config, endpoint string) *lambda.Client {
	return lambda.NewFromConfig(awsCfg, func(o *lambda.Options) {
		if endpoint != "" {
			logger.Infof("Using local Lambda endpoint %s", endpoint)
			o.BaseEndpoint = aws.String(endpoint)
			o.Credentials = localCredentials
		}
	})
}
