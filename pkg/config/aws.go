package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Static credentials accepted by local AWS emulators.
const (
	localAccessKeyID     = "test"
	localSecretAccessKey = "test"
)

// AWSConfig selects the region and, optionally, a local endpoint such as
// LocalStack.
type AWSConfig struct {
	Region        string `description:"AWS region of the DynamoDB tables and the Cognito user pool."`
	LocalEndpoint string `description:"Endpoint of a local AWS emulator. Static test credentials are used when set."`
}

// Name of the configuration root.
func (*AWSConfig) Name() string {
	return "aws"
}

// AWSComponent implements the settings.Component interface for the shared
// AWS client configuration.
type AWSComponent struct{}

// Settings generates a config populated with defaults.
func (*AWSComponent) Settings() *AWSConfig {
	return &AWSConfig{Region: "us-east-1"}
}

// New loads the default credential chain for the configured region.
func (*AWSComponent) New(ctx context.Context, conf *AWSConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(conf.Region),
	}
	if conf.LocalEndpoint != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(localAccessKeyID, localSecretAccessKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}
	if conf.LocalEndpoint != "" {
		cfg.BaseEndpoint = aws.String(conf.LocalEndpoint)
	}
	return cfg, nil
}
