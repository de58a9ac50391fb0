package config

import (
	"context"
	"strings"

	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// StageLocal is the stage name that implies local execution.
const StageLocal = "local"

// AppConfig contains the settings shared by every function.
type AppConfig struct {
	Stage    string `description:"Deployment stage. The stage local enables the local identity fallback."`
	LogLevel string `description:"Minimum level of log events in lambda mode. The HTTP runtime uses its own logger level setting."`
	Local    bool   `description:"Resolve caller identity from bearer tokens or a fixed test user when the authorizer supplies none."`
}

// Name of the configuration root.
func (*AppConfig) Name() string {
	return "app"
}

// IsLocal reports whether the functions run outside of API Gateway.
func (c *AppConfig) IsLocal() bool {
	return c.Local || strings.EqualFold(c.Stage, StageLocal)
}

// DynamoDBConfig locates the record tables.
type DynamoDBConfig struct {
	TablePrefix string `description:"Prefix prepended to the users, families and routes table names."`
}

// Name of the configuration root.
func (*DynamoDBConfig) Name() string {
	return "dynamodb"
}

// CognitoConfig identifies the user pool used for authentication.
type CognitoConfig struct {
	UserPoolID string `description:"Cognito user pool ID."`
	ClientID   string `description:"Cognito app client ID allowed to use the admin auth flow."`
}

// Name of the configuration root.
func (*CognitoConfig) Name() string {
	return "cognito"
}

// Config is the complete set of function settings.
type Config struct {
	App      *AppConfig
	AWS      *AWSConfig
	DynamoDB *DynamoDBConfig
	Cognito  *CognitoConfig
}

// Name of the configuration root.
func (*Config) Name() string {
	return "spacetalk"
}

// Environment is the loaded configuration along with the AWS client
// configuration derived from it.
type Environment struct {
	App      *AppConfig
	DynamoDB *DynamoDBConfig
	Cognito  *CognitoConfig
	AWS      aws.Config
}

// Component loads an Environment.
type Component struct {
	AWS *AWSComponent
}

// NewComponent populates the default values.
func NewComponent() *Component {
	return &Component{AWS: &AWSComponent{}}
}

// Settings generates a config populated with defaults.
func (c *Component) Settings() *Config {
	return &Config{
		App: &AppConfig{
			Stage:    "dev",
			LogLevel: "INFO",
		},
		AWS: c.AWS.Settings(),
		DynamoDB: &DynamoDBConfig{
			TablePrefix: "lambda-spacetalk-dev",
		},
		Cognito: &CognitoConfig{},
	}
}

// New resolves the AWS configuration and returns the Environment.
func (c *Component) New(ctx context.Context, conf *Config) (*Environment, error) {
	awsConf, err := c.AWS.New(ctx, conf.AWS)
	if err != nil {
		return nil, err
	}
	return &Environment{
		App:      conf.App,
		DynamoDB: conf.DynamoDB,
		Cognito:  conf.Cognito,
		AWS:      awsConf,
	}, nil
}

// Load reads an Environment from the source.
func Load(ctx context.Context, s settings.Source) (*Environment, error) {
	env := new(Environment)
	err := settings.NewComponent(ctx, s, NewComponent(), env)
	return env, err
}
