package spacetalk

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/xstats"

	"github.com/spacetalk/lambda-spacetalk/pkg/config"
	"github.com/spacetalk/lambda-spacetalk/pkg/handlerfetcher"
)

const (
	// BuildModeHTTP runs an HTTP server that hosts every function behind
	// the Lambda Invoke API and API Gateway style proxy routes.
	BuildModeHTTP = "http"
	// BuildModeLambda runs the official lambda server using the lambda
	// SDK. Using this mode requires the TargetFunction value to be set.
	BuildModeLambda = "lambda"
)

var (
	// BuildMode determines the behavior of the Start method. The suggested
	// way to set it is through build variables by adding
	// `-ldflags "-X github.com/spacetalk/lambda-spacetalk/pkg.BuildMode=<value>"`
	// to `go build` commands.
	BuildMode = BuildModeHTTP
	// TargetFunction is used when building in lambda mode to select a
	// single function to run. This value can be set in all the same ways
	// as the BuildMode value.
	TargetFunction = ""
	// LambdaStartFn starts the lambda SDK server. It never returns
	// under normal operation.
	LambdaStartFn = lambda.StartHandler
)

// Start runs the functions in the mode selected by BuildMode.
func Start(ctx context.Context, s settings.Source) error {
	return StartMode(ctx, s, BuildMode, TargetFunction)
}

// StartMode works just like Start but allows for explicit passing of the build
// mode and target function.
func StartMode(ctx context.Context, s settings.Source, mode string, target string) error {
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		return StartHTTP(ctx, s)
	case strings.EqualFold(mode, BuildModeLambda):
		return StartLambda(ctx, s, target)
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

// StartHTTP runs the HTTP runtime.
func StartHTTP(ctx context.Context, s settings.Source) error {
	rt, err := NewHTTP(ctx, s)
	if err != nil {
		return err
	}
	return rt.Run()
}

// StartLambda runs a single function with the lambda SDK. Every invocation
// gets a copy of a logger built from the app settings and a no-op stat
// client.
func StartLambda(ctx context.Context, s settings.Source, target string) error {
	env, err := config.Load(ctx, s)
	if err != nil {
		return err
	}
	logger := logevent.New(logevent.Config{Level: env.App.LogLevel, Output: os.Stdout})
	fetcher := &handlerfetcher.Stats{
		Stat: xstats.FromContext(context.Background()),
		Fetcher: &handlerfetcher.Logging{
			Logger:  logger,
			Fetcher: &handlerfetcher.Static{Handlers: Functions(env)},
		},
	}
	fn, err := fetcher.FetchHandler(ctx, target)
	if err != nil {
		return err
	}
	LambdaStartFn(fn)
	return nil
}
