package domain

import (
	"github.com/asecurityteam/runhttp"
	"github.com/aws/aws-lambda-go/lambda"
)

// Logger is the structured event logger placed in every request and
// invocation context. Code outside of the wiring layer refers to this name
// rather than the logging library.
type Logger = runhttp.Logger

// LogFn resolves the Logger of a context.
type LogFn = runhttp.LogFn

// Stat is the metrics client placed next to the Logger.
type Stat = runhttp.Stat

// StatFn resolves the Stat client of a context.
type StatFn = runhttp.StatFn

// Handler is a function as the lambda SDK runs it. The auth, family and
// route handlers take an API Gateway proxy event and become a Handler
// through lambda.NewHandler.
type Handler = lambda.Handler
