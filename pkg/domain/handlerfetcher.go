package domain

import (
	"context"
)

// Function names under which the API handlers are registered. These match
// the deployed Lambda function names and the first path segment of every
// route served by the function.
const (
	FunctionAuth   = "auth"
	FunctionFamily = "family"
	FunctionRoute  = "route"
)

// HandlerFetcher is a pluggable component that enables different
// loading strategies functions.
type HandlerFetcher interface {
	// FetchHandler uses some implementation of a loading strategy
	// to fetch the Handler with the given name. If a matching Handler
	// cannot be found then this component must emit a NotFoundError.
	FetchHandler(ctx context.Context, name string) (Handler, error)
}

// URLParamFn extracts a named path parameter, such as the function name of
// an Invoke API call, so handlers stay independent of the mux.
type URLParamFn func(ctx context.Context, name string) string
