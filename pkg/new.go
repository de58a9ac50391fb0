package spacetalk

import (
	"context"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"

	"github.com/spacetalk/lambda-spacetalk/pkg/config"
	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
	"github.com/spacetalk/lambda-spacetalk/pkg/handlerfetcher"
)

const settingsPrefix = "SPACETALK"

// NewRuntime generates an HTTP runtime that serves the functions of the
// fetcher.
func NewRuntime(ctx context.Context, s settings.Source, conf *RouterConfig) (*runhttp.Runtime, error) {
	router := NewRouter(conf)
	rtC := runhttp.NewComponent().WithHandler(router)
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}},
		rtC,
		rt,
	)
	return rt, err
}

// NewStatic generates an HTTP runtime bound to the given handler mapping.
func NewStatic(ctx context.Context, s settings.Source, stage string, handlers map[string]domain.Handler) (*runhttp.Runtime, error) {
	fetcher := &handlerfetcher.Static{
		Handlers: handlers,
	}
	return NewRuntime(ctx, s, &RouterConfig{
		HandlerFetcher: fetcher,
		Functions:      fetcher.Names(),
		Stage:          stage,
	})
}

// NewHTTP loads the environment from the source and generates an HTTP
// runtime hosting every API function.
func NewHTTP(ctx context.Context, s settings.Source) (*runhttp.Runtime, error) {
	env, err := config.Load(ctx, s)
	if err != nil {
		return nil, err
	}
	return NewStatic(ctx, s, env.App.Stage, Functions(env))
}
