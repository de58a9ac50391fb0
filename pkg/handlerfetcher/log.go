package handlerfetcher

import (
	"context"

	"github.com/asecurityteam/logevent/v2"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
)

type loggingHandler struct {
	domain.Handler
	Logger domain.Logger
}

func (h *loggingHandler) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	ctx = logevent.NewContext(ctx, h.Logger.Copy())
	return h.Handler.Invoke(ctx, b)
}

// Logging wraps each fetched handler in a decorator that injects a copy of
// the logger into every invocation context.
type Logging struct {
	Logger  domain.Logger
	Fetcher domain.HandlerFetcher
}

// FetchHandler calls the underlying fetcher and adds log injection.
func (f *Logging) FetchHandler(ctx context.Context, name string) (domain.Handler, error) {
	h, err := f.Fetcher.FetchHandler(ctx, name)
	if err != nil {
		return nil, err
	}
	return &loggingHandler{Logger: f.Logger, Handler: h}, nil
}
