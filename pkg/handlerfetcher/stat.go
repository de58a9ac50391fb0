package handlerfetcher

import (
	"context"

	"github.com/rs/xstats"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
)

type statHandler struct {
	domain.Handler
	Stat domain.Stat
}

func (h *statHandler) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	ctx = xstats.NewContext(ctx, h.Stat)
	return h.Handler.Invoke(ctx, b)
}

// Stats wraps each fetched handler in a decorator that injects the stat
// client into every invocation context.
type Stats struct {
	Stat    domain.Stat
	Fetcher domain.HandlerFetcher
}

// FetchHandler calls the underlying fetcher and adds stat client injection.
func (f *Stats) FetchHandler(ctx context.Context, name string) (domain.Handler, error) {
	h, err := f.Fetcher.FetchHandler(ctx, name)
	if err != nil {
		return nil, err
	}
	return &statHandler{Stat: f.Stat, Handler: h}, nil
}
