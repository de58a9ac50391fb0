package handlerfetcher

import (
	"context"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
)

// Static is an implementation of the HandlerFetcher that maintains a static
// mapping of names to Handler instances. All handlers are built once at start
// up and share the resources of the process. Adding or changing a handler
// requires a new build.
type Static struct {
	// Handlers is the underlying static map of function names to executable
	// functions. The keys of the map will be used as the name of the Handler.
	Handlers map[string]domain.Handler
}

// FetchHandler resolves the name using the internal mapping.
func (f *Static) FetchHandler(ctx context.Context, name string) (domain.Handler, error) {
	h, ok := f.Handlers[name]
	if !ok {
		return nil, domain.NotFoundError{Resource: "function", ID: name}
	}
	return h, nil
}

// Names lists the registered function names.
func (f *Static) Names() []string {
	names := make([]string, 0, len(f.Handlers))
	for name := range f.Handlers {
		names = append(names, name)
	}
	return names
}
