package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/asecurityteam/logevent/v2"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
)

var (
	nullLogger = logevent.New(logevent.Config{Output: io.Discard})
	nullLogFn  = func(context.Context) domain.Logger { return nullLogger }
	fixedNow   = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	fixedStamp = "2024-01-02T03:04:05Z"
)

func fixedClock() time.Time { return fixedNow }

// sequence returns an id generator yielding id-1, id-2, and so on.
func sequence() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// load returns a RecordStore.Get implementation that yields record.
func load[T any](record T) func(context.Context, string, domain.Key, interface{}) (bool, error) {
	return func(_ context.Context, _ string, _ domain.Key, out interface{}) (bool, error) {
		*out.(*T) = record
		return true, nil
	}
}

// loadAll returns a RecordStore.Query implementation that yields records.
func loadAll[T any](records ...T) func(context.Context, string, string, domain.Condition, interface{}) error {
	return func(_ context.Context, _ string, _ string, _ domain.Condition, out interface{}) error {
		*out.(*[]T) = records
		return nil
	}
}

func assignment(set []domain.Assignment, field string) (interface{}, bool) {
	for _, a := range set {
		if a.Field == field {
			return a.Value, true
		}
	}
	return nil, false
}
