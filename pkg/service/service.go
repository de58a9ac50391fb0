package service

import (
	"time"

	"github.com/asecurityteam/runhttp"
	"github.com/google/uuid"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
	"github.com/spacetalk/lambda-spacetalk/pkg/store"
)

// Tables holds the physical table names used by the services.
type Tables struct {
	Users    string
	Families string
	Routes   string
}

// NewTables derives every table name from the shared prefix.
func NewTables(prefix string) Tables {
	return Tables{
		Users:    store.TableName(prefix, store.UsersTable),
		Families: store.TableName(prefix, store.FamiliesTable),
		Routes:   store.TableName(prefix, store.RoutesTable),
	}
}

// clock and id generation are shared by every service so tests can pin
// them.
type base struct {
	LogFn domain.LogFn
	IDFn  func() string
	NowFn func() time.Time
}

func (b base) logFn() domain.LogFn {
	if b.LogFn == nil {
		return runhttp.LoggerFromContext
	}
	return b.LogFn
}

func (b base) newID() string {
	if b.IDFn == nil {
		return uuid.NewString()
	}
	return b.IDFn()
}

func (b base) timestamp() string {
	now := time.Now
	if b.NowFn != nil {
		now = b.NowFn
	}
	return now().UTC().Format(time.RFC3339Nano)
}
