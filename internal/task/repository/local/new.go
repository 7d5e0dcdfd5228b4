package local

import (
	"fmt"
	"time"

	"task-master/internal/task/repository"
	"task-master/pkg/kvstore"
	pkgLog "task-master/pkg/log"
)

// DefaultKey is the storage entry holding the encoded collection.
const DefaultKey = "tasks"

type implRepository struct {
	store kvstore.Store
	key   string
	l     pkgLog.Logger
	now   func() time.Time
}

// Option configures the Task Store.
type Option func(*implRepository)

// WithClock sets the time given to stored records that lack a due date.
func WithClock(now func() time.Time) Option {
	return func(r *implRepository) { r.now = now }
}

// New creates a Task Store keeping the whole collection under key in store.
func New(store kvstore.Store, key string, l pkgLog.Logger, opts ...Option) repository.Repository {
	if store == nil {
		panic("task/repository/local: store is required")
	}
	if key == "" {
		key = DefaultKey
	}
	r := &implRepository{store: store, key: key, l: l, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/local.%s", method)
}
