package gormstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
)

// OpenInMemory returns a migrated store backed by a private in-memory SQLite
// database. The pool is pinned to one connection so concurrent callers share
// the same database without table locks.
func OpenInMemory(ctx context.Context) (*Store, error) {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	s, err := Open(sqlite.Open(dsn), Options{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		return nil, errors.Wrap(err, "migrate in-memory store")
	}
	return s, nil
}
