// Package cache holds the response-cache backends and the invalidation
// capability used by the job application write paths.
package cache

import (
	"context"
	"errors"

	"github.com/chenyahui/gin-cache/persist"
)

// Cache key namespaces. The response-cache middleware writes keys under
// these prefixes and the invalidator deletes by them.
const (
	ListKeyPrefix   = "job_application_list:"
	DetailKeyPrefix = "job_application_detail:"
)

// ErrPatternUnsupported is returned by backends that can't delete keys by
// pattern. Callers fall back to clearing the whole cache.
var ErrPatternUnsupported = errors.New("pattern deletion not supported by this cache backend")

// Store is a response-cache backend. It serves the gin-cache middleware
// through persist.CacheStore and the write-path invalidator through the
// two extra methods.
type Store interface {
	persist.CacheStore

	// DeletePattern removes every key matching a glob-style pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Clear drops everything. Larger blast radius than pattern deletion
	// but never leaves stale entries behind.
	Clear(ctx context.Context) error
}
