package cache

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Invalidator evicts cached job application reads after a write. It is an
// injected capability rather than a hidden global so that write paths can
// be tested without a real cache backend.
type Invalidator struct {
	store Store
}

func NewInvalidator(s Store) *Invalidator {
	return &Invalidator{store: s}
}

// InvalidateApplications drops both the list and detail namespaces.
// Best effort: failures are logged and swallowed because staleness is an
// acceptable degraded mode but a failed user-facing write is not.
func (i *Invalidator) InvalidateApplications(ctx context.Context) {
	if i == nil || i.store == nil {
		return
	}

	for _, prefix := range []string{ListKeyPrefix, DetailKeyPrefix} {
		err := i.store.DeletePattern(ctx, prefix+"*")
		if err == nil {
			continue
		}

		if errors.Is(err, ErrPatternUnsupported) {
			if err := i.store.Clear(ctx); err != nil {
				zap.L().Warn("Failed to clear cache", zap.Error(err))
			}
			return
		}

		zap.L().Warn("Failed to invalidate cache namespace",
			zap.String("prefix", prefix), zap.Error(err))

		// Pattern deletion failed mid-way. Stale entries are worse than
		// a cold cache, so try the bigger hammer once
		if err := i.store.Clear(ctx); err != nil {
			zap.L().Warn("Failed to clear cache", zap.Error(err))
		}
		return
	}
}
