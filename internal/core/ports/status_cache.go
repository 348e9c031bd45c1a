package ports

import (
	"context"

	"github.com/agricert/farmer-certification/internal/core/domain"
)

// StatusCache is a short-lived read cache for status projections. Callers
// treat every error as a miss; the store remains the source of truth.
type StatusCache interface {
	Get(ctx context.Context, userID string) (*domain.StatusProjection, bool, error)
	Set(ctx context.Context, projection *domain.StatusProjection) error
	// Invalidate drops the cached projection so the next read observes a
	// freshly persisted status.
	Invalidate(ctx context.Context, userID string) error
}
