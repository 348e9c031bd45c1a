package ports

import (
	"context"

	"github.com/agricert/farmer-certification/internal/core/domain"
)

// FarmerService defines the certification review use cases.
type FarmerService interface {
	// ListFarmers returns all farmers newest first; domain.ErrNoFarmers
	// when none exist.
	ListFarmers(ctx context.Context) ([]*domain.User, error)
	// UpdateStatus overwrites the certification status of the farmer
	// identified by userID. No transition ordering is enforced.
	UpdateStatus(ctx context.Context, userID, status string) (*domain.User, error)
	// StatusByID resolves the status projection for a farmer user id.
	StatusByID(ctx context.Context, id string) (*domain.StatusProjection, error)
}
