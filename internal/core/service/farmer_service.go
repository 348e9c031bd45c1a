package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/agricert/farmer-certification/internal/core/domain"
	"github.com/agricert/farmer-certification/internal/core/ports"
)

// FarmerService implements certification review: listing applicants,
// updating statuses and resolving status projections.
type FarmerService struct {
	repo  ports.UserRepository
	cache ports.StatusCache
	log   zerolog.Logger
}

func NewFarmerService(repo ports.UserRepository, cache ports.StatusCache, log zerolog.Logger) *FarmerService {
	return &FarmerService{repo: repo, cache: cache, log: log}
}

func (s *FarmerService) ListFarmers(ctx context.Context) ([]*domain.User, error) {
	farmers, err := s.repo.ListFarmers(ctx)
	if err != nil {
		return nil, err
	}
	if len(farmers) == 0 {
		return nil, domain.ErrNoFarmers
	}
	return farmers, nil
}

// UpdateStatus overwrites the certification status unconditionally: any of
// the three literals may replace any current value, including itself.
func (s *FarmerService) UpdateStatus(ctx context.Context, userID, status string) (*domain.User, error) {
	newStatus := domain.CertificationStatus(status)
	if !newStatus.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	user, err := s.repo.SetCertificationStatus(ctx, userID, newStatus)
	if err != nil {
		return nil, err
	}

	// Drop the cached projection so the next status read sees the new value.
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate status cache")
	}

	s.log.Info().
		Str("email", user.Email).
		Str("status", string(newStatus)).
		Msg("certification status updated")

	return user, nil
}

// StatusByID resolves the status projection for a farmer, reading through
// the cache. Cache failures degrade to a store read.
func (s *FarmerService) StatusByID(ctx context.Context, id string) (*domain.StatusProjection, error) {
	projection, hit, err := s.cache.Get(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("status cache read failed, falling back to store")
	} else if hit {
		return projection, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrFarmerNotFound
		}
		return nil, err
	}
	if user.Farmer == nil {
		return nil, domain.ErrFarmerNotFound
	}

	projection = &domain.StatusProjection{
		ID:                  user.ID,
		Name:                user.FullName(),
		Email:               user.Email,
		FarmSize:            user.Farmer.FarmSize,
		CropType:            user.Farmer.CropType,
		CertificationStatus: user.Farmer.CertificationStatus,
		AppliedAt:           user.Farmer.AppliedAt,
	}

	if err := s.cache.Set(ctx, projection); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("failed to cache status projection")
	}

	return projection, nil
}
