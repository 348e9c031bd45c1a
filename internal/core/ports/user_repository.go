package ports

import (
	"context"

	"github.com/agricert/farmer-certification/internal/core/domain"
)

// UserRepository defines persistence operations for users and their farmer
// profiles.
type UserRepository interface {
	// CreateFarmer atomically inserts the user and its linked farmer profile
	// in a single transaction. Returns domain.ErrDuplicateEmail when the
	// email is already taken.
	CreateFarmer(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID loads a user with its farmer profile (nil for admins).
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListFarmers returns all farmer users with profiles, newest first.
	ListFarmers(ctx context.Context) ([]*domain.User, error)
	// SetCertificationStatus overwrites the profile status unconditionally
	// and returns the updated user joined with its profile. Returns
	// domain.ErrFarmerNotFound when no profile exists for userID.
	SetCertificationStatus(ctx context.Context, userID string, status domain.CertificationStatus) (*domain.User, error)
	// EnsureAdmin creates the admin account when no admin exists yet.
	// Idempotent; never creates a farmer profile.
	EnsureAdmin(ctx context.Context, email, passwordHash string) error
}
