package ports

import (
	"context"

	"github.com/agricert/farmer-certification/internal/core/domain"
)

// RegisterInput carries all data needed to register a farmer. Field-level
// validation happens at the transport boundary before this is built.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	FarmSize    float64
	CropType    string
}

// AuthService defines the registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
