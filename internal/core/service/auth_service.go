package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/agricert/farmer-certification/internal/core/domain"
	"github.com/agricert/farmer-certification/internal/core/ports"
)

// AuthService implements farmer registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Register hashes the password and atomically creates the user together with
// its farmer profile (role farmer, status pending).
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if existing, err := s.repo.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrDuplicateEmail
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		PhoneNumber:  input.PhoneNumber,
		Role:         domain.RoleFarmer,
		CreatedAt:    now,
		Farmer: &domain.FarmerProfile{
			FarmSize:            roundFarmSize(input.FarmSize),
			CropType:            input.CropType,
			CertificationStatus: domain.StatusPending,
			AppliedAt:           now,
		},
	}
	user.Farmer.UserID = user.ID

	created, err := s.repo.CreateFarmer(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("farmer registered")
	return created, nil
}

// Login verifies the credentials and issues a bearer token. An unknown email
// and a wrong password produce the same error so the response never reveals
// whether an account exists; the two cases differ only in the logs below.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("email", email).Msg("failed login attempt: user not found")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Warn().Str("email", email).Msg("failed login attempt: incorrect password")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("email", email).Msg("successful login")
	return token, nil
}

// roundFarmSize keeps two decimal places, matching how the upstream clients
// submit farm sizes.
func roundFarmSize(size float64) float64 {
	return math.Round(size*100) / 100
}
