package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/uptrace/bun"

	"github.com/agricert/farmer-certification/internal/core/domain"
)

// pqUniqueViolation is the Postgres error code for unique constraint violations.
const pqUniqueViolation = "23505"

// UserRepository persists users and farmer profiles in Postgres via bun.
type UserRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           string    `bun:"id,pk"`
	FirstName    string    `bun:"first_name,notnull"`
	LastName     string    `bun:"last_name,notnull"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	PhoneNumber  string    `bun:"phone_number,notnull"`
	Role         string    `bun:"role,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull"`

	Farmer *farmerRow `bun:"rel:has-one,join:id=user_id"`
}

type farmerRow struct {
	bun.BaseModel `bun:"table:farmers,alias:f"`

	UserID              string    `bun:"user_id,pk"`
	FarmSize            float64   `bun:"farm_size,notnull"`
	CropType            string    `bun:"crop_type,notnull"`
	CertificationStatus string    `bun:"certification_status,notnull"`
	AppliedAt           time.Time `bun:"applied_at,notnull"`
}

// CreateFarmer inserts the user and its farmer profile in one transaction so
// the pair is all-or-nothing.
func (r *UserRepository) CreateFarmer(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := toUserRow(user)
	profile := toFarmerRow(user.ID, user.Farmer)

	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(profile).Exec(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := new(userRow)
	err := r.db.NewSelect().
		Model(row).
		Relation("Farmer").
		Where("u.email = ?", email).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return toDomainUser(row), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	row := new(userRow)
	err := r.db.NewSelect().
		Model(row).
		Relation("Farmer").
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return toDomainUser(row), nil
}

func (r *UserRepository) ListFarmers(ctx context.Context) ([]*domain.User, error) {
	var rows []userRow
	err := r.db.NewSelect().
		Model(&rows).
		Relation("Farmer").
		Where("u.role = ?", domain.RoleFarmer).
		Order("u.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list farmers: %w", err)
	}

	users := make([]*domain.User, len(rows))
	for i := range rows {
		users[i] = toDomainUser(&rows[i])
	}
	return users, nil
}

func (r *UserRepository) SetCertificationStatus(ctx context.Context, userID string, status domain.CertificationStatus) (*domain.User, error) {
	res, err := r.db.NewUpdate().
		Model((*farmerRow)(nil)).
		Set("certification_status = ?", string(status)).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update certification status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update certification status: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrFarmerNotFound
	}

	return r.FindByID(ctx, userID)
}

// EnsureAdmin creates the admin account unless an admin already exists.
func (r *UserRepository) EnsureAdmin(ctx context.Context, email, passwordHash string) error {
	count, err := r.db.NewSelect().
		Model((*userRow)(nil)).
		Where("role = ?", domain.RoleAdmin).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	row := &userRow{
		ID:           uuid.NewString(),
		FirstName:    "Demo",
		LastName:     "User",
		Email:        email,
		PasswordHash: passwordHash,
		PhoneNumber:  "",
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}

// --- row ↔ domain mapping ---

func toUserRow(u *domain.User) *userRow {
	return &userRow{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		PhoneNumber:  u.PhoneNumber,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

func toFarmerRow(userID string, p *domain.FarmerProfile) *farmerRow {
	return &farmerRow{
		UserID:              userID,
		FarmSize:            p.FarmSize,
		CropType:            p.CropType,
		CertificationStatus: string(p.CertificationStatus),
		AppliedAt:           p.AppliedAt,
	}
}

func toDomainUser(row *userRow) *domain.User {
	user := &domain.User{
		ID:           row.ID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		PhoneNumber:  row.PhoneNumber,
		Role:         row.Role,
		CreatedAt:    row.CreatedAt,
	}
	if row.Farmer != nil {
		user.Farmer = &domain.FarmerProfile{
			UserID:              row.Farmer.UserID,
			FarmSize:            row.Farmer.FarmSize,
			CropType:            row.Farmer.CropType,
			CertificationStatus: domain.CertificationStatus(row.Farmer.CertificationStatus),
			AppliedAt:           row.Farmer.AppliedAt,
		}
	}
	return user
}
