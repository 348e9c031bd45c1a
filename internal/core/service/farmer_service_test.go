package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agricert/farmer-certification/internal/core/domain"
)

type stubStatusCache struct {
	entries  map[string]*domain.StatusProjection
	getErr   error
	setCalls int
}

func newStubStatusCache() *stubStatusCache {
	return &stubStatusCache{entries: make(map[string]*domain.StatusProjection)}
}

func (c *stubStatusCache) Get(_ context.Context, userID string) (*domain.StatusProjection, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	p, ok := c.entries[userID]
	return p, ok, nil
}

func (c *stubStatusCache) Set(_ context.Context, projection *domain.StatusProjection) error {
	c.setCalls++
	c.entries[projection.ID] = projection
	return nil
}

func (c *stubStatusCache) Invalidate(_ context.Context, userID string) error {
	delete(c.entries, userID)
	return nil
}

func seedFarmer(t *testing.T, repo *stubUserRepo, id, email string) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	user := &domain.User{
		ID:        id,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Role:      domain.RoleFarmer,
		CreatedAt: now,
		Farmer: &domain.FarmerProfile{
			UserID:              id,
			FarmSize:            2.5,
			CropType:            "Maize",
			CertificationStatus: domain.StatusPending,
			AppliedAt:           now,
		},
	}
	repo.users[id] = user
	return user
}

func TestFarmerService_UpdateStatus_ThenStatusByID(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubStatusCache()
	svc := NewFarmerService(repo, cache, zerolog.Nop())
	seedFarmer(t, repo, "farmer-1", "jane@x.com")

	updated, err := svc.UpdateStatus(context.Background(), "farmer-1", "certified")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Farmer.CertificationStatus != domain.StatusCertified {
		t.Fatalf("expected certified, got %s", updated.Farmer.CertificationStatus)
	}

	projection, err := svc.StatusByID(context.Background(), "farmer-1")
	if err != nil {
		t.Fatalf("StatusByID returned error: %v", err)
	}
	if projection.CertificationStatus != domain.StatusCertified {
		t.Fatalf("expected certified after update, got %s", projection.CertificationStatus)
	}
	if projection.Name != "Jane Doe" {
		t.Fatalf("unexpected name: %s", projection.Name)
	}
}

func TestFarmerService_UpdateStatus_InvalidatesCache(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubStatusCache()
	svc := NewFarmerService(repo, cache, zerolog.Nop())
	seedFarmer(t, repo, "farmer-1", "jane@x.com")

	// Stale cached projection from before the update.
	cache.entries["farmer-1"] = &domain.StatusProjection{ID: "farmer-1", CertificationStatus: domain.StatusPending}

	if _, err := svc.UpdateStatus(context.Background(), "farmer-1", "certified"); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	projection, err := svc.StatusByID(context.Background(), "farmer-1")
	if err != nil {
		t.Fatalf("StatusByID returned error: %v", err)
	}
	if projection.CertificationStatus != domain.StatusCertified {
		t.Fatalf("stale cache served after update: got %s", projection.CertificationStatus)
	}
}

func TestFarmerService_UpdateStatus_InvalidLiteral(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFarmerService(repo, newStubStatusCache(), zerolog.Nop())
	seedFarmer(t, repo, "farmer-1", "jane@x.com")

	if _, err := svc.UpdateStatus(context.Background(), "farmer-1", "approved"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.users["farmer-1"].Farmer.CertificationStatus != domain.StatusPending {
		t.Fatalf("status mutated by invalid update")
	}
}

func TestFarmerService_UpdateStatus_UnknownFarmer(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFarmerService(repo, newStubStatusCache(), zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), "ghost", "certified"); !errors.Is(err, domain.ErrFarmerNotFound) {
		t.Fatalf("expected ErrFarmerNotFound, got %v", err)
	}
}

// There is no terminal state: certified may go back to pending, and a status
// may be re-set to its current value.
func TestFarmerService_UpdateStatus_CertifiedBackToPending(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFarmerService(repo, newStubStatusCache(), zerolog.Nop())
	seedFarmer(t, repo, "farmer-1", "jane@x.com")

	for _, status := range []string{"certified", "certified", "pending", "declined"} {
		updated, err := svc.UpdateStatus(context.Background(), "farmer-1", status)
		if err != nil {
			t.Fatalf("UpdateStatus(%s) returned error: %v", status, err)
		}
		if string(updated.Farmer.CertificationStatus) != status {
			t.Fatalf("expected %s, got %s", status, updated.Farmer.CertificationStatus)
		}
	}
}

func TestFarmerService_StatusByID_CacheHitSkipsStore(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubStatusCache()
	svc := NewFarmerService(repo, cache, zerolog.Nop())

	// Only the cache knows this farmer; a store lookup would fail.
	cache.entries["farmer-1"] = &domain.StatusProjection{
		ID:                  "farmer-1",
		Name:                "Jane Doe",
		CertificationStatus: domain.StatusCertified,
	}

	projection, err := svc.StatusByID(context.Background(), "farmer-1")
	if err != nil {
		t.Fatalf("StatusByID returned error: %v", err)
	}
	if projection.CertificationStatus != domain.StatusCertified {
		t.Fatalf("unexpected projection: %+v", projection)
	}
}

func TestFarmerService_StatusByID_CacheErrorFallsBack(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubStatusCache()
	cache.getErr = errors.New("redis down")
	svc := NewFarmerService(repo, cache, zerolog.Nop())
	seedFarmer(t, repo, "farmer-1", "jane@x.com")

	projection, err := svc.StatusByID(context.Background(), "farmer-1")
	if err != nil {
		t.Fatalf("StatusByID returned error: %v", err)
	}
	if projection.ID != "farmer-1" {
		t.Fatalf("unexpected projection: %+v", projection)
	}
}

func TestFarmerService_StatusByID_PopulatesCache(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubStatusCache()
	svc := NewFarmerService(repo, cache, zerolog.Nop())
	seedFarmer(t, repo, "farmer-1", "jane@x.com")

	if _, err := svc.StatusByID(context.Background(), "farmer-1"); err != nil {
		t.Fatalf("StatusByID returned error: %v", err)
	}
	if cache.setCalls != 1 {
		t.Fatalf("expected projection cached once, got %d", cache.setCalls)
	}
}

func TestFarmerService_StatusByID_AdminHasNoProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFarmerService(repo, newStubStatusCache(), zerolog.Nop())
	if err := repo.EnsureAdmin(context.Background(), "admin@example.com", "hash"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	if _, err := svc.StatusByID(context.Background(), "admin-1"); !errors.Is(err, domain.ErrFarmerNotFound) {
		t.Fatalf("expected ErrFarmerNotFound, got %v", err)
	}
}

func TestFarmerService_StatusByID_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFarmerService(repo, newStubStatusCache(), zerolog.Nop())

	if _, err := svc.StatusByID(context.Background(), "ghost"); !errors.Is(err, domain.ErrFarmerNotFound) {
		t.Fatalf("expected ErrFarmerNotFound, got %v", err)
	}
}

func TestFarmerService_ListFarmers_Empty(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFarmerService(repo, newStubStatusCache(), zerolog.Nop())

	if _, err := svc.ListFarmers(context.Background()); !errors.Is(err, domain.ErrNoFarmers) {
		t.Fatalf("expected ErrNoFarmers, got %v", err)
	}
}

func TestFarmerService_ListFarmers(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFarmerService(repo, newStubStatusCache(), zerolog.Nop())
	seedFarmer(t, repo, "farmer-1", "jane@x.com")
	seedFarmer(t, repo, "farmer-2", "john@x.com")

	farmers, err := svc.ListFarmers(context.Background())
	if err != nil {
		t.Fatalf("ListFarmers returned error: %v", err)
	}
	if len(farmers) != 2 {
		t.Fatalf("expected 2 farmers, got %d", len(farmers))
	}
	for _, f := range farmers {
		if f.Farmer == nil {
			t.Fatalf("farmer %s missing profile", f.ID)
		}
	}
}
