package service

import (
	"context"
	"testing"

	"marketplace/internal/app/ds"
	"marketplace/internal/app/repository"
	"marketplace/internal/app/role"
	"marketplace/internal/app/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	repo        *repository.Repository
	tiers       *FeeTierService
	fees        *FeeCalculator
	slugs       *SlugAllocator
	assignments *AssignmentCoordinator
	specialists *SpecialistService
	catalog     *CatalogService
	users       *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := testdb.New(t)

	fees := NewFeeCalculator(repo)
	slugs := NewSlugAllocator(repo)
	assignments := NewAssignmentCoordinator(repo)

	return &testEnv{
		repo:        repo,
		tiers:       NewFeeTierService(repo, repo),
		fees:        fees,
		slugs:       slugs,
		assignments: assignments,
		specialists: NewSpecialistService(repo, repo, slugs, fees, assignments),
		catalog:     NewCatalogService(repo, repo, nil),
		users:       NewUserService(repo, repo, bcrypt.MinCost),
	}
}

// seedTiers: [0,1000]@5% и [1001,5000]@3%
func (e *testEnv) seedTiers(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := e.tiers.CreateTier(ctx, CreateTierInput{Name: ds.TierBasic, MinValue: 0, MaxValue: 1000, FeePercentage: 5})
	require.NoError(t, err)
	_, err = e.tiers.CreateTier(ctx, CreateTierInput{Name: ds.TierStandard, MinValue: 1001, MaxValue: 5000, FeePercentage: 3})
	require.NoError(t, err)
}

func (e *testEnv) createService(t *testing.T, title string) *ds.ServiceMaster {
	t.Helper()
	m, err := e.catalog.Create(context.Background(), ServiceMasterInput{Title: title, Description: "Description of " + title})
	require.NoError(t, err)
	return m
}

func (e *testEnv) createSpecialist(t *testing.T, owner *Principal, title string, price float64, serviceIDs ...uuid.UUID) *ds.Specialist {
	t.Helper()
	s, err := e.specialists.Create(context.Background(), CreateSpecialistInput{
		Title:        title,
		Description:  "Experienced specialist offering " + title,
		BasePrice:    price,
		DurationDays: 3,
		ServiceIDs:   serviceIDs,
	}, owner)
	require.NoError(t, err)
	return s
}

func specialistPrincipal() *Principal {
	return &Principal{ID: uuid.New(), Role: role.Specialist}
}

func adminPrincipal() *Principal {
	return &Principal{ID: uuid.New(), Role: role.Admin}
}

func ptr[T any](v T) *T { return &v }
