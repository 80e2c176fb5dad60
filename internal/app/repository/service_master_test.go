package repository_test

import (
	"context"
	"testing"

	"marketplace/internal/app/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountServiceMasters(t *testing.T) {
	repo := testdb.New(t)
	ctx := context.Background()
	m := createService(t, repo, "Audit")

	count, err := repo.CountServiceMasters(ctx, []uuid.UUID{m.ID, uuid.New()})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = repo.CountServiceMasters(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestServiceMasterInUse_IgnoresDeletedListings(t *testing.T) {
	repo := testdb.New(t)
	ctx := context.Background()
	m := createService(t, repo, "Audit")
	s := createSpecialist(t, repo, "Tax Help", "tax-help", 100)
	require.NoError(t, repo.CreateServiceOfferings(ctx, s.ID, []uuid.UUID{m.ID}))

	inUse, err := repo.ServiceMasterInUse(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, inUse)

	require.NoError(t, repo.DeleteSpecialist(ctx, s.ID))
	inUse, err = repo.ServiceMasterInUse(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, inUse)
}

func TestListServiceMasters_ByTitle(t *testing.T) {
	repo := testdb.New(t)
	createService(t, repo, "Consulting")
	createService(t, repo, "Audit")

	items, total, err := repo.ListServiceMasters(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Audit", items[0].Title)
}
