package service

import (
	"context"
	"testing"

	"marketplace/internal/app/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign_UnknownIDAssignsNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedTiers(t)
	audit := env.createService(t, "Audit")
	s := env.createSpecialist(t, specialistPrincipal(), "Tax Help", 100)

	err := env.assignments.Assign(ctx, s.ID, []uuid.UUID{audit.ID, uuid.New()})
	assert.True(t, apperr.Is(err, apperr.KindInvalidReference), "got %v", err)

	count, err := env.repo.CountServiceOfferings(ctx, s.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAssign_DeduplicatesIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedTiers(t)
	audit := env.createService(t, "Audit")
	s := env.createSpecialist(t, specialistPrincipal(), "Tax Help", 100)

	require.NoError(t, env.assignments.Assign(ctx, s.ID, []uuid.UUID{audit.ID, audit.ID}))

	count, err := env.repo.CountServiceOfferings(ctx, s.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestReassign_ReplacesSet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedTiers(t)
	audit := env.createService(t, "Audit")
	payroll := env.createService(t, "Payroll")
	s := env.createSpecialist(t, specialistPrincipal(), "Tax Help", 100, audit.ID)

	err := env.repo.WithinTx(ctx, func(ctx context.Context) error {
		return env.assignments.Reassign(ctx, s.ID, []uuid.UUID{payroll.ID})
	})
	require.NoError(t, err)

	got, err := env.specialists.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, got.ServiceOfferings, 1)
	assert.Equal(t, payroll.ID, got.ServiceOfferings[0].ServiceMasterID)
}

func TestReassign_FailureKeepsOldSetInsideTx(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedTiers(t)
	audit := env.createService(t, "Audit")
	s := env.createSpecialist(t, specialistPrincipal(), "Tax Help", 100, audit.ID)

	err := env.repo.WithinTx(ctx, func(ctx context.Context) error {
		return env.assignments.Reassign(ctx, s.ID, []uuid.UUID{uuid.New()})
	})
	assert.True(t, apperr.Is(err, apperr.KindInvalidReference))

	count, err := env.repo.CountServiceOfferings(ctx, s.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "rolled back delete restores the previous assignment")
}
