package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/alexanderramin/timeplan/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan(name string, at time.Time) *domain.Plan {
	return &domain.Plan{
		ID:        uuid.NewString(),
		Name:      name,
		Document:  []byte(`{"timeline":[]}`),
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestSQLitePlanRepo_SaveAndGet(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	plan := testPlan("thesis", now)
	require.NoError(t, repo.Save(ctx, plan))

	got, err := repo.GetByName(ctx, "thesis")
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)
	assert.Equal(t, plan.Name, got.Name)
	assert.Equal(t, plan.Document, got.Document)
	assert.True(t, got.CreatedAt.Equal(now))
	assert.True(t, got.UpdatedAt.Equal(now))
}

func TestSQLitePlanRepo_GetMissing(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))

	_, err := repo.GetByName(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLitePlanRepo_SaveReplacesByName(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first := testPlan("thesis", created)
	require.NoError(t, repo.Save(ctx, first))

	second := testPlan("thesis", created.Add(time.Hour))
	second.Document = []byte(`{"timeline":[],"recursive_max":50}`)
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.GetByName(ctx, "thesis")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID, "replacing keeps the original row")
	assert.Equal(t, second.Document, got.Document)
	assert.True(t, got.UpdatedAt.Equal(second.UpdatedAt))
}

func TestSQLitePlanRepo_ListOldestFirst(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, testPlan("later", base.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, testPlan("earlier", base)))

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "earlier", plans[0].Name)
	assert.Equal(t, "later", plans[1].Name)
	assert.Empty(t, plans[0].Document, "listing omits document bodies")
}

func TestSQLitePlanRepo_Delete(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := testPlan("thesis", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, plan))
	require.NoError(t, repo.Delete(ctx, "thesis"))

	_, err := repo.GetByName(ctx, "thesis")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLitePlanRepo_DeleteMissing(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))

	err := repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
