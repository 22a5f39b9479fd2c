package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/courtops/docket/internal/domain"
	"github.com/courtops/docket/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivity(title string) domain.ActivityItem {
	return domain.ActivityItem{
		ID:        uuid.New().String(),
		Type:      domain.ActivityEvent,
		Title:     title,
		Timestamp: time.Now().UTC(),
	}
}

func TestActivityRepo_NewestFirst(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Append(ctx, "case-1", newActivity(fmt.Sprintf("entry %d", i))))
	}

	items, err := repo.ListByCase(ctx, "case-1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "entry 2", items[0].Title)
	assert.Equal(t, "entry 1", items[1].Title)
	assert.Equal(t, "entry 0", items[2].Title)
}

func TestActivityRepo_FieldsSurviveRoundTrip(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := domain.ActivityItem{
		ID:        uuid.New().String(),
		Type:      domain.ActivityDistribution,
		Title:     "Distribution created",
		Subtitle:  "All States Parties",
		Icon:      "send",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Append(ctx, "case-1", a))

	items, err := repo.ListByCase(ctx, "case-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, a, items[0])
}

func TestActivityRepo_EmptyCase(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))

	items, err := repo.ListByCase(context.Background(), "case-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestActivityRepo_CasesAreIsolated(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "case-1", newActivity("one")))
	require.NoError(t, repo.Append(ctx, "case-2", newActivity("two")))

	items, err := repo.ListByCase(ctx, "case-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "one", items[0].Title)
}
