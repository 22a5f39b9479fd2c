package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/courtops/docket/internal/domain"
	"github.com/courtops/docket/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvidenceRepo_AppendPreservesOrder(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		ev := testutil.NewTestEvidence(fmt.Sprintf("Exhibit %d", i))
		ids = append(ids, ev.ID)
		require.NoError(t, repo.Append(ctx, "case-1", "item-1", ev))
	}

	byItem, err := repo.ListByCase(ctx, "case-1")
	require.NoError(t, err)
	require.Len(t, byItem["item-1"], 5)
	for i, ev := range byItem["item-1"] {
		assert.Equal(t, ids[i], ev.ID, "evidence order must match append order")
	}
}

func TestEvidenceRepo_GroupsByItem(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "case-1", "item-1", testutil.NewTestEvidence("A")))
	require.NoError(t, repo.Append(ctx, "case-1", "item-2", testutil.NewTestEvidence("B")))
	require.NoError(t, repo.Append(ctx, "case-1", "item-2", testutil.NewTestEvidence("C")))

	byItem, err := repo.ListByCase(ctx, "case-1")
	require.NoError(t, err)
	assert.Len(t, byItem["item-1"], 1)
	assert.Len(t, byItem["item-2"], 2)
}

func TestEvidenceRepo_FieldsSurviveRoundTrip(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	ev := testutil.NewTestEvidence("Distribution note",
		testutil.WithEvidenceType(domain.EvidenceDistribution),
		testutil.WithEvidenceLanguage(domain.LanguageFR),
		testutil.WithEvidenceMeta("193/193 states"),
	)
	require.NoError(t, repo.Append(ctx, "case-1", "item-1", ev))

	byItem, err := repo.ListByCase(ctx, "case-1")
	require.NoError(t, err)
	require.Len(t, byItem["item-1"], 1)
	got := byItem["item-1"][0]

	assert.Equal(t, ev.ID, got.ID)
	assert.Equal(t, domain.EvidenceDistribution, got.Type)
	assert.Equal(t, "Distribution note", got.Title)
	assert.Equal(t, ev.Href, got.Href)
	assert.Equal(t, domain.LanguageFR, got.Language)
	assert.Equal(t, "193/193 states", got.Meta)
	assert.Equal(t, ev.CreatedAt.Truncate(time.Second), got.CreatedAt)
}

func TestEvidenceRepo_UntaggedLanguageComesBackEmpty(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "case-1", "item-1", testutil.NewTestEvidence("Plain")))

	byItem, err := repo.ListByCase(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Language(""), byItem["item-1"][0].Language)
}

func TestEvidenceRepo_CasesAreIsolated(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "case-1", "item-1", testutil.NewTestEvidence("A")))
	require.NoError(t, repo.Append(ctx, "case-2", "item-1", testutil.NewTestEvidence("B")))

	byItem, err := repo.ListByCase(ctx, "case-1")
	require.NoError(t, err)
	require.Len(t, byItem["item-1"], 1)
	assert.Equal(t, "A", byItem["item-1"][0].Title)
}
