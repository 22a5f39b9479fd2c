package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogItem() *ChecklistItem {
	return &ChecklistItem{
		ID:                "app-transmit",
		Phase:             PhaseInitiation,
		Title:             "Transmit application to respondent",
		RequiredLanguages: []Language{LanguageEN, LanguageFR},
		Languages:         map[Language]LanguageStatus{LanguageEN: LangPending, LanguageFR: LangPending},
		Actions: []ActionDefinition{
			{ID: "a1", Label: "Generate letter", Kind: KindGenerateLetter, Primary: true},
		},
		Evidence: []Evidence{{ID: "base-1", Type: EvidenceDocument, Title: "Application"}},
		Status:   StatusPending,
	}
}

func TestApplyOverrides_MergesStatusAndLanguages(t *testing.T) {
	items := []*ChecklistItem{catalogItem()}
	snap := Snapshot{
		"app-transmit": {
			Status:    StatusPartial,
			Languages: map[Language]LanguageStatus{LanguageFR: LangAwaiting},
		},
	}

	merged := ApplyOverrides(items, snap)
	require.Len(t, merged, 1)
	got := merged[0]

	assert.Equal(t, StatusPartial, got.Status)
	assert.Equal(t, LangAwaiting, got.Languages[LanguageFR])
	assert.Equal(t, LangPending, got.Languages[LanguageEN], "untouched language keeps baseline")
}

func TestApplyOverrides_NeverTouchesCatalogFields(t *testing.T) {
	items := []*ChecklistItem{catalogItem()}
	snap := Snapshot{"app-transmit": {Status: StatusComplete}}

	merged := ApplyOverrides(items, snap)
	got := merged[0]

	assert.Equal(t, "Transmit application to respondent", got.Title)
	assert.Len(t, got.Actions, 1)
	assert.Equal(t, []Language{LanguageEN, LanguageFR}, got.RequiredLanguages)
	assert.Len(t, got.Evidence, 1, "evidence baseline survives the merge")
}

func TestApplyOverrides_DropsLanguagesOutsideRequiredSet(t *testing.T) {
	items := []*ChecklistItem{catalogItem()}
	snap := Snapshot{
		"app-transmit": {Languages: map[Language]LanguageStatus{"es": LangComplete}},
	}

	merged := ApplyOverrides(items, snap)
	_, ok := merged[0].Languages["es"]
	assert.False(t, ok, "language keys must stay a subset of required languages")
}

func TestApplyOverrides_MissingEntryKeepsBaseline(t *testing.T) {
	items := []*ChecklistItem{catalogItem()}
	merged := ApplyOverrides(items, Snapshot{})
	assert.Equal(t, StatusPending, merged[0].Status)
}

func TestApplyOverrides_DoesNotMutateInput(t *testing.T) {
	orig := catalogItem()
	items := []*ChecklistItem{orig}
	snap := Snapshot{"app-transmit": {Status: StatusComplete}}

	_ = ApplyOverrides(items, snap)
	assert.Equal(t, StatusPending, orig.Status, "merge must be pure")
}

func TestOverride_RoundTrip(t *testing.T) {
	it := catalogItem()
	it.Status = StatusPartial
	it.Languages[LanguageEN] = LangComplete
	it.Blocked = true

	ov := it.Override()
	assert.Equal(t, StatusPartial, ov.Status)
	assert.Equal(t, LangComplete, ov.Languages[LanguageEN])
	assert.True(t, ov.Blocked)
}

func TestAwaitingTranslation(t *testing.T) {
	it := catalogItem()
	assert.False(t, it.AwaitingTranslation())

	it.Languages[LanguageFR] = LangAwaiting
	assert.True(t, it.AwaitingTranslation())

	// Awaiting on a non-required language does not count.
	plain := &ChecklistItem{Languages: map[Language]LanguageStatus{LanguageEN: LangAwaiting}}
	assert.False(t, plain.AwaitingTranslation())
}

func TestClone_IsDeep(t *testing.T) {
	it := catalogItem()
	cp := it.Clone()

	cp.Languages[LanguageEN] = LangComplete
	cp.Evidence = append(cp.Evidence, Evidence{ID: "new"})
	cp.RequiredLanguages[0] = "de"

	assert.Equal(t, LangPending, it.Languages[LanguageEN])
	assert.Len(t, it.Evidence, 1)
	assert.Equal(t, LanguageEN, it.RequiredLanguages[0])
}

func TestPrimaryAction(t *testing.T) {
	actions := []ActionDefinition{
		{ID: "a1", Label: "Secondary"},
		{ID: "a2", Label: "Primary", Primary: true},
	}
	a, ok := PrimaryAction(actions)
	require.True(t, ok)
	assert.Equal(t, "a2", a.ID)

	a, ok = PrimaryAction(actions[:1])
	require.True(t, ok)
	assert.Equal(t, "a1", a.ID, "falls back to first action")

	_, ok = PrimaryAction(nil)
	assert.False(t, ok)
}
