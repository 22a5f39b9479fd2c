package catalog

import (
	"testing"

	"github.com/courtops/docket/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalCatalog = `
id: test-catalog
name: Test
items:
  - id: first
    phase: initiation
    title: First obligation
    required_languages: [en, fr]
    actions:
      - id: first-letter
        label: Generate letter
        kind: generate_letter
        primary: true
        payload: {language: en, letter_type: transmittal}
    baseline:
      status: partial
      languages: {en: complete}
      evidence:
        - type: document
          title: Original filing
          href: documents/original
          language: en
          date: "2026-01-10"
  - id: second
    phase: written
    title: Second obligation
`

func TestParse_BuildsItems(t *testing.T) {
	c, err := Parse([]byte(minimalCatalog))
	require.NoError(t, err)

	assert.Equal(t, "test-catalog", c.ID)
	assert.Equal(t, 2, c.Len())

	first, ok := c.Item("first")
	require.True(t, ok)
	assert.Equal(t, domain.PhaseInitiation, first.Phase)
	assert.Equal(t, []domain.Language{domain.LanguageEN, domain.LanguageFR}, first.RequiredLanguages)
	assert.Equal(t, domain.StatusPartial, first.Status)
	assert.Equal(t, domain.LangComplete, first.Languages[domain.LanguageEN])
	assert.Equal(t, domain.LangPending, first.Languages[domain.LanguageFR], "ungated languages default to pending")

	require.Len(t, first.Evidence, 1)
	assert.Equal(t, domain.EvidenceDocument, first.Evidence[0].Type)
	assert.Equal(t, domain.LanguageEN, first.Evidence[0].Language)
	assert.Equal(t, 2026, first.Evidence[0].CreatedAt.Year())

	require.Len(t, first.Actions, 1)
	assert.Equal(t, domain.KindGenerateLetter, first.Actions[0].Kind)
	assert.True(t, first.Actions[0].Primary)
}

func TestParse_GroupsByPhase(t *testing.T) {
	c, err := Parse([]byte(minimalCatalog))
	require.NoError(t, err)

	assert.Len(t, c.Phase(domain.PhaseInitiation), 1)
	assert.Len(t, c.Phase(domain.PhaseWritten), 1)
	assert.Empty(t, c.Phase(domain.PhaseOral))
}

func TestParse_RejectsUnknownPhase(t *testing.T) {
	_, err := Parse([]byte(`
id: bad
items:
  - id: x
    phase: appeal
    title: X
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown phase")
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`
id: bad
items:
  - id: x
    phase: oral
    title: X
  - id: x
    phase: oral
    title: X again
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParse_RejectsBadBaseline(t *testing.T) {
	_, err := Parse([]byte(`
id: bad
items:
  - id: x
    phase: oral
    title: X
    baseline:
      status: finished
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseline status")
}

func TestParse_RejectsBaselineLanguageOutsideRequiredSet(t *testing.T) {
	_, err := Parse([]byte(`
id: bad
items:
  - id: x
    phase: oral
    title: X
    required_languages: [en]
    baseline:
      languages: {fr: complete}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required set")
}

func TestParse_RejectsBaselineLanguageWithoutGate(t *testing.T) {
	_, err := Parse([]byte(`
id: bad
items:
  - id: x
    phase: oral
    title: X
    baseline:
      languages: {en: complete}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required set")
}

func TestParse_UnknownActionKindMapsToUnknown(t *testing.T) {
	c, err := Parse([]byte(`
id: ok
items:
  - id: x
    phase: oral
    title: X
    actions:
      - id: a
        label: Do something
        kind: launch_rocket
`))
	require.NoError(t, err)
	it, _ := c.Item("x")
	assert.Equal(t, domain.KindUnknown, it.Actions[0].Kind)
}

func TestDefault_ParsesAndCoversAllPhases(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 10)

	for _, phase := range domain.Phases {
		assert.NotEmpty(t, c.Phase(phase), "default catalog should cover phase %s", phase)
	}
}

func TestDefault_BaselineEvidencePresent(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	it, ok := c.Item("application-file")
	require.True(t, ok)
	assert.Equal(t, domain.StatusComplete, it.Status)
	assert.NotEmpty(t, it.Evidence)
	assert.Equal(t, domain.DerivedCompleted, it.Derived())
}
