package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemStatus_CycleHasPeriodThree(t *testing.T) {
	for _, start := range []ItemStatus{StatusPending, StatusPartial, StatusComplete} {
		s := start
		seen := map[ItemStatus]bool{}
		for i := 0; i < 3; i++ {
			seen[s] = true
			s = s.Next()
		}
		assert.Equal(t, start, s, "three cycles should return to %s", start)
		assert.Len(t, seen, 3, "cycle from %s should visit all statuses", start)
	}
}

func TestItemStatus_CycleOrder(t *testing.T) {
	assert.Equal(t, StatusPartial, StatusPending.Next())
	assert.Equal(t, StatusComplete, StatusPartial.Next())
	assert.Equal(t, StatusPending, StatusComplete.Next())
}

func TestLanguageStatus_CycleHasPeriodThree(t *testing.T) {
	for _, start := range []LanguageStatus{LangPending, LangAwaiting, LangComplete} {
		s := start
		for i := 0; i < 3; i++ {
			s = s.Next()
		}
		assert.Equal(t, start, s)
	}
}

func TestLanguageStatus_NotApplicableDoesNotCycle(t *testing.T) {
	assert.Equal(t, LangNotApplicable, LangNotApplicable.Next())
}

func TestParsePhase(t *testing.T) {
	p, err := ParsePhase("written")
	assert.NoError(t, err)
	assert.Equal(t, PhaseWritten, p)

	_, err = ParsePhase("appeal")
	assert.Error(t, err)
}

func TestParseActionKind_UnrecognizedMapsToUnknown(t *testing.T) {
	assert.Equal(t, KindGenerateLetter, ParseActionKind("generate_letter"))
	assert.Equal(t, KindUnknown, ParseActionKind("foo"))
	assert.Equal(t, KindUnknown, ParseActionKind(""))
}
