package testutil

import (
	"time"

	"github.com/courtops/docket/internal/domain"
	"github.com/google/uuid"
)

// ItemOption mutates a test checklist item.
type ItemOption func(*domain.ChecklistItem)

func WithPhase(p domain.Phase) ItemOption {
	return func(it *domain.ChecklistItem) {
		it.Phase = p
	}
}

func WithStatus(s domain.ItemStatus) ItemOption {
	return func(it *domain.ChecklistItem) {
		it.Status = s
	}
}

// WithRequiredLanguages sets the language gate and seeds every required
// language's sub-status to pending.
func WithRequiredLanguages(langs ...domain.Language) ItemOption {
	return func(it *domain.ChecklistItem) {
		it.RequiredLanguages = langs
		it.Languages = make(map[domain.Language]domain.LanguageStatus, len(langs))
		for _, l := range langs {
			it.Languages[l] = domain.LangPending
		}
	}
}

func WithLanguageStatus(lang domain.Language, s domain.LanguageStatus) ItemOption {
	return func(it *domain.ChecklistItem) {
		if it.Languages == nil {
			it.Languages = make(map[domain.Language]domain.LanguageStatus)
		}
		it.Languages[lang] = s
	}
}

func WithActions(actions ...domain.ActionDefinition) ItemOption {
	return func(it *domain.ChecklistItem) {
		it.Actions = actions
	}
}

func WithEvidence(evs ...domain.Evidence) ItemOption {
	return func(it *domain.ChecklistItem) {
		it.Evidence = evs
	}
}

func WithBlocked() ItemOption {
	return func(it *domain.ChecklistItem) {
		it.Blocked = true
	}
}

func WithDueDate(d time.Time) ItemOption {
	return func(it *domain.ChecklistItem) {
		it.DueDate = &d
	}
}

// NewTestItem builds a checklist item in the initiation phase with no
// language gate, no actions and no evidence.
func NewTestItem(id, title string, opts ...ItemOption) *domain.ChecklistItem {
	it := &domain.ChecklistItem{
		ID:     id,
		Phase:  domain.PhaseInitiation,
		Title:  title,
		Status: domain.StatusPending,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// NewTestEvidence builds a document-typed evidence record.
func NewTestEvidence(title string, opts ...EvidenceOption) domain.Evidence {
	ev := domain.Evidence{
		ID:        uuid.New().String(),
		Type:      domain.EvidenceDocument,
		Title:     title,
		Href:      "documents/" + uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&ev)
	}
	return ev
}

// EvidenceOption mutates a test evidence record.
type EvidenceOption func(*domain.Evidence)

func WithEvidenceType(t domain.EvidenceType) EvidenceOption {
	return func(ev *domain.Evidence) {
		ev.Type = t
	}
}

func WithEvidenceLanguage(l domain.Language) EvidenceOption {
	return func(ev *domain.Evidence) {
		ev.Language = l
	}
}

func WithEvidenceMeta(meta string) EvidenceOption {
	return func(ev *domain.Evidence) {
		ev.Meta = meta
	}
}
