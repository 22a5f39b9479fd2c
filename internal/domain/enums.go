package domain

import "fmt"

// Phase is a stage of a case's procedural lifecycle.
type Phase string

const (
	PhaseInitiation Phase = "initiation"
	PhaseProcedural Phase = "procedural"
	PhaseWritten    Phase = "written"
	PhaseOral       Phase = "oral"
	PhaseJudgment   Phase = "judgment"
	PhaseClosure    Phase = "closure"
)

// Phases lists all phases in procedural order.
var Phases = []Phase{
	PhaseInitiation,
	PhaseProcedural,
	PhaseWritten,
	PhaseOral,
	PhaseJudgment,
	PhaseClosure,
}

// ValidPhases is the canonical set of accepted phase strings.
var ValidPhases = map[Phase]bool{
	PhaseInitiation: true, PhaseProcedural: true, PhaseWritten: true,
	PhaseOral: true, PhaseJudgment: true, PhaseClosure: true,
}

// ParsePhase validates a phase string.
func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !ValidPhases[p] {
		return "", fmt.Errorf("unknown phase %q", s)
	}
	return p, nil
}

// ItemStatus is the manually cycled completion status of a checklist item.
// It is independent of the evidence-derived status (see Derive).
type ItemStatus string

const (
	StatusPending  ItemStatus = "pending"
	StatusPartial  ItemStatus = "partial"
	StatusComplete ItemStatus = "complete"
)

// Next advances the manual status one step through the
// pending -> partial -> complete -> pending cycle.
func (s ItemStatus) Next() ItemStatus {
	switch s {
	case StatusPending:
		return StatusPartial
	case StatusPartial:
		return StatusComplete
	default:
		return StatusPending
	}
}

// LanguageStatus is the per-language sub-status of a language-gated item.
type LanguageStatus string

const (
	LangPending       LanguageStatus = "pending"
	LangAwaiting      LanguageStatus = "awaiting"
	LangComplete      LanguageStatus = "complete"
	LangNotApplicable LanguageStatus = "not_applicable"
)

// Next advances the sub-status through the pending -> awaiting -> complete ->
// pending cycle. A not_applicable sub-status does not cycle.
func (s LanguageStatus) Next() LanguageStatus {
	switch s {
	case LangPending:
		return LangAwaiting
	case LangAwaiting:
		return LangComplete
	case LangNotApplicable:
		return LangNotApplicable
	default:
		return LangPending
	}
}

// DerivedStatus is the evidence-derived completion classification of an item.
type DerivedStatus string

const (
	DerivedNotStarted DerivedStatus = "not_started"
	DerivedInProgress DerivedStatus = "in_progress"
	DerivedCompleted  DerivedStatus = "completed"
	DerivedBlocked    DerivedStatus = "blocked"
)

// Language is a language tag such as "en" or "fr".
type Language string

const (
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
)

// EvidenceType classifies a proof record.
type EvidenceType string

const (
	EvidenceDocument     EvidenceType = "document"
	EvidenceDistribution EvidenceType = "distribution"
	EvidenceEvent        EvidenceType = "event"
)

// ActionKind identifies the operation behind a checklist action.
type ActionKind string

const (
	KindGenerateLetter     ActionKind = "generate_letter"
	KindCreateDistribution ActionKind = "create_distribution"
	KindFileDocument       ActionKind = "file_document"
	KindRecordEvent        ActionKind = "record_event"
	KindOpenModal          ActionKind = "open_modal"
	KindUnknown            ActionKind = "unknown"
)

// ParseActionKind maps a kind string onto the closed ActionKind set.
// Unrecognized strings map to KindUnknown so that dispatch stays exhaustive.
func ParseActionKind(s string) ActionKind {
	switch k := ActionKind(s); k {
	case KindGenerateLetter, KindCreateDistribution, KindFileDocument,
		KindRecordEvent, KindOpenModal:
		return k
	default:
		return KindUnknown
	}
}
