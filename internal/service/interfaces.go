package service

import (
	"context"

	"github.com/courtops/docket/internal/domain"
)

// LetterRef identifies a draft letter produced by the letter-generation
// collaborator.
type LetterRef struct {
	Href  string
	Title string
}

// DistributionRef identifies a created distribution and its delivery scope.
type DistributionRef struct {
	Href         string
	Title        string
	DeliveryMeta string // e.g. "193/193 states"
}

// DocumentRef identifies a filed document.
type DocumentRef struct {
	Href  string
	Title string
}

// EventRef identifies a recorded procedural event.
type EventRef struct {
	Href  string
	Title string
}

// LetterGenerator drafts letters on behalf of the registry.
type LetterGenerator interface {
	Generate(ctx context.Context, caseID, letterType string, language domain.Language) (LetterRef, error)
}

// Distributor creates distributions to states or parties.
type Distributor interface {
	Create(ctx context.Context, caseID, scope string, language domain.Language) (DistributionRef, error)
}

// DocumentFiler files documents into the case record.
type DocumentFiler interface {
	File(ctx context.Context, caseID, documentType string) (DocumentRef, error)
}

// EventRecorder records procedural events.
type EventRecorder interface {
	Record(ctx context.Context, caseID, eventType string) (EventRef, error)
}

// ActionResult is the outcome of one executed action: a proof record for the
// item's evidence list and an entry for the case activity feed. The executor
// produces it; the session applies it.
type ActionResult struct {
	Evidence domain.Evidence
	Activity domain.ActivityItem
}

// ActionExecutor performs a requested action by delegating to the external
// collaborators. It never mutates checklist state.
type ActionExecutor interface {
	Execute(ctx context.Context, caseID string, req domain.ActionRequest) (ActionResult, error)
}

// Progress summarises one phase: items manually marked complete out of the
// phase total.
type Progress struct {
	Completed int
	Total     int
}

// ChecklistService opens per-case checklist sessions.
type ChecklistService interface {
	Open(ctx context.Context, caseID string) (*ChecklistSession, error)
}
