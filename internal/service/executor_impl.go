package service

import (
	"context"
	"fmt"
	"time"

	"github.com/courtops/docket/internal/domain"
	"github.com/google/uuid"
)

type actionExecutor struct {
	letters       LetterGenerator
	distributions Distributor
	filer         DocumentFiler
	recorder      EventRecorder
}

// NewActionExecutor creates an executor over the four external collaborators.
func NewActionExecutor(
	letters LetterGenerator,
	distributions Distributor,
	filer DocumentFiler,
	recorder EventRecorder,
) ActionExecutor {
	return &actionExecutor{
		letters:       letters,
		distributions: distributions,
		filer:         filer,
		recorder:      recorder,
	}
}

// Execute dispatches over the closed action-kind set. Unrecognized kinds take
// the generic branch rather than failing; the catalog maps them to
// KindUnknown at load time so the fallback is an explicit arm here.
func (e *actionExecutor) Execute(ctx context.Context, caseID string, req domain.ActionRequest) (ActionResult, error) {
	if err := validateRequest(req); err != nil {
		return ActionResult{}, err
	}

	switch req.Kind {
	case domain.KindGenerateLetter:
		return e.generateLetter(ctx, caseID, req)
	case domain.KindCreateDistribution:
		return e.createDistribution(ctx, caseID, req)
	case domain.KindFileDocument:
		return e.fileDocument(ctx, caseID, req)
	case domain.KindRecordEvent:
		return e.recordEvent(ctx, caseID, req)
	case domain.KindOpenModal, domain.KindUnknown:
		return genericResult(req), nil
	default:
		return genericResult(req), nil
	}
}

func validateRequest(req domain.ActionRequest) error {
	switch req.Kind {
	case domain.KindGenerateLetter:
		if req.Payload.Language == "" || req.Payload.LetterType == "" {
			return fmt.Errorf("%w: generate_letter requires language and letter_type", ErrInvalidAction)
		}
	case domain.KindCreateDistribution:
		if req.Payload.Scope == "" {
			return fmt.Errorf("%w: create_distribution requires scope", ErrInvalidAction)
		}
	case domain.KindFileDocument:
		if req.Payload.DocumentType == "" {
			return fmt.Errorf("%w: file_document requires document_type", ErrInvalidAction)
		}
	case domain.KindRecordEvent:
		if req.Payload.EventType == "" {
			return fmt.Errorf("%w: record_event requires event_type", ErrInvalidAction)
		}
	}
	return nil
}

func (e *actionExecutor) generateLetter(ctx context.Context, caseID string, req domain.ActionRequest) (ActionResult, error) {
	ref, err := e.letters.Generate(ctx, caseID, req.Payload.LetterType, req.Payload.Language)
	if err != nil {
		return ActionResult{}, fmt.Errorf("%w: generating letter: %v", ErrDelegationFailed, err)
	}
	now := time.Now().UTC()
	return ActionResult{
		Evidence: domain.Evidence{
			ID:        uuid.New().String(),
			Type:      domain.EvidenceDocument,
			Title:     ref.Title,
			Href:      ref.Href,
			Language:  req.Payload.Language,
			CreatedAt: now,
		},
		Activity: domain.ActivityItem{
			ID:        uuid.New().String(),
			Type:      domain.ActivityLetter,
			Title:     "Letter generated",
			Subtitle:  ref.Title,
			Timestamp: now,
			Icon:      "mail",
		},
	}, nil
}

func (e *actionExecutor) createDistribution(ctx context.Context, caseID string, req domain.ActionRequest) (ActionResult, error) {
	ref, err := e.distributions.Create(ctx, caseID, req.Payload.Scope, req.Payload.Language)
	if err != nil {
		return ActionResult{}, fmt.Errorf("%w: creating distribution: %v", ErrDelegationFailed, err)
	}
	now := time.Now().UTC()
	return ActionResult{
		Evidence: domain.Evidence{
			ID:        uuid.New().String(),
			Type:      domain.EvidenceDistribution,
			Title:     ref.Title,
			Href:      ref.Href,
			Language:  req.Payload.Language,
			Meta:      ref.DeliveryMeta,
			CreatedAt: now,
		},
		Activity: domain.ActivityItem{
			ID:        uuid.New().String(),
			Type:      domain.ActivityDistribution,
			Title:     "Distribution created",
			Subtitle:  req.Payload.Scope,
			Timestamp: now,
			Icon:      "send",
		},
	}, nil
}

func (e *actionExecutor) fileDocument(ctx context.Context, caseID string, req domain.ActionRequest) (ActionResult, error) {
	ref, err := e.filer.File(ctx, caseID, req.Payload.DocumentType)
	if err != nil {
		return ActionResult{}, fmt.Errorf("%w: filing document: %v", ErrDelegationFailed, err)
	}
	now := time.Now().UTC()
	return ActionResult{
		Evidence: domain.Evidence{
			ID:        uuid.New().String(),
			Type:      domain.EvidenceDocument,
			Title:     ref.Title,
			Href:      ref.Href,
			CreatedAt: now,
		},
		Activity: domain.ActivityItem{
			ID:        uuid.New().String(),
			Type:      domain.ActivityFiling,
			Title:     "Document filed",
			Subtitle:  ref.Title,
			Timestamp: now,
			Icon:      "file",
		},
	}, nil
}

func (e *actionExecutor) recordEvent(ctx context.Context, caseID string, req domain.ActionRequest) (ActionResult, error) {
	ref, err := e.recorder.Record(ctx, caseID, req.Payload.EventType)
	if err != nil {
		return ActionResult{}, fmt.Errorf("%w: recording event: %v", ErrDelegationFailed, err)
	}
	now := time.Now().UTC()
	return ActionResult{
		Evidence: domain.Evidence{
			ID:        uuid.New().String(),
			Type:      domain.EvidenceEvent,
			Title:     ref.Title,
			Href:      ref.Href,
			CreatedAt: now,
		},
		Activity: domain.ActivityItem{
			ID:        uuid.New().String(),
			Type:      domain.ActivityEvent,
			Title:     ref.Title,
			Timestamp: now,
			Icon:      "calendar",
		},
	}, nil
}

// genericResult handles open_modal and unrecognized kinds: a plain event
// record titled "Action completed" and an activity entry reusing the
// request's own label.
func genericResult(req domain.ActionRequest) ActionResult {
	now := time.Now().UTC()
	return ActionResult{
		Evidence: domain.Evidence{
			ID:        uuid.New().String(),
			Type:      domain.EvidenceEvent,
			Title:     "Action completed",
			CreatedAt: now,
		},
		Activity: domain.ActivityItem{
			ID:        uuid.New().String(),
			Type:      domain.ActivityAction,
			Title:     req.Label,
			Timestamp: now,
			Icon:      "check",
		},
	}
}
