package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/courtops/docket/internal/catalog"
	"github.com/courtops/docket/internal/db"
	"github.com/courtops/docket/internal/domain"
	"github.com/courtops/docket/internal/logging"
	"github.com/courtops/docket/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type checklistService struct {
	catalog   *catalog.Catalog
	executor  ActionExecutor
	snapshots repository.SnapshotStore
	evidence  repository.EvidenceRepo
	activity  repository.ActivityRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	log       zerolog.Logger
}

// NewChecklistService wires a checklist service over the catalog, the action
// executor and the persistence layer.
func NewChecklistService(
	cat *catalog.Catalog,
	executor ActionExecutor,
	snapshots repository.SnapshotStore,
	evidence repository.EvidenceRepo,
	activity repository.ActivityRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ChecklistService {
	return &checklistService{
		catalog:   cat,
		executor:  executor,
		snapshots: snapshots,
		evidence:  evidence,
		activity:  activity,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		log:       logging.Component("checklist"),
	}
}

// Open loads the session for a case: catalog baseline, persisted overrides
// merged on top, stored evidence appended after the baseline, and the
// activity feed. A missing or corrupt snapshot falls back to the baseline;
// corruption is logged, never surfaced.
func (s *checklistService) Open(ctx context.Context, caseID string) (*ChecklistSession, error) {
	snap, err := s.snapshots.Get(ctx, caseID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		snap = domain.Snapshot{}
	case errors.Is(err, repository.ErrSnapshotCorrupt):
		s.log.Warn().Str("case_id", caseID).Err(err).Msg("discarding corrupt snapshot")
		snap = domain.Snapshot{}
	default:
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	items := domain.ApplyOverrides(s.catalog.All(), snap)

	stored, err := s.evidence.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("loading evidence: %w", err)
	}

	sess := &ChecklistSession{
		caseID:  caseID,
		svc:     s,
		byPhase: make(map[domain.Phase][]*domain.ChecklistItem),
		byID:    make(map[string]*domain.ChecklistItem, len(items)),
	}
	for _, it := range items {
		it.Evidence = append(it.Evidence, stored[it.ID]...)
		sess.byPhase[it.Phase] = append(sess.byPhase[it.Phase], it)
		sess.byID[it.ID] = it
	}

	feed, err := s.activity.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("loading activity: %w", err)
	}
	sess.feed = feed

	return sess, nil
}

// ChecklistSession holds all checklist state for one case. It assumes a
// single interactive caller; concurrent sessions on the same case are
// last-write-wins at the snapshot store.
type ChecklistSession struct {
	caseID  string
	svc     *checklistService
	byPhase map[domain.Phase][]*domain.ChecklistItem
	byID    map[string]*domain.ChecklistItem
	feed    []domain.ActivityItem // newest first
}

// CaseID returns the case this session belongs to.
func (s *ChecklistSession) CaseID() string {
	return s.caseID
}

// Phase returns the ordered items of a phase with overrides applied.
// Returned items are copies; mutations go through the session operations.
func (s *ChecklistSession) Phase(p domain.Phase) []*domain.ChecklistItem {
	items := make([]*domain.ChecklistItem, 0, len(s.byPhase[p]))
	for _, it := range s.byPhase[p] {
		items = append(items, it.Clone())
	}
	return items
}

// Item returns a copy of one item.
func (s *ChecklistSession) Item(id string) (*domain.ChecklistItem, error) {
	it, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", id, ErrItemNotFound)
	}
	return it.Clone(), nil
}

// CycleStatus advances the item's manual status one step through
// pending -> partial -> complete -> pending and persists the new value.
func (s *ChecklistSession) CycleStatus(ctx context.Context, itemID string) (domain.ItemStatus, error) {
	start := time.Now()
	it, ok := s.byID[itemID]
	if !ok {
		err := fmt.Errorf("item %q: %w", itemID, ErrItemNotFound)
		s.observe(ctx, "cycle_status", start, err, nil)
		return "", err
	}

	prev := it.Status
	it.Status = it.Status.Next()

	s.appendActivity(ctx, domain.ActivityItem{
		ID:        uuid.New().String(),
		Type:      domain.ActivityStatus,
		Title:     fmt.Sprintf("Status changed to %s", it.Status),
		Subtitle:  it.Title,
		Timestamp: time.Now().UTC(),
		Icon:      "flag",
	})
	s.persistSnapshot(ctx)

	s.observe(ctx, "cycle_status", start, nil, map[string]any{
		"item_id": itemID, "from": prev, "to": it.Status,
	})
	return it.Status, nil
}

// CycleLanguage advances one required language's sub-status through
// pending -> awaiting -> complete -> pending and persists the new value.
func (s *ChecklistSession) CycleLanguage(ctx context.Context, itemID string, lang domain.Language) (domain.LanguageStatus, error) {
	start := time.Now()
	it, ok := s.byID[itemID]
	if !ok {
		err := fmt.Errorf("item %q: %w", itemID, ErrItemNotFound)
		s.observe(ctx, "cycle_language", start, err, nil)
		return "", err
	}

	required := false
	for _, l := range it.RequiredLanguages {
		if l == lang {
			required = true
			break
		}
	}
	if !required {
		err := fmt.Errorf("item %q, language %q: %w", itemID, lang, ErrLanguageNotRequired)
		s.observe(ctx, "cycle_language", start, err, nil)
		return "", err
	}

	if it.Languages == nil {
		it.Languages = make(map[domain.Language]domain.LanguageStatus)
	}
	next := it.Languages[lang].Next()
	it.Languages[lang] = next

	s.appendActivity(ctx, domain.ActivityItem{
		ID:        uuid.New().String(),
		Type:      domain.ActivityLanguage,
		Title:     fmt.Sprintf("%s version marked %s", lang, next),
		Subtitle:  it.Title,
		Timestamp: time.Now().UTC(),
		Icon:      "globe",
	})
	s.persistSnapshot(ctx)

	s.observe(ctx, "cycle_language", start, nil, map[string]any{
		"item_id": itemID, "language": lang, "to": next,
	})
	return next, nil
}

// SetBlocked marks or unmarks an item as blocked by an external decision.
// Blocked items derive blocked regardless of evidence.
func (s *ChecklistSession) SetBlocked(ctx context.Context, itemID string, blocked bool) error {
	start := time.Now()
	it, ok := s.byID[itemID]
	if !ok {
		err := fmt.Errorf("item %q: %w", itemID, ErrItemNotFound)
		s.observe(ctx, "set_blocked", start, err, nil)
		return err
	}

	it.Blocked = blocked

	title := "Item blocked"
	if !blocked {
		title = "Item unblocked"
	}
	s.appendActivity(ctx, domain.ActivityItem{
		ID:        uuid.New().String(),
		Type:      domain.ActivityStatus,
		Title:     title,
		Subtitle:  it.Title,
		Timestamp: time.Now().UTC(),
		Icon:      "lock",
	})
	s.persistSnapshot(ctx)

	s.observe(ctx, "set_blocked", start, nil, map[string]any{"item_id": itemID, "blocked": blocked})
	return nil
}

// RunAction executes an action against an item. On success the evidence is
// appended to the item (append-only), the activity entry joins the feed, and
// both are written durably in one transaction. On delegation failure or
// caller cancellation nothing is appended.
func (s *ChecklistSession) RunAction(ctx context.Context, itemID string, req domain.ActionRequest) (ActionResult, error) {
	start := time.Now()
	it, ok := s.byID[itemID]
	if !ok {
		err := fmt.Errorf("item %q: %w", itemID, ErrItemNotFound)
		s.observe(ctx, "run_action", start, err, nil)
		return ActionResult{}, err
	}

	res, err := s.svc.executor.Execute(ctx, s.caseID, req)
	if err != nil {
		s.observe(ctx, "run_action", start, err, map[string]any{"item_id": itemID, "kind": req.Kind})
		return ActionResult{}, err
	}

	// The caller may have abandoned the action while the collaborator was
	// in flight; a settled-but-cancelled result is discarded unapplied.
	if err := ctx.Err(); err != nil {
		s.observe(ctx, "run_action", start, err, map[string]any{"item_id": itemID, "kind": req.Kind})
		return ActionResult{}, err
	}

	it.Evidence = append(it.Evidence, res.Evidence)
	s.feed = append([]domain.ActivityItem{res.Activity}, s.feed...)

	err = s.svc.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteEvidenceRepo(tx).Append(ctx, s.caseID, itemID, res.Evidence); err != nil {
			return err
		}
		return repository.NewSQLiteActivityRepo(tx).Append(ctx, s.caseID, res.Activity)
	})
	if err != nil {
		s.svc.log.Error().Str("case_id", s.caseID).Str("item_id", itemID).Err(err).
			Msg("persisting action result failed")
	}

	s.observe(ctx, "run_action", start, nil, map[string]any{"item_id": itemID, "kind": req.Kind})
	return res, nil
}

// Progress counts items manually marked complete out of the phase total.
// The manual signal drives progress; Derive stays an audit view.
func (s *ChecklistSession) Progress(p domain.Phase) Progress {
	prog := Progress{Total: len(s.byPhase[p])}
	for _, it := range s.byPhase[p] {
		if it.Status == domain.StatusComplete {
			prog.Completed++
		}
	}
	return prog
}

// AwaitingTranslationCount counts the phase's items with any required
// language sub-status at awaiting.
func (s *ChecklistSession) AwaitingTranslationCount(p domain.Phase) int {
	var n int
	for _, it := range s.byPhase[p] {
		if it.AwaitingTranslation() {
			n++
		}
	}
	return n
}

// Activity returns the feed, most recent first.
func (s *ChecklistSession) Activity() []domain.ActivityItem {
	return append([]domain.ActivityItem(nil), s.feed...)
}

// appendActivity adds an entry to the in-memory feed and the durable log.
// Persistence failures are logged, not surfaced; the write is ordered after
// the in-memory mutation it reflects.
func (s *ChecklistSession) appendActivity(ctx context.Context, a domain.ActivityItem) {
	s.feed = append([]domain.ActivityItem{a}, s.feed...)
	if err := s.svc.activity.Append(ctx, s.caseID, a); err != nil {
		s.svc.log.Error().Str("case_id", s.caseID).Err(err).Msg("persisting activity failed")
	}
}

// persistSnapshot serializes every item's override slice and writes it under
// the case key.
func (s *ChecklistSession) persistSnapshot(ctx context.Context) {
	snap := make(domain.Snapshot, len(s.byID))
	for id, it := range s.byID {
		snap[id] = it.Override()
	}
	if err := s.svc.snapshots.Put(ctx, s.caseID, snap); err != nil {
		s.svc.log.Error().Str("case_id", s.caseID).Err(err).Msg("persisting snapshot failed")
	}
}

func (s *ChecklistSession) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	s.svc.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		CaseID:    s.caseID,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}
