package repository

import (
	"context"

	"github.com/courtops/docket/internal/domain"
)

// SnapshotStore persists the per-case override map (item id -> status,
// languages, blocked). Get returns ErrNotFound for unknown cases and
// ErrSnapshotCorrupt when stored data cannot be decoded; callers are expected
// to treat both as "no override".
type SnapshotStore interface {
	Get(ctx context.Context, caseID string) (domain.Snapshot, error)
	Put(ctx context.Context, caseID string, snap domain.Snapshot) error
}

// EvidenceRepo is the append-only log of executor-produced evidence.
// Rows are never updated or deleted.
type EvidenceRepo interface {
	Append(ctx context.Context, caseID, itemID string, ev domain.Evidence) error
	ListByCase(ctx context.Context, caseID string) (map[string][]domain.Evidence, error)
}

// ActivityRepo is the append-only per-case activity feed.
// ListByCase returns entries most-recent-first.
type ActivityRepo interface {
	Append(ctx context.Context, caseID string, a domain.ActivityItem) error
	ListByCase(ctx context.Context, caseID string) ([]domain.ActivityItem, error)
}
