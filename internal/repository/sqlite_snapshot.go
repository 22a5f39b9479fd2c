package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/courtops/docket/internal/db"
	"github.com/courtops/docket/internal/domain"
)

// SQLiteSnapshotStore implements SnapshotStore over a single JSON-valued row
// per case. Values are JSON so backends can be swapped without a schema for
// every override field.
type SQLiteSnapshotStore struct {
	db db.DBTX
}

// NewSQLiteSnapshotStore creates a SnapshotStore backed by the given DBTX.
func NewSQLiteSnapshotStore(dbtx db.DBTX) *SQLiteSnapshotStore {
	return &SQLiteSnapshotStore{db: dbtx}
}

func (s *SQLiteSnapshotStore) Get(ctx context.Context, caseID string) (domain.Snapshot, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM checklist_snapshots WHERE case_id = ?`, caseID,
	).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("snapshot for case %s: %w", caseID, ErrNotFound)
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot for case %s: %w: %v", caseID, ErrSnapshotCorrupt, err)
	}
	return snap, nil
}

func (s *SQLiteSnapshotStore) Put(ctx context.Context, caseID string, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO checklist_snapshots (case_id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(case_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		caseID, string(data), nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
