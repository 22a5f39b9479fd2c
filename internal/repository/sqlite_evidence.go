package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/courtops/docket/internal/db"
	"github.com/courtops/docket/internal/domain"
)

// SQLiteEvidenceRepo implements EvidenceRepo using a SQLite database.
type SQLiteEvidenceRepo struct {
	db db.DBTX
}

// NewSQLiteEvidenceRepo creates a new SQLiteEvidenceRepo.
func NewSQLiteEvidenceRepo(dbtx db.DBTX) *SQLiteEvidenceRepo {
	return &SQLiteEvidenceRepo{db: dbtx}
}

func (r *SQLiteEvidenceRepo) Append(ctx context.Context, caseID, itemID string, ev domain.Evidence) error {
	// seq is allocated per (case, item) inside the insert so relative order
	// survives restarts regardless of timestamp resolution.
	query := `INSERT INTO evidence (id, case_id, item_id, type, title, href, language, meta, seq, created_at)
		SELECT ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(MAX(seq) + 1, 0), ?
		FROM evidence WHERE case_id = ? AND item_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		ev.ID,
		caseID,
		itemID,
		string(ev.Type),
		ev.Title,
		ev.Href,
		nullableString(string(ev.Language)),
		nullableString(ev.Meta),
		ev.CreatedAt.UTC().Format(time.RFC3339),
		caseID,
		itemID,
	)
	if err != nil {
		return fmt.Errorf("inserting evidence: %w", err)
	}
	return nil
}

func (r *SQLiteEvidenceRepo) ListByCase(ctx context.Context, caseID string) (map[string][]domain.Evidence, error) {
	query := `SELECT id, item_id, type, title, href, language, meta, created_at
		FROM evidence WHERE case_id = ? ORDER BY item_id, seq`
	rows, err := r.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing evidence: %w", err)
	}
	defer rows.Close()

	byItem := make(map[string][]domain.Evidence)
	for rows.Next() {
		var (
			ev             domain.Evidence
			itemID         string
			typeStr        string
			language, meta sql.NullString
			createdAtStr   string
		)
		if err := rows.Scan(&ev.ID, &itemID, &typeStr, &ev.Title, &ev.Href, &language, &meta, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning evidence row: %w", err)
		}
		ev.Type = domain.EvidenceType(typeStr)
		ev.Language = domain.Language(stringOrEmpty(language))
		ev.Meta = stringOrEmpty(meta)
		ev.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		byItem[itemID] = append(byItem[itemID], ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evidence: %w", err)
	}
	return byItem, nil
}
