package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/courtops/docket/internal/db"
	"github.com/courtops/docket/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(dbtx db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: dbtx}
}

func (r *SQLiteActivityRepo) Append(ctx context.Context, caseID string, a domain.ActivityItem) error {
	query := `INSERT INTO activity (id, case_id, type, title, subtitle, icon, timestamp, seq)
		SELECT ?, ?, ?, ?, ?, ?, ?, COALESCE(MAX(seq) + 1, 0)
		FROM activity WHERE case_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		caseID,
		string(a.Type),
		a.Title,
		nullableString(a.Subtitle),
		nullableString(a.Icon),
		a.Timestamp.UTC().Format(time.RFC3339),
		caseID,
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) ListByCase(ctx context.Context, caseID string) ([]domain.ActivityItem, error) {
	query := `SELECT id, type, title, subtitle, icon, timestamp
		FROM activity WHERE case_id = ? ORDER BY seq DESC`
	rows, err := r.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	defer rows.Close()

	var items []domain.ActivityItem
	for rows.Next() {
		var (
			a              domain.ActivityItem
			typeStr        string
			subtitle, icon sql.NullString
			timestampStr   string
		)
		if err := rows.Scan(&a.ID, &typeStr, &a.Title, &subtitle, &icon, &timestampStr); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		a.Type = domain.ActivityType(typeStr)
		a.Subtitle = stringOrEmpty(subtitle)
		a.Icon = stringOrEmpty(icon)
		a.Timestamp, err = time.Parse(time.RFC3339, timestampStr)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity: %w", err)
	}
	return items, nil
}
