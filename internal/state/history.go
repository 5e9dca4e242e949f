package state

import (
	"context"
	"database/sql"
	"strings"

	dbutil "github.com/llehouerou/sortviz/internal/db"
)

// MaxRecentInputs bounds the explicit-input history.
const MaxRecentInputs = 20

// AddRecentInput records text as the most recently used explicit input,
// moving it to the front if already present and trimming the oldest entries.
func (m *Manager) AddRecentInput(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return dbutil.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO recent_inputs (text, seq)
			VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM recent_inputs))
			ON CONFLICT(text) DO UPDATE SET seq = excluded.seq
		`, text)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM recent_inputs WHERE id NOT IN (
				SELECT id FROM recent_inputs ORDER BY seq DESC LIMIT ?
			)
		`, MaxRecentInputs)
		return err
	})
}

// RecentInputs returns up to limit inputs, newest first.
func (m *Manager) RecentInputs(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 || limit > MaxRecentInputs {
		limit = MaxRecentInputs
	}
	rows, err := m.db.QueryContext(ctx, `
		SELECT text FROM recent_inputs ORDER BY seq DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, rows.Err()
}
