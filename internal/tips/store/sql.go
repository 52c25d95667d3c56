package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"unistats/internal/tips/models"
	"unistats/pkg/platform/tx"
)

const tipColumns = `id, title, content, user_id, attachment_file_url, created_at, updated_at`

const upsertTip = `
	INSERT INTO tips (` + tipColumns + `)
	VALUES (:id, :title, :content, :user_id, :attachment_file_url, :created_at, :updated_at)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		content = EXCLUDED.content,
		user_id = EXCLUDED.user_id,
		attachment_file_url = EXCLUDED.attachment_file_url,
		created_at = EXCLUDED.created_at,
		updated_at = EXCLUDED.updated_at
`

// SQLStore reads tips from the tips table on Postgres or SQLite.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQL(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) queryer(ctx context.Context) sqlx.ExtContext {
	if t, ok := tx.From(ctx); ok {
		return t
	}
	return s.db
}

// ListAll returns every tip in insertion order (created_at, then id).
func (s *SQLStore) ListAll(ctx context.Context) ([]*models.Tip, error) {
	var tips []*models.Tip
	query := `SELECT ` + tipColumns + ` FROM tips ORDER BY created_at, id`
	if err := sqlx.SelectContext(ctx, s.queryer(ctx), &tips, query); err != nil {
		return nil, fmt.Errorf("list tips: %w", err)
	}
	if tips == nil {
		tips = []*models.Tip{}
	}
	return tips, nil
}

// Upsert writes tips in one transaction. It exists for seeding; the API is read-only.
func (s *SQLStore) Upsert(ctx context.Context, tips []*models.Tip) error {
	return tx.Run(ctx, s.db, func(ctx context.Context) error {
		t, _ := tx.From(ctx)
		stmt, err := t.PrepareNamedContext(ctx, upsertTip)
		if err != nil {
			return fmt.Errorf("prepare tip upsert: %w", err)
		}
		defer stmt.Close()

		for _, tip := range tips {
			if tip == nil {
				continue
			}
			if tip.ID == "" {
				return fmt.Errorf("upsert tip %q: missing id", tip.Title)
			}
			if _, err := stmt.ExecContext(ctx, tip); err != nil {
				return fmt.Errorf("upsert tip %s: %w", tip.ID, err)
			}
		}
		return nil
	})
}
