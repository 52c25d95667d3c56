package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"unistats/internal/admissions/models"
	"unistats/pkg/platform/tx"
)

const recordColumns = `id, school, program, ouac_code, average, decision, application_date,
	decision_date, grp, citizenship, province, has_supp_app, supp_app_info, comments, scholarship`

const upsertRecord = `
	INSERT INTO admissions (` + recordColumns + `)
	VALUES (:id, :school, :program, :ouac_code, :average, :decision, :application_date,
		:decision_date, :grp, :citizenship, :province, :has_supp_app, :supp_app_info, :comments, :scholarship)
	ON CONFLICT (id) DO UPDATE SET
		school = EXCLUDED.school,
		program = EXCLUDED.program,
		ouac_code = EXCLUDED.ouac_code,
		average = EXCLUDED.average,
		decision = EXCLUDED.decision,
		application_date = EXCLUDED.application_date,
		decision_date = EXCLUDED.decision_date,
		grp = EXCLUDED.grp,
		citizenship = EXCLUDED.citizenship,
		province = EXCLUDED.province,
		has_supp_app = EXCLUDED.has_supp_app,
		supp_app_info = EXCLUDED.supp_app_info,
		comments = EXCLUDED.comments,
		scholarship = EXCLUDED.scholarship
`

// SQLStore reads admission records from the admissions table.
// The same queries run on Postgres and SQLite.
type SQLStore struct {
	db *sqlx.DB
}

// NewSQL constructs a SQLStore over an open database.
func NewSQL(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) queryer(ctx context.Context) sqlx.ExtContext {
	if t, ok := tx.From(ctx); ok {
		return t
	}
	return s.db
}

// ListAll returns every record ordered by id.
func (s *SQLStore) ListAll(ctx context.Context) ([]*models.Record, error) {
	var records []*models.Record
	query := `SELECT ` + recordColumns + ` FROM admissions ORDER BY id`
	if err := sqlx.SelectContext(ctx, s.queryer(ctx), &records, query); err != nil {
		return nil, fmt.Errorf("list admissions: %w", err)
	}
	if records == nil {
		records = []*models.Record{}
	}
	return records, nil
}

// Count returns the number of stored records.
func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, s.queryer(ctx), &n, `SELECT COUNT(*) FROM admissions`); err != nil {
		return 0, fmt.Errorf("count admissions: %w", err)
	}
	return n, nil
}

// Upsert inserts records, replacing any stored record with the same id.
// All records are written in one transaction.
func (s *SQLStore) Upsert(ctx context.Context, records []*models.Record) error {
	return tx.Run(ctx, s.db, func(ctx context.Context) error {
		t, _ := tx.From(ctx)
		stmt, err := t.PrepareNamedContext(ctx, upsertRecord)
		if err != nil {
			return fmt.Errorf("prepare upsert: %w", err)
		}
		defer stmt.Close()

		for _, r := range records {
			if r == nil {
				continue
			}
			if r.ID == "" {
				return fmt.Errorf("upsert admission: record for %q/%q has no id", r.School, r.Program)
			}
			if _, err := stmt.ExecContext(ctx, r); err != nil {
				return fmt.Errorf("upsert admission %s: %w", r.ID, err)
			}
		}
		return nil
	})
}
