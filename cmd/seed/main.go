// Command seed loads admissions records and, optionally, community tips from
// JSON array files into the configured database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"unistats/internal/admissions/models"
	"unistats/internal/admissions/store"
	"unistats/internal/platform/config"
	"unistats/internal/platform/db"
	"unistats/internal/platform/logger"
	tipsmodels "unistats/internal/tips/models"
	tipsstore "unistats/internal/tips/store"
)

func main() {
	path := flag.String("file", "admissions.json", "JSON array of admissions records")
	tipsPath := flag.String("tips", "", "JSON array of tips; skipped when empty")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Server.LogLevel)

	n, err := seed(context.Background(), cfg.Database, *path)
	if err != nil {
		log.Error("seed failed", "file", *path, "error", err)
		os.Exit(1)
	}
	log.Info("seeded admissions", "file", *path, "records", n)

	if *tipsPath == "" {
		return
	}
	n, err = seedTips(context.Background(), cfg.Database, *tipsPath, time.Now().UTC())
	if err != nil {
		log.Error("tips seed failed", "file", *tipsPath, "error", err)
		os.Exit(1)
	}
	log.Info("seeded tips", "file", *tipsPath, "tips", n)
}

func seed(ctx context.Context, cfg config.Database, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	records, err := decodeRecords(f)
	if err != nil {
		return 0, err
	}

	database, err := db.Open(ctx, cfg)
	if err != nil {
		return 0, err
	}
	defer database.Close()

	if err := store.NewSQL(database).Upsert(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func decodeRecords(r io.Reader) ([]*models.Record, error) {
	var records []*models.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	for i, rec := range records {
		if rec == nil || rec.ID == "" {
			return nil, fmt.Errorf("record %d has no id", i)
		}
	}
	return records, nil
}

// seedTips upserts the tips in path. Tips without timestamps are stamped
// with now.
func seedTips(ctx context.Context, cfg config.Database, path string, now time.Time) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	tips, err := decodeTips(f, now)
	if err != nil {
		return 0, err
	}

	database, err := db.Open(ctx, cfg)
	if err != nil {
		return 0, err
	}
	defer database.Close()

	if err := tipsstore.NewSQL(database).Upsert(ctx, tips); err != nil {
		return 0, err
	}
	return len(tips), nil
}

func decodeTips(r io.Reader, now time.Time) ([]*tipsmodels.Tip, error) {
	var tips []*tipsmodels.Tip
	if err := json.NewDecoder(r).Decode(&tips); err != nil {
		return nil, fmt.Errorf("decode tips: %w", err)
	}
	for i, tip := range tips {
		if tip == nil || tip.ID == "" {
			return nil, fmt.Errorf("tip %d has no id", i)
		}
		if tip.CreatedAt.IsZero() {
			tip.CreatedAt = now
		}
		if tip.UpdatedAt.IsZero() {
			tip.UpdatedAt = tip.CreatedAt
		}
	}
	return tips, nil
}
