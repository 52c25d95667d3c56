package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"unistats/internal/admissions/models"
	"unistats/internal/platform/config"
	"unistats/internal/platform/db"
	"unistats/pkg/platform/sentinel"
	"unistats/pkg/platform/tx"
)

func ptr[T any](v T) *T { return &v }

func sampleRecords() []*models.Record {
	return []*models.Record{
		{
			ID:          "b",
			School:      "University of Waterloo",
			Program:     "Computer Science",
			OUACCode:    ptr("WCS"),
			Average:     ptr(95.5),
			HasSuppApp:  ptr(true),
			Scholarship: ptr(2000.0),
		},
		{
			ID:      "a",
			School:  "Queen's University",
			Program: "Commerce",
		},
	}
}

// recordSource is the behaviour both stores share.
type recordSource interface {
	ListAll(ctx context.Context) ([]*models.Record, error)
	Count(ctx context.Context) (int, error)
	Upsert(ctx context.Context, records []*models.Record) error
}

type StoreSuite struct {
	suite.Suite
	ctx   context.Context
	store recordSource
	setup func() recordSource
}

func TestSQLiteStoreSuite(t *testing.T) {
	s := &StoreSuite{}
	s.setup = func() recordSource {
		conn, err := db.Open(context.Background(), config.Database{Driver: config.DriverSQLite, DSN: ":memory:"})
		s.Require().NoError(err)
		s.T().Cleanup(func() { _ = conn.Close() })
		return NewSQL(conn)
	}
	suite.Run(t, s)
}

func TestInMemoryStoreSuite(t *testing.T) {
	s := &StoreSuite{}
	s.setup = func() recordSource { return NewInMemory() }
	suite.Run(t, s)
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.setup()
}

func (s *StoreSuite) TestEmptyStoreListsNothing() {
	records, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	s.NotNil(records)
	s.Empty(records)
}

func (s *StoreSuite) TestUpsertThenListOrdersByID() {
	s.Require().NoError(s.store.Upsert(s.ctx, sampleRecords()))

	records, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 2)

	s.Equal("a", records[0].ID)
	s.Nil(records[0].Average)
	s.Nil(records[0].OUACCode)
	s.Nil(records[0].HasSuppApp)

	wcs := records[1]
	s.Equal("University of Waterloo", wcs.School)
	s.Equal("WCS", wcs.Code())
	avg, ok := wcs.AverageValue()
	s.True(ok)
	s.InDelta(95.5, avg, 1e-9)
	s.True(wcs.RequiresSuppApp())
	s.InDelta(2000.0, wcs.ScholarshipValue(), 1e-9)
}

func (s *StoreSuite) TestUpsertReplacesByID() {
	s.Require().NoError(s.store.Upsert(s.ctx, sampleRecords()))
	s.Require().NoError(s.store.Upsert(s.ctx, []*models.Record{
		{ID: "a", School: "Queen's University", Program: "Commerce", Average: ptr(91.0)},
	}))

	n, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	records, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	avg, ok := records[0].AverageValue()
	s.True(ok)
	s.InDelta(91.0, avg, 1e-9)
}

func TestSQLStoreUpsertRollsBackOnMissingID(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, config.Database{Driver: config.DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	s := NewSQL(conn)

	records := append(sampleRecords(), &models.Record{School: "McMaster University", Program: "Health Sciences"})
	if err := s.Upsert(ctx, records); err == nil {
		t.Fatalf("expected error for record without id")
	}
	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected rollback to leave table empty, got %d rows", n)
	}
}

func TestSQLStoreJoinsCallerTransaction(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, config.Database{Driver: config.DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	s := NewSQL(conn)

	err = tx.Run(ctx, conn, func(ctx context.Context) error {
		if err := s.Upsert(ctx, sampleRecords()); err != nil {
			return err
		}
		n, err := s.Count(ctx)
		if err != nil {
			return err
		}
		if n != 2 {
			t.Errorf("expected rows visible inside tx, got %d", n)
		}
		return sentinel.ErrUnavailable
	})
	if err != sentinel.ErrUnavailable {
		t.Fatalf("expected callback error, got %v", err)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected outer rollback to discard rows, got %d", n)
	}
}

func TestInMemoryUnavailable(t *testing.T) {
	s := NewInMemory(sampleRecords()...)
	s.SetUnavailable(true)

	_, err := s.ListAll(context.Background())
	if err != sentinel.ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	s.SetUnavailable(false)
	records, err := s.ListAll(context.Background())
	if err != nil || len(records) != 2 {
		t.Fatalf("expected recovery, got %d records, err %v", len(records), err)
	}
}

func TestInMemoryReturnsCopies(t *testing.T) {
	s := NewInMemory(sampleRecords()...)
	records, _ := s.ListAll(context.Background())
	records[0].Program = "mutated"

	again, _ := s.ListAll(context.Background())
	if again[0].Program != "Commerce" {
		t.Fatalf("store leaked internal record, got %q", again[0].Program)
	}
}
