//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"unistats/internal/tips/models"
	"unistats/internal/tips/store"
	"unistats/pkg/testutil/containers"
)

type PostgresTipsSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.SQLStore
}

func TestPostgresTipsSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresTipsSuite))
}

func (s *PostgresTipsSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewSQL(s.postgres.DB)
}

func (s *PostgresTipsSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "tips"))
}

func (s *PostgresTipsSuite) TestUpsertAndListKeepTimestamps() {
	ctx := context.Background()
	at := time.Date(2025, 2, 14, 10, 30, 0, 0, time.UTC)
	s.Require().NoError(s.store.Upsert(ctx, []*models.Tip{
		{ID: "b", Title: "Later", Content: "x", UserID: "u1", CreatedAt: at.Add(time.Minute), UpdatedAt: at.Add(time.Minute)},
		{ID: "a", Title: "Earlier", Content: "y", UserID: "u2", CreatedAt: at, UpdatedAt: at},
	}))
	s.Require().NoError(s.store.Upsert(ctx, []*models.Tip{
		{ID: "a", Title: "Earlier, edited", Content: "y", UserID: "u2", CreatedAt: at, UpdatedAt: at.Add(time.Hour)},
	}))

	tips, err := s.store.ListAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(tips, 2)
	s.Equal("a", tips[0].ID)
	s.Equal("Earlier, edited", tips[0].Title)
	s.True(tips[0].CreatedAt.Equal(at))
	s.True(tips[0].UpdatedAt.Equal(at.Add(time.Hour)))
	s.Nil(tips[1].AttachmentFileURL)
}
