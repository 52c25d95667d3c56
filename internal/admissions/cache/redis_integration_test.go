//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"unistats/internal/admissions/cache"
	"unistats/internal/admissions/models"
	"unistats/pkg/platform/sentinel"
	"unistats/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *cache.Redis
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.cache = cache.NewRedis(s.redis.Client)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestMissIsNotFound() {
	_, err := s.cache.Get(context.Background(), cache.SnapshotKey)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisCacheSuite) TestRoundTripKeepsOptionalFields() {
	ctx := context.Background()
	avg := 88.5
	code := "TEB"
	records := []*models.Record{
		{ID: "1", School: "University of Toronto", Program: "Engineering", OUACCode: &code, Average: &avg},
		{ID: "2", School: "University of Toronto", Program: "Engineering"},
	}
	s.Require().NoError(s.cache.Set(ctx, cache.SnapshotKey, records, time.Minute))

	got, err := s.cache.Get(ctx, cache.SnapshotKey)
	s.Require().NoError(err)
	s.Equal(records, got)

	ttl, err := s.redis.Client.TTL(ctx, cache.SnapshotKey).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func (s *RedisCacheSuite) TestDelete() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, cache.SnapshotKey, nil, time.Minute))
	s.Require().NoError(s.cache.Delete(ctx, cache.SnapshotKey))
	_, err := s.cache.Get(ctx, cache.SnapshotKey)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
