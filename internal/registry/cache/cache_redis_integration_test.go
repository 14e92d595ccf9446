//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"udaan/internal/registry/cache"
	"udaan/internal/registry/models"
	"udaan/pkg/platform/sentinel"
	"udaan/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *cache.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.cache = cache.NewRedis(s.redis.Client, time.Minute)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestEntityRoundTrip() {
	ctx := context.Background()
	cin := "L17110MH1973PLC019786"
	want := models.Entity{ID: 1, Name: "Acme Industries", CIN: &cin, CreatedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}
	s.Require().NoError(s.cache.Set(ctx, "entity:1", want))

	var got models.Entity
	s.Require().NoError(s.cache.Get(ctx, "entity:1", &got))
	s.Equal(want.Name, got.Name)
	s.Equal(*want.CIN, *got.CIN)
	s.True(want.CreatedAt.Equal(got.CreatedAt))
}

func (s *RedisCacheSuite) TestMiss() {
	var got models.Entity
	s.ErrorIs(s.cache.Get(context.Background(), "entity:404", &got), sentinel.ErrNotFound)
}

func (s *RedisCacheSuite) TestTTLApplied() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, "property:2", models.Property{ID: 2}))

	ttl, err := s.redis.Client.TTL(ctx, "udaan:record:property:2").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}
