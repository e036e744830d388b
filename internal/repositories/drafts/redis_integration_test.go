//go:build integration

package drafts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/errors"
	"github.com/KirkDiggler/realm-forge/internal/repositories/drafts"
	"github.com/KirkDiggler/realm-forge/internal/testutils"
)

type RedisIntegrationTestSuite struct {
	suite.Suite
	container *testutils.RedisContainer
	repo      drafts.Repository
	ctx       context.Context
}

func (s *RedisIntegrationTestSuite) SetupSuite() {
	s.container = testutils.StartRedisContainer(s.T())
}

func (s *RedisIntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.container.FlushAll(s.ctx))
	s.repo = drafts.NewRedisRepository(&drafts.RedisRepoConfig{
		Client: s.container.Client,
		TTL:    time.Hour,
	})
}

func TestRedisIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisIntegrationTestSuite))
}

func (s *RedisIntegrationTestSuite) TestLifecycle() {
	draft := testutils.CreateTestDraft("draft-1", "owner-1")

	s.Require().NoError(s.repo.Create(s.ctx, draft))

	ttl, err := s.container.Client.TTL(s.ctx, "draft:draft-1").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0), "draft key must expire")

	got, err := s.repo.Get(s.ctx, "draft-1")
	s.Require().NoError(err)
	s.Equal("draft-1", got.ID)
	s.Equal("owner-1", got.OwnerID)
	s.Equal(character.StepRace, got.CurrentStep)

	got.CurrentStep = character.StepAncestry
	s.Require().NoError(s.repo.Update(s.ctx, got))

	updated, err := s.repo.Get(s.ctx, "draft-1")
	s.Require().NoError(err)
	s.Equal(character.StepAncestry, updated.CurrentStep)

	s.Require().NoError(s.repo.Delete(s.ctx, "draft-1"))

	_, err = s.repo.Get(s.ctx, "draft-1")
	s.True(errors.IsNotFound(err))
}

func (s *RedisIntegrationTestSuite) TestGetRefreshesTTL() {
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestDraft("draft-1", "owner-1")))

	// Shrink the TTL out of band, then confirm a read restores it.
	s.Require().NoError(s.container.Client.Expire(s.ctx, "draft:draft-1", 5*time.Second).Err())

	_, err := s.repo.Get(s.ctx, "draft-1")
	s.Require().NoError(err)

	ttl, err := s.container.Client.TTL(s.ctx, "draft:draft-1").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Minute)
}

func (s *RedisIntegrationTestSuite) TestExpiredDraftPrunedFromOwnerSet() {
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestDraft("draft-1", "owner-1")))
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestDraft("draft-2", "owner-1")))

	// Drop one draft key directly, as TTL expiry would.
	s.Require().NoError(s.container.Client.Del(s.ctx, "draft:draft-1").Err())

	live, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Require().Len(live, 1)
	s.Equal("draft-2", live[0].ID)

	ids, err := s.container.Client.SMembers(s.ctx, "owner:owner-1:drafts").Result()
	s.Require().NoError(err)
	s.Equal([]string{"draft-2"}, ids)
}
