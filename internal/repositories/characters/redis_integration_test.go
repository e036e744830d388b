//go:build integration

package characters_test

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/realm-forge/internal/errors"
	"github.com/KirkDiggler/realm-forge/internal/repositories/characters"
	"github.com/KirkDiggler/realm-forge/internal/testutils"
)

type RedisIntegrationTestSuite struct {
	suite.Suite
	client redis.UniversalClient
	repo   characters.Repository
	ctx    context.Context
}

func (s *RedisIntegrationTestSuite) SetupTest() {
	s.client = testutils.CreateTestRedisClient(s.T(), nil)
	s.repo = characters.NewRedisRepository(&characters.RedisRepoConfig{Client: s.client})
	s.ctx = context.Background()
}

func TestRedisIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisIntegrationTestSuite))
}

func (s *RedisIntegrationTestSuite) TestLifecycle() {
	char := testutils.CreateTestCharacter("char-1", "owner-1")

	s.Require().NoError(s.repo.Create(s.ctx, char))
	s.False(char.CreatedAt.IsZero())

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal("char-1", got.ID)
	s.Equal("owner-1", got.OwnerID)
	s.Equal("Seren", got.Name)
	s.Equal(3, got.Level)
	s.Equal(char.Spellcrafting.SaveDC, got.Spellcrafting.SaveDC)

	got.Level = 4
	s.Require().NoError(s.repo.Update(s.ctx, got))

	updated, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(4, updated.Level)

	s.Require().NoError(s.repo.Delete(s.ctx, "char-1"))

	_, err = s.repo.Get(s.ctx, "char-1")
	s.True(errors.IsNotFound(err))
}

func (s *RedisIntegrationTestSuite) TestGetByOwner() {
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestCharacter("char-2", "owner-1")))
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestCharacter("char-1", "owner-1")))
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestCharacter("char-3", "owner-2")))

	chars, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Len(chars, 2)
	s.Equal("char-1", chars[0].ID)
	s.Equal("char-2", chars[1].ID)
}

func (s *RedisIntegrationTestSuite) TestDeleteRemovesOwnerIndex() {
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestCharacter("char-1", "owner-1")))
	s.Require().NoError(s.repo.Delete(s.ctx, "char-1"))

	chars, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Empty(chars)
}
