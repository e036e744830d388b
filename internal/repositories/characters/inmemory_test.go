package characters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/errors"
)

type InMemoryRepoTestSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context
}

func (s *InMemoryRepoTestSuite) SetupTest() {
	s.repo = NewInMemoryRepository()
	s.ctx = context.Background()
}

func TestInMemoryRepoTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepoTestSuite))
}

func (s *InMemoryRepoTestSuite) testCharacter(id, ownerID string) *character.Character {
	c := character.NewCharacter(id)
	c.OwnerID = ownerID
	c.Name = "Seren"
	c.Level = 3
	return c
}

func (s *InMemoryRepoTestSuite) TestCreateAndGet() {
	char := s.testCharacter("char-1", "owner-1")

	s.NoError(s.repo.Create(s.ctx, char))

	got, err := s.repo.Get(s.ctx, "char-1")
	s.NoError(err)
	s.Equal("char-1", got.ID)
	s.Equal("Seren", got.Name)

	// Creating the same ID again fails.
	err = s.repo.Create(s.ctx, s.testCharacter("char-1", "owner-1"))
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *InMemoryRepoTestSuite) TestCloneIsolation() {
	char := s.testCharacter("char-1", "owner-1")
	s.NoError(s.repo.Create(s.ctx, char))

	// Mutating the original after Create must not affect the stored copy.
	char.Name = "Changed"

	got, err := s.repo.Get(s.ctx, "char-1")
	s.NoError(err)
	s.Equal("Seren", got.Name)

	// Mutating a returned copy must not affect the stored copy either.
	got.Name = "Changed Again"

	again, err := s.repo.Get(s.ctx, "char-1")
	s.NoError(err)
	s.Equal("Seren", again.Name)
}

func (s *InMemoryRepoTestSuite) TestGetByOwner() {
	s.NoError(s.repo.Create(s.ctx, s.testCharacter("char-2", "owner-1")))
	s.NoError(s.repo.Create(s.ctx, s.testCharacter("char-1", "owner-1")))
	s.NoError(s.repo.Create(s.ctx, s.testCharacter("char-3", "owner-2")))

	chars, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.NoError(err)
	s.Len(chars, 2)
	s.Equal("char-1", chars[0].ID)
	s.Equal("char-2", chars[1].ID)

	chars, err = s.repo.GetByOwner(s.ctx, "owner-3")
	s.NoError(err)
	s.Empty(chars)
}

func (s *InMemoryRepoTestSuite) TestUpdate() {
	s.NoError(s.repo.Create(s.ctx, s.testCharacter("char-1", "owner-1")))

	updated := s.testCharacter("char-1", "owner-1")
	updated.Level = 4
	s.NoError(s.repo.Update(s.ctx, updated))

	got, err := s.repo.Get(s.ctx, "char-1")
	s.NoError(err)
	s.Equal(4, got.Level)

	err = s.repo.Update(s.ctx, s.testCharacter("missing", "owner-1"))
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepoTestSuite) TestDelete() {
	s.NoError(s.repo.Create(s.ctx, s.testCharacter("char-1", "owner-1")))

	s.NoError(s.repo.Delete(s.ctx, "char-1"))

	_, err := s.repo.Get(s.ctx, "char-1")
	s.Error(err)
	s.True(errors.IsNotFound(err))

	err = s.repo.Delete(s.ctx, "char-1")
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepoTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, "")
	s.Error(err)
}
