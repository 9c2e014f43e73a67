package player_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/character"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/repositories/player"
)

type InMemoryTestSuite struct {
	suite.Suite
	repo *player.InMemoryRepository
	ctx  context.Context
}

func TestInMemoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) SetupTest() {
	s.repo = player.NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryTestSuite) TestCreateAndGet() {
	hero := character.NewNPC("player_1", "Aria", 100)

	created, err := s.repo.Create(s.ctx, &player.CreateInput{Character: hero})
	s.Require().NoError(err)
	s.Same(hero, created.Character)

	got, err := s.repo.Get(s.ctx, &player.GetInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Same(hero, got.Character, "the stored character is live")
}

func (s *InMemoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, &player.CreateInput{Character: character.NewNPC("player_1", "Aria", 100)})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, &player.CreateInput{Character: character.NewNPC("player_1", "Bram", 100)})
	s.True(errors.IsAlreadyExists(err))

	got, err := s.repo.Get(s.ctx, &player.GetInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Equal("Aria", got.Character.Name())
}

func (s *InMemoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &player.GetInput{PlayerID: "ghost"})
	s.True(errors.IsNotFound(err))
	s.Equal("ghost", errors.GetMeta(err)["player_id"])
}

func (s *InMemoryTestSuite) TestInvalidInput() {
	testCases := []struct {
		name string
		call func() error
	}{
		{"nil create", func() error { _, err := s.repo.Create(s.ctx, nil); return err }},
		{"nil character", func() error { _, err := s.repo.Create(s.ctx, &player.CreateInput{}); return err }},
		{"empty id", func() error {
			_, err := s.repo.Create(s.ctx, &player.CreateInput{Character: character.NewNPC("", "x", 1)})
			return err
		}},
		{"nil get", func() error { _, err := s.repo.Get(s.ctx, nil); return err }},
		{"empty player id", func() error { _, err := s.repo.Get(s.ctx, &player.GetInput{}); return err }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(errors.IsInvalidArgument(tc.call()))
		})
	}
}

func (s *InMemoryTestSuite) TestListOrdered() {
	for _, id := range []string{"player_c", "player_a", "player_b"} {
		_, err := s.repo.Create(s.ctx, &player.CreateInput{Character: character.NewNPC(id, id, 100)})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, &player.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 3)
	s.Equal("player_a", out.Characters[0].GetID())
	s.Equal("player_b", out.Characters[1].GetID())
	s.Equal("player_c", out.Characters[2].GetID())
}

func (s *InMemoryTestSuite) TestConcurrentCreate() {
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("player_%d", i%5)
			_, _ = s.repo.Create(s.ctx, &player.CreateInput{Character: character.NewNPC(id, id, 100)})
		}(i)
	}
	wg.Wait()

	out, err := s.repo.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(out.Characters, 5)
}
