package encounters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dmgrid/encounter-api/internal/errors"
	"github.com/dmgrid/encounter-api/internal/pkg/clock"
	"github.com/dmgrid/encounter-api/internal/repositories/encounters"
	"github.com/dmgrid/encounter-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    encounters.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.clock = &clock.Fixed{T: time.Date(2025, 3, 14, 19, 30, 0, 0, time.UTC)}

	repo, err := encounters.NewRedisRepository(&encounters.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	snap := testutils.NewTestSnapshot()

	saveOut, err := s.repo.Save(s.ctx, &encounters.SaveInput{
		Name:     "goblin ambush",
		Snapshot: snap,
	})
	s.Require().NoError(err)
	s.Equal(s.clock.T, saveOut.Saved.SavedAt)

	getOut, err := s.repo.Get(s.ctx, &encounters.GetInput{Name: "goblin ambush"})
	s.Require().NoError(err)
	s.Equal("goblin ambush", getOut.Saved.Name)
	s.Equal(snap.Round, getOut.Saved.Snapshot.Round)
	s.Require().Len(getOut.Saved.Snapshot.Participants, 2)
	s.Equal("Selis", getOut.Saved.Snapshot.Participants[0].Name)
	s.Len(getOut.Saved.Snapshot.CombatLog, 1)
}

func (s *RedisRepositoryTestSuite) TestSave_Overwrites() {
	snap := testutils.NewTestSnapshot()
	_, err := s.repo.Save(s.ctx, &encounters.SaveInput{Name: "slot", Snapshot: snap})
	s.Require().NoError(err)

	snap.Round = 7
	_, err = s.repo.Save(s.ctx, &encounters.SaveInput{Name: "slot", Snapshot: snap})
	s.Require().NoError(err)

	getOut, err := s.repo.Get(s.ctx, &encounters.GetInput{Name: "slot"})
	s.Require().NoError(err)
	s.Equal(7, getOut.Saved.Snapshot.Round)

	listOut, err := s.repo.List(s.ctx, &encounters.ListInput{})
	s.Require().NoError(err)
	s.Len(listOut.Saves, 1, "overwriting must not duplicate the index entry")
}

func (s *RedisRepositoryTestSuite) TestSave_RequiresNameAndSnapshot() {
	_, err := s.repo.Save(s.ctx, &encounters.SaveInput{Snapshot: testutils.NewTestSnapshot()})
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.CodeOf(err))

	_, err = s.repo.Save(s.ctx, &encounters.SaveInput{Name: "slot"})
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.CodeOf(err))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, &encounters.GetInput{Name: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestList_NewestFirst() {
	snap := testutils.NewTestSnapshot()

	_, err := s.repo.Save(s.ctx, &encounters.SaveInput{Name: "older", Snapshot: snap})
	s.Require().NoError(err)

	s.clock.T = s.clock.T.Add(time.Hour)
	_, err = s.repo.Save(s.ctx, &encounters.SaveInput{Name: "newer", Snapshot: snap})
	s.Require().NoError(err)

	listOut, err := s.repo.List(s.ctx, &encounters.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(listOut.Saves, 2)
	s.Equal("newer", listOut.Saves[0].Name)
	s.Equal("older", listOut.Saves[1].Name)
	s.Equal(2, listOut.Saves[0].ParticipantCount)
	s.Equal(2, listOut.Saves[0].Round)
}

func (s *RedisRepositoryTestSuite) TestList_Empty() {
	listOut, err := s.repo.List(s.ctx, &encounters.ListInput{})
	s.Require().NoError(err)
	s.Empty(listOut.Saves)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, &encounters.SaveInput{
		Name:     "doomed",
		Snapshot: testutils.NewTestSnapshot(),
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &encounters.DeleteInput{Name: "doomed"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &encounters.GetInput{Name: "doomed"})
	s.True(errors.IsNotFound(err))

	listOut, err := s.repo.List(s.ctx, &encounters.ListInput{})
	s.Require().NoError(err)
	s.Empty(listOut.Saves)
}

func (s *RedisRepositoryTestSuite) TestDelete_NotFound() {
	_, err := s.repo.Delete(s.ctx, &encounters.DeleteInput{Name: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestLiveSnapshotRoundTrip() {
	snap := testutils.NewTestSnapshot()

	_, err := s.repo.SaveLive(s.ctx, &encounters.SaveLiveInput{Snapshot: snap})
	s.Require().NoError(err)

	out, err := s.repo.GetLive(s.ctx, &encounters.GetLiveInput{})
	s.Require().NoError(err)
	s.Equal(snap.Round, out.Snapshot.Round)
	s.Equal(snap.CurrentIndex, out.Snapshot.CurrentIndex)
	s.Require().Len(out.Snapshot.Participants, 2)
	s.Equal("Goblin", out.Snapshot.Participants[1].Name)
}

func (s *RedisRepositoryTestSuite) TestGetLive_NotFound() {
	_, err := s.repo.GetLive(s.ctx, &encounters.GetLiveInput{})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
