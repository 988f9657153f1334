package player

import (
	"context"
	"testing"

	"github.com/KirkDiggler/snakes/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestRecordAndGetPlayerRecord() {
	s.Require().NoError(s.repo.RecordResult(s.ctx, &RecordResultInput{
		Name:  "Alice",
		Won:   true,
		Stats: models.PlayerStats{TotalRolls: 20, SnakeBites: 2, LadderClimbs: 3, TotalDiceValue: 70},
	}))
	s.Require().NoError(s.repo.RecordResult(s.ctx, &RecordResultInput{
		Name:  "Alice",
		Won:   false,
		Stats: models.PlayerStats{TotalRolls: 15, SnakeBites: 1, LadderClimbs: 0, TotalDiceValue: 50},
	}))

	record, err := s.repo.GetPlayerRecord(s.ctx, &GetPlayerRecordInput{Name: "Alice"})
	s.Require().NoError(err)
	s.Equal(&models.PlayerRecord{
		Name:         "Alice",
		GamesPlayed:  2,
		Wins:         1,
		TotalRolls:   35,
		SnakeBites:   3,
		LadderClimbs: 3,
	}, record)
}

func (s *RedisRepositoryTestSuite) TestGetPlayerRecordNotFound() {
	_, err := s.repo.GetPlayerRecord(s.ctx, &GetPlayerRecordInput{Name: "Nobody"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestRecordResultValidatesInput() {
	s.Error(s.repo.RecordResult(s.ctx, nil))
	s.Error(s.repo.RecordResult(s.ctx, &RecordResultInput{}))
}

func (s *RedisRepositoryTestSuite) TestLeaderboardOrderedByWins() {
	results := []RecordResultInput{
		{Name: "Alice", Won: true},
		{Name: "Bob", Won: false},
		{Name: "Carol", Won: true},
		{Name: "Carol", Won: true},
	}
	for i := range results {
		s.Require().NoError(s.repo.RecordResult(s.ctx, &results[i]))
	}

	leaderboard, err := s.repo.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(leaderboard.Records, 3)
	s.Equal("Carol", leaderboard.Records[0].Name)
	s.Equal(2, leaderboard.Records[0].Wins)
	s.Equal("Alice", leaderboard.Records[1].Name)
	s.Equal("Bob", leaderboard.Records[2].Name)
	s.Equal(0, leaderboard.Records[2].Wins)
	s.Equal(1, leaderboard.Records[2].GamesPlayed)

	top, err := s.repo.GetLeaderboard(s.ctx, &GetLeaderboardInput{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(top.Records, 1)
	s.Equal("Carol", top.Records[0].Name)
}

func (s *RedisRepositoryTestSuite) TestEmptyLeaderboard() {
	leaderboard, err := s.repo.GetLeaderboard(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(leaderboard.Records)
}
