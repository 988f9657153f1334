package cpu

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/snakes/internal/common/clock/mocks"
	diceMocks "github.com/KirkDiggler/snakes/internal/dice/mocks"
	"github.com/KirkDiggler/snakes/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CPUServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *mocks.MockClock
	cpuService     *service
	ctx            context.Context
	testTime       time.Time
	player         models.Player
}

func (s *CPUServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.player = models.Player{
		ID:       "cpu-id",
		Name:     "CPU",
		IsCPU:    true,
		Position: 42,
		IsActive: true,
	}

	svc, err := New(&Config{
		DiceRoller: s.mockDiceRoller,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.cpuService = svc
}

func (s *CPUServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCPUServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CPUServiceTestSuite))
}

// elapsed returns a channel that has already fired
func (s *CPUServiceTestSuite) elapsed() <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- s.testTime
	return ch
}

func (s *CPUServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilDiceRoller)

	_, err = New(&Config{DiceRoller: s.mockDiceRoller})
	s.ErrorIs(err, ErrNilClock)
}

func (s *CPUServiceTestSuite) TestDelayRanges() {
	testCases := []struct {
		difficulty models.Difficulty
		min        int
		max        int
	}{
		{models.DifficultyEasy, 1000, 2000},
		{models.DifficultyMedium, 500, 1000},
		{models.DifficultyHard, 200, 500},
	}

	for _, tc := range testCases {
		s.mockDiceRoller.EXPECT().Roll(tc.min, tc.max).Return(tc.min + 1)
		s.Equal(time.Duration(tc.min+1)*time.Millisecond, s.cpuService.DelayFor(tc.difficulty), string(tc.difficulty))
	}
}

func (s *CPUServiceTestSuite) TestUnknownDifficultyUsesFixedDelay() {
	// no roll is drawn for the delay
	s.Equal(DefaultDelay, s.cpuService.DelayFor("impossible"))
}

func (s *CPUServiceTestSuite) TestRequestMoveWaitsThenRolls() {
	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Roll(200, 500).Return(300),
		s.mockClock.EXPECT().After(300*time.Millisecond).Return(s.elapsed()),
		s.mockDiceRoller.EXPECT().Roll(1, 6).Return(5),
	)

	output, err := s.cpuService.RequestMove(s.ctx, &RequestMoveInput{
		Player:     s.player,
		Difficulty: models.DifficultyHard,
	})
	s.Require().NoError(err)
	s.Equal(5, output.DiceValue)
	s.Equal(300*time.Millisecond, output.Delay)
	// 58 squares from the end is outside every threshold
	s.False(output.Aggressive)
}

func (s *CPUServiceTestSuite) TestRequestMoveCustomDiceRange() {
	gomock.InOrder(
		s.mockClock.EXPECT().After(DefaultDelay).Return(s.elapsed()),
		s.mockDiceRoller.EXPECT().Roll(1, 12).Return(11),
	)

	output, err := s.cpuService.RequestMove(s.ctx, &RequestMoveInput{
		Player:  s.player,
		DiceMin: 1,
		DiceMax: 12,
	})
	s.Require().NoError(err)
	s.Equal(11, output.DiceValue)
}

func (s *CPUServiceTestSuite) TestRequestMoveReturnsWhenContextEnds() {
	never := make(chan time.Time)
	s.mockDiceRoller.EXPECT().Roll(1000, 2000).Return(1500)
	s.mockClock.EXPECT().After(1500 * time.Millisecond).Return((<-chan time.Time)(never))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	output, err := s.cpuService.RequestMove(ctx, &RequestMoveInput{
		Player:     s.player,
		Difficulty: models.DifficultyEasy,
	})
	s.ErrorIs(err, context.Canceled)
	s.Nil(output)
}

func (s *CPUServiceTestSuite) TestRequestMoveNilInput() {
	_, err := s.cpuService.RequestMove(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *CPUServiceTestSuite) TestShouldPlayAggressively() {
	testCases := []struct {
		name       string
		position   int
		difficulty models.Difficulty
		expected   bool
	}{
		{"easy at threshold", 80, models.DifficultyEasy, true},
		{"easy just outside", 79, models.DifficultyEasy, false},
		{"medium at threshold", 70, models.DifficultyMedium, true},
		{"medium just outside", 69, models.DifficultyMedium, false},
		{"hard at threshold", 60, models.DifficultyHard, true},
		{"hard just outside", 59, models.DifficultyHard, false},
		{"on the winning square", 100, models.DifficultyEasy, true},
		{"unknown difficulty", 99, "impossible", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.player.Position = tc.position
			s.Equal(tc.expected, s.cpuService.ShouldPlayAggressively(s.player, tc.difficulty))
		})
	}
}
