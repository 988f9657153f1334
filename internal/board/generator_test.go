package board

import (
	"testing"

	"github.com/KirkDiggler/snakes/internal/dice"
	diceMocks "github.com/KirkDiggler/snakes/internal/dice/mocks"
	"github.com/KirkDiggler/snakes/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GeneratorTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	generator  *Generator
}

func (s *GeneratorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.generator = NewGenerator(s.mockRoller)
}

func (s *GeneratorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) TestGenerateSnakesUsesPositionalRanges() {
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(20, 95).Return(50),
		s.mockRoller.EXPECT().Roll(10, 45).Return(30),
		s.mockRoller.EXPECT().Roll(20, 95).Return(22),
		s.mockRoller.EXPECT().Roll(1, 17).Return(1),
	)

	snakes := s.generator.GenerateSnakes(2)

	s.Equal([]models.Snake{{Start: 50, End: 30}, {Start: 22, End: 1}}, snakes)
}

func (s *GeneratorTestSuite) TestGenerateSnakesRetriesUsedPositions() {
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(20, 95).Return(50),
		s.mockRoller.EXPECT().Roll(10, 45).Return(30),
		// collides with the first snake's end
		s.mockRoller.EXPECT().Roll(20, 95).Return(30),
		s.mockRoller.EXPECT().Roll(1, 25).Return(5),
		s.mockRoller.EXPECT().Roll(20, 95).Return(60),
		s.mockRoller.EXPECT().Roll(20, 55).Return(40),
	)

	snakes := s.generator.GenerateSnakes(2)

	s.Equal([]models.Snake{{Start: 50, End: 30}, {Start: 60, End: 40}}, snakes)
}

func (s *GeneratorTestSuite) TestGenerateSnakesSkipsAfterMaxAttempts() {
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(20, 95).Return(50),
		s.mockRoller.EXPECT().Roll(10, 45).Return(30),
	)
	// every later draw lands on the same squares
	s.mockRoller.EXPECT().Roll(20, 95).Return(50).Times(maxAttempts)
	s.mockRoller.EXPECT().Roll(10, 45).Return(30).Times(maxAttempts)

	snakes := s.generator.GenerateSnakes(2)

	s.Equal([]models.Snake{{Start: 50, End: 30}}, snakes)
}

func (s *GeneratorTestSuite) TestGenerateLaddersAvoidsExistingSnakes() {
	existing := []models.Snake{{Start: 50, End: 30}}

	gomock.InOrder(
		// starts on the snake's end
		s.mockRoller.EXPECT().Roll(1, 80).Return(30),
		s.mockRoller.EXPECT().Roll(35, 70).Return(60),
		s.mockRoller.EXPECT().Roll(1, 80).Return(70),
		s.mockRoller.EXPECT().Roll(75, 100).Return(100),
	)

	ladders := s.generator.GenerateLadders(1, existing)

	s.Equal([]models.Ladder{{Start: 70, End: 100}}, ladders)
}

func (s *GeneratorTestSuite) TestGenerateZero() {
	s.Empty(s.generator.GenerateSnakes(0))
	s.Empty(s.generator.GenerateLadders(0, nil))
}

func (s *GeneratorTestSuite) TestCreateRandomBoardKeepsValidLayout() {
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(20, 95).Return(50),
		s.mockRoller.EXPECT().Roll(10, 45).Return(30),
		s.mockRoller.EXPECT().Roll(1, 80).Return(3),
		s.mockRoller.EXPECT().Roll(8, 43).Return(40),
	)

	result := s.generator.CreateRandomBoard(1, 1)

	s.False(result.Fallback)
	s.Empty(result.Conflicts)
	s.Equal([]models.Snake{{Start: 50, End: 30}}, result.Snakes)
	s.Equal([]models.Ladder{{Start: 3, End: 40}}, result.Ladders)
}

func TestGeneratedBoardsAreValid(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		g := NewGenerator(dice.New(&dice.Config{Seed: seed}))

		result := g.CreateRandomBoard(8, 8)
		valid, conflicts := ValidateConfiguration(result.Snakes, result.Ladders)
		if !valid {
			t.Fatalf("seed %d produced invalid board: %v", seed, conflicts)
		}

		for _, sn := range result.Snakes {
			if sn.End >= sn.Start || sn.Start < minSnakeStart || sn.Start > maxSnakeStart {
				t.Fatalf("seed %d produced bad snake %+v", seed, sn)
			}
		}
		for _, l := range result.Ladders {
			if l.End <= l.Start || l.Start < minLadderStart || l.Start > maxLadderStart || l.End > models.BoardSize {
				t.Fatalf("seed %d produced bad ladder %+v", seed, l)
			}
		}
	}
}

func TestGeneratorNeverExceedsRequestedCount(t *testing.T) {
	g := NewGenerator(dice.New(&dice.Config{Seed: 3}))

	snakes := g.GenerateSnakes(30)
	ladders := g.GenerateLadders(30, snakes)

	if len(snakes) > 30 || len(ladders) > 30 {
		t.Fatalf("got %d snakes and %d ladders", len(snakes), len(ladders))
	}
	if valid, conflicts := ValidateConfiguration(snakes, ladders); !valid {
		t.Fatalf("crowded board is invalid: %v", conflicts)
	}
}
