package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"

	"github.com/KirkDiggler/snakes/internal/common/clock"
	"github.com/KirkDiggler/snakes/internal/common/uuid"
	"github.com/KirkDiggler/snakes/internal/dice"
	"github.com/KirkDiggler/snakes/internal/handlers/terminal"
	"github.com/KirkDiggler/snakes/internal/models"
	gameRepo "github.com/KirkDiggler/snakes/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/snakes/internal/repositories/player"
	"github.com/KirkDiggler/snakes/internal/services/cpu"
	"github.com/KirkDiggler/snakes/internal/services/game"
	"github.com/KirkDiggler/snakes/internal/services/messaging"
)

// config is read from the environment and an optional .env file
type config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Persist enables Redis snapshots and the leaderboard
	Persist bool `env:"SNAKES_PERSIST" envDefault:"false"`
}

var colors = []string{"red", "blue", "green", "yellow", "purple", "orange"}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cmd := &cli.Command{
		Name:  "snakes",
		Usage: "play Snakes and Ladders in the terminal",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "player",
				Aliases: []string{"p"},
				Usage:   "human player name, repeat for more players",
				Value:   []string{"Player 1"},
			},
			&cli.IntFlag{
				Name:  "cpu",
				Usage: "number of CPU players",
				Value: 1,
			},
			&cli.StringFlag{
				Name:  "difficulty",
				Usage: "CPU difficulty: easy, medium or hard",
				Value: string(models.DifficultyMedium),
			},
			&cli.BoolFlag{
				Name:  "random",
				Usage: "play on a generated board",
			},
			&cli.IntFlag{
				Name:  "snakes",
				Usage: "snakes on a generated board",
				Value: game.DefaultSnakeCount,
			},
			&cli.IntFlag{
				Name:  "ladders",
				Usage: "ladders on a generated board",
				Value: game.DefaultLadderCount,
			},
			&cli.IntFlag{
				Name:  "dice-min",
				Usage: "lowest dice face",
				Value: dice.DefaultMin,
			},
			&cli.IntFlag{
				Name:  "dice-max",
				Usage: "highest dice face",
				Value: dice.DefaultMax,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed, zero seeds from the clock",
			},
			&cli.BoolFlag{
				Name:  "auto",
				Usage: "roll for human players without waiting for enter",
			},
			&cli.StringFlag{
				Name:  "tone",
				Usage: "message tone: neutral, funny or encouraging",
				Value: string(messaging.ToneFunny),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return play(ctx, cmd, &cfg)
		},
		Commands: []*cli.Command{
			{
				Name:  "leaderboard",
				Usage: "show the players with the most wins",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "number of players to show",
						Value: 10,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return leaderboard(ctx, cmd, &cfg)
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		if errors.Is(err, terminal.ErrQuit) {
			log.Println("Game abandoned")
			return
		}
		log.Fatalf("Error: %v", err)
	}
}

// services are shared by the game and the leaderboard commands
type services struct {
	game    game.Service
	handler *terminal.Handler
	client  *redis.Client
}

func (s *services) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

func setup(ctx context.Context, cmd *cli.Command, cfg *config, persist bool) (*services, error) {
	diceRoller := dice.New(&dice.Config{Seed: cmd.Int64("seed")})
	systemClock := &clock.DefaultClock{}

	gameSvc, err := game.New(&game.Config{
		DiceRoller:    diceRoller,
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	cpuSvc, err := cpu.New(&cpu.Config{
		DiceRoller: diceRoller,
		Clock:      systemClock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cpu service: %w", err)
	}

	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{
		DiceRoller: diceRoller,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	handlerCfg := &terminal.Config{
		In:               os.Stdin,
		Out:              os.Stdout,
		AutoRoll:         cmd.Bool("auto"),
		Difficulty:       models.Difficulty(cmd.String("difficulty")),
		Tone:             messaging.MessageTone(cmd.String("tone")),
		GameService:      gameSvc,
		CPUService:       cpuSvc,
		MessagingService: msgSvc,
	}

	svcs := &services{game: gameSvc}

	if persist {
		client, err := connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		svcs.client = client

		games, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: client})
		if err != nil {
			svcs.Close()
			return nil, fmt.Errorf("failed to create game repository: %w", err)
		}

		players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: client})
		if err != nil {
			svcs.Close()
			return nil, fmt.Errorf("failed to create player repository: %w", err)
		}

		handlerCfg.GameRepo = games
		handlerCfg.PlayerRepo = players
	}

	svcs.handler, err = terminal.New(handlerCfg)
	if err != nil {
		svcs.Close()
		return nil, fmt.Errorf("failed to create terminal handler: %w", err)
	}

	return svcs, nil
}

func play(ctx context.Context, cmd *cli.Command, cfg *config) error {
	svcs, err := setup(ctx, cmd, cfg, cfg.Persist)
	if err != nil {
		return err
	}
	defer svcs.Close()

	var players []game.PlayerInput
	for _, name := range cmd.StringSlice("player") {
		players = append(players, game.PlayerInput{
			Name:  name,
			Color: colors[len(players)%len(colors)],
		})
	}
	for i := 0; i < cmd.Int("cpu"); i++ {
		players = append(players, game.PlayerInput{
			Name:  fmt.Sprintf("CPU %d", i+1),
			Color: colors[len(players)%len(colors)],
			IsCPU: true,
		})
	}

	boardCfg := game.BoardConfig{Mode: game.BoardModeDefault}
	if cmd.Bool("random") {
		boardCfg = game.BoardConfig{
			Mode:        game.BoardModeRandom,
			SnakeCount:  cmd.Int("snakes"),
			LadderCount: cmd.Int("ladders"),
		}
	}

	created, err := svcs.game.CreateGameState(ctx, &game.CreateGameStateInput{
		Players: players,
		Board:   boardCfg,
		DiceMin: cmd.Int("dice-min"),
		DiceMax: cmd.Int("dice-max"),
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if created.BoardFallback {
		log.Printf("Generated board was invalid, using the default board: %v", created.Conflicts)
	}

	_, err = svcs.handler.Play(ctx, &terminal.PlayInput{State: created.State})
	return err
}

func leaderboard(ctx context.Context, cmd *cli.Command, cfg *config) error {
	svcs, err := setup(ctx, cmd, cfg, true)
	if err != nil {
		return err
	}
	defer svcs.Close()

	return svcs.handler.ShowLeaderboard(ctx, cmd.Int("limit"))
}

// connect opens a Redis client and checks the connection
func connect(ctx context.Context, cfg *config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
