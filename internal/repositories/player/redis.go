package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/snakes/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix = "player:"
	leaderboardKey  = "leaderboard:wins"

	fieldGamesPlayed  = "games_played"
	fieldWins         = "wins"
	fieldTotalRolls   = "total_rolls"
	fieldSnakeBites   = "snake_bites"
	fieldLadderClimbs = "ladder_climbs"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func playerKey(name string) string {
	return fmt.Sprintf("%s%s", playerKeyPrefix, name)
}

// RecordResult adds one finished game to a player's record in Redis
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if input == nil || input.Name == "" {
		return errors.New("input and player name cannot be empty")
	}

	wins := int64(0)
	if input.Won {
		wins = 1
	}

	key := playerKey(input.Name)

	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, key, fieldGamesPlayed, 1)
	pipe.HIncrBy(ctx, key, fieldWins, wins)
	pipe.HIncrBy(ctx, key, fieldTotalRolls, int64(input.Stats.TotalRolls))
	pipe.HIncrBy(ctx, key, fieldSnakeBites, int64(input.Stats.SnakeBites))
	pipe.HIncrBy(ctx, key, fieldLadderClimbs, int64(input.Stats.LadderClimbs))
	// every player gets a leaderboard entry, winners move up by one
	pipe.ZIncrBy(ctx, leaderboardKey, float64(wins), input.Name)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// GetPlayerRecord retrieves a player's record by name from Redis
func (r *redisRepository) GetPlayerRecord(ctx context.Context, input *GetPlayerRecordInput) (*models.PlayerRecord, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and player name cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, playerKey(input.Name)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	return recordFromFields(input.Name, fields)
}

// GetLeaderboard retrieves players ranked by wins from Redis
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error) {
	stop := int64(-1)
	if input != nil && input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	names, err := r.client.ZRevRange(ctx, leaderboardKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	// Get all records in one round trip using a pipeline
	pipe := r.client.Pipeline()
	commands := make([]*redis.MapStringStringCmd, 0, len(names))
	for _, name := range names {
		commands = append(commands, pipe.HGetAll(ctx, playerKey(name)))
	}

	if len(commands) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to get leaderboard records: %w", err)
		}
	}

	records := make([]*models.PlayerRecord, 0, len(names))
	for i, cmd := range commands {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get record for %s: %w", names[i], err)
		}

		record, err := recordFromFields(names[i], fields)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return &models.Leaderboard{
		Records: records,
	}, nil
}

func recordFromFields(name string, fields map[string]string) (*models.PlayerRecord, error) {
	record := &models.PlayerRecord{Name: name}

	targets := map[string]*int{
		fieldGamesPlayed:  &record.GamesPlayed,
		fieldWins:         &record.Wins,
		fieldTotalRolls:   &record.TotalRolls,
		fieldSnakeBites:   &record.SnakeBites,
		fieldLadderClimbs: &record.LadderClimbs,
	}

	for field, target := range targets {
		value, ok := fields[field]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s for %s: %w", field, name, err)
		}
		*target = n
	}

	return record, nil
}
