package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/snakes/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix    = "game:"
	historyKeySuffix = ":history"
	activeGamesKey   = "active_games"
)

var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("game not found")

	// ErrSnapshotNotFound is returned when no snapshot was saved for a turn
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
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

func gameKey(gameID string) string {
	return fmt.Sprintf("%s%s", gameKeyPrefix, gameID)
}

func historyKey(gameID string) string {
	return fmt.Sprintf("%s%s%s", gameKeyPrefix, gameID, historyKeySuffix)
}

// SaveGame persists a snapshot to Redis. The snapshot becomes the game's
// latest state and is stored in the history under its turn number.
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	// Marshal the game to JSON
	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.TxPipeline()

	pipe.Set(ctx, gameKey(input.Game.ID), gameJSON, 0) // No expiration for now
	pipe.HSet(ctx, historyKey(input.Game.ID), strconv.Itoa(input.Game.Turn), gameJSON)

	// Only games still in play are listed as active
	if input.Game.Status.IsPlaying() {
		pipe.SAdd(ctx, activeGamesKey, input.Game.ID)
	} else {
		pipe.SRem(ctx, activeGamesKey, input.Game.ID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves the latest snapshot of a game from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.GameState, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameJSON, err := r.client.Get(ctx, gameKey(input.GameID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return unmarshalGame(gameJSON)
}

// GetSnapshot retrieves the snapshot saved after a given turn
func (r *redisRepository) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.GameState, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameJSON, err := r.client.HGet(ctx, historyKey(input.GameID), strconv.Itoa(input.Turn)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return unmarshalGame(gameJSON)
}

// ListSnapshots retrieves every saved snapshot of a game ordered by turn
func (r *redisRepository) ListSnapshots(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	entries, err := r.client.HGetAll(ctx, historyKey(input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshots: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrGameNotFound
	}

	snapshots := make([]*models.GameState, 0, len(entries))
	for turn, gameJSON := range entries {
		snapshot, err := unmarshalGame(gameJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot for turn %s: %w", turn, err)
		}
		snapshots = append(snapshots, snapshot)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Turn < snapshots[j].Turn
	})

	return &ListSnapshotsOutput{
		Snapshots: snapshots,
	}, nil
}

// DeleteGame removes a game and its history from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	// Make sure the game exists first
	if _, err := r.GetGame(ctx, &GetGameInput{GameID: input.GameID}); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, gameKey(input.GameID), historyKey(input.GameID))
	pipe.SRem(ctx, activeGamesKey, input.GameID)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// GetActiveGames retrieves all games still in play from Redis
func (r *redisRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	// Get all active game IDs from the set
	gameIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	// If there are no active games, return an empty slice
	if len(gameIDs) == 0 {
		return &GetActiveGamesOutput{
			Games: []*models.GameState{},
		}, nil
	}

	// Get all games in one round trip using a pipeline
	pipe := r.client.Pipeline()
	gameCommands := make(map[string]*redis.StringCmd, len(gameIDs))
	for _, gameID := range gameIDs {
		gameCommands[gameID] = pipe.Get(ctx, gameKey(gameID))
	}

	// Missing keys surface as redis.Nil on the individual commands
	_, err = pipe.Exec(ctx)
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	games := make([]*models.GameState, 0, len(gameIDs))
	for gameID, cmd := range gameCommands {
		gameJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Game was deleted between getting the IDs and fetching the game
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
		}

		game, err := unmarshalGame(gameJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to read game %s: %w", gameID, err)
		}

		games = append(games, game)
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})

	return &GetActiveGamesOutput{
		Games: games,
	}, nil
}

func unmarshalGame(gameJSON string) (*models.GameState, error) {
	var game models.GameState
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}
	return &game, nil
}
