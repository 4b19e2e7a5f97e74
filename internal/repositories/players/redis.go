package players

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	redisclient "github.com/KirkDiggler/arena-api/internal/redis"
)

const gladiatorKeyPrefix = "gladiator:player:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("gladiator for player %s not found", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get gladiator for player %s", input.PlayerID)
	}

	var g arena.Gladiator
	if err := json.Unmarshal([]byte(result), &g); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal gladiator")
	}

	return &GetOutput{Gladiator: &g}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Gladiator)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal gladiator")
	}

	if err := r.client.Set(ctx, GetKey(input.Gladiator.PlayerID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save gladiator for player %s", input.Gladiator.PlayerID)
	}

	return &SaveOutput{Gladiator: input.Gladiator.Clone()}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	deleted, err := r.client.Del(ctx, GetKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete gladiator for player %s", input.PlayerID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("gladiator for player %s not found", input.PlayerID)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a player's gladiator
// Exposed for testing purposes
func GetKey(playerID string) string {
	return gladiatorKeyPrefix + playerID
}
