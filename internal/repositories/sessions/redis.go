package sessions

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/arena-api/internal/engine/combat"
	"github.com/KirkDiggler/arena-api/internal/errors"
	redisclient "github.com/KirkDiggler/arena-api/internal/redis"
)

const (
	sessionKeyPrefix = "combat:session:"
	activeKeyPrefix  = "combat:active:"
)

// clearIfMatches deletes KEYS[1] only when it still holds ARGV[1].
var clearIfMatches = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis session repository.
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

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal combat session")
	}

	if err := r.client.Set(ctx, SessionKey(input.Session.ID), data, ttlOrDefault(input.TTL)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save combat session %s", input.Session.ID)
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	result, err := r.client.Get(ctx, SessionKey(input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("combat session %s not found", input.SessionID)
		}
		return nil, errors.Wrapf(err, "failed to get combat session %s", input.SessionID)
	}

	var session combat.Session
	if err := json.Unmarshal([]byte(result), &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal combat session")
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	deleted, err := r.client.Del(ctx, SessionKey(input.SessionID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete combat session %s", input.SessionID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("combat session %s not found", input.SessionID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) SetActive(ctx context.Context, input SetActiveInput) (*SetActiveOutput, error) {
	if err := validateSetActive(input); err != nil {
		return nil, err
	}

	key := ActiveKey(input.PlayerID)
	pipe := r.client.TxPipeline()
	prev := pipe.Get(ctx, key)
	pipe.Set(ctx, key, input.SessionID, ttlOrDefault(input.TTL))

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to set active session for player %s", input.PlayerID)
	}

	previous, err := prev.Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "failed to read previous active session")
	}

	return &SetActiveOutput{PreviousSessionID: previous}, nil
}

func (r *redisRepository) GetActive(ctx context.Context, input GetActiveInput) (*GetActiveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	id, err := r.client.Get(ctx, ActiveKey(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf(errActiveNotExists, input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get active session for player %s", input.PlayerID)
	}

	return &GetActiveOutput{SessionID: id}, nil
}

func (r *redisRepository) ClearActive(ctx context.Context, input ClearActiveInput) (*ClearActiveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	n, err := clearIfMatches.Run(ctx, r.client, []string{ActiveKey(input.PlayerID)}, input.SessionID).Int()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear active session for player %s", input.PlayerID)
	}

	return &ClearActiveOutput{Cleared: n > 0}, nil
}

// SessionKey returns the Redis key for a combat session
func SessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// ActiveKey returns the Redis key for a player's active session slot
func ActiveKey(playerID string) string {
	return activeKeyPrefix + playerID
}
