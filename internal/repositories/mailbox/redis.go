package mailbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	redisclient "github.com/KirkDiggler/arena-api/internal/redis"
)

const (
	mailboxKeyPrefix = "mailbox:player:"

	// DefaultTTL drops mailboxes nobody polls.
	DefaultTTL = 7 * 24 * time.Hour
)

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis mailbox.
type RedisConfig struct {
	Client redisclient.Client
	// TTL is refreshed on every push; zero uses DefaultTTL
	TTL time.Duration
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

// NewRedis creates a new Redis-backed mailbox
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

func (r *redisRepository) Push(ctx context.Context, input PushInput) (*PushOutput, error) {
	if err := validatePush(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Notification)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal notification")
	}

	key := GetKey(input.PlayerID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to push notification for player %s", input.PlayerID)
	}

	return &PushOutput{}, nil
}

func (r *redisRepository) Drain(ctx context.Context, input DrainInput) (*DrainOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	// LRANGE and DEL in one transaction so a concurrent push is either
	// drained now or kept for the next poll.
	key := GetKey(input.PlayerID)
	pipe := r.client.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to drain mailbox for player %s", input.PlayerID)
	}

	raw := items.Val()
	out := make([]*arena.Notification, 0, len(raw))
	for _, item := range raw {
		var n arena.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal notification")
		}
		n.Delivered = true
		out = append(out, &n)
	}

	return &DrainOutput{Notifications: out}, nil
}

// GetKey returns the Redis key for a player's mailbox
func GetKey(playerID string) string {
	return mailboxKeyPrefix + playerID
}
