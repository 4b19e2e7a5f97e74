package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis every repository depends on
type Client interface {
	redis.UniversalClient
}
