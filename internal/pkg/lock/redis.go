package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-adventure/internal/redis"
)

// Redis defaults
const (
	DefaultTTL           = 30 * time.Second
	DefaultRetryInterval = 25 * time.Millisecond
	DefaultKeyPrefix     = "adventure:lock:"
)

// releaseScript deletes the key only if it still holds our token
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig holds dependencies for the Redis locker
type RedisConfig struct {
	Client redis.Client
	// Tokens identifies each holder; a key is only released by the token
	// that set it
	Tokens        idgen.Generator
	TTL           time.Duration
	RetryInterval time.Duration
	KeyPrefix     string
}

// Validate ensures all required dependencies are present
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}
	if c.RetryInterval < 0 {
		vb.InvalidField("RetryInterval", "must not be negative")
	}
	return vb.Build()
}

// Redis is a Locker shared between processes. Keys expire after TTL so a
// crashed holder cannot wedge a player forever.
type Redis struct {
	client        redis.Client
	tokens        idgen.Generator
	ttl           time.Duration
	retryInterval time.Duration
	prefix        string
}

var _ Locker = (*Redis)(nil)

// NewRedis creates a Redis-backed locker
func NewRedis(cfg *RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Redis{
		client:        cfg.Client,
		tokens:        cfg.Tokens,
		ttl:           cfg.TTL,
		retryInterval: cfg.RetryInterval,
		prefix:        cfg.KeyPrefix,
	}
	if l.tokens == nil {
		l.tokens = idgen.NewUUID("")
	}
	if l.ttl == 0 {
		l.ttl = DefaultTTL
	}
	if l.retryInterval == 0 {
		l.retryInterval = DefaultRetryInterval
	}
	if l.prefix == "" {
		l.prefix = DefaultKeyPrefix
	}
	return l, nil
}

// Acquire implements Locker
func (l *Redis) Acquire(ctx context.Context, keys ...string) (func(), error) {
	sorted, err := normalize(keys)
	if err != nil {
		return nil, err
	}

	token := l.tokens.Generate()
	held := make([]string, 0, len(sorted))
	releaseHeld := func() {
		// the caller's context may already be done
		releaseCtx, cancel := context.WithTimeout(context.Background(), l.ttl)
		defer cancel()
		for i := len(held) - 1; i >= 0; i-- {
			if err := releaseScript.Run(releaseCtx, l.client, []string{held[i]}, token).Err(); err != nil {
				slog.Warn("failed to release lock", "key", held[i], "error", err)
			}
		}
	}

	for _, key := range sorted {
		redisKey := l.prefix + key
		if err := l.acquireOne(ctx, redisKey, token); err != nil {
			releaseHeld()
			return nil, err
		}
		held = append(held, redisKey)
	}

	var once sync.Once
	return func() { once.Do(releaseHeld) }, nil
}

func (l *Redis) acquireOne(ctx context.Context, key, token string) error {
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return contextError(ctx, key)
			}
			return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to acquire lock").
				WithMeta("key", key)
		}
		if ok {
			return nil
		}

		timer := time.NewTimer(l.retryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return contextError(ctx, key)
		case <-timer.C:
		}
	}
}
