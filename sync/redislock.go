package sync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotHeld = errors.New("lock not held by owner")

// compare-and-delete: only the current owner may release
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

const pingTimeout = 5 * time.Second

type Locker interface {
	// Acquire reports false, without error, when another owner holds key.
	Acquire(ctx context.Context, key string, owner string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string, owner string) error
}

// RedisClient is the part of redis.UniversalClient the lock needs.
type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type RedisLock struct {
	logger lager.Logger
	client RedisClient
}

var _ Locker = &RedisLock{}

func NewRedisLock(logger lager.Logger, client RedisClient) *RedisLock {
	return &RedisLock{
		logger: logger.Session("redis-lock"),
		client: client,
	}
}

// NewRedisLockFromURL accepts redis:// and rediss:// URLs.
func NewRedisLockFromURL(logger lager.Logger, url string) (*RedisLock, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRedisLock(logger, redis.NewClient(opts)), nil
}

func (l *RedisLock) Acquire(ctx context.Context, key string, owner string, ttl time.Duration) (bool, error) {
	acquired, err := l.client.SetNX(ctx, key, owner, ttl).Result()
	if err != nil {
		l.logger.Error("failed-to-acquire-lock", err, lager.Data{"key": key, "owner": owner})
		return false, err
	}
	l.logger.Debug("acquire-lock", lager.Data{"key": key, "owner": owner, "acquired": acquired, "ttl": ttl})
	return acquired, nil
}

func (l *RedisLock) Release(ctx context.Context, key string, owner string) error {
	deleted, err := l.client.Eval(ctx, releaseScript, []string{key}, owner).Int64()
	if err != nil {
		l.logger.Error("failed-to-release-lock", err, lager.Data{"key": key, "owner": owner})
		return err
	}
	if deleted == 0 {
		l.logger.Info("lock-not-held", lager.Data{"key": key, "owner": owner})
		return ErrLockNotHeld
	}
	l.logger.Debug("released-lock", lager.Data{"key": key, "owner": owner})
	return nil
}

func (l *RedisLock) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return l.client.Ping(ctx).Err()
}

func (l *RedisLock) Close() error {
	return l.client.Close()
}

// DefaultOwner identifies this process: hostname:pid plus a random suffix for restarted containers reusing a pid.
func DefaultOwner() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return fmt.Sprintf("%s:%d:%s", host, os.Getpid(), uuid.NewString()[:8])
}
