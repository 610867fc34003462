package ratelimiter

import (
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	DefaultMaxAmount     = 5
	DefaultValidDuration = time.Minute

	defaultExpireDuration = 10 * time.Minute
)

type Limiter interface {
	ExceedsLimit(string) bool
}

// Config allows MaxAmount requests per key within ValidDuration. MaxAmount 0 disables limiting.
type Config struct {
	MaxAmount     int           `yaml:"max_amount" json:"max_amount"`
	ValidDuration time.Duration `yaml:"valid_duration" json:"valid_duration"`
}

func (c Config) Enabled() bool {
	return c.MaxAmount > 0
}

// RateLimiter keeps one token bucket per key. Buckets of keys that were
// not seen for the expire duration are dropped.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	buckets  *cache.Cache
	bucketMu sync.Mutex
	logger   lager.Logger
}

func DefaultRateLimiter(conf Config, logger lager.Logger) *RateLimiter {
	return NewRateLimiter(conf, defaultExpireDuration, logger)
}

func NewRateLimiter(conf Config, expireDuration time.Duration, logger lager.Logger) *RateLimiter {
	return &RateLimiter{
		limit:   rate.Every(conf.ValidDuration / time.Duration(conf.MaxAmount)),
		burst:   conf.MaxAmount,
		buckets: cache.New(expireDuration, expireDuration/2),
		logger:  logger.Session("rate-limiter"),
	}
}

func (r *RateLimiter) ExceedsLimit(key string) bool {
	r.bucketMu.Lock()
	defer r.bucketMu.Unlock()

	var bucket *rate.Limiter
	if v, found := r.buckets.Get(key); found {
		bucket = v.(*rate.Limiter)
	} else {
		bucket = rate.NewLimiter(r.limit, r.burst)
	}
	r.buckets.SetDefault(key, bucket)

	if !bucket.Allow() {
		r.logger.Debug("empty-bucket", lager.Data{"key": key})
		return true
	}
	return false
}
