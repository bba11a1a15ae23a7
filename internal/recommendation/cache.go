package recommendation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	apperrors "cogni-recommender/internal/common/errors"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "recommendation:v1:"

// Cache stores computed recommendations for a bounded time.
type Cache interface {
	Get(ctx context.Context, key string) (*Recommendation, bool, error)
	Set(ctx context.Context, key string, rec *Recommendation, ttl time.Duration) error
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*Recommendation, bool, error) { return nil, false, nil }

func (NopCache) Set(context.Context, string, *Recommendation, time.Duration) error { return nil }

// KV is the subset of the Redis client the cache needs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// RedisCache keeps recommendations as JSON strings in Redis.
type RedisCache struct {
	kv KV
}

func NewRedisCache(kv KV) *RedisCache {
	return &RedisCache{kv: kv}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*Recommendation, bool, error) {
	val, err := c.kv.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewCacheUnavailableError(err)
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		// A stale or foreign entry is a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return &rec, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, rec *Recommendation, ttl time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := c.kv.Set(ctx, key, data, ttl); err != nil {
		return apperrors.NewCacheUnavailableError(err)
	}
	return nil
}

// cacheKey hashes everything the result depends on: the normalized answers,
// the hints and the proposal link base.
func cacheKey(n NormalizedAnswers, a Answers, base string) string {
	parts := []string{
		base,
		n.OrgType,
		n.TeamSize,
		n.ClientVolume,
		strings.ToLower(strings.TrimSpace(a.Specialization)),
		strings.ToLower(strings.TrimSpace(a.ServiceModel)),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
