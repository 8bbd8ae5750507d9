// internal/matching/cache.go
// Redis cache for pairwise scores. Keys are ordered so A:B and B:A hit the
// same entry; peer scores are symmetric so this is safe. Property-owner
// scores bypass the cache entirely.

package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ScoreCache caches computed compatibility scores
type ScoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreCache creates a new score cache. A nil client disables caching.
func NewScoreCache(client *redis.Client, ttl time.Duration) *ScoreCache {
	return &ScoreCache{client: client, ttl: ttl}
}

func (c *ScoreCache) key(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return fmt.Sprintf("compat:%s:%s", userA, userB)
}

// Get returns a cached score, or nil on miss or error
func (c *ScoreCache) Get(ctx context.Context, userA, userB string) *CompatibilityScore {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, c.key(userA, userB)).Bytes()
	if err != nil {
		return nil
	}

	var score CompatibilityScore
	if err := json.Unmarshal(data, &score); err != nil {
		return nil
	}
	return &score
}

// Set stores a score. Errors are ignored; the cache is best effort.
func (c *ScoreCache) Set(ctx context.Context, userA, userB string, score *CompatibilityScore) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(score)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(userA, userB), data, c.ttl)
}

// Invalidate drops all cached scores involving a user. Called when the user
// resubmits their quiz.
func (c *ScoreCache) Invalidate(ctx context.Context, userID string) {
	if c == nil || c.client == nil {
		return
	}

	for _, pattern := range []string{
		fmt.Sprintf("compat:%s:*", userID),
		fmt.Sprintf("compat:*:%s", userID),
	} {
		iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			c.client.Del(ctx, iter.Val())
		}
	}
}
