package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyOrderIndependent(t *testing.T) {
	cache := NewScoreCache(nil, 0)

	assert.Equal(t, cache.key("alice", "bob"), cache.key("bob", "alice"))
	assert.Equal(t, "compat:alice:bob", cache.key("bob", "alice"))
}

func TestCacheNilClientSafe(t *testing.T) {
	ctx := context.Background()

	cache := NewScoreCache(nil, 0)
	assert.Nil(t, cache.Get(ctx, "a", "b"))
	cache.Set(ctx, "a", "b", &CompatibilityScore{Overall: 80})
	cache.Invalidate(ctx, "a")

	var nilCache *ScoreCache
	assert.Nil(t, nilCache.Get(ctx, "a", "b"))
	nilCache.Set(ctx, "a", "b", nil)
	nilCache.Invalidate(ctx, "a")
}
