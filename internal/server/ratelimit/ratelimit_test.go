package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_BurstExhaustion(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("client-a", "/assessments", "POST")
		assert.True(t, allowed, "request %d within burst should pass", i+1)
		assert.Equal(t, 20, info.Limit)
	}

	allowed, info := limiter.Allow("client-a", "/assessments", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsIsolated(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("client-a", "/assessments", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("client-a", "/assessments", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("client-b", "/assessments", "POST")
	assert.True(t, allowed, "another client's bucket is untouched")
}

func TestAllow_PrefixMatch(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())

	_, info := limiter.Allow("client-a", "/reports/workforce", "POST")
	assert.Equal(t, 30, info.Limit)

	// Workforce and manager reports share the /reports/ bucket.
	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("client-a", "/reports/manager", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("client-a", "/reports/workforce", "POST")
	assert.False(t, allowed)
}

func TestAllow_DefaultLimitForUnlistedEndpoints(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("client-a", "/dashboard", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 600, info.Limit)
	}
}

func TestAllow_HealthNeverLimited(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())

	for i := 0; i < 1000; i++ {
		allowed, _ := limiter.Allow("client-a", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestAllow_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("client-a", "/assessments", "POST")
		assert.True(t, allowed)
		assert.True(t, info.Allowed)
	}
}

func TestAllow_NilConfigUsesDefaults(t *testing.T) {
	limiter := NewLimiter(nil)

	_, info := limiter.Allow("client-a", "/forecasts", "POST")
	assert.Equal(t, 30, info.Limit)
}

func TestAllow_MethodDistinguished(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("client-a", "/assessments", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("client-a", "/assessments", "POST")
	require.False(t, allowed)

	// GET on the same path falls back to the default allowance.
	allowed, info := limiter.Allow("client-a", "/assessments", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 600, info.Limit)
}

func TestBucketRefill(t *testing.T) {
	// 10 tokens per second so the refill is observable without a long sleep.
	bucket := newTokenBucket(2, 10)

	require.True(t, bucket.allow())
	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(150 * time.Millisecond)
	assert.True(t, bucket.allow(), "bucket should refill over time")
}

func TestBucketStatus(t *testing.T) {
	bucket := newTokenBucket(3, 1.0/60)

	remaining, _ := bucket.status()
	assert.Equal(t, 3, remaining)

	require.True(t, bucket.allow())
	remaining, resetTime := bucket.status()
	assert.Equal(t, 2, remaining)
	assert.True(t, resetTime.After(time.Now()), fmt.Sprintf("reset %v should be in the future", resetTime))
}
