package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiterBurst(t *testing.T) {
	limiter := NewRateLimiter(time.Hour, 3)

	for i := 0; i < 3; i++ {
		require.True(t, limiter.Allow("10.0.0.1"))
	}
	require.False(t, limiter.Allow("10.0.0.1"))
}

func TestRateLimiterKeysIndependent(t *testing.T) {
	limiter := NewRateLimiter(time.Hour, 1)

	require.True(t, limiter.Allow("10.0.0.1"))
	require.False(t, limiter.Allow("10.0.0.1"))
	require.True(t, limiter.Allow("10.0.0.2"))
}

func TestRateLimiterRefills(t *testing.T) {
	limiter := NewRateLimiter(10*time.Millisecond, 1)

	require.True(t, limiter.Allow("k"))
	require.False(t, limiter.Allow("k"))
	time.Sleep(15 * time.Millisecond)
	require.True(t, limiter.Allow("k"))
}
