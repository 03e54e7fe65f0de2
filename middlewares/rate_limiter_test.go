package middlewares

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewOTPRateLimiter(3)

	l := rl.limiter("10.0.0.1")
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(), "request %d within burst", i+1)
	}
	assert.False(t, l.Allow())

	// IP lain punya budget sendiri
	assert.True(t, rl.limiter("10.0.0.2").Allow())
}

func TestOTPRateLimiterSweepsIdleVisitors(t *testing.T) {
	rl := NewOTPRateLimiter(5)

	rl.limiter("10.0.0.1")
	rl.limiter("10.0.0.2")
	require.Len(t, rl.visitors, 2)

	// Satu idle melewati TTL, satu masih aktif; sweep berikutnya hanya
	// membuang yang idle.
	rl.visitors["10.0.0.1"].lastSeen = time.Now().Add(-visitorIdleTTL - time.Minute)
	rl.lastSweep = time.Now().Add(-sweepInterval - time.Second)

	rl.limiter("10.0.0.3")

	assert.Len(t, rl.visitors, 2)
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
	assert.Contains(t, rl.visitors, "10.0.0.3")
}
