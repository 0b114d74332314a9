package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimiter(t *testing.T) {
	t.Run("blocks after five failures within the window", func(t *testing.T) {
		rl := NewLoginRateLimiter()
		for i := 0; i < 4; i++ {
			rl.Fail("10.0.0.1")
			assert.False(t, rl.Blocked("10.0.0.1"))
		}
		rl.Fail("10.0.0.1")
		assert.True(t, rl.Blocked("10.0.0.1"))
	})

	t.Run("other addresses are unaffected", func(t *testing.T) {
		rl := NewLoginRateLimiter()
		for i := 0; i < 5; i++ {
			rl.Fail("10.0.0.1")
		}
		assert.True(t, rl.Blocked("10.0.0.1"))
		assert.False(t, rl.Blocked("10.0.0.2"))
	})

	t.Run("window expiry clears the block", func(t *testing.T) {
		rl := NewLoginRateLimiter()
		for i := 0; i < 5; i++ {
			rl.Fail("10.0.0.1")
		}
		assert.True(t, rl.Blocked("10.0.0.1"))

		rl.mu.Lock()
		rl.attempts["10.0.0.1"].firstAt = time.Now().Add(-2 * time.Minute)
		rl.mu.Unlock()

		assert.False(t, rl.Blocked("10.0.0.1"))

		// A failure after expiry starts a fresh window.
		rl.Fail("10.0.0.1")
		assert.False(t, rl.Blocked("10.0.0.1"))
	})
}
