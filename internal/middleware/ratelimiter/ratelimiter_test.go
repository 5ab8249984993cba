package ratelimiter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newWithClock(rate, capacity float64, expiration time.Duration) (*KeyedRateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := New(rate, capacity, expiration)
	l.now = clock.Now
	return l, clock
}

func TestAllow(t *testing.T) {
	t.Run("allows up to capacity then denies", func(t *testing.T) {
		l, _ := newWithClock(1, 3, time.Hour)
		defer l.Stop()

		assert.True(t, l.Allow("a"))
		assert.True(t, l.Allow("a"))
		assert.True(t, l.Allow("a"))
		assert.False(t, l.Allow("a"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		l, _ := newWithClock(1, 1, time.Hour)
		defer l.Stop()

		assert.True(t, l.Allow("a"))
		assert.False(t, l.Allow("a"))
		assert.True(t, l.Allow("b"))
		assert.Equal(t, 2, l.Len())
	})

	t.Run("refills over time without exceeding capacity", func(t *testing.T) {
		l, clock := newWithClock(1, 2, time.Hour)
		defer l.Stop()

		require.True(t, l.Allow("a"))
		require.True(t, l.Allow("a"))
		require.False(t, l.Allow("a"))

		clock.Advance(1 * time.Second)
		assert.True(t, l.Allow("a"))
		assert.False(t, l.Allow("a"))

		clock.Advance(time.Minute)
		assert.True(t, l.Allow("a"))
		assert.True(t, l.Allow("a"))
		assert.False(t, l.Allow("a"))
	})
}

func TestAllowConcurrent(t *testing.T) {
	l, _ := newWithClock(0, 10, time.Hour)
	defer l.Stop()

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("same") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), allowed.Load())
}

func TestIdleKeysExpire(t *testing.T) {
	l := New(1, 1, 20*time.Millisecond)
	defer l.Stop()

	l.Allow("a")
	require.Equal(t, 1, l.Len())

	assert.Eventually(t, func() bool { return l.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestPerMinute(t *testing.T) {
	l := PerMinute(2)
	defer l.Stop()

	assert.True(t, l.Allow("ip"))
	assert.True(t, l.Allow("ip"))
	assert.False(t, l.Allow("ip"))
}
