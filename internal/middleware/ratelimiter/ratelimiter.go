package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a token bucket for a single key.
type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	rate       float64 // tokens per second
	lastRefill time.Time
	timer      *time.Timer
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * b.rate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
		b.lastRefill = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// KeyedRateLimiter keeps one token bucket per key (client ip, username...).
// Buckets idle for longer than expiration are dropped.
type KeyedRateLimiter struct {
	mu         sync.RWMutex
	buckets    map[string]*bucket
	rate       float64
	capacity   float64
	expiration time.Duration
	now        func() time.Time
}

func New(rate float64, capacity float64, expiration time.Duration) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
		now:        time.Now,
	}
}

// PerMinute allows n requests per minute per key with a burst of n.
func PerMinute(n int) *KeyedRateLimiter {
	return New(float64(n)/60, float64(n), time.Hour)
}

func (l *KeyedRateLimiter) forget(key string, b *bucket) {
	l.mu.Lock()
	if l.buckets[key] == b {
		delete(l.buckets, key)
	}
	l.mu.Unlock()
}

func (l *KeyedRateLimiter) touch(key string, b *bucket) {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(l.expiration, func() { l.forget(key, b) })
}

func (l *KeyedRateLimiter) get(key string) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok = l.buckets[key]; ok {
		return b
	}
	b = &bucket{
		tokens:     l.capacity,
		capacity:   l.capacity,
		rate:       l.rate,
		lastRefill: l.now(),
	}
	l.buckets[key] = b
	return b
}

// Allow takes one token from the bucket of key.
func (l *KeyedRateLimiter) Allow(key string) bool {
	b := l.get(key)
	allowed := b.allow(l.now())

	b.mu.Lock()
	l.touch(key, b)
	b.mu.Unlock()
	return allowed
}

// Len returns the number of tracked keys.
func (l *KeyedRateLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.buckets)
}

// Stop cancels pending expirations.
func (l *KeyedRateLimiter) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range l.buckets {
		b.mu.Lock()
		if b.timer != nil {
			b.timer.Stop()
		}
		b.mu.Unlock()
	}
}
