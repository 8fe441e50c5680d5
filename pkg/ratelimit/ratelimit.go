// Package ratelimit provides per-endpoint-group client-side rate limiting so
// the trading client stays under the venue's published points budget.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// RateLimiter gates requests for one endpoint group.
type RateLimiter interface {
	Wait(ctx context.Context) error
	Allow() bool
	GetRemaining() int
}

// TokenBucket refills at a fixed per-second rate up to capacity. Used for
// the order placement/cancellation groups where the venue allows bursts.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate int // tokens per second
	windowSize time.Duration
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity, refillRate int, windowSize time.Duration) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		windowSize: windowSize,
		lastRefill: time.Now(),
	}
}

func (tb *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)

	tokensToAdd := int(elapsed.Seconds()) * tb.refillRate
	if tokensToAdd > 0 {
		tb.tokens = min(tb.capacity, tb.tokens+tokensToAdd)
		tb.lastRefill = now
	}
}

func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()

	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// Wait blocks until a token is available or the context is done.
func (tb *TokenBucket) Wait(ctx context.Context) error {
	for {
		if tb.Allow() {
			return nil
		}

		tb.mu.Lock()
		tb.refill()
		waitTime := time.Duration(0)
		if tb.tokens == 0 && tb.refillRate > 0 {
			waitTime = time.Second / time.Duration(tb.refillRate)
		}
		tb.mu.Unlock()

		if waitTime == 0 {
			waitTime = tb.windowSize
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func (tb *TokenBucket) GetRemaining() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.refill()
	return tb.tokens
}

// SlidingWindow allows at most limit requests inside a rolling window. Used
// for the read endpoints where the venue counts raw request totals.
type SlidingWindow struct {
	limit      int
	windowSize time.Duration
	requests   []time.Time
	mu         sync.Mutex
}

func NewSlidingWindow(limit int, windowSize time.Duration) *SlidingWindow {
	return &SlidingWindow{
		limit:      limit,
		windowSize: windowSize,
		requests:   make([]time.Time, 0),
	}
}

func (sw *SlidingWindow) Allow() bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-sw.windowSize)

	valid := sw.requests[:0]
	for _, req := range sw.requests {
		if req.After(cutoff) {
			valid = append(valid, req)
		}
	}
	sw.requests = valid

	if len(sw.requests) >= sw.limit {
		return false
	}
	sw.requests = append(sw.requests, now)
	return true
}

func (sw *SlidingWindow) Wait(ctx context.Context) error {
	for {
		if sw.Allow() {
			return nil
		}

		sw.mu.Lock()
		oldest := time.Now()
		if len(sw.requests) > 0 {
			oldest = sw.requests[0]
		}
		waitTime := sw.windowSize - time.Since(oldest)
		sw.mu.Unlock()

		if waitTime <= 0 {
			waitTime = 100 * time.Millisecond
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func (sw *SlidingWindow) GetRemaining() int {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	cutoff := time.Now().Add(-sw.windowSize)
	validCount := 0
	for _, req := range sw.requests {
		if req.After(cutoff) {
			validCount++
		}
	}
	return max(0, sw.limit-validCount)
}

// Manager routes Wait calls to the limiter registered for an endpoint group.
type Manager struct {
	limiters map[string]RateLimiter
	mu       sync.RWMutex
}

func NewManager() *Manager {
	m := &Manager{limiters: make(map[string]RateLimiter)}
	m.initDefaultLimiters()
	return m
}

// Venue limits: order writes are points-based with burst headroom, reads are
// counted per 10-second window.
func (m *Manager) initDefaultLimiters() {
	m.limiters["orders:post"] = NewTokenBucket(100, 10, 10*time.Second)
	m.limiters["orders:delete"] = NewTokenBucket(100, 10, 10*time.Second)
	m.limiters["orders:get"] = NewSlidingWindow(175, 10*time.Second)
	m.limiters["transfers:post"] = NewTokenBucket(20, 2, 10*time.Second)
	m.limiters["transfers:get"] = NewSlidingWindow(175, 10*time.Second)
	m.limiters["account:get"] = NewSlidingWindow(175, 10*time.Second)
	m.limiters["markets:get"] = NewSlidingWindow(175, 10*time.Second)
}

// GetLimiter returns the limiter for an endpoint group, registering a
// conservative default for unknown groups.
func (m *Manager) GetLimiter(group string) RateLimiter {
	m.mu.RLock()
	limiter, ok := m.limiters[group]
	m.mu.RUnlock()
	if ok {
		return limiter
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if limiter, ok := m.limiters[group]; ok {
		return limiter
	}
	limiter = NewSlidingWindow(100, 10*time.Second)
	m.limiters[group] = limiter
	return limiter
}

// Wait blocks until the group's limiter admits the request.
func (m *Manager) Wait(ctx context.Context, group string) error {
	return m.GetLimiter(group).Wait(ctx)
}

func (m *Manager) Allow(group string) bool {
	return m.GetLimiter(group).Allow()
}

func (m *Manager) GetRemaining(group string) int {
	return m.GetLimiter(group).GetRemaining()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
