package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestTokenBucket_ExhaustsCapacity(t *testing.T) {
	tb := NewTokenBucket(3, 1, time.Second)
	for i := 0; i < 3; i++ {
		if !tb.Allow() {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if tb.Allow() {
		t.Fatal("bucket should be empty")
	}
}

func TestSlidingWindow_Limit(t *testing.T) {
	sw := NewSlidingWindow(2, time.Minute)
	if !sw.Allow() || !sw.Allow() {
		t.Fatal("first two requests should pass")
	}
	if sw.Allow() {
		t.Fatal("third request inside window should be rejected")
	}
	if sw.GetRemaining() != 0 {
		t.Fatalf("remaining: got %d, want 0", sw.GetRemaining())
	}
}

func TestWait_ContextCancel(t *testing.T) {
	sw := NewSlidingWindow(1, time.Minute)
	if !sw.Allow() {
		t.Fatal("first request should pass")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := sw.Wait(ctx); err == nil {
		t.Fatal("Wait should fail when the context expires first")
	}
}

func TestManager_UnknownGroupGetsDefault(t *testing.T) {
	m := NewManager()
	limiter := m.GetLimiter("never-registered")
	if limiter == nil {
		t.Fatal("nil limiter for unknown group")
	}
	if !m.Allow("never-registered") {
		t.Fatal("fresh default limiter should allow")
	}
	// Same limiter instance on subsequent lookups.
	if m.GetLimiter("never-registered") != limiter {
		t.Fatal("unknown group limiter not cached")
	}
}
