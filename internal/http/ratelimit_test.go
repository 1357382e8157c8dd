package http

import (
	"testing"

	"golang.org/x/time/rate"
)

func TestIPRateLimiterPerIP(t *testing.T) {
	rl := NewIPRateLimiter(rate.Limit(0.001), 1)
	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request denied")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("second request allowed past burst")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatal("other IP shares the bucket")
	}
}

func TestIPRateLimiterSweep(t *testing.T) {
	rl := NewIPRateLimiter(rate.Limit(0.001), 2)
	rl.GetLimiter("idle")
	rl.Allow("busy")

	if got := rl.Sweep(); got != 1 {
		t.Fatalf("Sweep() = %d, want 1", got)
	}
	rl.mu.Lock()
	_, idle := rl.visitors["idle"]
	_, busy := rl.visitors["busy"]
	rl.mu.Unlock()
	if idle || !busy {
		t.Fatalf("after Sweep idle=%v busy=%v, want false true", idle, busy)
	}
}
