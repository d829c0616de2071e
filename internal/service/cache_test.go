package service

import (
	"testing"
	"time"
)

func TestResultCachePutGet(t *testing.T) {
	c := newResultCache(time.Minute)
	c.put("k", 42)

	v, ok := c.get("k")
	if !ok {
		t.Fatal("expected hit")
	}
	if v.(int) != 42 {
		t.Errorf("value = %v, want 42", v)
	}

	if _, ok := c.get("missing"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestResultCacheExpiry(t *testing.T) {
	c := newResultCache(time.Nanosecond)
	c.put("k", "v")
	time.Sleep(time.Millisecond)

	if _, ok := c.get("k"); ok {
		t.Error("expected entry to expire")
	}
}

func TestCacheKeyDeterministic(t *testing.T) {
	type params struct {
		Threshold float64
		Window    int
	}
	a := cacheKey("leaks", params{5, 6}, []string{"x", "y"})
	b := cacheKey("leaks", params{5, 6}, []string{"x", "y"})
	if a != b {
		t.Errorf("identical inputs produced different keys: %q vs %q", a, b)
	}
}

func TestCacheKeyDistinguishesInputs(t *testing.T) {
	type params struct{ Threshold float64 }
	base := cacheKey("leaks", params{5})

	if got := cacheKey("leaks", params{6}); got == base {
		t.Error("different params must produce a different key")
	}
	if got := cacheKey("clusters", params{5}); got == base {
		t.Error("different operations must produce a different key")
	}
}

func TestCacheKeyUnencodableFallsBack(t *testing.T) {
	// Channels can't be JSON-encoded; the fallback key must never collide
	// with itself, so such inputs are effectively uncacheable.
	a := cacheKey("op", make(chan int))
	b := cacheKey("op", make(chan int))
	if a == b {
		t.Error("fallback keys must not match")
	}
}
