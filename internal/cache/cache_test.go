package cache

import (
	"errors"
	"testing"
	"time"
)

func TestGetOrComputeComputesOnce(t *testing.T) {
	c := New(8, time.Minute, nil)

	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrCompute("popularMovies", "1", compute)
		if err != nil {
			t.Fatalf("GetOrCompute returned error: %v", err)
		}
		if got != "value" {
			t.Fatalf("got %v, want value", got)
		}
	}

	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
}

func TestGetOrComputeKeyedByNameAndKey(t *testing.T) {
	c := New(8, time.Minute, nil)

	if _, err := c.GetOrCompute("popularMovies", "1", func() (interface{}, error) { return "popular", nil }); err != nil {
		t.Fatal(err)
	}
	got, err := c.GetOrCompute("upcomingMovies", "1", func() (interface{}, error) { return "upcoming", nil })
	if err != nil {
		t.Fatal(err)
	}
	if got != "upcoming" {
		t.Errorf("same key under a different name returned %v, want upcoming", got)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestGetOrComputeDoesNotCacheErrors(t *testing.T) {
	c := New(8, time.Minute, nil)

	calls := 0
	failing := func() (interface{}, error) {
		calls++
		return nil, errors.New("remote down")
	}

	if _, err := c.GetOrCompute("popularMovies", "1", failing); err == nil {
		t.Fatal("expected error from compute")
	}
	if _, err := c.GetOrCompute("popularMovies", "1", failing); err == nil {
		t.Fatal("expected error from compute")
	}
	if calls != 2 {
		t.Errorf("compute called %d times, want 2 (errors must not be cached)", calls)
	}

	// A later success is cached normally.
	got, err := c.GetOrCompute("popularMovies", "1", func() (interface{}, error) { return "ok", nil })
	if err != nil {
		t.Fatal(err)
	}
	if got != "ok" {
		t.Errorf("got %v, want ok", got)
	}
}

func TestEntriesExpireAfterTTL(t *testing.T) {
	c := New(8, 20*time.Millisecond, nil)

	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return calls, nil
	}

	if _, err := c.GetOrCompute("movies", "7", compute); err != nil {
		t.Fatal(err)
	}

	time.Sleep(60 * time.Millisecond)

	got, err := c.GetOrCompute("movies", "7", compute)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("expected recompute after TTL, got %v", got)
	}
}

func TestCacheIsBounded(t *testing.T) {
	c := New(2, time.Minute, nil)

	for _, key := range []string{"1", "2", "3"} {
		k := key
		if _, err := c.GetOrCompute("movies", k, func() (interface{}, error) { return k, nil }); err != nil {
			t.Fatal(err)
		}
	}

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after exceeding capacity", c.Len())
	}
}

func TestInvalidate(t *testing.T) {
	c := New(8, time.Minute, nil)

	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return calls, nil
	}

	if _, err := c.GetOrCompute("movies", "5", compute); err != nil {
		t.Fatal(err)
	}
	c.Invalidate("movies", "5")

	got, err := c.GetOrCompute("movies", "5", compute)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("expected recompute after invalidation, got %v", got)
	}
}
