package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"go.uber.org/zap"
)

func newEntry(digest string, ttl time.Duration) *core.CacheEntry {
	return &core.CacheEntry{
		MessageDigest: digest,
		Result: core.ClassificationResult{
			Label:      core.LabelSpam,
			Confidence: 0.9,
			Source:     core.SourceModel,
			Reason:     "model label LABEL_1",
		},
		LastSeen:  time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	entry := newEntry("digest-1", time.Hour)
	if err := c.Set(ctx, entry); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "digest-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Result != entry.Result {
		t.Errorf("got %+v, want %+v", got.Result, entry.Result)
	}
}

func TestMemoryCacheGetMissing(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()

	if _, err := c.Get(context.Background(), "absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryCacheGetExpired(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	if err := c.Set(ctx, newEntry("stale", -time.Minute)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := c.Get(ctx, "stale"); !errors.Is(err, ErrExpired) {
		t.Errorf("err = %v, want ErrExpired", err)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	if err := c.Set(ctx, newEntry("doomed", time.Hour)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "doomed"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, "doomed"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after delete", err)
	}
}

func TestMemoryCacheCleanup(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	if err := c.Set(ctx, newEntry("fresh", time.Hour)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set(ctx, newEntry("stale", -time.Minute)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := c.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	if _, err := c.Get(ctx, "fresh"); err != nil {
		t.Errorf("fresh entry gone after cleanup: %v", err)
	}
	if _, err := c.Get(ctx, "stale"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want stale entry removed", err)
	}
}
