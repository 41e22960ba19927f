package cache

import (
	"context"
	"testing"
	"time"
)

func newTestNameCache(t *testing.T) *NameCache {
	t.Helper()
	backend := NewMemoryCache(100, time.Minute)
	t.Cleanup(func() { backend.Close() })
	return NewNameCache(backend, DefaultConfig())
}

func TestNameCacheSetGet(t *testing.T) {
	names := newTestNameCache(t)

	if _, ok := names.Get("pubkey-a"); ok {
		t.Fatal("expected miss on empty cache")
	}

	names.SetName("pubkey-a", "alice")
	entry, ok := names.Get("pubkey-a")
	if !ok {
		t.Fatal("expected hit after SetName")
	}
	if entry.Name != "alice" {
		t.Errorf("expected alice, got %q", entry.Name)
	}
}

func TestNameCachePreservesOtherField(t *testing.T) {
	names := newTestNameCache(t)

	names.SetName("pubkey-a", "alice")
	names.SetPicture("pubkey-a", "https://pics.example/alice.png")

	entry, ok := names.Get("pubkey-a")
	if !ok {
		t.Fatal("expected hit")
	}
	if entry.Name != "alice" {
		t.Errorf("picture write clobbered the name: %+v", entry)
	}
	if entry.Picture != "https://pics.example/alice.png" {
		t.Errorf("picture not stored: %+v", entry)
	}

	// Overwriting the name keeps the picture too.
	names.SetName("pubkey-a", "Alice B")
	entry, _ = names.Get("pubkey-a")
	if entry.Name != "Alice B" || entry.Picture != "https://pics.example/alice.png" {
		t.Errorf("name rewrite should keep the picture: %+v", entry)
	}
}

func TestNameCacheIsolatesPubkeys(t *testing.T) {
	names := newTestNameCache(t)
	names.SetName("pubkey-a", "alice")
	names.SetName("pubkey-b", "bob")

	a, _ := names.Get("pubkey-a")
	b, _ := names.Get("pubkey-b")
	if a.Name != "alice" || b.Name != "bob" {
		t.Errorf("entries bled across pubkeys: %+v %+v", a, b)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	backend := NewMemoryCache(100, time.Minute)
	defer backend.Close()
	ctx := context.Background()

	if err := backend.Set(ctx, "k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, found, _ := backend.Get(ctx, "k"); !found {
		t.Fatal("expected hit before expiry")
	}

	time.Sleep(20 * time.Millisecond)
	if _, found, _ := backend.Get(ctx, "k"); found {
		t.Error("expected miss after expiry")
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	backend := NewMemoryCache(100, time.Minute)
	defer backend.Close()
	ctx := context.Background()

	backend.Set(ctx, "k", []byte("v"), time.Minute)
	backend.Delete(ctx, "k")
	if _, found, _ := backend.Get(ctx, "k"); found {
		t.Error("expected miss after delete")
	}
}
