package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// NameEntry is the cached display identity for a pubkey.
type NameEntry struct {
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// NameStore is the display-name lookup the renderer and builders depend on.
// Writes are last-write-wins; entries are idempotent recomputations of the
// same upstream metadata, so no coordination is needed between concurrent
// builders.
type NameStore interface {
	Get(pubkey string) (NameEntry, bool)
	SetName(pubkey, name string)
	SetPicture(pubkey, url string)
}

// NameCache implements NameStore on top of a Backend with JSON entries.
type NameCache struct {
	backend Backend
	ttl     time.Duration
}

// opTimeout bounds backend round trips so a slow Redis never stalls a
// render; on timeout the caller gets a miss and renders the default.
const opTimeout = 2 * time.Second

// NewNameCache creates a display-name cache over the given backend.
func NewNameCache(backend Backend, cfg Config) *NameCache {
	return &NameCache{backend: backend, ttl: cfg.NameTTL}
}

func nameKey(pubkey string) string {
	return "name:" + pubkey
}

func (c *NameCache) Get(pubkey string) (NameEntry, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, found, err := c.backend.Get(ctx, nameKey(pubkey))
	if err != nil {
		slog.Debug("name cache get failed", "pubkey", shortKey(pubkey), "error", err)
		IncrementMiss()
		return NameEntry{}, false
	}
	if !found {
		IncrementMiss()
		return NameEntry{}, false
	}

	var entry NameEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		IncrementMiss()
		return NameEntry{}, false
	}
	IncrementHit()
	return entry, true
}

func (c *NameCache) SetName(pubkey, name string) {
	c.update(pubkey, func(entry *NameEntry) { entry.Name = name })
}

func (c *NameCache) SetPicture(pubkey, url string) {
	c.update(pubkey, func(entry *NameEntry) { entry.Picture = url })
}

// update does a read-modify-write so a name write does not clobber a cached
// avatar and vice versa.
func (c *NameCache) update(pubkey string, apply func(*NameEntry)) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var entry NameEntry
	if data, found, err := c.backend.Get(ctx, nameKey(pubkey)); err == nil && found {
		_ = json.Unmarshal(data, &entry)
	}
	apply(&entry)

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.backend.Set(ctx, nameKey(pubkey), data, c.ttl); err != nil {
		slog.Debug("name cache set failed", "pubkey", shortKey(pubkey), "error", err)
	}
}

func shortKey(pubkey string) string {
	if len(pubkey) >= 12 {
		return pubkey[:12]
	}
	return pubkey
}
