package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"tokoadmin/internal/models"
)

// ListCache keeps the last fetched list of every kind for one store. Lists
// are never pushed: after a mutation the caller invokes Refresh and the
// cache pulls the list again.
type ListCache struct {
	client  *Client
	storeID string

	mu      sync.Mutex
	entries map[models.Kind]json.RawMessage
}

// NewListCache creates an empty cache for storeID.
func NewListCache(c *Client, storeID string) *ListCache {
	return &ListCache{
		client:  c,
		storeID: storeID,
		entries: make(map[models.Kind]json.RawMessage),
	}
}

// Refresh re-fetches the list of kind, replacing any cached copy.
func (l *ListCache) Refresh(ctx context.Context, kind models.Kind) error {
	var raw json.RawMessage
	if err := l.client.List(ctx, l.storeID, kind, &raw); err != nil {
		return err
	}
	l.mu.Lock()
	l.entries[kind] = raw
	l.mu.Unlock()
	return nil
}

// Invalidate drops the cached list of kind.
func (l *ListCache) Invalidate(kind models.Kind) {
	l.mu.Lock()
	delete(l.entries, kind)
	l.mu.Unlock()
}

// Load decodes the list of kind into out, fetching it first when not cached.
func (l *ListCache) Load(ctx context.Context, kind models.Kind, out interface{}) error {
	l.mu.Lock()
	raw, ok := l.entries[kind]
	l.mu.Unlock()
	if !ok {
		if err := l.Refresh(ctx, kind); err != nil {
			return err
		}
		l.mu.Lock()
		raw = l.entries[kind]
		l.mu.Unlock()
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode cached %s: %w", kind, err)
	}
	return nil
}
