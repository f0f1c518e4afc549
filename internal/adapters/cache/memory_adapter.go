package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryAdapter is an in-process CacheProvider used when Redis is disabled.
type MemoryAdapter struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryAdapter creates an empty in-memory cache
func NewMemoryAdapter() providers.CacheProvider {
	return &MemoryAdapter{entries: make(map[string]memoryEntry), now: time.Now}
}

func (a *MemoryAdapter) lookup(key string) (memoryEntry, bool) {
	entry, ok := a.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if entry.expired(a.now()) {
		delete(a.entries, key)
		return memoryEntry{}, false
	}
	return entry, true
}

func (a *MemoryAdapter) expiry(seconds int) time.Time {
	if seconds <= 0 {
		return time.Time{}
	}
	return a.now().Add(time.Duration(seconds) * time.Second)
}

// Get retrieves a value from cache
func (a *MemoryAdapter) Get(_ context.Context, key string) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	entry, ok := a.lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheMiss, key)
	}
	return entry.value, nil
}

// Set stores a value in cache with expiration
func (a *MemoryAdapter) Set(_ context.Context, key string, value []byte, expirationSeconds int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries[key] = memoryEntry{value: value, expiresAt: a.expiry(expirationSeconds)}
	return nil
}

// Delete removes a value from cache
func (a *MemoryAdapter) Delete(_ context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.entries, key)
	return nil
}

// Exists checks if a key exists in cache
func (a *MemoryAdapter) Exists(_ context.Context, key string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.lookup(key)
	return ok, nil
}

// Incr increments key and starts its expiry window on first use
func (a *MemoryAdapter) Incr(_ context.Context, key string, windowSeconds int) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	entry, ok := a.lookup(key)
	if !ok {
		entry = memoryEntry{value: []byte("0"), expiresAt: a.expiry(windowSeconds)}
	}
	count, err := strconv.ParseInt(string(entry.value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value at %s is not a counter", key)
	}
	count++
	entry.value = []byte(strconv.FormatInt(count, 10))
	a.entries[key] = entry
	return count, nil
}
