package simulator

import (
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Record is one entry in the memory store.
type Record struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Memory backs the memory-server tools with a TTL'd ristretto cache plus
// an ordered key index, since ristretto itself cannot enumerate entries.
type Memory struct {
	store *ristretto.Cache
	ttl   time.Duration

	mu   sync.Mutex
	keys []string
	seen map[string]bool
}

// NewMemory builds a store holding at most maxEntries values for ttl each.
// Non-positive arguments fall back to 4096 entries and one hour.
func NewMemory(maxEntries int64, ttl time.Duration) (*Memory, error) {
	if maxEntries <= 0 {
		maxEntries = 4096
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &Memory{store: store, ttl: ttl, seen: make(map[string]bool)}, nil
}

// Store saves value under key. Writes are flushed before returning so a
// query issued immediately after sees the entry.
func (m *Memory) Store(key, value string) {
	m.store.SetWithTTL(key, value, 1, m.ttl)
	m.store.Wait()

	m.mu.Lock()
	if !m.seen[key] {
		m.seen[key] = true
		m.keys = append(m.keys, key)
	}
	m.mu.Unlock()
}

// Query returns records whose key or value contains any whitespace-separated
// term of query, oldest first. An empty query matches everything; a limit
// of zero or less means no limit.
func (m *Memory) Query(query string, limit int) []Record {
	terms := strings.Fields(strings.ToLower(query))

	m.mu.Lock()
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	m.mu.Unlock()

	var out []Record
	for _, key := range keys {
		raw, ok := m.store.Get(key)
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			continue
		}
		if !matchesQuery(key, value, terms) {
			continue
		}
		out = append(out, Record{Key: key, Value: value})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Close releases the underlying cache.
func (m *Memory) Close() {
	if m != nil && m.store != nil {
		m.store.Close()
	}
}

func matchesQuery(key, value string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	key = strings.ToLower(key)
	value = strings.ToLower(value)
	for _, t := range terms {
		// Fold a trailing s so plural query terms still hit singular keys.
		if len(t) > 3 {
			t = strings.TrimSuffix(t, "s")
		}
		if strings.Contains(key, t) || strings.Contains(value, t) {
			return true
		}
	}
	return false
}
