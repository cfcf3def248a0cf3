package audit

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Level classifies an audit entry
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry is a single audit record
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
}

// Recorder is an append-only, queryable audit log
type Recorder interface {
	Record(level Level, message string, data map[string]any)
	Recent(count int) []Entry
	ByLevel(level Level, count int) []Entry
}

// DefaultCapacity bounds the in-memory ring when no capacity is configured
const DefaultCapacity = 1000

// Ring is a bounded in-memory Recorder. When full, the oldest entry is
// evicted on append.
type Ring struct {
	mu      sync.RWMutex
	entries []Entry
	start   int
	size    int
}

// NewRing creates a ring with the given capacity
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{entries: make([]Entry, capacity)}
}

// Record appends an entry, evicting the oldest when at capacity
func (r *Ring) Record(level Level, message string, data map[string]any) {
	entry := Entry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		Data:      data,
	}

	r.mu.Lock()
	idx := (r.start + r.size) % len(r.entries)
	r.entries[idx] = entry
	if r.size < len(r.entries) {
		r.size++
	} else {
		r.start = (r.start + 1) % len(r.entries)
	}
	r.mu.Unlock()

	// Mirror to the process log for development
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			log.Printf("[%s] %s - %s", level, message, b)
			return
		}
	}
	log.Printf("[%s] %s", level, message)
}

// Recent returns up to count newest entries, oldest first
func (r *Ring) Recent(count int) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.snapshot()
	if count > 0 && len(all) > count {
		all = all[len(all)-count:]
	}
	return all
}

// ByLevel returns up to count newest entries of the given level, oldest first
func (r *Ring) ByLevel(level Level, count int) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []Entry
	for _, e := range r.snapshot() {
		if e.Level == level {
			filtered = append(filtered, e)
		}
	}
	if count > 0 && len(filtered) > count {
		filtered = filtered[len(filtered)-count:]
	}
	return filtered
}

// snapshot copies entries in insertion order; callers must hold the lock
func (r *Ring) snapshot() []Entry {
	out := make([]Entry, 0, r.size)
	for i := 0; i < r.size; i++ {
		out = append(out, r.entries[(r.start+i)%len(r.entries)])
	}
	return out
}
