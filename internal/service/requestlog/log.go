// Package requestlog keeps a bounded in-memory history of requests served by
// the mock surface, for inspection and live tailing.
package requestlog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry captures one request served by a mock API.
type Entry struct {
	ID         string    `json:"id"`
	APIID      string    `json:"apiId"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Resource   string    `json:"resource,omitempty"`
	Status     int       `json:"status"`
	RemoteAddr string    `json:"remoteAddr"`
	Timestamp  time.Time `json:"timestamp"`
}

// Log stores entries up to a fixed capacity and fans new entries out to
// subscribers. Oldest entries are dropped first.
type Log struct {
	mu          sync.Mutex
	capacity    int
	entries     []Entry
	subscribers map[int]chan Entry
	nextSubID   int
}

const defaultCapacity = 500

// NewLog creates a log holding at most capacity entries; non-positive
// capacities use the default.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Log{
		capacity:    capacity,
		subscribers: make(map[int]chan Entry),
	}
}

// Record stamps the entry with an id and timestamp, appends it and notifies
// subscribers. Slow subscribers miss entries rather than block the caller.
func (l *Log) Record(entry Entry) Entry {
	entry.ID = uuid.NewString()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}

	// Non-blocking sends under the lock so a concurrent unsubscribe cannot
	// close a channel mid-send.
	for _, ch := range l.subscribers {
		select {
		case ch <- entry:
		default:
		}
	}
	return entry
}

// Recent returns up to limit entries for the given API, newest first. A
// non-positive limit returns everything retained for that API.
func (l *Log) Recent(apiID string, limit int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := []Entry{}
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].APIID != apiID {
			continue
		}
		recent = append(recent, l.entries[i])
		if limit > 0 && len(recent) >= limit {
			break
		}
	}
	return recent
}

// Count returns the number of retained entries across all APIs.
func (l *Log) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Subscribe registers for new entries. The returned function unsubscribes
// and closes the channel; it is safe to call once.
func (l *Log) Subscribe() (<-chan Entry, func()) {
	ch := make(chan Entry, 16)

	l.mu.Lock()
	subID := l.nextSubID
	l.nextSubID++
	l.subscribers[subID] = ch
	l.mu.Unlock()

	unsubscribe := func() {
		l.mu.Lock()
		if _, ok := l.subscribers[subID]; ok {
			delete(l.subscribers, subID)
			close(ch)
		}
		l.mu.Unlock()
	}
	return ch, unsubscribe
}
