// Package event carries fire-and-forget error reports out of the loot
// engine. The game's own event bus lives outside this module; consumers
// bridge Records onto it by subscribing here.
package event

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type identifies the kind of event being reported.
type Type string

const (
	TypeLootFailed       Type = "loot.failed"
	TypeLootTableMissing Type = "loot.table_missing"
)

// Record is a single reported event.
type Record struct {
	ID        uuid.UUID      `json:"id"`
	Type      Type           `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	TableKey  string         `json:"table_key,omitempty"`
	MonsterID int32          `json:"monster_id,omitempty"`
	Err       string         `json:"error,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// NewRecord builds a Record with a fresh ID and current timestamp.
func NewRecord(t Type) Record {
	return Record{
		ID:        uuid.New(),
		Type:      t,
		Timestamp: time.Now(),
	}
}

// Bus fans records out to subscriber channels. Publish never blocks:
// a subscriber whose channel is full loses the record (with a warning),
// a bus with no subscribers discards silently.
type Bus struct {
	mu     sync.RWMutex
	subs   []chan Record
	closed bool
	logger *slog.Logger
}

// NewBus creates an event bus. logger may be nil (slog default is used).
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{logger: logger}
}

// Subscribe registers a new subscriber channel with the given buffer size.
// Returns nil if the bus is already closed.
func (b *Bus) Subscribe(buffer int) <-chan Record {
	if buffer <= 0 {
		buffer = 16
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	ch := make(chan Record, buffer)
	b.subs = append(b.subs, ch)
	return ch
}

// Publish delivers the record to all subscribers without blocking.
func (b *Bus) Publish(rec Record) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for _, ch := range b.subs {
		select {
		case ch <- rec:
		default:
			b.logger.Warn("event subscriber full, dropping record",
				"type", rec.Type,
				"id", rec.ID)
		}
	}
}

// Close closes all subscriber channels. Publish after Close is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
