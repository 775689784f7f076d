// Package history keeps the bounded log of recently committed search
// queries and persists it through a key/value sink.
package history

import (
	"context"
	"encoding/json"
	"fmt"
)

// MaxEntries is the history cap; older entries fall off the end.
const MaxEntries = 5

// Key is the fixed logical name the log is persisted under. It is scoped
// to search history and distinct from any cart/order persistence keys.
const Key = "search.history"

// Log is an ordered list of committed query strings, most recent first,
// deduplicated by exact text. The zero value is an empty log.
type Log []string

// Push returns a new log with text at the front. An existing identical
// entry moves to the front instead of duplicating; the result is capped at
// max entries (MaxEntries when max <= 0). Empty text is ignored.
func (l Log) Push(text string, max int) Log {
	if text == "" {
		return l
	}
	if max <= 0 {
		max = MaxEntries
	}
	out := make(Log, 0, len(l)+1)
	out = append(out, text)
	for _, entry := range l {
		if entry != text {
			out = append(out, entry)
		}
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// Sink is the persistent storage the log survives sessions in. Reads and
// writes are treated as atomic, last-write-wins; a single active consumer
// is assumed.
type Sink interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Store loads and saves a Log through a Sink as a JSON string payload.
type Store struct {
	sink Sink
}

// NewStore wraps a sink.
func NewStore(sink Sink) *Store {
	return &Store{sink: sink}
}

// Load reads the persisted log. Storage failures and corrupt payloads are
// non-fatal: the search box degrades to an empty history rather than
// refusing to start.
func (s *Store) Load(ctx context.Context) Log {
	raw, ok, err := s.sink.Get(ctx, Key)
	if err != nil || !ok {
		return nil
	}
	var log Log
	if err := json.Unmarshal([]byte(raw), &log); err != nil {
		return nil
	}
	if len(log) > MaxEntries {
		log = log[:MaxEntries]
	}
	return log
}

// Save writes the log back to the sink.
func (s *Store) Save(ctx context.Context, log Log) error {
	payload, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("history: encode: %w", err)
	}
	if err := s.sink.Set(ctx, Key, string(payload)); err != nil {
		return fmt.Errorf("history: persist: %w", err)
	}
	return nil
}
