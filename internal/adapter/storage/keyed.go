package storage

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/tontonjojo/chez-leonie/internal/port"
)

// Keys of the two persisted collections. No key is shared by two record
// types.
const (
	MenuItemsKey = "menuItems"
	OrdersKey    = "orders"
)

// Keyed wraps one key of a KeyValue substrate with a JSON codec for T.
// Persistence is best-effort: every substrate or codec failure is logged and
// swallowed, Load degrades to the caller's default and Save leaves the
// caller's in-memory state authoritative.
type Keyed[T any] struct {
	kv     port.KeyValue
	key    string
	logger *slog.Logger
}

func NewKeyed[T any](kv port.KeyValue, key string, logger *slog.Logger) *Keyed[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Keyed[T]{kv: kv, key: key, logger: logger}
}

// Load returns the value last saved under the key, or def when no value was
// ever saved, the substrate is unreachable, or the stored payload does not
// decode.
func (s *Keyed[T]) Load(ctx context.Context, def T) T {
	payload, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("load failed, using default", "key", s.key, "error", err)
		return def
	}
	if !ok {
		return def
	}

	var value T
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		s.logger.Warn("stored payload undecodable, using default", "key", s.key, "error", err)
		return def
	}

	return value
}

// Save writes value under the key. Failures are logged and swallowed.
func (s *Keyed[T]) Save(ctx context.Context, value T) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("save skipped, value not encodable", "key", s.key, "error", err)
		return
	}

	if err := s.kv.Set(ctx, s.key, string(payload)); err != nil {
		s.logger.Warn("save failed, state kept in memory only", "key", s.key, "error", err)
	}
}
