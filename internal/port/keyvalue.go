package port

import "context"

// KeyValue is the persistence substrate: a flat string-keyed store with
// synchronous get/set semantics. Implementations must treat a missing key
// as ("", false, nil), not as an error.
type KeyValue interface {
	// Get returns the payload stored under key, or ok=false if none exists.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes payload under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
}
