package port

import "context"

// Collection persists one whole record collection under a fixed key.
// Mutations are whole-collection replacements; a Load is a point-in-time
// snapshot. Load falls back to def and Save is best-effort — neither
// surfaces persistence failures to the caller.
type Collection[T any] interface {
	Load(ctx context.Context, def T) T
	Save(ctx context.Context, value T)
}
