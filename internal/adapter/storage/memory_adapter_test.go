package storage

import (
	"context"
	"testing"
)

func TestMemoryAdapter(t *testing.T) {
	kv := NewMemoryAdapter()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	value, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if value != "v2" {
		t.Errorf("expected v2, got %q", value)
	}
}
