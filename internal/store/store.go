// Package store persists per-user settings behind a small key-value
// interface. The dashboard keeps navigation preferences, demo users and
// the theme here; the backend is picked by configuration.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key is not set.
var ErrNotFound = errors.New("store: key not found")

// KV is a byte-oriented key-value store. Implementations are safe for
// concurrent use.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON decodes the value at key into T.
func GetJSON[T any](ctx context.Context, kv KV, key string) (T, error) {
	var out T
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

// GetJSONOr is GetJSON with fallback returned for a missing key.
func GetJSONOr[T any](ctx context.Context, kv KV, key string, fallback T) (T, error) {
	v, err := GetJSON[T](ctx, kv, key)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	return v, err
}

// SetJSON encodes v and stores it at key.
func SetJSON[T any](ctx context.Context, kv KV, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}
