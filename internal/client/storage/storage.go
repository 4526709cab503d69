package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is returned by GetJSON when the stored value is not valid JSON
// for the requested type.
var ErrMalformed = errors.New("malformed stored value")

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// GetJSON decodes the value stored under key into dst. found is false when
// the key is absent. A value that does not decode yields ErrMalformed.
func GetJSON(ctx context.Context, r Repository, key string, dst any) (found bool, err error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("%w: kv[%s]: %v", ErrMalformed, key, err)
	}
	return true, nil
}

// SetJSON stores the JSON encoding of v under key.
func SetJSON(ctx context.Context, r Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode kv[%s]: %w", key, err)
	}
	return r.Set(ctx, key, raw)
}
