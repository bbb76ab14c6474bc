package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Keys of the blobs kept in durable storage
const (
	KeyUsers     = "users"
	KeyFavorites = "userFavorites"
	KeyRatings   = "userVotes"
	KeyTheme     = "theme"
)

// Storage is the durable string key-value substrate.
// Get reports found=false for absent keys rather than an error.
type Storage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// LoadJSON decodes the blob stored under key into dest.
// An absent key leaves dest untouched and returns found=false.
func LoadJSON(ctx context.Context, s Storage, key string, dest any) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !found || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON encodes value and stores it under key
func SaveJSON(ctx context.Context, s Storage, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
