package scoped

import (
	"encoding/json"
)

// Codec converts one identity's collection to and from its durable form
type Codec[T any] interface {
	Encode(items []T) (json.RawMessage, error)
	Decode(raw json.RawMessage) ([]T, error)
}

// ListCodec stores a collection as a JSON array
type ListCodec[T any] struct{}

func (ListCodec[T]) Encode(items []T) (json.RawMessage, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func (ListCodec[T]) Decode(raw json.RawMessage) ([]T, error) {
	items := []T{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
