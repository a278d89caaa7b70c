package booking

import (
	"context"
	"fmt"
	"strings"
)

// KeyValue is a durable byte store addressed by opaque string keys.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// KeyValueStore keeps the whole booking collection under a single key.
type KeyValueStore struct {
	kv  KeyValue
	key string
}

// NewKeyValueStore wires a Store over kv. An empty key falls back to DefaultStorageKey.
func NewKeyValueStore(kv KeyValue, key string) (*KeyValueStore, error) {
	if kv == nil {
		return nil, fmt.Errorf("%w: key-value dependency is nil", ErrInvalidServiceConfig)
	}
	normalized := strings.TrimSpace(key)
	if normalized == "" {
		normalized = DefaultStorageKey
	}
	if strings.ContainsAny(normalized, " \t\r\n") {
		return nil, fmt.Errorf("%w: %q contains whitespace", ErrInvalidStorageKey, key)
	}
	return &KeyValueStore{kv: kv, key: normalized}, nil
}

// Key returns the storage key in use.
func (store *KeyValueStore) Key() string {
	return store.key
}

// LoadAll reads and decodes the collection. A missing key is an empty ledger.
func (store *KeyValueStore) LoadAll(ctx context.Context) ([]Booking, error) {
	raw, found, err := store.kv.Get(ctx, store.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []Booking{}, nil
	}
	return DecodeBookings(raw)
}

// SaveAll encodes and replaces the collection.
func (store *KeyValueStore) SaveAll(ctx context.Context, bookings []Booking) error {
	encoded, err := EncodeBookings(bookings)
	if err != nil {
		return err
	}
	return store.kv.Put(ctx, store.key, encoded)
}
