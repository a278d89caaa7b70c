// Package memstore keeps key-value records in process memory.
package memstore

import (
	"context"
	"sync"
)

// Store implements booking.KeyValue over a map.
type Store struct {
	mutex  sync.RWMutex
	values map[string][]byte
}

// New returns an empty Store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (store *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	value, ok := store.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Put replaces the value under key with a copy of value.
func (store *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.values[key] = append([]byte(nil), value...)
	return nil
}
