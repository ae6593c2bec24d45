// Package persist stores the application state under fixed string keys in a
// small key-value slot, with debounced writes and a one-time migration from
// the legacy raw-text format.
package persist

import "sync"

// KV is the storage primitive the gateway writes through. Implementations
// hold string values under string keys; Get reports presence explicitly so
// "absent" is not an error.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// MemKV is an in-memory KV used by tests and as a throwaway backend.
type MemKV struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemKV() *MemKV {
	return &MemKV{m: map[string]string{}}
}

func (k *MemKV) Get(key string) (string, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *MemKV) Set(key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.m[key] = value
	return nil
}

func (k *MemKV) Delete(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.m, key)
	return nil
}

func (k *MemKV) Close() error { return nil }

// Len reports the number of stored keys.
func (k *MemKV) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.m)
}
