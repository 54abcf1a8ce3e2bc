package hash

import (
	"sync"
)

// Create new RWMap
func NewRWMap[K comparable, V any]() *RWMap[K, V] {
	return &RWMap[K, V]{
		storage: make(map[K]V),
	}
}

// Map with sync.RWMutex embeded.
type RWMap[K comparable, V any] struct {
	mu      sync.RWMutex
	storage map[K]V
}

func (r *RWMap[K, V]) Get(k K) (V, bool) {
	return r.GetElse(k, nil)
}

func (r *RWMap[K, V]) Put(k K, v V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[k] = v
}

func (r *RWMap[K, V]) Del(k K) (prev V, hasPrev bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.storage[k]
	if ok {
		delete(r.storage, k)
	}
	return v, ok
}

func (r *RWMap[K, V]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.storage)
}

func (r *RWMap[K, V]) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.storage)
}

func (r *RWMap[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]K, 0, len(r.storage))
	for k := range r.storage {
		keys = append(keys, k)
	}
	return keys
}

// Get k, if absent and elseFunc is not nil, call elseFunc to load the value.
//
// The loaded value is stored and returned; the bool result reports whether a
// value (cached or loaded) was obtained.
func (r *RWMap[K, V]) GetElse(k K, elseFunc func(k K) V) (V, bool) {
	r.mu.RLock()
	if v, ok := r.storage[k]; ok {
		defer r.mu.RUnlock()
		return v, true
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// recheck, the key may be loaded by someone else already
	if v, ok := r.storage[k]; ok {
		return v, true
	}

	if elseFunc == nil {
		var v V
		return v, false
	}

	newItem := elseFunc(k)
	r.storage[k] = newItem
	return newItem, true
}
