package locator

import (
	"sync"
	"sync/atomic"
)

// Lazily supplied value.
//
// The supplier runs at most once on success; all callers observe the same
// value afterwards. The uncontended path reads an atomic flag without taking
// the lock.
//
// If the supplier returns an error, nothing is memoized and the next Get call
// invokes the supplier again; callers never observe a partially-built value.
type Lazy[T any] struct {
	mu       sync.Mutex
	done     atomic.Bool
	supplier func() (T, error)
	value    T
}

// Create new *Lazy with the given supplier.
func NewLazy[T any](supplier func() (T, error)) *Lazy[T] {
	if supplier == nil {
		panic(ErrIllegalArgument.WithInternalMsg("Lazy supplier is nil"))
	}
	return &Lazy[T]{supplier: supplier}
}

// Get the value, invoking the supplier on first call.
func (l *Lazy[T]) Get() (T, error) {
	if l.done.Load() {
		return l.value, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// recheck, someone else may have beaten us to it
	if l.done.Load() {
		return l.value, nil
	}

	v, err := l.supplier()
	if err != nil {
		var zero T
		return zero, err
	}
	l.value = v
	l.supplier = nil
	l.done.Store(true)
	return v, nil
}

// Whether the value has been supplied already.
func (l *Lazy[T]) Initialized() bool {
	return l.done.Load()
}
