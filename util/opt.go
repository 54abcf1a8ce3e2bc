package util

// Optional value, useful for lookups where absence is a normal outcome.
type Opt[T any] struct {
	Val       T
	IsPresent bool
}

// Empty Optional
func EmptyOpt[T any]() Opt[T] {
	return Opt[T]{IsPresent: false}
}

// Optional with value present
func OptWith[T any](t T) Opt[T] {
	return Opt[T]{Val: t, IsPresent: true}
}

func (o *Opt[T]) Get() (T, bool) {
	return o.Val, o.IsPresent
}

func (o *Opt[T]) IfPresent(call func(t T)) {
	if o.IsPresent {
		call(o.Val)
	}
}

// Return the value if present, else the fallback.
func (o *Opt[T]) OrElse(fallback T) T {
	if o.IsPresent {
		return o.Val
	}
	return fallback
}

// Return the value if present, else compute one.
func (o *Opt[T]) OrElseGet(supplier func() T) T {
	if o.IsPresent {
		return o.Val
	}
	return supplier()
}
