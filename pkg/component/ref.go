package component

import "sync"

// Ref holds a mutable value that survives re-renders. Writing a Ref never
// triggers a render.
//
// Ref[T] is safe for concurrent access.
type Ref[T any] struct {
	mu    sync.RWMutex
	value T
	isSet bool
}

// NewRef creates an empty Ref outside of any scope.
func NewRef[T any]() *Ref[T] {
	return &Ref[T]{}
}

// UseRef returns the scope's Ref for this hook position.
func UseRef[T any](s *Scope) *Ref[T] {
	return slot(s, HookRef, NewRef[T])
}

// Current returns the current value.
func (r *Ref[T]) Current() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// Set stores value.
func (r *Ref[T]) Set(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = value
	r.isSet = true
}

// IsSet returns true if Set was called since the last Clear.
func (r *Ref[T]) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isSet
}

// Clear resets the ref to its zero value.
func (r *Ref[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	r.value = zero
	r.isSet = false
}
