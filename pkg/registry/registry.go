// Package registry stores the callbacks a template may reference. A registry
// is built by the caller before compilation; compiled sequences keep their own
// callback handles, so a registry can be mutated or discarded afterwards
// without affecting templates already compiled from it.
package registry

import (
	"sort"
	"sync"
)

// Callback produces the replacement text for one placeholder given the data
// value a render call was handed. The boolean reports whether a value was
// available; returning false makes the surrounding render fail with a no-data
// error for the placeholder's key.
//
// A callback stored in a registry may be invoked from concurrent render calls
// over the same compiled sequence, so implementations must be safe under
// concurrent use (pure functions trivially are).
type Callback[T any] func(data T) (string, bool)

// Pair couples a key with its callback for bulk construction via New.
type Pair[T any] struct {
	Key      string
	Callback Callback[T]
}

// Registry maps placeholder keys to callbacks. Inserting an existing key
// overwrites the previous entry. Key contents are not validated at insertion
// time; keys containing braces can be stored but can never be referenced from
// a template, since braces always terminate a placeholder scan.
//
// A Registry is safe for concurrent use, but by contract it must not be
// mutated while a compilation that reads it is in flight.
type Registry[T any] struct {
	mu        sync.RWMutex
	callbacks map[string]Callback[T]
}

// New creates a registry seeded with the provided pairs, applied in order
// (later pairs win on duplicate keys).
func New[T any](pairs ...Pair[T]) *Registry[T] {
	r := &Registry[T]{callbacks: make(map[string]Callback[T], len(pairs))}
	for _, p := range pairs {
		r.Insert(p.Key, p.Callback)
	}
	return r
}

// FromMap creates a registry from an existing key-to-callback map. The map is
// copied; later mutation of the argument does not affect the registry.
func FromMap[T any](callbacks map[string]Callback[T]) *Registry[T] {
	r := &Registry[T]{callbacks: make(map[string]Callback[T], len(callbacks))}
	for key, cb := range callbacks {
		r.Insert(key, cb)
	}
	return r
}

// Insert stores or overwrites the callback bound to key. Nil callbacks are
// ignored so a registry never hands out a handle that cannot be invoked.
func (r *Registry[T]) Insert(key string, cb Callback[T]) {
	if cb == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.callbacks == nil {
		r.callbacks = make(map[string]Callback[T])
	}
	r.callbacks[key] = cb
}

// Lookup returns the callback bound to key, if any.
func (r *Registry[T]) Lookup(key string) (Callback[T], bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cb, ok := r.callbacks[key]
	return cb, ok
}

// Len reports the number of keys currently registered.
func (r *Registry[T]) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.callbacks)
}

// Keys returns the registered keys in sorted order.
func (r *Registry[T]) Keys() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.callbacks))
	for key := range r.callbacks {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Adapt derives a registry over a different data type by routing every
// callback through view. The source registry is snapshotted at call time;
// entries inserted into it afterwards are not reflected in the result.
// Callers typically extend the returned registry with keys that only make
// sense for the wider data type.
func Adapt[U, T any](r *Registry[T], view func(U) T) *Registry[U] {
	out := &Registry[U]{callbacks: make(map[string]Callback[U], r.Len())}
	if r == nil || view == nil {
		return out
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for key, cb := range r.callbacks {
		cb := cb
		out.callbacks[key] = func(data U) (string, bool) {
			return cb(view(data))
		}
	}
	return out
}
