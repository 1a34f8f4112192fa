package router

import "fmt"

// Registry is a static lookup from a key (usually a Screen) to a render capability.
// It is populated during composition and sealed before the app starts handling input.
//
// The capability type F is opaque to the registry, which lets each layer decide
// what a "renderer" is without the router depending on it.
type Registry[K comparable, F any] struct {
	name    string
	entries map[K]F
	order   []K
	sealed  bool
}

// NewRegistry creates an empty registry. The name is used in error messages.
func NewRegistry[K comparable, F any](name string) *Registry[K, F] {
	return &Registry[K, F]{
		name:    name,
		entries: make(map[K]F),
	}
}

// Name returns the registry name.
func (r *Registry[K, F]) Name() string {
	return r.name
}

// Register adds a capability for key.
// Returns ErrDuplicateScreen if the key is already present and
// ErrRegistrySealed once Seal has been called.
func (r *Registry[K, F]) Register(key K, fn F) error {
	if r.sealed {
		return screenError("register", key, ErrRegistrySealed)
	}
	if _, exists := r.entries[key]; exists {
		return screenError("register", key, ErrDuplicateScreen)
	}
	r.entries[key] = fn
	r.order = append(r.order, key)
	return nil
}

// MustRegister is Register for composition code; it panics on error.
// Duplicate registrations are programmer errors and must surface at startup.
func (r *Registry[K, F]) MustRegister(key K, fn F) *Registry[K, F] {
	if err := r.Register(key, fn); err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the capability registered for key, or ErrUnknownScreen.
func (r *Registry[K, F]) Resolve(key K) (F, error) {
	fn, ok := r.entries[key]
	if !ok {
		var zero F
		return zero, screenError("resolve", key, ErrUnknownScreen)
	}
	return fn, nil
}

// Has reports whether key is registered.
func (r *Registry[K, F]) Has(key K) bool {
	_, ok := r.entries[key]
	return ok
}

// Require checks that every key is registered and returns ErrUnknownScreen for
// the first one that is not. Composition code uses it to prove a registry is exhaustive.
func (r *Registry[K, F]) Require(keys ...K) error {
	for _, key := range keys {
		if _, ok := r.entries[key]; !ok {
			return fmt.Errorf("registry %s: %w", r.name, screenError("require", key, ErrUnknownScreen))
		}
	}
	return nil
}

// Keys returns the registered keys in registration order.
func (r *Registry[K, F]) Keys() []K {
	keys := make([]K, len(r.order))
	copy(keys, r.order)
	return keys
}

// Len returns the number of registered keys.
func (r *Registry[K, F]) Len() int {
	return len(r.entries)
}

// Seal ends the composition phase. Further Register calls fail.
func (r *Registry[K, F]) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry[K, F]) Sealed() bool {
	return r.sealed
}
