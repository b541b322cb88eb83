// Package api defines the pluggable RC4 key-schedule implementation used by
// package rc4, mirroring the implementation-selection layer the original
// chacha20 work this module grew out of kept under internal/api.
package api

// Rc4Impl builds the initial 256-byte permutation state for an RC4 key
// schedule (the KSA). Only one implementation is registered today, but the
// registry lets a SIMD-accelerated key schedule be added later without
// touching rc4.New or any caller.
type Rc4Impl interface {
	// Name identifies the implementation, e.g. "generic".
	Name() string
	// KeySchedule runs the KSA for key into state, leaving state as a
	// permutation of 0..255.
	KeySchedule(key []byte, state *[256]byte)
}

var registry []Rc4Impl

// Register adds impl to the set of selectable implementations. Called from
// init() in the packages that implement Rc4Impl.
func Register(impl Rc4Impl) {
	registry = append(registry, impl)
}

// Select returns the implementation named preferred, falling back to the
// first registered implementation if preferred isn't found or is empty.
func Select(preferred string) Rc4Impl {
	for _, impl := range registry {
		if impl.Name() == preferred {
			return impl
		}
	}
	if len(registry) == 0 {
		panic("api: no rc4 implementation registered")
	}
	return registry[0]
}

// Names returns the names of all registered implementations, in
// registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, impl := range registry {
		names[i] = impl.Name()
	}
	return names
}
