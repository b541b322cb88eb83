package rc4

import "golang.org/x/sys/cpu"

// preferredImplementation picks the RC4 key-schedule implementation to use
// based on detected CPU features. Today every detected level maps to
// "generic" since that's the only implementation registered; the probe is
// grounded on sneller's vm/avx512level.go and exists so a vectorized key
// schedule has a place to plug in without changing New's call sites.
func preferredImplementation() string {
	switch {
	case cpu.X86.HasAVX2:
		return "generic"
	case cpu.X86.HasSSE2:
		return "generic"
	default:
		return "generic"
	}
}
