// Package codebreaker encrypts and decrypts cheat codes for all historical
// versions of the CodeBreaker PS2 tool. It dispatches each code to the v1
// codec (package cb1) or the v7+ codec (package cb7) depending on the
// current scheme, and tracks scheme transitions driven by inline beefcode
// sentinels.
package codebreaker

import (
	"github.com/fengxuway/codebreaker-go/cb1"
	"github.com/fengxuway/codebreaker-go/cb7"
)

// Code is an ordered pair of 32-bit words: an address and a value.
type Code struct {
	Addr uint32
	Val  uint32
}

// scheme identifies which codec a Processor currently applies to incoming
// codes.
type scheme int

const (
	schemeRaw scheme = iota
	schemeV1
	schemeV7
)

// Processor encrypts and decrypts a sequentially-ordered list of CB v1 and
// v7+ codes. Codes MUST be fed in their original order: rekeying is driven
// by sentinels inline in the stream, and reordering silently produces
// incorrect output.
type Processor struct {
	scheme    scheme
	cb7       *cb7.Codec
	codeLines int
}

// New returns a Processor starting in the Raw scheme, suitable for a v1 or
// unknown-scheme code list.
func New() *Processor {
	return &Processor{scheme: schemeRaw, cb7: cb7.New()}
}

// NewV7 returns a Processor preloaded with the canonical v7 bootstrap
// sentinel, for lists that omit the leading "BEEFC0DE 00000000" line.
func NewV7() *Processor {
	return &Processor{scheme: schemeV7, cb7: cb7.NewV7()}
}

// EncryptCode encrypts a single code.
func (p *Processor) EncryptCode(addr, val uint32) (uint32, uint32) {
	oldaddr, oldval := addr, val

	if p.scheme == schemeV7 {
		addr, val = p.cb7.EncryptCode(addr, val)
	} else {
		addr, val = cb1.EncryptCode(addr, val)
	}

	if cb7.IsBeefcode(oldaddr) {
		if err := p.cb7.Rekey(oldaddr, oldval); err != nil {
			panic(err) // unreachable: guarded by IsBeefcode above
		}
		p.scheme = schemeV7
	}

	return addr, val
}

// DecryptCode decrypts a single code.
func (p *Processor) DecryptCode(addr, val uint32) (uint32, uint32) {
	if p.scheme == schemeV7 {
		addr, val = p.cb7.DecryptCode(addr, val)
	} else {
		addr, val = cb1.DecryptCode(addr, val)
	}

	if cb7.IsBeefcode(addr) {
		if err := p.cb7.Rekey(addr, val); err != nil {
			panic(err) // unreachable: guarded by IsBeefcode above
		}
		p.scheme = schemeV7
	}

	return addr, val
}

// AutoDecryptCode detects whether and how a code needs to be decrypted:
// raw, v1, or v7. Used on input of unknown provenance, e.g. a code list
// pasted without a header stating its scheme.
func (p *Processor) AutoDecryptCode(addr, val uint32) (uint32, uint32) {
	if p.scheme != schemeV7 {
		if p.codeLines == 0 {
			p.codeLines = NumCodeLines(addr)
			if (addr>>24)&0x0e != 0 {
				if cb7.IsBeefcode(addr) {
					// A beefcode with a v1-looking header is emitted
					// unencrypted; treat it as a no-op line.
					p.codeLines--
					return addr, val
				}
				p.scheme = schemeV1
				p.codeLines--
				addr, val = cb1.DecryptCode(addr, val)
			} else {
				p.scheme = schemeRaw
				p.codeLines--
			}
		} else {
			p.codeLines--
			if p.scheme == schemeRaw {
				return addr, val
			}
			addr, val = cb1.DecryptCode(addr, val)
		}
	} else {
		addr, val = p.cb7.DecryptCode(addr, val)
		if p.codeLines == 0 {
			p.codeLines = NumCodeLines(addr)
			if p.codeLines == 1 && addr == 0xffffffff {
				// Re-encryption via "FFFFFFFF 000xnnnn" is not supported;
				// emit the code as-is and reset line accounting.
				p.codeLines = 0
				return addr, val
			}
		}
		p.codeLines--
	}

	if cb7.IsBeefcode(addr) {
		if err := p.cb7.Rekey(addr, val); err != nil {
			panic(err) // unreachable: guarded by IsBeefcode above
		}
		p.scheme = schemeV7
		p.codeLines = 1
	}

	return addr, val
}

// NumCodeLines returns how many lines (including addr's own) the command
// starting with addr occupies.
func NumCodeLines(addr uint32) int {
	cmd := addr >> 28
	switch {
	case cmd < 3 || cmd > 6:
		return 1
	case cmd == 3:
		if addr&0x00400000 != 0 {
			return 2
		}
		return 1
	default: // 4, 5, 6
		return 2
	}
}

// EncryptList encrypts codes in place, in order.
func (p *Processor) EncryptList(codes []Code) {
	for i, c := range codes {
		codes[i].Addr, codes[i].Val = p.EncryptCode(c.Addr, c.Val)
	}
}

// DecryptList decrypts codes in place, in order.
func (p *Processor) DecryptList(codes []Code) {
	for i, c := range codes {
		codes[i].Addr, codes[i].Val = p.DecryptCode(c.Addr, c.Val)
	}
}

// AutoDecryptList auto-decrypts codes in place, in order.
func (p *Processor) AutoDecryptList(codes []Code) {
	for i, c := range codes {
		codes[i].Addr, codes[i].Val = p.AutoDecryptCode(c.Addr, c.Val)
	}
}
