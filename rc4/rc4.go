// Package rc4 implements the alleged-RC4 stream cipher used as a primitive
// by the v7 CodeBreaker codec.
package rc4

import (
	"errors"
	"fmt"

	"github.com/fengxuway/codebreaker-go/internal/api"
)

// ErrInvalidKeySize is returned by New when the key is empty or longer than
// 256 bytes.
var ErrInvalidKeySize = errors.New("rc4: invalid key size")

// Cipher is a single RC4 keystream generator. It is not safe for concurrent
// use, and a given instance must not be shared between independent streams.
type Cipher struct {
	i, j  byte
	state [256]byte
}

// New returns a Cipher keyed by key, whose length must be in 1..256 bytes.
func New(key []byte) (*Cipher, error) {
	if len(key) == 0 || len(key) > 256 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}
	c := &Cipher{}
	impl := api.Select(preferredImplementation())
	impl.KeySchedule(key, &c.state)
	return c, nil
}

// Crypt XORs every byte of buf with the next len(buf) bytes of keystream, in
// place. Calling Crypt twice with the same keystream position restores the
// original buffer, since RC4's keystream XOR is self-inverse.
func (c *Cipher) Crypt(buf []byte) {
	for k, b := range buf {
		c.i++
		c.j += c.state[c.i]
		c.state[c.i], c.state[c.j] = c.state[c.j], c.state[c.i]
		buf[k] = b ^ c.state[byte(c.state[c.i]+c.state[c.j])]
	}
}
