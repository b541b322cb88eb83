// Package cb7 encrypts and decrypts CodeBreaker PS2 codes for the v7+
// scheme: a four-stage per-code transform (modular multiplication, RC4,
// RSA-like modular exponentiation, and a 64-round additive/XOR mixing loop)
// driven by a mutable key schedule that is rekeyed by inline "beefcode"
// sentinels.
package cb7

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fengxuway/codebreaker-go/rc4"
)

// String renders a short diagnostic summary of the codec's state: the first
// 16 bytes of seed row 0, the key, and the beefcodf/initialized flags.
// Intended for debug logging, not for bit-exact state inspection.
func (c *Codec) String() string {
	return fmt.Sprintf("Codec{seeds[0][0..16]=%x key=%08x beefcodf=%t initialized=%t}",
		c.seeds[0][:16], c.key, c.beefcodf, c.initialized)
}

// BeefcodeDE and BeefcodeDF are the two sentinel addresses that trigger a
// rekey. BeefcodeDE carries one seed word; BeefcodeDF spans two lines, the
// second of which supplies an additional 64-bit seed.
const (
	BeefcodeDE uint32 = 0xbeefc0de
	BeefcodeDF uint32 = 0xbeefc0df
)

// ErrNotBeefcode is returned by Rekey when addr doesn't match a beefcode
// sentinel.
var ErrNotBeefcode = errors.New("cb7: rekey requires a beefcode address")

// IsBeefcode reports whether addr is one of the two beefcode sentinels.
func IsBeefcode(addr uint32) bool {
	return addr&0xfffffffe == BeefcodeDE
}

// Codec is a stateful processor for CB v7+ codes. The zero value is ready to
// use via New.
type Codec struct {
	seeds       [5][256]byte
	key         [5]uint32
	beefcodf    bool
	initialized bool
}

// New returns a Codec in its initial, zeroed state.
func New() *Codec {
	return &Codec{}
}

// NewV7 returns a Codec already rekeyed with the canonical bootstrap
// sentinel (BEEFC0DE 00000000), letting callers omit it as the first code
// in a list — the default encryption historically used by CMGSCCC.com.
func NewV7() *Codec {
	c := New()
	if err := c.Rekey(BeefcodeDE, 0); err != nil {
		panic(err) // unreachable: BeefcodeDE is always a valid beefcode
	}
	return c
}

// Rekey generates or changes the encryption key and seed matrix. It must be
// called for every beefcode encountered in a code stream:
//
//	BEEFC0DE vvvvvvvv
//
//	or:
//
//	BEEFC0DF vvvvvvvv
//	wwwwwwww wwwwwwww
//
// v is the seed value; w is an extra seed value consumed via the
// per-code transforms on the following line. Rekey returns ErrNotBeefcode
// if addr isn't a beefcode sentinel.
func (c *Codec) Rekey(addr, val uint32) error {
	if !IsBeefcode(addr) {
		return fmt.Errorf("%w: %#08x", ErrNotBeefcode, addr)
	}

	var idx [4]int
	valBytes := uint32ToBytes(val)
	for i, b := range valBytes {
		idx[i] = int(b)
	}

	deriveKey := func() {
		for i := 0; i < 4; i++ {
			c.key[i] = uint32(c.seeds[(i+3)%4][idx[3]])<<24 |
				uint32(c.seeds[(i+2)%4][idx[2]])<<16 |
				uint32(c.seeds[(i+1)%4][idx[1]])<<8 |
				uint32(c.seeds[i%4][idx[0]])
		}
	}

	switch {
	case !c.initialized:
		c.key = rc4Key
		if val != 0 {
			c.seeds = seedTable
			deriveKey()
		} else {
			c.seeds = [5][256]byte{}
		}
		c.initialized = true
	case val != 0:
		deriveKey()
	default:
		// Two BEEFC0DE 00000000 in a row: clears the seeds and the first
		// four key words, but leaves key[4] untouched.
		c.seeds = [5][256]byte{}
		c.key[0], c.key[1], c.key[2], c.key[3] = 0, 0, 0, 0
	}

	keyBytes := keyToBytes(c.key)
	for i := 0; i < 5; i++ {
		cipher, err := rc4.New(keyBytes)
		if err != nil {
			panic(err) // unreachable: keyBytes is always 20 bytes
		}
		cipher.Crypt(c.seeds[i][:])
		cipher.Crypt(keyBytes)
	}
	c.key = bytesToKey(keyBytes)

	c.beefcodf = addr&1 != 0
	return nil
}

// EncryptCode encrypts a single (addr, val) code.
func (c *Codec) EncryptCode(addr, val uint32) (uint32, uint32) {
	oldaddr, oldval := addr, val

	addr = mulEncrypt(addr, c.key[0]-c.key[1])
	val = mulEncrypt(val, c.key[2]+c.key[3])

	addr, val = c.rc4Pair(addr, val)

	rsaCrypt(&addr, &val, rsaEncryptExponent)

	addr, val = c.mix(addr, val)

	if IsBeefcode(oldaddr) {
		if err := c.Rekey(oldaddr, oldval); err != nil {
			panic(err) // unreachable: guarded by IsBeefcode above
		}
		return addr, val
	}

	if c.beefcodf {
		c.xorSeedsWith(oldaddr, oldval)
	}

	return addr, val
}

// DecryptCode is the exact inverse of EncryptCode.
func (c *Codec) DecryptCode(addr, val uint32) (uint32, uint32) {
	addr, val = c.unmix(addr, val)

	rsaCrypt(&addr, &val, rsaDecryptExponent)

	addr, val = c.rc4Pair(addr, val)

	addr = mulDecrypt(addr, c.key[0]-c.key[1])
	val = mulDecrypt(val, c.key[2]+c.key[3])

	if c.beefcodf {
		c.xorSeedsWith(addr, val)
		return addr, val
	}

	if IsBeefcode(addr) {
		if err := c.Rekey(addr, val); err != nil {
			panic(err) // unreachable: guarded by IsBeefcode above
		}
	}

	return addr, val
}

// rc4Pair RC4-encrypts [addr, val], interpreted as 8 little-endian bytes,
// using the current key. RC4 is self-inverse so this serves both directions.
func (c *Codec) rc4Pair(addr, val uint32) (uint32, uint32) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], addr)
	binary.LittleEndian.PutUint32(buf[4:8], val)

	cipher, err := rc4.New(keyToBytes(c.key))
	if err != nil {
		panic(err) // unreachable: keyToBytes always returns 20 bytes
	}
	cipher.Crypt(buf)

	return binary.LittleEndian.Uint32(buf[0:4]), binary.LittleEndian.Uint32(buf[4:8])
}

// xorSeedsWith keys a fresh RC4 instance with the 8 little-endian bytes of
// (addr, val) and XORs the full 1280-byte seed matrix with its keystream,
// then clears beefcodf. Both EncryptCode and DecryptCode call this with the
// plaintext pair that was the second line of a BEEFC0DF sentinel — the
// pre-transformation pair on encrypt, the post-transformation (decrypted)
// pair on decrypt.
func (c *Codec) xorSeedsWith(addr, val uint32) {
	buf := uint64ToBytes(addr, val)
	cipher, err := rc4.New(buf)
	if err != nil {
		panic(err) // unreachable: buf is always 8 bytes
	}
	for i := range c.seeds {
		cipher.Crypt(c.seeds[i][:])
	}
	c.beefcodf = false
}

// mix runs the 64-round encryption mixing loop (stage 4 of EncryptCode).
func (c *Codec) mix(addr, val uint32) (uint32, uint32) {
	s := seedWords(&c.seeds)
	for i := 0; i < 64; i++ {
		addr = (addr + s[128+i]) ^ s[i]
		addr = addr - (val ^ s[256+i])
		val = (val - s[192+i]) ^ s[64+i]
		val = val + (addr ^ s[256+i])
	}
	return addr, val
}

// unmix runs the 64-round decryption unmixing loop (stage 1 of
// DecryptCode), the exact inverse of mix.
func (c *Codec) unmix(addr, val uint32) (uint32, uint32) {
	s := seedWords(&c.seeds)
	for i := 63; i >= 0; i-- {
		val = val - (addr ^ s[256+i])
		val = val ^ s[64+i]
		val = val + s[192+i]
		addr = addr + (val ^ s[256+i])
		addr = addr ^ s[i]
		addr = addr - s[128+i]
	}
	return addr, val
}

func uint32ToBytes(v uint32) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b
}

func uint64ToBytes(addr, val uint32) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[0:4], addr)
	binary.LittleEndian.PutUint32(b[4:8], val)
	return b
}

func keyToBytes(key [5]uint32) []byte {
	b := make([]byte, 20)
	for i, w := range key {
		binary.LittleEndian.PutUint32(b[i*4:], w)
	}
	return b
}

func bytesToKey(b []byte) [5]uint32 {
	var key [5]uint32
	for i := range key {
		key[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return key
}

// seedWords reinterprets the 1280 bytes of seeds as 320 little-endian
// 32-bit words, matching the wire contract spec.md calls out explicitly for
// big-endian hosts.
func seedWords(seeds *[5][256]byte) [320]uint32 {
	var out [320]uint32
	idx := 0
	for r := 0; r < 5; r++ {
		for b := 0; b < 256; b += 4 {
			out[idx] = binary.LittleEndian.Uint32(seeds[r][b : b+4])
			idx++
		}
	}
	return out
}
