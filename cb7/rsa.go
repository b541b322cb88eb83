package cb7

import "math/big"

// rsaModulus, rsaEncryptExponent, and rsaDecryptExponent are the fixed
// RSA-like modexp parameters used by stage 3 of the v7 transform.
// rsaModulus factors as 5 * 2551 * 1446236305269271 and
// rsaEncryptExponent is the modular inverse of rsaDecryptExponent modulo
// phi(rsaModulus).
const (
	rsaModulus         uint64 = 0xfffffffffffffff5
	rsaEncryptExponent uint64 = 2682110966135737091
	rsaDecryptExponent uint64 = 11
)

// rsaCrypt treats (addr, val) as one 64-bit integer M = addr<<32 | val and
// replaces it with M^exponent mod rsaModulus, in place — but only if
// M < rsaModulus, since the exponentiation is only invertible in that
// range. A small sliver of values (11 out of 2^64) fall outside it and pass
// through unchanged.
func rsaCrypt(addr, val *uint32, exponent uint64) {
	m := new(big.Int).Lsh(new(big.Int).SetUint64(uint64(*addr)), 32)
	m.Or(m, new(big.Int).SetUint64(uint64(*val)))

	n := new(big.Int).SetUint64(rsaModulus)
	if m.Cmp(n) >= 0 {
		return
	}

	e := new(big.Int).SetUint64(exponent)
	m.Exp(m, e, n)

	mask := new(big.Int).SetUint64(0xffffffff)
	lo := new(big.Int).And(m, mask)
	hi := new(big.Int).Rsh(m, 32)

	*addr = uint32(hi.Uint64())
	*val = uint32(lo.Uint64())
}
