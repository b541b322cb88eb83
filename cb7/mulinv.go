package cb7

// mulEncrypt multiplies a by (b | 1), modulo 2^32. Forcing the multiplier
// odd guarantees mulDecrypt can invert it.
func mulEncrypt(a, b uint32) uint32 {
	return a * (b | 1)
}

// mulDecrypt multiplies a by the multiplicative inverse of (b | 1), modulo
// 2^32, undoing mulEncrypt.
func mulDecrypt(a, b uint32) uint32 {
	return a * modInverse(b|1)
}

// modInverse computes the multiplicative inverse of the odd integer x
// modulo 2^32 via four rounds of Newton's method, as described in
// https://lemire.me/blog/2017/09/18/computing-the-inverse-of-odd-integers/.
func modInverse(x uint32) uint32 {
	y := x
	for i := 0; i < 4; i++ {
		y = y * (2 - y*x)
	}
	return y
}
