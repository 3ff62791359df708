// Package mathutil provides generic arithmetic helpers for unsigned
// fixed-width integers: fast exponentiation and logical shifts built on it.
package mathutil

import "math/bits"

// Unsigned is the set of built-in unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// BitWidth returns the width of T in bits.
func BitWidth[T Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// FastPow computes base^exp by square-and-multiply, using only
// multiplication on T. An exponent of zero yields 1 for every base,
// including zero. Overflow is not checked: the result wraps exactly as
// T's multiplication does.
func FastPow[T Unsigned, U Unsigned](base T, exp U) T {
	result := T(1)
	for exp > 0 {
		if exp%2 == 1 {
			result *= base
		}
		exp /= 2
		base *= base
	}
	return result
}

// Shl returns v logically shifted left by shift bits, computed as
// v * 2^shift. Shifting by the width of T or more returns zero.
// The boundary check uses the width of the value type, not the shift type.
func Shl[T Unsigned, U Unsigned](v T, shift U) T {
	if uint64(shift) > uint64(BitWidth[T]()-1) {
		return 0
	}
	return v * FastPow(T(2), shift)
}

// Shr returns v logically shifted right by shift bits, computed as
// v / 2^shift with truncating division. Shifting by the width of T or
// more returns zero.
func Shr[T Unsigned, U Unsigned](v T, shift U) T {
	if uint64(shift) > uint64(BitWidth[T]()-1) {
		return 0
	}
	return v / FastPow(T(2), shift)
}
