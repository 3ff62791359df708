package types

import (
	"fmt"
	"math/big"

	"github.com/Klingon-tech/hash256/pkg/mathutil"
)

// limbMask selects the low 32 bits of a 64-bit limb pair.
const limbMask = 0xffffffff

// Uint128 is an unsigned 128-bit integer as two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Uint256 is an unsigned 256-bit integer as two 128-bit halves.
// It is the numeric view of a Digest: not a general bignum, just the
// fixed eight-limb form used for comparison and target math.
type Uint256 struct {
	Hi Uint128
	Lo Uint128
}

// Uint256FromDigest converts a digest to its 256-bit integer value.
// Digest word 0 becomes the most significant 32 bits of the high half;
// word 7 the least significant 32 bits of the low half.
func Uint256FromDigest(d Digest) Uint256 {
	return Uint256{
		Hi: Uint128{
			Hi: mathutil.Shl(uint64(d[0]), uint(32)) | uint64(d[1]),
			Lo: mathutil.Shl(uint64(d[2]), uint(32)) | uint64(d[3]),
		},
		Lo: Uint128{
			Hi: mathutil.Shl(uint64(d[4]), uint(32)) | uint64(d[5]),
			Lo: mathutil.Shl(uint64(d[6]), uint(32)) | uint64(d[7]),
		},
	}
}

// Digest converts the integer back to digest form, the exact inverse of
// Uint256FromDigest. Each half is split into four 32-bit limbs by masking
// the low word and shifting down; word 7 receives the least significant
// limb of the low half, word 0 the most significant limb of the high half.
func (n Uint256) Digest() Digest {
	var d Digest
	d[7] = uint32(n.Lo.Lo & limbMask)
	d[6] = uint32(mathutil.Shr(n.Lo.Lo, uint(32)))
	d[5] = uint32(n.Lo.Hi & limbMask)
	d[4] = uint32(mathutil.Shr(n.Lo.Hi, uint(32)))
	d[3] = uint32(n.Hi.Lo & limbMask)
	d[2] = uint32(mathutil.Shr(n.Hi.Lo, uint(32)))
	d[1] = uint32(n.Hi.Hi & limbMask)
	d[0] = uint32(mathutil.Shr(n.Hi.Hi, uint(32)))
	return d
}

// IsZero returns true if the integer is zero.
func (n Uint256) IsZero() bool {
	return n == Uint256{}
}

// Cmp compares n and m, returning -1 if n < m, 0 if n == m, and 1 if n > m.
func (n Uint256) Cmp(m Uint256) int {
	pairs := [4][2]uint64{
		{n.Hi.Hi, m.Hi.Hi},
		{n.Hi.Lo, m.Hi.Lo},
		{n.Lo.Hi, m.Lo.Hi},
		{n.Lo.Lo, m.Lo.Lo},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// Big returns the integer as a big.Int, for difficulty-target arithmetic
// and display contexts that want arbitrary-precision math.
func (n Uint256) Big() *big.Int {
	return new(big.Int).SetBytes(n.Digest().Bytes())
}

// Uint256FromBig converts a big.Int to a Uint256.
// Returns an error if b is negative or wider than 256 bits.
func Uint256FromBig(b *big.Int) (Uint256, error) {
	if b.Sign() < 0 {
		return Uint256{}, fmt.Errorf("value must be non-negative")
	}
	if b.BitLen() > 256 {
		return Uint256{}, fmt.Errorf("value must fit in 256 bits, has %d", b.BitLen())
	}
	buf := make([]byte, DigestSize)
	b.FillBytes(buf)
	d, err := DigestFromBytes(buf)
	if err != nil {
		return Uint256{}, err
	}
	return Uint256FromDigest(d), nil
}

// String returns the integer as 64 hex digits, most significant first.
func (n Uint256) String() string {
	return n.Digest().String()
}
