// Package crypto implements the double-SHA256 hashing used for block,
// transaction, and merkle digests.
package crypto

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/Klingon-tech/hash256/pkg/types"
)

// Hash computes a single SHA-256 pass over the input data.
func Hash(data []byte) types.Digest {
	sum := sha256.Sum256(data)
	var d types.Digest
	for i := range d {
		d[i] = binary.BigEndian.Uint32(sum[4*i:])
	}
	return d
}

// DoubleHash computes Hash(Hash(data)): the raw bytes are hashed once and
// the resulting digest's 32-byte form is hashed again.
func DoubleHash(data []byte) types.Digest {
	first := Hash(data)
	return Hash(first.Bytes())
}

// DoubleHashWords is DoubleHash over a sequence of 32-bit words, encoded
// big-endian word by word. The word-slice signature guarantees the input
// is whole words; callers holding partial trailing bytes must hash through
// DoubleHash instead.
func DoubleHashWords(words []uint32) types.Digest {
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(buf[4*i:], w)
	}
	return DoubleHash(buf)
}

// MerkleParent computes the parent digest of two merkle children:
// the double hash of left's eight words followed by right's eight words.
func MerkleParent(left, right types.Digest) types.Digest {
	words := make([]uint32, 0, 2*types.DigestWords)
	words = append(words, left[:]...)
	words = append(words, right[:]...)
	return DoubleHashWords(words)
}
