// Package types defines the core digest and 256-bit integer types for hash256.
package types

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const (
	// DigestSize is the length of a digest in bytes.
	DigestSize = 32
	// DigestWords is the number of 32-bit words in a digest.
	DigestWords = 8
)

// Digest represents a 256-bit hash value as eight 32-bit words.
// Word 0 holds the most significant 32 bits, word 7 the least significant.
// Digests are plain values: copy freely, compare with ==.
type Digest [DigestWords]uint32

// NewDigest wraps an eight-word array as a digest.
func NewDigest(words [DigestWords]uint32) Digest {
	return Digest(words)
}

// Words returns the digest's eight 32-bit words.
func (d Digest) Words() [DigestWords]uint32 {
	return d
}

// IsZero returns true if the digest is all zeros.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// Bytes returns the digest as a 32-byte slice: words in index order,
// big-endian within each word.
func (d Digest) Bytes() []byte {
	b := make([]byte, DigestSize)
	for i, w := range d {
		binary.BigEndian.PutUint32(b[4*i:], w)
	}
	return b
}

// DigestFromBytes parses a 32-byte big-endian hash into a digest.
func DigestFromBytes(b []byte) (Digest, error) {
	if len(b) != DigestSize {
		return Digest{}, fmt.Errorf("digest must be %d bytes, got %d", DigestSize, len(b))
	}
	var d Digest
	for i := range d {
		d[i] = binary.BigEndian.Uint32(b[4*i:])
	}
	return d, nil
}

// String returns the hex-encoded digest.
func (d Digest) String() string {
	return hex.EncodeToString(d.Bytes())
}

// HexToDigest converts a hex string to a Digest.
// Returns an error if the string is not exactly 64 hex characters.
func HexToDigest(s string) (Digest, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("invalid hex: %w", err)
	}
	return DigestFromBytes(b)
}

// MarshalJSON encodes the digest as a hex string.
func (d Digest) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a hex string into a digest.
func (d *Digest) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Digest{}
		return nil
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid digest hex: %w", err)
	}
	parsed, err := DigestFromBytes(decoded)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
