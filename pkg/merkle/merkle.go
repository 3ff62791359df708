// Package merkle builds merkle roots over digest leaves.
package merkle

import (
	"github.com/Klingon-tech/hash256/pkg/crypto"
	"github.com/Klingon-tech/hash256/pkg/types"
)

// ComputeRoot calculates the merkle root of the given leaf digests.
//
// Algorithm:
//   - 0 leaves: returns zero digest
//   - 1 leaf: returns that digest
//   - Otherwise: pairwise double-hash, duplicating the last element if odd
//     count, then recurse on the resulting layer until one digest remains.
func ComputeRoot(leaves []types.Digest) types.Digest {
	if len(leaves) == 0 {
		return types.Digest{}
	}
	if len(leaves) == 1 {
		return leaves[0]
	}

	// Work on a copy so we don't mutate the caller's slice.
	level := make([]types.Digest, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		// If odd, duplicate the last element.
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}

		next := make([]types.Digest, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next[i/2] = crypto.MerkleParent(level[i], level[i+1])
		}
		level = next
	}

	return level[0]
}
