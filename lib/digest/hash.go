// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// domainKey is a 32-byte key for BLAKE3 keyed hashing. Domain
// separation ensures that the same input bytes produce different
// hashes depending on what kind of thing they are being hashed as,
// preventing cross-domain collisions (a value's encoded bytes could
// otherwise collide, bit-for-bit, with some chunk's raw content).
type domainKey [32]byte

// Domain separation keys: the ASCII encoding of the domain name,
// zero-padded to 32 bytes. Changing either constant invalidates every
// hash computed under it.
var (
	valueDomainKey = domainKey{
		'c', 'o', 'r', 'd', '.', 'd', 'i', 'g', 'e', 's', 't', '.', 'v', 'a', 'l', 'u',
		'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	chunkDomainKey = domainKey{
		'c', 'o', 'r', 'd', '.', 'd', 'i', 'g', 'e', 's', 't', '.', 'c', 'h', 'u', 'n',
		'k', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	treeDomainKey = domainKey{
		'c', 'o', 'r', 'd', '.', 'd', 'i', 'g', 'e', 's', 't', '.', 't', 'r', 'e', 'e',
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// HashValue computes the value-domain BLAKE3 keyed hash of a value's
// canonical Cord encoding. Two calls to [github.com/cord-format/cord/lib/cord.Encode]
// for semantically equal values produce identical bytes, so HashValue
// is also a hash of the semantic value.
func HashValue(encoded []byte) Hash {
	return keyedHash(valueDomainKey, encoded)
}

// HashChunk computes the chunk-domain BLAKE3 keyed hash of raw archive
// chunk content, independent of whatever compression the chunk is
// stored under.
func HashChunk(data []byte) Hash {
	return keyedHash(chunkDomainKey, data)
}

// MerkleRoot computes a binary Merkle tree over hashes and returns the
// root. The tree is built bottom-up: adjacent pairs are concatenated
// and keyed-hashed under the tree domain. An odd node at any level is
// promoted to the next level unhashed rather than duplicated —
// duplicating would let one input's root collide with a different,
// shorter input's root when one hash list is a prefix of the other.
//
// Panics if hashes is empty.
func MerkleRoot(hashes []Hash) Hash {
	if len(hashes) == 0 {
		panic("digest.MerkleRoot: empty hash list")
	}
	if len(hashes) == 1 {
		return hashes[0]
	}

	hasher, err := blake3.NewKeyed(treeDomainKey[:])
	if err != nil {
		panic("digest: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	var combined [64]byte
	hashPair := func(left, right Hash) Hash {
		copy(combined[:32], left[:])
		copy(combined[32:], right[:])
		hasher.Reset()
		hasher.Write(combined[:])
		var result Hash
		copy(result[:], hasher.Sum(nil))
		return result
	}

	level := make([]Hash, len(hashes))
	copy(level, hashes)

	for len(level) > 1 {
		next := make([]Hash, (len(level)+1)/2)
		for i := 0; i < len(level)-1; i += 2 {
			next[i/2] = hashPair(level[i], level[i+1])
		}
		if len(level)%2 == 1 {
			next[len(next)-1] = level[len(level)-1]
		}
		level = next
	}

	return level[0]
}

// FormatHash returns the hex-encoded string representation of a hash.
func FormatHash(hash Hash) string {
	return hex.EncodeToString(hash[:])
}

// ParseHash parses a 64-character hex string into a Hash.
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing digest hash: %w", err)
	}
	if len(decoded) != 32 {
		return hash, fmt.Errorf("digest hash is %d bytes, want 32", len(decoded))
	}
	copy(hash[:], decoded)
	return hash, nil
}

func keyedHash(key domainKey, data []byte) Hash {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("digest: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}
