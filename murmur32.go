// Package murmur3 implements Austin Appleby's MurmurHash3 algorithm in its
// x86 32-bit variant.
//
// The hash is not cryptographic. Its use case is deriving stable 32-bit tags
// from short identifier strings: the same bytes and seed always produce the
// same value, on every platform, regardless of the machine's byte order.
//
// Two evaluation forms are provided. Sum32 and friends hash a complete key in
// one call. Digest32 evaluates incrementally with value semantics: Write
// returns a derived digest and never mutates its receiver, so partial
// evaluations can be retained and extended independently.
package murmur3

import "math/bits"

const (
	c1 uint32 = 0xcc9e2d51
	c2 uint32 = 0x1b873593
)

// scramble32 premixes one little-endian word of key material. Full blocks
// and tail bytes share this step.
func scramble32(k uint32) uint32 {
	k *= c1
	k = bits.RotateLeft32(k, 15)
	return k * c2
}

// bmix32 folds one full 4-byte block into the running hash.
func bmix32(h, k uint32) uint32 {
	h ^= scramble32(k)
	h = bits.RotateLeft32(h, 13)
	return h*5 + 0xe6546b64
}

// fmix32 is the finalization mix, forcing the accumulated state to avalanche
// across all 32 output bits. The shifts are logical, never rotates.
func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// Sum32 returns the MurmurHash3 sum of data with seed 0.
func Sum32(data []byte) uint32 { return Sum32WithSeed(data, 0) }

// Sum32WithSeed returns the MurmurHash3 sum of data. The function is total:
// every input length, including zero, and every seed produce a defined
// result. All arithmetic is unsigned 32-bit with silent wraparound, as the
// algorithm specifies.
func Sum32WithSeed(data []byte, seed uint32) uint32 {
	h := seed

	// Body: full 4-byte blocks, strictly in order. Words are assembled
	// little-endian by explicit shifts; byte order of the host never leaks
	// into the result.
	p := data
	for len(p) >= 4 {
		h = bmix32(h, uint32(p[0])|uint32(p[1])<<8|uint32(p[2])<<16|uint32(p[3])<<24)
		p = p[4:]
	}

	// Tail: the 0-3 bytes left over. No padding; the partial word is
	// premixed and XORed in without the block rotate-multiply step.
	var k uint32
	switch len(p) {
	case 3:
		k ^= uint32(p[2]) << 16
		fallthrough
	case 2:
		k ^= uint32(p[1]) << 8
		fallthrough
	case 1:
		k ^= uint32(p[0])
		h ^= scramble32(k)
	}

	// Finalization mixes in the total key length, not the block count.
	return fmix32(h ^ uint32(len(data)))
}

// StringSum32 returns the MurmurHash3 sum of s with seed 0. It is the
// convenience form for hashing literal identifiers into tags.
func StringSum32(s string) uint32 { return StringSum32WithSeed(s, 0) }

// StringSum32WithSeed is Sum32WithSeed for a string key, without copying the
// string to a byte slice.
func StringSum32WithSeed(s string, seed uint32) uint32 {
	h := seed

	i, nblocks := 0, len(s)&^3
	for ; i < nblocks; i += 4 {
		h = bmix32(h, uint32(s[i])|uint32(s[i+1])<<8|uint32(s[i+2])<<16|uint32(s[i+3])<<24)
	}

	var k uint32
	switch len(s) & 3 {
	case 3:
		k ^= uint32(s[i+2]) << 16
		fallthrough
	case 2:
		k ^= uint32(s[i+1]) << 8
		fallthrough
	case 1:
		k ^= uint32(s[i])
		h ^= scramble32(k)
	}

	return fmix32(h ^ uint32(len(s)))
}
