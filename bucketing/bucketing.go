// Package bucketing turns hashed keys into stable assignment decisions, the
// way rollout and A/B systems split a population: hash an identifier, scale
// into the unit interval, compare against a threshold or pick an index.
package bucketing

import "github.com/deniscoady/murmur3"

// Max value of an unsigned 32-bit integer, which is what murmur3 returns.
const maxHashValue uint32 = 4294967295

// BoundedHash maps key to a deterministic value in [0, 1]. Equal keys and
// seeds always land on the same value, across processes and platforms.
func BoundedHash(key string, seed uint32) float64 {
	return float64(murmur3.StringSum32WithSeed(key, seed)) / float64(maxHashValue)
}

// Bucket maps key to a stable index in [0, n). Non-positive n returns 0.
func Bucket(key string, seed uint32, n int) int {
	if n <= 0 {
		return 0
	}
	return int(murmur3.StringSum32WithSeed(key, seed) % uint32(n))
}
