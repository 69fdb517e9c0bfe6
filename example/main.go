package main

import (
	"log"

	"github.com/deniscoady/murmur3"
	"github.com/deniscoady/murmur3/bucketing"
)

func main() {
	// Stable tags for static identifiers.
	log.Printf("tag(%q) = %#08x", "Hi", murmur3.StringSum32("Hi"))
	log.Printf("tag(%q) = %#08x", "feature.checkout-v2", murmur3.StringSum32("feature.checkout-v2"))

	// Seeded hashing gives independent hash families over the same keys.
	for seed := uint32(0); seed < 3; seed++ {
		log.Printf("seed %d: %#08x", seed, murmur3.StringSum32WithSeed("user-4921", seed))
	}

	// Digests are values: a shared prefix can be extended down different
	// branches without re-hashing it.
	prefix := murmur3.New32().WriteString("feature.checkout-v2/")
	log.Printf("variant a: %#08x", prefix.WriteString("a").Sum32())
	log.Printf("variant b: %#08x", prefix.WriteString("b").Sum32())

	// Place a user in one of 10 rollout buckets.
	log.Printf("bucket: %d", bucketing.Bucket("user-4921", 1, 10))
	log.Printf("rollout hash: %f", bucketing.BoundedHash("user-4921", 1))
}
