package hash

import "github.com/cespare/xxhash/v2"

// Name computes the xxHash64 key of an option name. The registry's name
// index is keyed by this hash.
func Name(name string) uint64 {
	return xxhash.Sum64String(name)
}
