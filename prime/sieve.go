// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import "math/big"

// Sieve reports whether candidate survives trial division by the small-prime
// table. A candidate equal to a table prime passes; any other multiple of a
// table prime is rejected. Survival proves nothing — this is a fast
// compositeness filter, not a primality test.
func Sieve(candidate *big.Int) bool {
	if candidate.Sign() <= 0 {
		return false
	}
	if candidate.Bit(0) == 0 {
		return candidate.Cmp(two) == 0
	}
	// Only candidates small enough to sit inside the table can legitimately
	// equal one of its primes.
	inTableRange := candidate.IsUint64() && candidate.Uint64() <= smallPrimes[len(smallPrimes)-1]
	scratch := new(big.Int)
	for _, chunk := range sieveChunks {
		m := scratch.Mod(candidate, chunk.product).Uint64()
		for _, p := range chunk.primes {
			if m%p != 0 {
				continue
			}
			if inTableRange && candidate.Uint64() == p {
				continue
			}
			return false
		}
	}
	return true
}
