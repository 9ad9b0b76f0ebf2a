// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import (
	"math"
	"math/big"
	"sort"
)

// tableSize is the number of primes kept for trial division. 201 primes
// reach 1229, which rejects the bulk of random candidates before any
// expensive modular exponentiation happens.
const tableSize = 201

var (
	// smallPrimes holds the first tableSize primes in ascending order.
	// Built once at init and never mutated.
	smallPrimes []uint64

	// sieveChunks partitions the odd members of smallPrimes into runs whose
	// product fits a uint64. One big-integer reduction per chunk replaces a
	// big-integer reduction per prime.
	sieveChunks []sieveChunk
)

type sieveChunk struct {
	product *big.Int
	primes  []uint64
}

func init() {
	smallPrimes = FirstNPrimes(tableSize)

	// Chunk the odd primes greedily; the first chunk ends up being
	// 3*5*...*53, the largest such product below 2^64.
	var (
		run  []uint64
		prod = uint64(1)
	)
	flush := func() {
		if len(run) == 0 {
			return
		}
		sieveChunks = append(sieveChunks, sieveChunk{
			product: new(big.Int).SetUint64(prod),
			primes:  run,
		})
		run, prod = nil, 1
	}
	for _, p := range smallPrimes[1:] {
		if prod > math.MaxUint64/p {
			flush()
		}
		prod *= p
		run = append(run, p)
	}
	flush()
}

// PrimesUpTo returns all primes less than or equal to limit, ascending,
// using the sieve of Eratosthenes.
func PrimesUpTo(limit int) []uint64 {
	if limit < 2 {
		return nil
	}
	composite := make([]bool, limit+1)
	for p := 2; p*p <= limit; p++ {
		if composite[p] {
			continue
		}
		for i := p * p; i <= limit; i += p {
			composite[i] = true
		}
	}
	var primes []uint64
	for i := 2; i <= limit; i++ {
		if !composite[i] {
			primes = append(primes, uint64(i))
		}
	}
	return primes
}

// FirstNPrimes returns the first n primes in ascending order.
func FirstNPrimes(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	// For n >= 6 the nth prime is below n*(ln n + ln ln n); n*20 is a
	// comfortable overestimate for small n, and the loop covers the rest.
	limit := n * 20
	if n > 100 {
		limit = n * 15
	}
	primes := PrimesUpTo(limit)
	for len(primes) < n {
		limit *= 2
		primes = PrimesUpTo(limit)
	}
	return primes[:n]
}

// isTablePrime reports whether v is a member of the small-prime table.
func isTablePrime(v uint64) bool {
	i := sort.Search(len(smallPrimes), func(i int) bool { return smallPrimes[i] >= v })
	return i < len(smallPrimes) && smallPrimes[i] == v
}
