// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import (
	"context"
	"math/big"
)

// MillerRabin runs the given number of independent witness rounds against n
// and returns Composite or ProbablyPrime. A composite n survives all rounds
// with probability at most 4^-rounds, so rounds trades confidence for
// latency; 20 or more is recommended for cryptographic use.
//
// n <= 1 and even n > 2 are Composite; members of the small-prime table are
// accepted immediately. ctx is polled between witness rounds (never inside a
// modular exponentiation) so a cancelled search stops before starting new
// work; on cancellation the returned verdict is meaningless and the context
// error is returned.
func MillerRabin(ctx context.Context, n *big.Int, rounds int) (Verdict, error) {
	if n.Cmp(one) <= 0 {
		return Composite, nil
	}
	if n.IsUint64() && isTablePrime(n.Uint64()) {
		return ProbablyPrime, nil
	}
	if n.Bit(0) == 0 {
		return Composite, nil
	}

	// Write n-1 = d * 2^s with d odd.
	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	x := new(big.Int)
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return Composite, err
		}
		a := randomWitness(n)
		modExp(x, a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}
		witness := true
		for r := 0; r < s-1; r++ {
			modExp(x, x, two, n)
			if x.Cmp(nMinusOne) == 0 {
				witness = false
				break
			}
		}
		if witness {
			// Proven composite; remaining rounds are pointless.
			return Composite, nil
		}
	}
	return ProbablyPrime, nil
}
