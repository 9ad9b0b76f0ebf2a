// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
)

// validateRounds is the witness round count used by SafePrime.Validate,
// which has no Generator configuration to draw on.
const validateRounds = 20

// SafePrime is a certified pair (q, p) with p = 2q + 1.
type SafePrime struct {
	q, p *big.Int
}

// Prime returns q, the Sophie Germain member of the pair.
func (sp *SafePrime) Prime() *big.Int {
	return sp.q
}

// SafePrime returns p = 2q + 1.
func (sp *SafePrime) SafePrime() *big.Int {
	return sp.p
}

// Validate re-checks the pair from scratch: p = 2q + 1, Pocklington's
// criterion on p, and full probabilistic tests on both members. That is
// stricter than generation strictly needs, but externally supplied pairs
// deserve the full treatment.
func (sp *SafePrime) Validate() bool {
	if sp.q == nil || sp.p == nil {
		return false
	}
	if PrimeToSafePrime(sp.q).Cmp(sp.p) != 0 {
		return false
	}
	return Pocklington(sp.p) &&
		sp.q.ProbablyPrime(validateRounds) &&
		sp.p.ProbablyPrime(validateRounds)
}

// PrimeToSafePrime returns 2q + 1.
func PrimeToSafePrime(q *big.Int) *big.Int {
	p := new(big.Int).Lsh(q, 1)
	return p.Add(p, one)
}

// Pocklington reports whether 2^(p-1) ≡ 1 (mod p). With q = (p-1)/2 known
// prime, this proves p prime outright, which is far cheaper than another
// full probabilistic test.
func Pocklington(p *big.Int) bool {
	e := new(big.Int).Sub(p, one)
	return modExp(new(big.Int), two, e, p).Cmp(one) == 0
}

// GenerateSafe returns a certified safe-prime pair where p has exactly the
// given decimal digit count and q = (p-1)/2 has digits-1. Any rejection of
// p restarts the whole derivation, q included — near a digit-count boundary
// 2q+1 can land one digit short of the target, so p's length is re-checked
// rather than assumed.
func (g *Generator) GenerateSafe(ctx context.Context, digits int) (*SafePrime, error) {
	if digits < 2 || maxDigitCount < digits {
		return nil, errors.Wrapf(ErrInvalidDigitCount, "%d digits for a safe prime, want 2..%d", digits, maxDigitCount)
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q, err := g.search(ctx, digits-1)
		if err != nil {
			return nil, err
		}
		p := PrimeToSafePrime(q)
		if !HasDigitCount(p, digits) {
			Logger.Debugf("safe prime candidate missed the %d-digit target, restarting", digits)
			continue
		}
		if !Sieve(p) {
			continue
		}
		// q is certified, so Pocklington alone proves p; the full pipeline
		// below still runs as defense in depth.
		if !Pocklington(p) {
			continue
		}
		ok, err := g.certify(ctx, p)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		return &SafePrime{q: q, p: p}, nil
	}
}
