// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// maxDigitCount bounds sampler input to keep runaway requests from
// allocating absurd integers. Generator.Generate validates against it and
// returns ErrInvalidDigitCount; inside the package it is an invariant.
const maxDigitCount = 5000

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
	ten = big.NewInt(10)
)

// RandomOdd returns a uniformly random odd integer with exactly the given
// number of decimal digits, drawn from crypto/rand. An even draw is bumped
// to the next odd value; if the bump would leave the digit range the draw
// is discarded and resampled.
//
// RandomOdd panics if digits is outside [1, maxDigitCount] or if the
// entropy source fails; rand.Reader failing is not a condition worth
// recovering from.
func RandomOdd(digits int) *big.Int {
	if digits < 1 || maxDigitCount < digits {
		panic(fmt.Errorf("RandomOdd: digits must be in [1,%d], got %d", maxDigitCount, digits))
	}
	lower := pow10(digits - 1)
	upper := pow10(digits)
	width := new(big.Int).Sub(upper, lower)
	for {
		n, err := rand.Int(rand.Reader, width)
		if err != nil {
			panic(errors.Wrap(err, "rand.Int failure in RandomOdd"))
		}
		n.Add(n, lower)
		if n.Bit(0) == 0 {
			n.Add(n, one)
			// 10^d is even, so the bump cannot actually reach it, but the
			// range invariant is cheap to enforce and must never be assumed.
			if n.Cmp(upper) >= 0 {
				continue
			}
		}
		return n
	}
}

// randomWitness returns a uniform Miller–Rabin base in [2, n-2].
// The caller guarantees n > 4.
func randomWitness(n *big.Int) *big.Int {
	span := new(big.Int).Sub(n, big.NewInt(3)) // |[2, n-2]| = n-3
	a, err := rand.Int(rand.Reader, span)
	if err != nil {
		panic(errors.Wrap(err, "rand.Int failure in randomWitness"))
	}
	return a.Add(a, two)
}

// HasDigitCount reports whether n has exactly the given number of decimal
// digits, i.e. n is in [10^(digits-1), 10^digits).
func HasDigitCount(n *big.Int, digits int) bool {
	if n == nil || digits < 1 {
		return false
	}
	return n.Cmp(pow10(digits-1)) >= 0 && n.Cmp(pow10(digits)) < 0
}

// DigitsToBits returns the number of bits needed to represent any integer
// with the given decimal digit count.
func DigitsToBits(digits int) int {
	return int(math.Ceil(float64(digits) * math.Log2(10)))
}

func pow10(e int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(e)), nil)
}
