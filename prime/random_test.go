// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primelab/primegen/internal"
)

func TestRandomOddDigitCount(t *testing.T) {
	t.Parallel()
	for _, digits := range []int{1, 2, 5, 10, 40, 120} {
		lower := pow10(digits - 1)
		upper := pow10(digits)
		for i := 0; i < 50; i++ {
			n := RandomOdd(digits)
			require.True(t, HasDigitCount(n, digits), "digits=%d n=%s", digits, n)
			assert.EqualValues(t, 1, n.Bit(0), "must be odd")
			assert.True(t, n.Cmp(lower) >= 0)
			assert.True(t, n.Cmp(upper) < 0)
		}
	}
}

func TestRandomOddPanicsOnBadDigits(t *testing.T) {
	t.Parallel()
	for _, digits := range []int{0, -1, maxDigitCount + 1} {
		ok, err := internal.ExpectPanic(nil, func() { RandomOdd(digits) })
		assert.True(t, ok, "digits=%d should panic: %v", digits, err)
	}
}

func TestHasDigitCount(t *testing.T) {
	t.Parallel()
	assert.True(t, HasDigitCount(big.NewInt(1), 1))
	assert.True(t, HasDigitCount(big.NewInt(9), 1))
	assert.False(t, HasDigitCount(big.NewInt(10), 1))
	assert.True(t, HasDigitCount(big.NewInt(10), 2))
	assert.True(t, HasDigitCount(big.NewInt(999), 3))
	assert.False(t, HasDigitCount(big.NewInt(1000), 3))
	assert.False(t, HasDigitCount(big.NewInt(0), 1))
	assert.False(t, HasDigitCount(nil, 3))
	assert.False(t, HasDigitCount(big.NewInt(5), 0))
}

func TestDigitsToBits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, DigitsToBits(1))
	assert.Equal(t, 10, DigitsToBits(3))
	assert.Equal(t, 34, DigitsToBits(10))
	assert.Equal(t, 333, DigitsToBits(100))
	// The conversion must never under-estimate: 10^d - 1 has to fit.
	for d := 1; d <= 50; d++ {
		largest := new(big.Int).Sub(pow10(d), one)
		assert.GreaterOrEqual(t, DigitsToBits(d), largest.BitLen(), "d=%d", d)
	}
}

func TestRandomWitnessRange(t *testing.T) {
	t.Parallel()
	n := big.NewInt(101)
	hi := big.NewInt(99) // n-2
	for i := 0; i < 200; i++ {
		a := randomWitness(n)
		assert.True(t, a.Cmp(two) >= 0, "witness %s below 2", a)
		assert.True(t, a.Cmp(hi) <= 0, "witness %s above n-2", a)
	}
}
