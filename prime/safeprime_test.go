// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimeToSafePrime(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(11), PrimeToSafePrime(big.NewInt(5)).Int64())
	assert.True(t, PrimeToSafePrime(big.NewInt(5)).ProbablyPrime(20))
	assert.False(t, PrimeToSafePrime(big.NewInt(12)).ProbablyPrime(20))
}

func TestPocklington(t *testing.T) {
	t.Parallel()
	assert.True(t, Pocklington(big.NewInt(11)))
	assert.True(t, Pocklington(big.NewInt(107)))
	assert.False(t, Pocklington(big.NewInt(25)))
	assert.False(t, Pocklington(big.NewInt(15)))
}

func TestSafePrimeValidate(t *testing.T) {
	t.Parallel()
	good := &SafePrime{q: big.NewInt(5), p: big.NewInt(11)}
	assert.True(t, good.Validate())

	// 2*12+1 = 25 is not prime, and 12 isn't either.
	bad := &SafePrime{q: big.NewInt(12), p: big.NewInt(25)}
	assert.False(t, bad.Validate())

	// Both prime, but p != 2q+1.
	mismatched := &SafePrime{q: big.NewInt(5), p: big.NewInt(13)}
	assert.False(t, mismatched.Validate())

	assert.False(t, (&SafePrime{}).Validate())
}

func TestGenerateSafeThreeDigitScenario(t *testing.T) {
	t.Parallel()
	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	sp, err := g.GenerateSafe(context.Background(), 3)
	require.NoError(t, err)
	p, q := sp.SafePrime(), sp.Prime()

	assert.True(t, HasDigitCount(p, 3), "p=%s", p)
	assert.True(t, HasDigitCount(q, 2), "q=%s", q)
	assert.True(t, p.ProbablyPrime(20))
	assert.True(t, q.ProbablyPrime(20))
	assert.True(t, sp.Validate())
	assertPrimeByFactorization(t, p)
	assertPrimeByFactorization(t, q)

	// (p-1)/2 must reproduce q.
	half := new(big.Int).Sub(p, one)
	half.Rsh(half, 1)
	assert.Zero(t, half.Cmp(q))
}

func TestGenerateSafeViaKind(t *testing.T) {
	t.Parallel()
	p, err := Generate(context.Background(), Safe, 4)
	require.NoError(t, err)
	assert.True(t, HasDigitCount(p, 4))
	assert.True(t, p.ProbablyPrime(20))
	q := new(big.Int).Sub(p, one)
	q.Rsh(q, 1)
	assert.True(t, q.ProbablyPrime(20))
	assert.True(t, HasDigitCount(q, 3))
}

func TestGenerateSafeParallel(t *testing.T) {
	t.Parallel()
	g, err := NewGenerator(parallelConfig())
	require.NoError(t, err)

	sp, err := g.GenerateSafe(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, sp.Validate())
	assert.True(t, HasDigitCount(sp.SafePrime(), 5))
}

func TestGenerateSafeMinimumDigits(t *testing.T) {
	t.Parallel()
	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	for _, digits := range []int{1, 0, -2} {
		_, err := g.GenerateSafe(context.Background(), digits)
		assert.ErrorIs(t, err, ErrInvalidDigitCount, "digits=%d", digits)
	}
}

func TestGenerateSafeHonorsCancellation(t *testing.T) {
	t.Parallel()
	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.GenerateSafe(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
}
