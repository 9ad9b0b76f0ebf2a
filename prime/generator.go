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

// Generator runs the certification pipeline. It is stateless between calls
// apart from its immutable configuration and is safe for concurrent use.
type Generator struct {
	cfg Config
}

// NewGenerator validates cfg and returns a Generator.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "prime generator config")
	}
	return &Generator{cfg: cfg}, nil
}

// Generate returns a certified prime of the requested structural kind with
// exactly the given decimal digit count, using DefaultConfig.
func Generate(ctx context.Context, kind Kind, digits int) (*big.Int, error) {
	g, err := NewGenerator(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, kind, digits)
}

// Generate returns a certified prime of the requested structural kind with
// exactly the given decimal digit count. Configuration problems (invalid
// size, unsupported kind) are returned before any candidate is sampled;
// per-candidate rejections never surface. The search is unbounded — bound
// it through ctx.
func (g *Generator) Generate(ctx context.Context, kind Kind, digits int) (*big.Int, error) {
	switch kind {
	case Random:
		if digits < 1 || maxDigitCount < digits {
			return nil, errors.Wrapf(ErrInvalidDigitCount, "%d digits, want 1..%d", digits, maxDigitCount)
		}
		return g.search(ctx, digits)
	case Safe:
		sp, err := g.GenerateSafe(ctx, digits)
		if err != nil {
			return nil, err
		}
		return sp.SafePrime(), nil
	case Mersenne:
		return nil, errors.Wrap(ErrUnsupportedKind, "mersenne primes are not implemented")
	default:
		return nil, errors.Wrapf(ErrUnsupportedKind, "kind %d", int(kind))
	}
}

// search picks the sequential loop or the parallel coordinator by size.
func (g *Generator) search(ctx context.Context, digits int) (*big.Int, error) {
	if digits >= g.cfg.ParallelThreshold {
		return g.searchParallel(ctx, digits)
	}
	return g.searchSequential(ctx, digits)
}

// searchState enumerates the sequential loop's pipeline positions. Keeping
// the cycle explicit keeps each transition individually checkable.
type searchState int

const (
	stateSampling searchState = iota
	stateSieving
	stateCertifying
	stateAccepted
)

func (g *Generator) searchSequential(ctx context.Context, digits int) (*big.Int, error) {
	var (
		state     = stateSampling
		candidate *big.Int
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch state {
		case stateSampling:
			candidate = RandomOdd(digits)
			state = stateSieving
		case stateSieving:
			if Sieve(candidate) {
				state = stateCertifying
			} else {
				state = stateSampling
			}
		case stateCertifying:
			ok, err := g.certify(ctx, candidate)
			switch {
			case err != nil:
				return nil, err
			case ok:
				state = stateAccepted
			default:
				state = stateSampling
			}
		case stateAccepted:
			return candidate, nil
		}
	}
}

// certify runs the probabilistic stage and, when configured, the
// deterministic oracle. ok=false means the candidate is discarded and the
// search should continue; a non-nil error is terminal for the search.
func (g *Generator) certify(ctx context.Context, n *big.Int) (ok bool, err error) {
	v, err := MillerRabin(ctx, n, g.cfg.Rounds)
	if err != nil {
		return false, err
	}
	if v == Composite {
		return false, nil
	}
	if g.cfg.Oracle == nil {
		return true, nil
	}
	ov, err := g.cfg.Oracle.Certify(ctx, n)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false, err
		}
		if g.cfg.RequireOracle {
			return false, err
		}
		Logger.Warnf("oracle inconclusive, discarding candidate: %v", err)
		return false, nil
	}
	return ov == CertifiedPrime, nil
}
