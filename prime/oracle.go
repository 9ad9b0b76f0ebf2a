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

// Oracle is an authoritative primality certifier consulted after the
// probabilistic stage. Certify returns CertifiedPrime or Composite for n;
// any failure to produce a verdict must be reported as an error wrapping
// ErrOracleUnavailable, in which case the verdict is meaningless.
type Oracle interface {
	Certify(ctx context.Context, n *big.Int) (Verdict, error)
}

// BPSW certifies candidates with a single in-process Baillie-PSW test
// (a base-2 Miller-Rabin round plus a Lucas test). No composite passing
// BPSW is known, and it is independent of the engine's own randomized
// witness rounds, which makes it a useful second opinion.
type BPSW struct{}

var _ Oracle = BPSW{}

func (BPSW) Certify(_ context.Context, n *big.Int) (Verdict, error) {
	if n.ProbablyPrime(0) {
		return CertifiedPrime, nil
	}
	return Composite, nil
}
