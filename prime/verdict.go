// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

// Verdict is the outcome of one certification stage.
type Verdict int

const (
	// Composite means the candidate is proven composite and must be rejected.
	Composite Verdict = iota
	// ProbablyPrime means the candidate survived the probabilistic stage.
	ProbablyPrime
	// CertifiedPrime means the candidate survived every configured stage.
	CertifiedPrime
)

func (v Verdict) String() string {
	switch v {
	case Composite:
		return "composite"
	case ProbablyPrime:
		return "probably-prime"
	case CertifiedPrime:
		return "certified-prime"
	default:
		return "unknown"
	}
}
