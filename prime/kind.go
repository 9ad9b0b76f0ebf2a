// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

// Kind selects the structural requirement of a generated prime.
type Kind int

const (
	// Random is a plain certified prime with the requested digit count.
	Random Kind = iota
	// Safe is a prime p such that (p-1)/2 is also prime.
	Safe
	// Mersenne is recognized but intentionally unimplemented; requesting it
	// fails fast with ErrUnsupportedKind.
	Mersenne
)

func (k Kind) String() string {
	switch k {
	case Random:
		return "random"
	case Safe:
		return "safe"
	case Mersenne:
		return "mersenne"
	default:
		return "unknown"
	}
}
