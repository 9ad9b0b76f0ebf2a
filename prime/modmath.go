// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

var constantTimeArithmetic = false

// EnableConstantTimeArithmetic switches modular exponentiation to a
// best-effort constant-time implementation (experimental, noticeably
// slower). Must be called before any Generator is used.
func EnableConstantTimeArithmetic() bool {
	constantTimeArithmetic = true
	return constantTimeArithmetic
}

// modExp computes base^exp mod m into dest and returns dest. The modulus m
// must be odd, which every candidate in the pipeline is.
func modExp(dest, base, exp, m *big.Int) *big.Int {
	if constantTimeArithmetic {
		return constantTimeModExp(dest, base, exp, m)
	}
	return dest.Exp(base, exp, m)
}

func constantTimeModExp(dest, base, exp, m *big.Int) *big.Int {
	mod := saferith.ModulusFromBytes(m.Bytes())
	b := new(saferith.Nat).SetBytes(base.Bytes())
	e := new(saferith.Nat).SetBytes(exp.Bytes())
	return dest.Set(new(saferith.Nat).Exp(b, e, mod).Big())
}
