// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import "github.com/pkg/errors"

var (
	// ErrInvalidDigitCount is returned before any sampling when the requested
	// digit count is zero, negative, or too small for the structural kind.
	ErrInvalidDigitCount = errors.New("invalid digit count")

	// ErrUnsupportedKind is returned before any sampling when the requested
	// structural kind has no generator (Mersenne, or an unknown value).
	ErrUnsupportedKind = errors.New("unsupported structural kind")

	// ErrOracleUnavailable wraps any failure to obtain a verdict from the
	// deterministic oracle. It is inconclusive, never a primality claim: the
	// engine discards the candidate and keeps searching unless the oracle is
	// configured as a hard requirement.
	ErrOracleUnavailable = errors.New("deterministic oracle unavailable")
)
