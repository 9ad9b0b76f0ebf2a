// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package internal holds test support shared across primegen packages.
package internal

import (
	"errors"
	"fmt"
)

var (
	errNoPanic        = errors.New("no panic")
	errNoPanicMessage = errors.New("panic but no message")
)

func catchPanic(f func()) (recovered bool, err error) {
	func() {
		defer func() {
			if report := recover(); report != nil {
				recovered = true
				err = fmt.Errorf("%v", report)
			}
		}()
		f()
	}()
	return recovered, err
}

// ExpectPanic runs f expecting it to panic. If expected is non-nil, the
// recovered message must match expected's message. Returns (false, error)
// when no panic occurred or the message differs.
func ExpectPanic(expected error, f func()) (bool, error) {
	recovered, err := catchPanic(f)
	if !recovered {
		return false, errNoPanic
	}
	if expected == nil {
		return true, nil
	}
	if err == nil {
		return false, errNoPanicMessage
	}
	if err.Error() != expected.Error() {
		return false, fmt.Errorf("expected %q, got: %w", expected, err)
	}
	return true, nil
}
