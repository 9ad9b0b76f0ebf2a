// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package oracle provides deterministic primality certifiers that live
// outside the engine process.
package oracle

import (
	"context"
	"math/big"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/primelab/primegen/prime"
)

// Exec certifies candidates by invoking an external command, treated as a
// trusted authoritative oracle. The candidate's exact decimal expansion is
// written to a temporary file whose path is appended to Args; the command
// must print a verdict on stdout — "prime"/"true"/"1" or
// "composite"/"false"/"0", case-insensitive. Anything else, and any
// execution failure, is reported as prime.ErrOracleUnavailable.
//
// The temporary candidate file is removed on every path, including command
// failure.
type Exec struct {
	// Path is the command to run, resolved through the usual PATH rules.
	Path string
	// Args are passed before the candidate file path.
	Args []string
	// Timeout bounds one invocation. Zero leaves only ctx as the bound.
	Timeout time.Duration
	// Dir overrides the directory for temporary candidate files when set.
	Dir string
}

var _ prime.Oracle = (*Exec)(nil)

// Certify invokes the command on n. The verdict is meaningful only when the
// returned error is nil.
func (e *Exec) Certify(ctx context.Context, n *big.Int) (prime.Verdict, error) {
	f, err := os.CreateTemp(e.Dir, "primegen-candidate-*")
	if err != nil {
		return prime.Composite, errors.Wrapf(prime.ErrOracleUnavailable, "creating candidate file: %v", err)
	}
	name := f.Name()
	defer os.Remove(name)

	_, werr := f.WriteString(n.Text(10))
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return prime.Composite, errors.Wrapf(prime.ErrOracleUnavailable, "writing candidate file: %v", werr)
	}

	runCtx := ctx
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	args := append(append([]string(nil), e.Args...), name)
	out, err := exec.CommandContext(runCtx, e.Path, args...).Output()
	if err != nil {
		return prime.Composite, errors.Wrapf(prime.ErrOracleUnavailable, "%s: %v", e.Path, err)
	}

	switch strings.ToLower(strings.TrimSpace(string(out))) {
	case "prime", "true", "1":
		return prime.CertifiedPrime, nil
	case "composite", "false", "0":
		return prime.Composite, nil
	default:
		return prime.Composite, errors.Wrapf(prime.ErrOracleUnavailable, "unrecognized verdict %q from %s", strings.TrimSpace(string(out)), e.Path)
	}
}
