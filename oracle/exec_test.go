// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package oracle

import (
	"context"
	"math/big"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primelab/primegen/prime"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests shell out via sh")
	}
}

// shellOracle builds an Exec whose verdict logic is an inline shell script;
// the candidate file path arrives as $0.
func shellOracle(script, dir string) *Exec {
	return &Exec{
		Path:    "sh",
		Args:    []string{"-c", script},
		Timeout: 10 * time.Second,
		Dir:     dir,
	}
}

func TestExecCertifyVerdicts(t *testing.T) {
	t.Parallel()
	requireShell(t)
	ctx := context.Background()

	v, err := shellOracle(`cat "$0" >/dev/null; echo prime`, "").Certify(ctx, big.NewInt(104729))
	require.NoError(t, err)
	assert.Equal(t, prime.CertifiedPrime, v)

	v, err = shellOracle(`echo composite`, "").Certify(ctx, big.NewInt(561))
	require.NoError(t, err)
	assert.Equal(t, prime.Composite, v)

	// Case and surrounding whitespace don't matter.
	v, err = shellOracle(`echo " TRUE "`, "").Certify(ctx, big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, prime.CertifiedPrime, v)
}

func TestExecPassesExactDecimalValue(t *testing.T) {
	t.Parallel()
	requireShell(t)
	e := shellOracle(`grep -qx 104729 "$0" && echo prime || echo composite`, "")
	v, err := e.Certify(context.Background(), big.NewInt(104729))
	require.NoError(t, err)
	assert.Equal(t, prime.CertifiedPrime, v)

	v, err = e.Certify(context.Background(), big.NewInt(104731))
	require.NoError(t, err)
	assert.Equal(t, prime.Composite, v)
}

func TestExecUnrecognizedVerdict(t *testing.T) {
	t.Parallel()
	requireShell(t)
	_, err := shellOracle(`echo maybe`, "").Certify(context.Background(), big.NewInt(7))
	assert.ErrorIs(t, err, prime.ErrOracleUnavailable)
}

func TestExecMissingBinary(t *testing.T) {
	t.Parallel()
	e := &Exec{Path: "definitely-not-a-real-binary-1f6b"}
	_, err := e.Certify(context.Background(), big.NewInt(7))
	assert.ErrorIs(t, err, prime.ErrOracleUnavailable)
}

func TestExecCleansUpCandidateFile(t *testing.T) {
	t.Parallel()
	requireShell(t)
	dir := t.TempDir()

	_, err := shellOracle(`echo prime`, dir).Certify(context.Background(), big.NewInt(7))
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "candidate file must be removed on success")

	// Cleanup must also happen when the command fails outright.
	failing := &Exec{Path: "definitely-not-a-real-binary-1f6b", Dir: dir}
	_, err = failing.Certify(context.Background(), big.NewInt(7))
	assert.ErrorIs(t, err, prime.ErrOracleUnavailable)
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "candidate file must be removed on failure")
}
