// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import (
	"runtime"

	"github.com/pkg/errors"
)

// Config tunes a Generator. Instances are validated by NewGenerator and
// treated as immutable afterwards.
type Config struct {
	// Rounds is the Miller–Rabin witness round count. A composite survives
	// all rounds with probability at most 4^-Rounds.
	Rounds int

	// Workers is the goroutine count for parallel search.
	Workers int

	// BatchFactor scales how many candidates each parallel round examines:
	// one round runs Workers*BatchFactor independent pipelines.
	BatchFactor int

	// ParallelThreshold is the digit count at or above which the parallel
	// coordinator is used instead of the sequential loop.
	ParallelThreshold int

	// Oracle is the optional deterministic second certification stage.
	// Nil accepts candidates on the probabilistic verdict alone.
	Oracle Oracle

	// RequireOracle turns oracle unavailability into a hard error surfaced
	// to the caller instead of a discarded candidate.
	RequireOracle bool
}

// DefaultConfig returns the recommended configuration: 20 witness rounds,
// one worker per logical CPU, and an in-process Baillie-PSW double check.
func DefaultConfig() Config {
	return Config{
		Rounds:            20,
		Workers:           runtime.NumCPU(),
		BatchFactor:       2,
		ParallelThreshold: 100,
		Oracle:            BPSW{},
	}
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.Rounds < 1 {
		return errors.New("Rounds must be > 0")
	}
	if c.Workers < 1 {
		return errors.New("Workers must be > 0")
	}
	if c.BatchFactor < 1 {
		return errors.New("BatchFactor must be > 0")
	}
	if c.ParallelThreshold < 1 {
		return errors.New("ParallelThreshold must be > 0")
	}
	if c.RequireOracle && c.Oracle == nil {
		return errors.New("RequireOracle set without an Oracle")
	}
	return nil
}
