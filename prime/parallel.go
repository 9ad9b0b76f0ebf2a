// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import (
	"context"
	"math/big"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// searchParallel fans the pipeline out across rounds of independent workers
// until one of them produces a fully certified prime. How fast a round
// succeeds is mostly luck; racing many candidates and cancelling the losers
// converts spare cores into lower latency.
func (g *Generator) searchParallel(ctx context.Context, digits int) (*big.Int, error) {
	batch := g.cfg.Workers * g.cfg.BatchFactor
	for round := 0; ; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found, err := g.runRound(ctx, digits, batch)
		if err != nil {
			return nil, err
		}
		if found != nil {
			Logger.Debugf("parallel search: %d-digit prime found in round %d", digits, round)
			return found, nil
		}
	}
}

// runRound races one batch of candidates and returns the first certified
// prime, or nil when the whole batch was rejected. Each round gets a fresh
// cancellation context, and the WaitGroup join below is the barrier that
// keeps round N workers from touching round N+1 state: the next round's
// context is not even created until every worker here has returned.
func (g *Generator) runRound(ctx context.Context, digits, batch int) (*big.Int, error) {
	roundCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan *big.Int, batch)
	errCh := make(chan error, batch)

	var wg sync.WaitGroup
	wg.Add(batch)
	for i := 0; i < batch; i++ {
		go func() {
			defer wg.Done()
			// Sampling shares nothing with peers; crypto/rand is internally
			// synchronized, so concurrent draws are uncorrelated.
			candidate := RandomOdd(digits)
			if !Sieve(candidate) {
				return
			}
			ok, err := g.certify(roundCtx, candidate)
			if err != nil {
				// A peer winning cancels roundCtx; that is not a failure.
				if errors.Is(err, context.Canceled) && ctx.Err() == nil {
					return
				}
				errCh <- err
				return
			}
			if ok {
				results <- candidate
				cancel() // peers observe this before starting new witness rounds
			}
		}()
	}
	wg.Wait()
	close(results)
	close(errCh)

	var merr *multierror.Error
	for err := range errCh {
		merr = multierror.Append(merr, err)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	// More than one worker can certify before observing cancellation; only
	// the first result is ever committed.
	return <-results, nil
}
