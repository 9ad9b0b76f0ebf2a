// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package prime generates numerically certified large primes with an exact
// decimal digit count.
//
// Certification Pipeline Overview:
// A candidate moves through a fixed pipeline of stages, each of which can only
// reject it:
//
// 1. Sampling:
//   - A uniformly random odd integer is drawn in [10^(d-1), 10^d) so the
//     result has exactly d decimal digits.
//   - An even draw is bumped by one; a bump that would leave the digit range
//     forces a resample, never a truncation.
//
// 2. Combined Sieve:
//   - Trial division against the first 201 primes, batched into products that
//     fit a uint64 so one big-integer reduction covers a whole batch.
//   - The sieve only ever proves compositeness for small factors; survival
//     asserts nothing.
//
// 3. Miller–Rabin:
//   - k independent witness rounds (default 20); a surviving composite slips
//     through with probability at most 4^-k.
//   - Cancellation is polled between witness rounds, so concurrent searches
//     stop quickly once a peer has won.
//
// 4. Deterministic Oracle (optional):
//   - A pluggable authoritative certifier (in-process Baillie-PSW by default,
//     or an external command via the oracle package).
//   - Oracle failure is inconclusive: the candidate is discarded and the
//     search continues.
//
// Searches below a configurable digit threshold run sequentially; larger
// sizes fan the pipeline out across a batch of goroutines per round, with the
// first fully certified candidate cancelling its peers.
//
// Safe primes (p = 2q + 1 with q prime) wrap the same pipeline: q is
// generated at d-1 digits, p is re-validated for digit count and primality,
// and Pocklington's criterion (2^(p-1) ≡ 1 mod p) provides a cheap
// deterministic cross-check.
package prime
