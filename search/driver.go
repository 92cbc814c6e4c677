// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package search

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/binance-chain/prime-gen/bigint"
	"github.com/binance-chain/prime-gen/primality"
)

var errInvalidBitWidth = errors.New("search: bit width must be in (2, bigint.Width/2]")

// GeneratePrime races cfg.Workers parallel workers, each generating its own
// candidate stream and advancing it through the primality oracle, and
// returns the first candidate any of them proves to be a probable prime.
// Losing workers are cancelled via ctx and abandoned; the first reported
// randomness failure is treated as fatal for the whole search, aggregating
// any other failures that raced in alongside it.
func GeneratePrime(ctx context.Context, oracle ByteOracle, cfg Config) (bigint.BigInt, error) {
	cfg, err := cfg.normalized()
	if err != nil {
		return bigint.Zero(), err
	}

	table := primality.DefaultTable()

	results := make(chan bigint.BigInt, cfg.Workers)
	errs := make(chan error, cfg.Workers)

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for id := 0; id < cfg.Workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(workerCtx, id, oracle, cfg, table, results, errs)
		}(id)
	}

	select {
	case prime := <-results:
		cancel()
		return prime, nil

	case firstErr := <-errs:
		cancel()
		agg := multierror.Append(nil, firstErr)
	drain:
		for {
			select {
			case extra := <-errs:
				agg = multierror.Append(agg, extra)
			default:
				break drain
			}
		}
		return bigint.Zero(), agg.ErrorOrNil()

	case <-ctx.Done():
		cancel()
		return bigint.Zero(), ctx.Err()
	}
}

// runWorker drives a single candidate stream through
// Initializing -> Filtering -> Witnessing -> Advancing|Emitting until it
// finds a probable prime, hits a fatal error, or ctx is cancelled.
func runWorker(
	ctx context.Context,
	id int,
	oracle ByteOracle,
	cfg Config,
	table *primality.SmallPrimeTable,
	results chan<- bigint.BigInt,
	errs chan<- error,
) {
	transition := func(s WorkerState) {
		log.Debugf("worker %d: %s", id, s)
		if cfg.Observer != nil {
			cfg.Observer(id, s)
		}
	}

	transition(Initializing)

	candidate, err := randomCandidate(oracle, cfg.BitWidth)
	if err != nil {
		errs <- errors.Wrapf(err, "search worker %d: generate candidate", id)
		return
	}
	transition(Filtering)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		switch primality.Filter(candidate, table) {
		case primality.Composite:
			transition(Advancing)
			candidate = bigint.IncrementBy2(candidate)
			transition(Filtering)
			continue
		case primality.Prime:
			transition(Emitting)
			emit(ctx, results, candidate)
			return
		}

		transition(Witnessing)
		result, err := primality.MRTest(candidate, cfg.MRRounds, oracle)
		if err != nil {
			errs <- errors.Wrapf(err, "search worker %d: miller-rabin", id)
			return
		}

		if result == primality.ProbablePrime {
			transition(Emitting)
			emit(ctx, results, candidate)
			return
		}

		transition(Advancing)
		candidate = bigint.IncrementBy2(candidate)
		transition(Filtering)
	}
}

func emit(ctx context.Context, results chan<- bigint.BigInt, candidate bigint.BigInt) {
	select {
	case results <- candidate:
	case <-ctx.Done():
	}
}
