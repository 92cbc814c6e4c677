// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package search

// WorkerState is a stage of the per-worker state machine described in this
// module's design: Initializing -> Filtering -> Witnessing ->
// Emitting|Advancing, with Advancing looping back to Filtering.
type WorkerState int32

const (
	Initializing WorkerState = iota
	Filtering
	Witnessing
	Advancing
	Emitting
)

func (s WorkerState) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Filtering:
		return "Filtering"
	case Witnessing:
		return "Witnessing"
	case Advancing:
		return "Advancing"
	case Emitting:
		return "Emitting"
	default:
		return "Unknown"
	}
}

// StateObserver is notified of every worker state transition, identified by
// worker id. It is the mechanism this package exposes for tests (and any
// caller) to observe the per-worker state machine from outside runWorker;
// GeneratePrime threads it through from Config.Observer and invokes it
// synchronously from the worker goroutine that owns the transition, so an
// observer must not block.
type StateObserver func(workerID int, state WorkerState)
