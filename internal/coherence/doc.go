// Package coherence implements a small MOESI cache-coherence simulator.
//
// It models one main memory and a fixed number of fully-associative private
// caches, and serves read and write requests against them, maintaining the
// MOESI invariants (at most one Modified/Exclusive copy, at most one Owner,
// Owner implies other copies are Shared, write-back on dirty eviction) with
// a FIFO replacement policy.
//
// # Basic usage
//
//	sys := coherence.NewSystem(coherence.SystemOptions{Seed: 42, HasSeed: true})
//	word, err := sys.Read(0, 5)
//	word, err = sys.Write(1, 5, 42)
//	view := sys.Snapshot()
//
// # Concurrency
//
// System is not safe for concurrent use. Requests are expected to be
// serialized by the caller; a single request's peer invalidations,
// write-backs, demotions, and fills complete before the call returns, and
// there are no suspension points inside a request.
package coherence
