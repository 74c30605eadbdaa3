// Package reader provides Reader[E, A], a deferred computation from an
// environment value to a result value. A Reader holds no value of its own:
// Run(env) invokes the wrapped function each time it is called, never
// caching, and composition via Map and FlatMap builds new deferred
// computations.
//
// FlatMap threads one environment through the whole composed chain: the
// Reader produced by the step function runs against the same env the outer
// Reader received, so one Run means one environment.
//
// Key operations:
// - New/Ask: wrap a function, or request the environment itself
// - Run: feed an environment and compute
// - Map/FlatMap: compose deferred steps
// - Local: adapt the environment before a Reader sees it
package reader
