// Package maybe provides Option[T], a container for zero-or-one values that
// makes absence explicit instead of leaving it to nil checks scattered over
// client code.
//
// A value is absent only when it is nil (untyped nil or a nil pointer,
// slice, map, chan, func or interface). Zero values such as 0, "" and false
// are present everywhere, including defaulting via ValueOr.
//
// Key operations:
// - Some/None/Of: construct directly or lift a possibly-nil value
// - ValueOr/ValueOrCompute/Get: extract with a default, lazily, or comma-ok
// - MustValue/Expect: assert presence, panicking with EmptyValueError
// - Map/FlatMap/Filter: compose without unwrapping
// - Match: total two-handler fold to a plain value
// - Tap/TapSome/TapNone: side effects without changing the Option
//
// Options are immutable; every transform returns a new one. For the
// failure-carrying variant see package result, for two arbitrary channels
// see package either.
package maybe
