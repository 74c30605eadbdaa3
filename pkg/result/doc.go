// Package result provides Result[T], a value that is either Ok with a
// payload or Fail with an error. Both outcomes are ordinary values, so a
// fallible step can be passed around, composed and inspected without
// if err != nil at every call site.
//
// Unlike Either there is no two-argument constructor to validate: a Result
// is built directly into one variant by Ok or Fail, and Of lifts Go's
// (T, error) return pair. Every Result carries an id and a UTC creation
// stamp for correlating values across a pipeline.
//
// Key operations:
// - Ok/Fail/Of: construct a variant, or lift a (value, error) pair
// - IsOk/IsFail/Err: query the outcome
// - Unwrap/UnwrapFail/UnwrapOr: extract, panicking with UnwrapError on the
//   wrong variant
// - MaybeOk/MaybeFail: project a channel into maybe.Option
// - Map/MapFail/FlatMap: compose without unwrapping
// - Match: total two-handler fold to a plain value
// - Tap: partial side-effect handlers, nil-checked
package result
