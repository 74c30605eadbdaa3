// Package either provides Either[L, R], a value holding exactly one of two
// channels. Right is the biased channel: Map and FlatMap transform Right and
// pass Left through untouched.
//
// Variants are built directly with Left and Right, which makes the
// both-populated state unrepresentable. New keeps the validating
// two-optional-arguments constructor for callers that assemble an Either
// from a pair of possibly-nil pointers; it rejects both-present and
// both-absent pairs with ErrBothValues and ErrNoValues.
//
// Key operations:
// - Left/Right/New/Must: construct a variant, or validate a pointer pair
// - IsLeft/IsRight: mutually exclusive queries
// - LeftOr/RightOr/MustLeft/MustRight: extract with a default, or assert
// - Map/FlatMap/MapLeft: channel-biased composition
// - Match: total two-handler fold to a plain value
// - Tap: partial side-effect handlers, nil-checked
//
// For the success/failure specialization with direct constructors see
// package result.
package either
