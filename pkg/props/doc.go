// Package props resolves dot-delimited paths against nested data, producing
// a maybe.Option instead of a panic or a zero value when a link is missing.
//
// A path like "users.0.name" is split into segments, each reading one
// level: a non-negative integer segment indexes a slice or array, any other
// segment reads a string-keyed map entry or an exported struct field. The
// walk stops at the first nil value or missing read and yields None;
// reaching the end lifts the final value with maybe.Of, so a nil leaf is
// None as well.
//
// Key operations:
// - Parse/Resolve: split a path, walk a root value
// - Select: a path resolver as a reusable function
// - Get: one-call resolution
// - As: project a resolved value onto a concrete type
package props
