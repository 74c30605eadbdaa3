// Package stream bridges the synchronous containers to channels. An Option
// projects onto a channel as emit-then-close when present, or close with
// zero emissions when absent; presence is read through the pure query
// surface, so projecting never changes the Option.
//
// Every function takes a context: cancellation abandons pending sends and
// receives, and returned channels always get closed.
//
// Key operations:
// - Emit/EmitAll: Option -> channel, skipping absents
// - EmitResults: Result values -> channel, with optional send/break handlers
// - First/Collect: channel -> Option / slice
package stream
