// Package core holds the ambient plumbing shared by the combinator packages:
// worker limits and the diagnostics logger, both carried through a
// context.Context the same way, plus the channel helpers and the Locomotive
// worker loop behind async.Stream.
package core
