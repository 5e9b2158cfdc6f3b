// Package maybe provides Maybe[T], a value that may be absent, and the
// combinators over it.
//
// Presence is an explicit flag, so zero values such as 0, "" or false are
// present when wrapped with Some. FromTry and FromAsync collapse failures to
// None; the discarded error is logged at debug level through core.
//
// Key operations:
// - Some/None/Of/FromPtr: build a Maybe
// - Map/Chain/Filter/Fold: transform or inspect the value
// - WithDefault/Unwrap: get the value out (Unwrap panics when absent)
// - FromTry/FromAsync: run a fallible call and keep only success
// - All/First/Partition: work over many Maybes
// - When: side effect on presence
// - ToResult: bridge to rop.Result
package maybe
