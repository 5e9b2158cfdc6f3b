// Package solo contains synchronous combinators over rop.Result[E, T].
// They never suspend and never panic on their own.
//
// Highlights:
// - Sequence/Traverse: collect many results, first failure wins
// - Chain/Filter/LiftA2: compose successful values
// - FirstOk: pick the first success, or the last failure
// - WithDefault/MapError/Recover: work on the failure side
// - Partition: split successes from failures keeping order
// - Try/Tee: bridge (T, error) functions and side effects
//
// Transforming the success value is rop.Map.
package solo
