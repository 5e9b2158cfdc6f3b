// Package chain provides a fluent wrapper around rop.Result[E, T] whose steps
// may change the success type.
//
// tiny.Chain keeps a single value type for the whole chain. Here every step is
// a function taking the chain as its first argument, so Then, ThenTry and Map
// can move from Chain[E, T] to Chain[E, U] and MapError from Chain[E, T] to
// Chain[F, T].
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[E, U] via a function
// - ThenTry: call a function returning (U, error) and convert the error
// - Map: transform the successful value (T -> U)
// - MapError: transform the failure payload (E -> F)
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
