// Package tiny provides a minimal fluent Chain[E, T] for synchronous
// composition of rop.Result[E, T] values.
//
// Each step delegates to rop or solo:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/Filter/Recover: transform, validate or rescue the current value
// - Or/And: pick between chains
// - RepeatUntil/While: loop while the chain stays successful
// - Ensure: trigger side effects
// - Finally: reduce to a concrete value via handlers
package tiny
