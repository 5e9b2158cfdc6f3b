// Package lens provides immutable optics: composable get/set pairs that read
// or rebuild part of a structure without mutating it.
//
// Every Set copies only the containers on the way to the focus, so untouched
// siblings keep their identity. Missing data never panics: reads yield the
// zero value (or None for Find) and writes build whatever is needed.
package lens
