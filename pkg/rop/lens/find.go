package lens

import (
	"slices"

	"github.com/ib-77/kairo/pkg/rop/maybe"
)

// Find focuses on the first element matching predicate.
//
// Setting Some(v) replaces the match in place, or appends v when nothing
// matches. Setting None removes the match.
func Find[T any](predicate func(T) bool) Lens[[]T, maybe.Maybe[T]] {
	return Lens[[]T, maybe.Maybe[T]]{
		get: func(s []T) maybe.Maybe[T] {
			if i := slices.IndexFunc(s, predicate); i >= 0 {
				return maybe.Some(s[i])
			}
			return maybe.None[T]()
		},
		set: func(s []T, m maybe.Maybe[T]) []T {
			i := slices.IndexFunc(s, predicate)
			v, present := m.Get()

			switch {
			case present && i >= 0:
				result := slices.Clone(s)
				result[i] = v
				return result
			case present:
				return append(slices.Clip(s), v)
			case i >= 0:
				return slices.Delete(slices.Clone(s), i, i+1)
			default:
				return slices.Clone(s)
			}
		},
	}
}
