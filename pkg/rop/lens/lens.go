package lens

import (
	"maps"
	"math"
	"slices"
)

// Lens focuses on a part A of a structure S. Set never mutates its input.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

func New[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a copy of source with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

func (l Lens[S, A]) Modify(fn func(A) A) func(S) S {
	return func(source S) S {
		return l.set(source, fn(l.get(source)))
	}
}

func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}

// Compose focuses inner through outer.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// Prop focuses on a map entry. A missing key reads as the zero value.
func Prop[K comparable, V any](key K) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		get: func(m map[K]V) V {
			return m[key]
		},
		set: func(m map[K]V, v V) map[K]V {
			result := make(map[K]V, len(m)+1)
			maps.Copy(result, m)
			result[key] = v
			return result
		},
	}
}

// Index focuses on a slice position. Setting past the end grows the slice,
// filling the gap with zero values. Negative positions and math.MaxInt read as
// zero and are never written.
func Index[T any](i int) Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(s []T) T {
			if i >= 0 && i < len(s) {
				return s[i]
			}
			var zero T
			return zero
		},
		set: func(s []T, v T) []T {
			if i < 0 || i == math.MaxInt {
				return slices.Clone(s)
			}
			size := max(len(s), i+1)
			result := make([]T, size)
			copy(result, s)
			result[i] = v
			return result
		},
	}
}

// Pick focuses on the sub-map made of keys. Set writes exactly those keys:
// keys missing from the new value are deleted, extra keys are ignored.
func Pick[K comparable, V any](keys ...K) Lens[map[K]V, map[K]V] {
	return Lens[map[K]V, map[K]V]{
		get: func(m map[K]V) map[K]V {
			result := make(map[K]V, len(keys))
			for _, k := range keys {
				if v, ok := m[k]; ok {
					result[k] = v
				}
			}
			return result
		},
		set: func(m map[K]V, sub map[K]V) map[K]V {
			result := maps.Clone(m)
			if result == nil {
				result = make(map[K]V, len(keys))
			}
			for _, k := range keys {
				if v, ok := sub[k]; ok {
					result[k] = v
				} else {
					delete(result, k)
				}
			}
			return result
		},
	}
}

// Omit focuses on everything except keys. Set keeps the omitted entries of
// the source and replaces all the others with the new value.
func Omit[K comparable, V any](keys ...K) Lens[map[K]V, map[K]V] {
	omitted := func(k K) bool { return slices.Contains(keys, k) }

	return Lens[map[K]V, map[K]V]{
		get: func(m map[K]V) map[K]V {
			result := make(map[K]V, len(m))
			for k, v := range m {
				if !omitted(k) {
					result[k] = v
				}
			}
			return result
		},
		set: func(m map[K]V, rest map[K]V) map[K]V {
			result := make(map[K]V, len(rest)+len(keys))
			for _, k := range keys {
				if v, ok := m[k]; ok {
					result[k] = v
				}
			}
			for k, v := range rest {
				if !omitted(k) {
					result[k] = v
				}
			}
			return result
		},
	}
}

// Filtered focuses on the elements matching predicate. Set drops every
// current match and appends the new values at the end.
func Filtered[T any](predicate func(T) bool) Lens[[]T, []T] {
	return Lens[[]T, []T]{
		get: func(s []T) []T {
			result := make([]T, 0, len(s))
			for _, v := range s {
				if predicate(v) {
					result = append(result, v)
				}
			}
			return result
		},
		set: func(s []T, values []T) []T {
			result := make([]T, 0, len(s)+len(values))
			for _, v := range s {
				if !predicate(v) {
					result = append(result, v)
				}
			}
			return append(result, values...)
		},
	}
}

// View, Set and Over are the point-free forms of Get, Set and Modify.
func View[S, A any](l Lens[S, A]) func(S) A {
	return l.get
}

func Set[S, A any](l Lens[S, A], value A) func(S) S {
	return func(source S) S {
		return l.set(source, value)
	}
}

func Over[S, A any](l Lens[S, A], fn func(A) A) func(S) S {
	return l.Modify(fn)
}
