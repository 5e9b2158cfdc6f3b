package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/kairo/pkg/rop"
)

func TestSequence_AllOk(t *testing.T) {
	t.Parallel()

	out := Sequence([]rop.Result[string, int]{rop.Ok[string](1), rop.Ok[string](2), rop.Ok[string](3)})
	require.True(t, out.IsOk())
	assert.Equal(t, []int{1, 2, 3}, out.Value())
}

func TestSequence_FirstErrInScanOrder(t *testing.T) {
	t.Parallel()

	out := Sequence([]rop.Result[string, int]{
		rop.Ok[string](1),
		rop.Err[int]("e1"),
		rop.Ok[string](3),
		rop.Err[int]("e2"),
	})
	require.True(t, out.IsErr())
	assert.Equal(t, "e1", out.Err())
}

func TestSequence_Empty(t *testing.T) {
	t.Parallel()

	out := Sequence([]rop.Result[string, int]{})
	require.True(t, out.IsOk())
	assert.NotNil(t, out.Value())
	assert.Empty(t, out.Value())

	out = Sequence[string, int](nil)
	require.True(t, out.IsOk())
	assert.Empty(t, out.Value())
}

func TestTraverse(t *testing.T) {
	t.Parallel()

	parse := Traverse(func(s string) rop.Result[error, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return rop.Err[int](err)
		}
		return rop.Ok[error](n)
	})

	ok := parse([]string{"1", "2", "3"})
	require.True(t, ok.IsOk())
	assert.Equal(t, []int{1, 2, 3}, ok.Value())

	bad := parse([]string{"1", "x", "y"})
	require.True(t, bad.IsErr())
	assert.Contains(t, bad.Err().Error(), `"x"`)
}

func TestChain(t *testing.T) {
	t.Parallel()

	half := func(n int) rop.Result[string, int] {
		if n%2 != 0 {
			return rop.Err[int]("odd")
		}
		return rop.Ok[string](n / 2)
	}

	out := Chain(rop.Ok[string](8), half)
	require.True(t, out.IsOk())
	assert.Equal(t, 4, out.Value())

	out = Chain(rop.Ok[string](3), half)
	require.True(t, out.IsErr())
	assert.Equal(t, "odd", out.Err())

	called := false
	out = Chain(rop.Err[int]("earlier"), func(n int) rop.Result[string, int] {
		called = true
		return rop.Ok[string](n)
	})
	assert.False(t, called)
	assert.Equal(t, "earlier", out.Err())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	positive := func(n int) bool { return n > 0 }
	describe := func(n int) string { return "not positive: " + strconv.Itoa(n) }

	out := Filter(rop.Ok[string](5), positive, describe)
	require.True(t, out.IsOk())
	assert.Equal(t, 5, out.Value())

	out = Filter(rop.Ok[string](-1), positive, describe)
	require.True(t, out.IsErr())
	assert.Equal(t, "not positive: -1", out.Err())

	in := rop.Err[int]("untouched")
	out = Filter(in, func(int) bool { panic("must not be called") }, describe)
	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, "untouched", out.Err())
}

func TestLiftA2(t *testing.T) {
	t.Parallel()

	add := LiftA2[string](func(a, b int) int { return a + b })

	out := add(rop.Ok[string](2), rop.Ok[string](3))
	require.True(t, out.IsOk())
	assert.Equal(t, 5, out.Value())

	assert.Equal(t, "left", add(rop.Err[int]("left"), rop.Err[int]("right")).Err())
	assert.Equal(t, "left", add(rop.Err[int]("left"), rop.Ok[string](1)).Err())
	assert.Equal(t, "right", add(rop.Ok[string](1), rop.Err[int]("right")).Err())
}

func TestFirstOk(t *testing.T) {
	t.Parallel()

	e1, e2 := errors.New("e1"), errors.New("e2")

	out := FirstOk([]rop.Result[error, int]{rop.Err[int](e1), rop.Ok[error](2), rop.Ok[error](3)})
	require.True(t, out.IsOk())
	assert.Equal(t, 2, out.Value())

	out = FirstOk([]rop.Result[error, int]{rop.Err[int](e1), rop.Err[int](e2)})
	require.True(t, out.IsErr())
	assert.Same(t, e2, out.Err())

	out = FirstOk([]rop.Result[error, int]{})
	require.True(t, out.IsErr())
	assert.ErrorIs(t, out.Err(), ErrNoResults)
	assert.EqualError(t, out.Err(), "No results provided")
}

func TestFirstOkOr(t *testing.T) {
	t.Parallel()

	out := FirstOkOr([]rop.Result[string, int]{}, "empty")
	require.True(t, out.IsErr())
	assert.Equal(t, "empty", out.Err())
}

func TestWithDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, WithDefault(rop.Ok[string](4), 0))
	assert.Equal(t, -1, WithDefault(rop.Err[int]("nope"), -1))
}

func TestMapError(t *testing.T) {
	t.Parallel()

	out := MapError(rop.Err[int]("raw"), func(e string) error { return errors.New("wrapped " + e) })
	require.True(t, out.IsErr())
	assert.EqualError(t, out.Err(), "wrapped raw")

	ok := MapError(rop.Ok[string](1), func(e string) error { panic("must not be called") })
	require.True(t, ok.IsOk())
	assert.Equal(t, 1, ok.Value())
}

func TestRecover(t *testing.T) {
	t.Parallel()

	fallback := func(e string) rop.Result[error, int] {
		if e == "missing" {
			return rop.Ok[error](0)
		}
		return rop.Err[int](errors.New("unrecoverable " + e))
	}

	out := Recover(rop.Err[int]("missing"), fallback)
	require.True(t, out.IsOk())
	assert.Equal(t, 0, out.Value())

	out = Recover(rop.Err[int]("corrupt"), fallback)
	require.True(t, out.IsErr())
	assert.EqualError(t, out.Err(), "unrecoverable corrupt")

	out = Recover(rop.Ok[string](7), fallback)
	require.True(t, out.IsOk())
	assert.Equal(t, 7, out.Value())
}

func TestPartition(t *testing.T) {
	t.Parallel()

	p := Partition([]rop.Result[string, int]{
		rop.Err[int]("a"),
		rop.Ok[string](1),
		rop.Ok[string](2),
		rop.Err[int]("b"),
		rop.Ok[string](3),
	})
	assert.Equal(t, []int{1, 2, 3}, p.Successes)
	assert.Equal(t, []string{"a", "b"}, p.Failures)
}

func TestTry(t *testing.T) {
	t.Parallel()

	out := Try(func() (int, error) { return strconv.Atoi("12") })
	require.True(t, out.IsOk())
	assert.Equal(t, 12, out.Value())

	out = Try(func() (int, error) { return strconv.Atoi("x") })
	require.True(t, out.IsErr())

	out = Try(func() (int, error) { panic("boom") })
	require.True(t, out.IsErr())
	var perr rop.PanicError
	require.ErrorAs(t, out.Err(), &perr)
	assert.Equal(t, "boom", perr.Value)
}

func TestTee(t *testing.T) {
	t.Parallel()

	var seen []int
	record := func(n int) { seen = append(seen, n) }

	Tee(rop.Ok[string](1), record)
	Tee(rop.Err[int]("skip"), record)
	Tee(rop.Ok[string](2), record)
	assert.Equal(t, []int{1, 2}, seen)
}

func toResults(xs []int) []rop.Result[int, int] {
	results := make([]rop.Result[int, int], len(xs))
	for i, x := range xs {
		if x < 0 {
			results[i] = rop.Err[int](x)
		} else {
			results[i] = rop.Ok[int](x)
		}
	}
	return results
}

func TestResultProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	values := gen.SliceOf(gen.IntRange(-20, 100))

	properties.Property("sequence fails with the first negative, else keeps all", prop.ForAll(
		func(xs []int) bool {
			out := Sequence(toResults(xs))
			for _, x := range xs {
				if x < 0 {
					return out.IsErr() && out.Err() == x
				}
			}
			if !out.IsOk() || len(out.Value()) != len(xs) {
				return false
			}
			for i, v := range out.Value() {
				if v != xs[i] {
					return false
				}
			}
			return true
		},
		values,
	))

	properties.Property("partition keeps every element and relative order", prop.ForAll(
		func(xs []int) bool {
			p := Partition(toResults(xs))
			if len(p.Successes)+len(p.Failures) != len(xs) {
				return false
			}
			si, fi := 0, 0
			for _, x := range xs {
				if x < 0 {
					if p.Failures[fi] != x {
						return false
					}
					fi++
				} else {
					if p.Successes[si] != x {
						return false
					}
					si++
				}
			}
			return true
		},
		values,
	))

	properties.Property("chain is associative", prop.ForAll(
		func(x int) bool {
			f := func(n int) rop.Result[int, int] {
				if n%3 == 0 {
					return rop.Err[int](n)
				}
				return rop.Ok[int](n + 1)
			}
			g := func(n int) rop.Result[int, int] { return rop.Ok[int](n * 2) }

			left := Chain(Chain(rop.Ok[int](x), f), g)
			right := Chain(rop.Ok[int](x), func(n int) rop.Result[int, int] { return Chain(f(n), g) })

			lv, le, lok := left.Get()
			rv, re, rok := right.Get()
			return lv == rv && le == re && lok == rok
		},
		gen.IntRange(-1000, 1000),
	))

	properties.Property("map composes", prop.ForAll(
		func(x int) bool {
			inc := func(n int) int { return n + 1 }
			dbl := func(n int) int { return n * 2 }
			left := rop.Map(rop.Map(rop.Ok[int](x), inc), dbl)
			right := rop.Map(rop.Ok[int](x), func(n int) int { return dbl(inc(n)) })
			return left.Value() == right.Value()
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
