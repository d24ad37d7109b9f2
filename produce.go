package golinq

import (
	"errors"
	"iter"

	"golang.org/x/exp/constraints"
)

// ErrNegativeCount is used to reject a negative count or length argument.
var ErrNegativeCount = errors.New("count must not be negative")

// ErrInvalidSize is used to reject a chunk or window size that is not positive.
var ErrInvalidSize = errors.New("size must be positive")

// ErrZeroStep is used to reject a step argument of zero.
var ErrZeroStep = errors.New("step must not be zero")

// Invalid arguments are rejected by panicking with the sentinel error at the
// call that builds the offending stage, never later during traversal.

// From returns a query over the elements of seq.
// The query is restartable exactly when seq is.
func From[T any](seq Sequence[T]) Query[T] {
	return Query[T]{seq: seq}
}

// FromSlice returns a slice-backed query over the elements of s. The query is
// restartable, has O(1) length, and downstream operations index directly into
// the backing slice where possible. The slice must not be mutated while the
// query is in use.
func FromSlice[T any](s []T) Query[T] {
	return Query[T]{seq: sliceSequence[T](s)}
}

// Of returns a slice-backed query over the given elements.
func Of[T any](elems ...T) Query[T] {
	return FromSlice(elems)
}

// Empty returns a query producing no elements.
func Empty[T any]() Query[T] {
	return Query[T]{seq: emptySequence[T]{}}
}

// FromCursor returns a single-use query draining cur. The underlying sequence
// hands out the same live cursor on every traversal, so only the first
// traversal observes the elements; a second traversal, or a second query
// chained over the same cursor, sees an exhausted stream.
func FromCursor[T any](cur Cursor[T]) Query[T] {
	return Query[T]{seq: &singleUseSequence[T]{cursor: cur}}
}

// FromFunc returns a single-use query producing elements by calling next
// until it reports exhaustion.
func FromFunc[T any](next func() (T, bool)) Query[T] {
	return FromCursor[T](CursorFunc[T](next))
}

// FromSeq returns a query over the elements of seq. The query is restartable
// exactly when seq can be iterated more than once, which holds for every
// iter.Seq produced by the standard library and by this package.
func FromSeq[T any](seq iter.Seq[T]) Query[T] {
	return From[T](seqSequence[T](seq))
}

// seqSequence adapts an iter.Seq to the Sequence interface, pulling elements
// on demand.
type seqSequence[T any] iter.Seq[T]

func (s seqSequence[T]) Cursor() Cursor[T] {
	next, stop := iter.Pull(iter.Seq[T](s))

	return CursorFunc[T](func() (T, bool) {
		elem, ok := next()
		if !ok {
			stop()
		}

		return elem, ok
	})
}

// Range returns a query producing start, start+step, and so on for as long as
// the values stay before end, which itself is excluded. A negative step counts
// down. Panics with ErrZeroStep if step is zero.
func Range[T constraints.Integer | constraints.Float](start, end, step T) Query[T] {
	if step == 0 {
		panic(ErrZeroStep)
	}

	return From[T](&rangeSequence[T]{start: start, end: end, step: step})
}

// RangeInclusive is Range with an inclusive end boundary: end itself is
// produced if it is reachable by the step. Panics with ErrZeroStep if step is
// zero.
func RangeInclusive[T constraints.Integer | constraints.Float](start, end, step T) Query[T] {
	if step == 0 {
		panic(ErrZeroStep)
	}

	return From[T](&rangeSequence[T]{start: start, end: end, step: step, inclusive: true})
}

type rangeSequence[T constraints.Integer | constraints.Float] struct {
	start     T
	end       T
	step      T
	inclusive bool
}

func (r *rangeSequence[T]) Cursor() Cursor[T] {
	next := r.start

	return CursorFunc[T](func() (T, bool) {
		past := false
		if r.step > 0 {
			past = next > r.end || (!r.inclusive && next == r.end)
		} else {
			past = next < r.end || (!r.inclusive && next == r.end)
		}

		if past {
			var zero T
			return zero, false
		}

		elem := next
		next += r.step

		return elem, true
	})
}

func (r *rangeSequence[T]) size() (int, bool) {
	// Exact arithmetic is only available for integral element types;
	// floating-point ranges count by traversal.
	if T(1)/T(2) != 0 {
		return 0, false
	}

	if r.step > 0 {
		if r.end < r.start || (!r.inclusive && r.end == r.start) {
			return 0, true
		}

		span := r.end - r.start
		if r.inclusive {
			return int(span/r.step) + 1, true
		}

		return int((span + r.step - 1) / r.step), true
	}

	if r.start < r.end || (!r.inclusive && r.start == r.end) {
		return 0, true
	}

	span := r.start - r.end
	step := -r.step

	if r.inclusive {
		return int(span/step) + 1, true
	}

	return int((span + step - 1) / step), true
}

// RepeatValue returns a query producing value count times.
// Panics with ErrNegativeCount if count is negative.
func RepeatValue[T any](value T, count int) Query[T] {
	if count < 0 {
		panic(ErrNegativeCount)
	}

	return From[T](&repeatValueSequence[T]{value: value, count: count})
}

type repeatValueSequence[T any] struct {
	value T
	count int
}

func (r *repeatValueSequence[T]) Cursor() Cursor[T] {
	done := 0

	return CursorFunc[T](func() (T, bool) {
		if done == r.count {
			var zero T
			return zero, false
		}

		done++

		return r.value, true
	})
}

func (r *repeatValueSequence[T]) size() (int, bool) { return r.count, true }

// Generate returns a query producing length elements of the recurrence
// next = f(index, previous), with the zero value of T as the previous element
// of the first call. Panics with ErrNegativeCount if length is negative.
func Generate[T any](length int, f func(index int, prev T) T) Query[T] {
	var zero T
	return GenerateSeed(length, zero, f)
}

// GenerateSeed is Generate with an explicit seed taking the place of the
// previous element on the first call of f.
// Panics with ErrNegativeCount if length is negative.
func GenerateSeed[T any](length int, seed T, f func(index int, prev T) T) Query[T] {
	if length < 0 {
		panic(ErrNegativeCount)
	}

	return From[T](&generateSequence[T]{length: length, seed: seed, f: f})
}

type generateSequence[T any] struct {
	length int
	seed   T
	f      func(index int, prev T) T
}

func (g *generateSequence[T]) Cursor() Cursor[T] {
	index := 0
	prev := g.seed

	return CursorFunc[T](func() (T, bool) {
		if index == g.length {
			var zero T
			return zero, false
		}

		elem := g.f(index, prev)
		index++
		prev = elem

		return elem, true
	})
}

func (g *generateSequence[T]) size() (int, bool) { return g.length, true }
