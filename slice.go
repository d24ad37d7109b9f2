package golinq

// Slice-backed sequences. When a query's immediate source is a concrete
// slice, the chain operations that permit it swap the generic combinator for
// a twin that indexes directly into the backing array. The twins must yield
// exactly the same elements as their generic counterparts; slice_test.go
// checks that equivalence.

// sliceSequence is a restartable sequence backed by a concrete slice.
type sliceSequence[T any] []T

func (s sliceSequence[T]) Cursor() Cursor[T] {
	pos := 0

	return CursorFunc[T](func() (T, bool) {
		if pos == len(s) {
			var zero T
			return zero, false
		}

		elem := s[pos]
		pos++

		return elem, true
	})
}

func (s sliceSequence[T]) size() (int, bool) { return len(s), true }

// backingSlice returns the concrete array behind seq, if seq is slice-backed.
func backingSlice[T any](seq Sequence[T]) ([]T, bool) {
	if s, ok := seq.(sliceSequence[T]); ok {
		return s, true
	}

	return nil, false
}

// extendSliceSequence is the twin of extendSequence: it indexes directly into
// the prepended values, the backing slice, and the appended values instead of
// driving a cursor chain.
type extendSliceSequence[T any] struct {
	prepend []T
	backing []T
	append  []T
}

func (e *extendSliceSequence[T]) at(i int) T {
	if i < len(e.prepend) {
		return e.prepend[i]
	}

	i -= len(e.prepend)

	if i < len(e.backing) {
		return e.backing[i]
	}

	return e.append[i-len(e.backing)]
}

func (e *extendSliceSequence[T]) Cursor() Cursor[T] {
	total := len(e.prepend) + len(e.backing) + len(e.append)
	pos := 0

	return CursorFunc[T](func() (T, bool) {
		if pos == total {
			var zero T
			return zero, false
		}

		elem := e.at(pos)
		pos++

		return elem, true
	})
}

func (e *extendSliceSequence[T]) size() (int, bool) {
	return len(e.prepend) + len(e.backing) + len(e.append), true
}

// stepSliceSequence is the twin of stepBySequence, jumping through the
// backing slice by index.
type stepSliceSequence[T any] struct {
	backing []T
	step    int
}

func (s *stepSliceSequence[T]) Cursor() Cursor[T] {
	pos := 0

	return CursorFunc[T](func() (T, bool) {
		if pos >= len(s.backing) {
			var zero T
			return zero, false
		}

		elem := s.backing[pos]
		pos += s.step

		return elem, true
	})
}

func (s *stepSliceSequence[T]) size() (int, bool) {
	return ceilDiv(len(s.backing), s.step), true
}
