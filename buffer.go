package golinq

// Buffering combinators. The cursor protocol has no look-ahead, so stages
// that depend on elements not yet yielded keep an internal buffer.

// skipLastSequence withholds the final count elements of the source. It keeps
// a ring of count elements and only yields the oldest buffered element once a
// newer one has been pulled, so the last count elements are never yielded.
// count is at least 1; SkipLast(0) short-circuits to the source itself.
type skipLastSequence[T any] struct {
	source Sequence[T]
	count  int
}

func (s *skipLastSequence[T]) Cursor() Cursor[T] {
	cur := s.source.Cursor()
	buf := make([]T, 0, s.count)
	oldest := 0

	return CursorFunc[T](func() (T, bool) {
		for {
			elem, ok := cur.Next()
			if !ok {
				var zero T
				return zero, false
			}

			if len(buf) < s.count {
				buf = append(buf, elem)
				continue
			}

			out := buf[oldest]
			buf[oldest] = elem
			oldest = (oldest + 1) % s.count

			return out, true
		}
	})
}

func (s *skipLastSequence[T]) size() (int, bool) {
	n, ok := sizeOf(s.source)
	if !ok {
		return 0, false
	}

	return max(0, n-s.count), true
}

// chunkSequence emits disjoint blocks of width elements; the final block may
// be shorter if the source is exhausted early.
type chunkSequence[T any] struct {
	source Sequence[T]
	width  int
}

func (c *chunkSequence[T]) Cursor() Cursor[[]T] {
	cur := c.source.Cursor()
	done := false

	return CursorFunc[[]T](func() ([]T, bool) {
		if done {
			return nil, false
		}

		block := make([]T, 0, c.width)

		for len(block) < c.width {
			elem, ok := cur.Next()
			if !ok {
				done = true
				break
			}

			block = append(block, elem)
		}

		if len(block) == 0 {
			return nil, false
		}

		return block, true
	})
}

func (c *chunkSequence[T]) size() (int, bool) {
	n, ok := sizeOf(c.source)
	if !ok {
		return 0, false
	}

	return ceilDiv(n, c.width), true
}

// windowSequence emits a sliding window of the last width elements: one
// output per source element once the window has first filled. Each output is
// a fresh copy, so the consumer may keep or mutate it.
type windowSequence[T any] struct {
	source Sequence[T]
	width  int
}

func (w *windowSequence[T]) Cursor() Cursor[[]T] {
	cur := w.source.Cursor()
	buf := make([]T, 0, w.width)

	return CursorFunc[[]T](func() ([]T, bool) {
		for {
			elem, ok := cur.Next()
			if !ok {
				return nil, false
			}

			if len(buf) == w.width {
				copy(buf, buf[1:])
				buf[w.width-1] = elem
			} else {
				buf = append(buf, elem)
			}

			if len(buf) == w.width {
				out := make([]T, w.width)
				copy(out, buf)

				return out, true
			}
		}
	})
}

func (w *windowSequence[T]) size() (int, bool) {
	n, ok := sizeOf(w.source)
	if !ok {
		return 0, false
	}

	return max(0, n-w.width+1), true
}
