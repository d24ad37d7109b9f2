package golinq

// MapFunc maps element elem to type U.
type MapFunc[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// KeyFunc derives a key from element elem.
type KeyFunc[T any, K any] func(elem T) K

// CombineFunc combines paired elements a and b into one output.
type CombineFunc[A any, B any, U any] func(a A, b B) U

// KeyValue pairs a key with a value.
type KeyValue[K any, V any] struct {
	Key   K
	Value V
}

// Map returns a query producing the result of mapp for each element of q.
func Map[T any, U any](q Query[T], mapp MapFunc[T, U]) Query[U] {
	return From[U](&mapSequence[T, U]{source: q.seq, mapp: mapp})
}

type mapSequence[T any, U any] struct {
	source Sequence[T]
	mapp   MapFunc[T, U]
}

func (m *mapSequence[T, U]) Cursor() Cursor[U] {
	cur := m.source.Cursor()

	return CursorFunc[U](func() (U, bool) {
		elem, ok := cur.Next()
		if !ok {
			var zero U
			return zero, false
		}

		return m.mapp(elem), true
	})
}

func (m *mapSequence[T, U]) size() (int, bool) { return sizeOf(m.source) }

// FlatMap returns a query producing, for each element of q, all elements of
// the query derived from it by mapp, in order.
func FlatMap[T any, U any](q Query[T], mapp MapFunc[T, Query[U]]) Query[U] {
	return From[U](&flatMapSequence[T, U]{source: q.seq, mapp: mapp})
}

// FlatMapSlice returns a query producing, for each element of q, all elements
// of the slice derived from it by mapp, in order.
func FlatMapSlice[T any, U any](q Query[T], mapp MapFunc[T, []U]) Query[U] {
	return FlatMap(q, func(elem T) Query[U] {
		return FromSlice(mapp(elem))
	})
}

type flatMapSequence[T any, U any] struct {
	source Sequence[T]
	mapp   MapFunc[T, Query[U]]
}

func (f *flatMapSequence[T, U]) Cursor() Cursor[U] {
	outer := f.source.Cursor()

	var inner Cursor[U]

	return CursorFunc[U](func() (U, bool) {
		for {
			if inner != nil {
				if elem, ok := inner.Next(); ok {
					return elem, true
				}

				inner = nil
			}

			elem, ok := outer.Next()
			if !ok {
				var zero U
				return zero, false
			}

			inner = f.mapp(elem).Cursor()
		}
	})
}

type filterSequence[T any] struct {
	source Sequence[T]
	filter PredicateFunc[T]
}

func (f *filterSequence[T]) Cursor() Cursor[T] {
	cur := f.source.Cursor()

	return CursorFunc[T](func() (T, bool) {
		for {
			elem, ok := cur.Next()
			if !ok {
				var zero T
				return zero, false
			}

			if f.filter(elem) {
				return elem, true
			}
		}
	})
}

type skipSequence[T any] struct {
	source Sequence[T]
	count  int
}

func (s *skipSequence[T]) Cursor() Cursor[T] {
	cur := s.source.Cursor()
	skipped := false

	return CursorFunc[T](func() (T, bool) {
		if !skipped {
			skipped = true

			for i := 0; i < s.count; i++ {
				if _, ok := cur.Next(); !ok {
					break
				}
			}
		}

		return cur.Next()
	})
}

func (s *skipSequence[T]) size() (int, bool) {
	n, ok := sizeOf(s.source)
	if !ok {
		return 0, false
	}

	return max(0, n-s.count), true
}

type takeSequence[T any] struct {
	source Sequence[T]
	count  int
}

func (t *takeSequence[T]) Cursor() Cursor[T] {
	cur := t.source.Cursor()
	done := 0

	return CursorFunc[T](func() (T, bool) {
		if done == t.count {
			var zero T
			return zero, false
		}

		elem, ok := cur.Next()
		if !ok {
			var zero T
			return zero, false
		}

		done++

		return elem, true
	})
}

func (t *takeSequence[T]) size() (int, bool) {
	n, ok := sizeOf(t.source)
	if !ok {
		return 0, false
	}

	return min(n, t.count), true
}

type skipWhileSequence[T any] struct {
	source Sequence[T]
	pred   PredicateFunc[T]
}

func (s *skipWhileSequence[T]) Cursor() Cursor[T] {
	cur := s.source.Cursor()

	// open flips at most once per cursor, on the first element that fails
	// the predicate.
	open := false

	return CursorFunc[T](func() (T, bool) {
		for {
			elem, ok := cur.Next()
			if !ok {
				var zero T
				return zero, false
			}

			if open || !s.pred(elem) {
				open = true
				return elem, true
			}
		}
	})
}

type takeWhileSequence[T any] struct {
	source Sequence[T]
	pred   PredicateFunc[T]
}

func (t *takeWhileSequence[T]) Cursor() Cursor[T] {
	cur := t.source.Cursor()
	done := false

	return CursorFunc[T](func() (T, bool) {
		if done {
			var zero T
			return zero, false
		}

		elem, ok := cur.Next()
		if !ok || !t.pred(elem) {
			done = true

			var zero T
			return zero, false
		}

		return elem, true
	})
}

type stepBySequence[T any] struct {
	source Sequence[T]
	step   int
}

func (s *stepBySequence[T]) Cursor() Cursor[T] {
	cur := s.source.Cursor()
	first := true

	return CursorFunc[T](func() (T, bool) {
		if first {
			first = false
			return cur.Next()
		}

		for i := 1; i < s.step; i++ {
			if _, ok := cur.Next(); !ok {
				var zero T
				return zero, false
			}
		}

		return cur.Next()
	})
}

func (s *stepBySequence[T]) size() (int, bool) {
	n, ok := sizeOf(s.source)
	if !ok {
		return 0, false
	}

	return ceilDiv(n, s.step), true
}

type concatSequence[T any] struct {
	first  Sequence[T]
	second Sequence[T]
}

func (c *concatSequence[T]) Cursor() Cursor[T] {
	cur := c.first.Cursor()
	onSecond := false

	return CursorFunc[T](func() (T, bool) {
		for {
			elem, ok := cur.Next()
			if ok {
				return elem, true
			}

			if onSecond {
				var zero T
				return zero, false
			}

			onSecond = true
			cur = c.second.Cursor()
		}
	})
}

func (c *concatSequence[T]) size() (int, bool) {
	a, ok := sizeOf(c.first)
	if !ok {
		return 0, false
	}

	b, ok := sizeOf(c.second)
	if !ok {
		return 0, false
	}

	return addCounts(a, b), true
}

// extendSequence yields the prepended elements, then the source, then the
// appended elements.
type extendSequence[T any] struct {
	source  Sequence[T]
	prepend []T
	append  []T
}

func (e *extendSequence[T]) Cursor() Cursor[T] {
	cur := e.source.Cursor()
	pos := 0
	phase := 0

	return CursorFunc[T](func() (T, bool) {
		for {
			switch phase {
			case 0:
				if pos < len(e.prepend) {
					elem := e.prepend[pos]
					pos++

					return elem, true
				}

				phase, pos = 1, 0

			case 1:
				if elem, ok := cur.Next(); ok {
					return elem, true
				}

				phase = 2

			default:
				if pos < len(e.append) {
					elem := e.append[pos]
					pos++

					return elem, true
				}

				var zero T
				return zero, false
			}
		}
	})
}

func (e *extendSequence[T]) size() (int, bool) {
	n, ok := sizeOf(e.source)
	if !ok {
		return 0, false
	}

	return addCounts(addCounts(len(e.prepend), n), len(e.append)), true
}

// Keyed returns a query decorating each element of q with the key derived by
// key, without altering cardinality.
func Keyed[T any, K any](q Query[T], key KeyFunc[T, K]) Query[KeyValue[K, T]] {
	return From[KeyValue[K, T]](&keyedSequence[T, K]{source: q.seq, key: key})
}

type keyedSequence[T any, K any] struct {
	source Sequence[T]
	key    KeyFunc[T, K]
}

func (s *keyedSequence[T, K]) Cursor() Cursor[KeyValue[K, T]] {
	cur := s.source.Cursor()

	return CursorFunc[KeyValue[K, T]](func() (KeyValue[K, T], bool) {
		elem, ok := cur.Next()
		if !ok {
			return KeyValue[K, T]{}, false
		}

		return KeyValue[K, T]{Key: s.key(elem), Value: elem}, true
	})
}

func (s *keyedSequence[T, K]) size() (int, bool) { return sizeOf(s.source) }

type indexedSequence[T any] struct {
	source Sequence[T]
}

func (s *indexedSequence[T]) Cursor() Cursor[KeyValue[int, T]] {
	cur := s.source.Cursor()
	index := 0

	return CursorFunc[KeyValue[int, T]](func() (KeyValue[int, T], bool) {
		elem, ok := cur.Next()
		if !ok {
			return KeyValue[int, T]{}, false
		}

		kv := KeyValue[int, T]{Key: index, Value: elem}
		index++

		return kv, true
	})
}

func (s *indexedSequence[T]) size() (int, bool) { return sizeOf(s.source) }

// repeatSequence produces count full passes over the source. Each pass after
// the first starts a fresh cursor, so the source must be restartable for the
// passes to be identical.
type repeatSequence[T any] struct {
	source Sequence[T]
	count  int
}

func (r *repeatSequence[T]) Cursor() Cursor[T] {
	cur := r.source.Cursor()
	pass := 0

	return CursorFunc[T](func() (T, bool) {
		for {
			if pass == r.count {
				var zero T
				return zero, false
			}

			elem, ok := cur.Next()
			if ok {
				return elem, true
			}

			pass++
			if pass == r.count {
				var zero T
				return zero, false
			}

			cur = r.source.Cursor()
		}
	})
}

func (r *repeatSequence[T]) size() (int, bool) {
	n, ok := sizeOf(r.source)
	if !ok {
		return 0, false
	}

	return mulCounts(n, r.count), true
}
