package golinq

import "iter"

// Query is the public handle over a sequence. A Query is an immutable value:
// every chain operation wraps the underlying sequence in a new combinator and
// returns a new Query, leaving the receiver untouched and reusable. Two
// queries may safely share an upstream sequence.
//
// Transformations that keep the element type are methods. Transformations
// that change it (Map, FlatMap, Zip, Join, Keyed, GroupBy, and the ordered
// and numeric operations) are package-level functions, since Go methods
// cannot introduce type parameters.
type Query[T any] struct {
	seq Sequence[T]
}

// Sequence returns the underlying sequence.
func (q Query[T]) Sequence() Sequence[T] { return q.seq }

// Cursor starts a new traversal of the query. Query itself satisfies
// Sequence, so a query can serve as the source of another.
func (q Query[T]) Cursor() Cursor[T] {
	if q.seq == nil {
		return emptySequence[T]{}.Cursor()
	}

	return q.seq.Cursor()
}

// Seq returns an iter.Seq traversing the query, for range-over-func loops.
// Each loop over the result starts a fresh traversal.
func (q Query[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := q.Cursor()

		for {
			elem, ok := cur.Next()
			if !ok {
				return
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Filter returns a query producing only the elements for which pred returns
// true.
func (q Query[T]) Filter(pred PredicateFunc[T]) Query[T] {
	return From[T](&filterSequence[T]{source: q.seq, filter: pred})
}

// Skip returns a query without the first count elements.
// Panics with ErrNegativeCount if count is negative.
func (q Query[T]) Skip(count int) Query[T] {
	if count < 0 {
		panic(ErrNegativeCount)
	}

	if count == 0 {
		return q
	}

	if backing, ok := backingSlice(q.seq); ok {
		return FromSlice(backing[min(count, len(backing)):])
	}

	return From[T](&skipSequence[T]{source: q.seq, count: count})
}

// Take returns a query of the first count elements, or all of them if the
// query is shorter. Panics with ErrNegativeCount if count is negative.
func (q Query[T]) Take(count int) Query[T] {
	if count < 0 {
		panic(ErrNegativeCount)
	}

	if backing, ok := backingSlice(q.seq); ok {
		return FromSlice(backing[:min(count, len(backing))])
	}

	return From[T](&takeSequence[T]{source: q.seq, count: count})
}

// SkipWhile returns a query without the leading elements for which pred
// returns true. Once an element fails the predicate, every element after it
// is produced regardless.
func (q Query[T]) SkipWhile(pred PredicateFunc[T]) Query[T] {
	return From[T](&skipWhileSequence[T]{source: q.seq, pred: pred})
}

// TakeWhile returns a query of the leading elements for which pred returns
// true, stopping at the first element that fails it.
func (q Query[T]) TakeWhile(pred PredicateFunc[T]) Query[T] {
	return From[T](&takeWhileSequence[T]{source: q.seq, pred: pred})
}

// SkipLast returns a query without the final count elements.
// Panics with ErrNegativeCount if count is negative.
func (q Query[T]) SkipLast(count int) Query[T] {
	if count < 0 {
		panic(ErrNegativeCount)
	}

	if count == 0 {
		return q
	}

	if backing, ok := backingSlice(q.seq); ok {
		return FromSlice(backing[:max(0, len(backing)-count)])
	}

	return From[T](&skipLastSequence[T]{source: q.seq, count: count})
}

// TakeLast returns a slice-backed query of the final count elements, or all
// of them if the query is shorter. TakeLast is eager: it traverses the query
// once. Panics with ErrNegativeCount if count is negative.
func (q Query[T]) TakeLast(count int) Query[T] {
	if count < 0 {
		panic(ErrNegativeCount)
	}

	if count == 0 {
		return Empty[T]()
	}

	if backing, ok := backingSlice(q.seq); ok {
		return FromSlice(backing[max(0, len(backing)-count):])
	}

	ring := make([]T, 0, count)
	oldest := 0

	q.ForEach(func(elem T) {
		if len(ring) < count {
			ring = append(ring, elem)
			return
		}

		ring[oldest] = elem
		oldest = (oldest + 1) % count
	})

	if len(ring) == 0 {
		return Empty[T]()
	}

	result := make([]T, 0, len(ring))
	result = append(result, ring[oldest:]...)
	result = append(result, ring[:oldest]...)

	return FromSlice(result)
}

// Append returns a query producing the elements of q followed by elems.
func (q Query[T]) Append(elems ...T) Query[T] {
	if backing, ok := backingSlice(q.seq); ok {
		return From[T](&extendSliceSequence[T]{backing: backing, append: elems})
	}

	return From[T](&extendSequence[T]{source: q.seq, append: elems})
}

// Prepend returns a query producing elems followed by the elements of q.
func (q Query[T]) Prepend(elems ...T) Query[T] {
	if backing, ok := backingSlice(q.seq); ok {
		return From[T](&extendSliceSequence[T]{backing: backing, prepend: elems})
	}

	return From[T](&extendSequence[T]{source: q.seq, prepend: elems})
}

// Concat returns a query producing the elements of q followed by the elements
// of other.
func (q Query[T]) Concat(other Query[T]) Query[T] {
	return From[T](&concatSequence[T]{first: q.seq, second: other.seq})
}

// StepBy returns a query of every step-th element, starting from the first.
// Panics with ErrZeroStep if step is zero, or ErrNegativeCount if negative.
func (q Query[T]) StepBy(step int) Query[T] {
	if step == 0 {
		panic(ErrZeroStep)
	}

	if step < 0 {
		panic(ErrNegativeCount)
	}

	if backing, ok := backingSlice(q.seq); ok {
		return From[T](&stepSliceSequence[T]{backing: backing, step: step})
	}

	return From[T](&stepBySequence[T]{source: q.seq, step: step})
}

// Repeat returns a query producing count full passes over q, end to end.
// Each pass restarts the query, so q must be restartable for the passes to be
// identical; over a single-use source only the first pass produces elements.
// Panics with ErrNegativeCount if count is negative.
func (q Query[T]) Repeat(count int) Query[T] {
	if count < 0 {
		panic(ErrNegativeCount)
	}

	if count == 0 {
		return Empty[T]()
	}

	return From[T](&repeatSequence[T]{source: q.seq, count: count})
}

// Chunk returns a query of disjoint blocks of width elements each; the final
// block may be shorter. Panics with ErrInvalidSize if width is not positive.
func (q Query[T]) Chunk(width int) Query[[]T] {
	if width < 1 {
		panic(ErrInvalidSize)
	}

	return From[[]T](&chunkSequence[T]{source: q.seq, width: width})
}

// Window returns a query of overlapping sliding windows of width elements:
// one window per element once the first width elements have arrived. A query
// shorter than width produces nothing.
// Panics with ErrInvalidSize if width is not positive.
func (q Query[T]) Window(width int) Query[[]T] {
	if width < 1 {
		panic(ErrInvalidSize)
	}

	return From[[]T](&windowSequence[T]{source: q.seq, width: width})
}

// Indexed returns a query decorating each element with its 0-based ordinal
// position.
func (q Query[T]) Indexed() Query[KeyValue[int, T]] {
	return From[KeyValue[int, T]](&indexedSequence[T]{source: q.seq})
}
