package golinq

// Zip returns a query combining the elements of left and right pairwise with
// combine. Both sources advance in lockstep; the query stops at the first
// exhausted source.
func Zip[A any, B any, U any](left Query[A], right Query[B], combine CombineFunc[A, B, U]) Query[U] {
	return From[U](&zipSequence[A, B, U]{left: left.seq, right: right.seq, combine: combine})
}

type zipSequence[A any, B any, U any] struct {
	left    Sequence[A]
	right   Sequence[B]
	combine CombineFunc[A, B, U]
}

func (z *zipSequence[A, B, U]) Cursor() Cursor[U] {
	lcur := z.left.Cursor()
	rcur := z.right.Cursor()

	return CursorFunc[U](func() (U, bool) {
		a, ok := lcur.Next()
		if !ok {
			var zero U
			return zero, false
		}

		b, ok := rcur.Next()
		if !ok {
			var zero U
			return zero, false
		}

		return z.combine(a, b), true
	})
}

func (z *zipSequence[A, B, U]) size() (int, bool) {
	a, ok := sizeOf(z.left)
	if !ok {
		return 0, false
	}

	b, ok := sizeOf(z.right)
	if !ok {
		return 0, false
	}

	return min(a, b), true
}

// Join returns a query producing, for each element of left, one combined
// output per element of right that it matches, in right order. This is a
// nested-loop join: the whole right query is materialized once per traversal
// and scanned in full for every left element.
func Join[L any, R any, U any](left Query[L], right Query[R], match func(l L, r R) bool, combine CombineFunc[L, R, U]) Query[U] {
	return From[U](&joinSequence[L, R, U]{left: left.seq, right: right.seq, match: match, combine: combine})
}

type joinSequence[L any, R any, U any] struct {
	left    Sequence[L]
	right   Sequence[R]
	match   func(l L, r R) bool
	combine CombineFunc[L, R, U]
}

func (j *joinSequence[L, R, U]) Cursor() Cursor[U] {
	lcur := j.left.Cursor()

	var right []R

	materialized := false

	var current L

	haveCurrent := false
	pos := 0

	return CursorFunc[U](func() (U, bool) {
		if !materialized {
			right = collect[R](j.right)
			materialized = true
		}

		for {
			if !haveCurrent {
				elem, ok := lcur.Next()
				if !ok {
					var zero U
					return zero, false
				}

				current = elem
				haveCurrent = true
				pos = 0
			}

			for pos < len(right) {
				r := right[pos]
				pos++

				if j.match(current, r) {
					return j.combine(current, r), true
				}
			}

			haveCurrent = false
		}
	})
}
