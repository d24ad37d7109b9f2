package golinq

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrCountOverflow is used when a counting operation exceeds the int range.
var ErrCountOverflow = errors.New("count overflows int")

// addCounts returns a+b for non-negative counts, panicking with
// ErrCountOverflow if the sum does not fit in an int.
func addCounts(a, b int) int {
	sum := a + b
	if sum < a {
		panic(ErrCountOverflow)
	}

	return sum
}

// mulCounts returns a*b for non-negative counts, panicking with
// ErrCountOverflow if the product does not fit in an int.
func mulCounts(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}

	total := a * b
	if total/a != b {
		panic(ErrCountOverflow)
	}

	return total
}

// ceilDiv returns ceil(n/divisor) for non-negative n and positive divisor,
// without intermediate overflow.
func ceilDiv(n, divisor int) int {
	if n == 0 {
		return 0
	}

	return (n-1)/divisor + 1
}

// Count returns the number of elements of q. If the underlying sequence can
// report its cardinality without traversal, no traversal happens; otherwise
// the query is walked once. Panics with ErrCountOverflow if the count does
// not fit in an int.
func (q Query[T]) Count() int {
	if n, ok := sizeOf(q.seq); ok {
		return n
	}

	count := 0
	cur := q.Cursor()

	for {
		if _, ok := cur.Next(); !ok {
			return count
		}

		if count == math.MaxInt {
			panic(ErrCountOverflow)
		}

		count++
	}
}

// ToSlice traverses q and returns its elements as a slice.
func (q Query[T]) ToSlice() []T {
	if backing, ok := backingSlice(q.seq); ok {
		if len(backing) == 0 {
			return nil
		}

		result := make([]T, len(backing))
		copy(result, backing)

		return result
	}

	return collect[T](q)
}

// ForEach calls f for each element of q, in order.
func (q Query[T]) ForEach(f func(elem T)) {
	cur := q.Cursor()

	for {
		elem, ok := cur.Next()
		if !ok {
			return
		}

		f(elem)
	}
}

// First returns the first element of q, or false if q is empty.
func (q Query[T]) First() (T, bool) {
	return q.Cursor().Next()
}

// Last returns the final element of q, or false if q is empty.
// Last traverses the whole query.
func (q Query[T]) Last() (T, bool) {
	if backing, ok := backingSlice(q.seq); ok {
		if len(backing) == 0 {
			var zero T
			return zero, false
		}

		return backing[len(backing)-1], true
	}

	cur := q.Cursor()

	var last T

	found := false

	for {
		elem, ok := cur.Next()
		if !ok {
			return last, found
		}

		last = elem
		found = true
	}
}

// ElementAt returns the element at the 0-based index, or false if the query
// is too short or index is negative.
func (q Query[T]) ElementAt(index int) (T, bool) {
	if index < 0 {
		var zero T
		return zero, false
	}

	if backing, ok := backingSlice(q.seq); ok {
		if index >= len(backing) {
			var zero T
			return zero, false
		}

		return backing[index], true
	}

	return q.Skip(index).First()
}

// Single returns the only element of q. It returns false if q is empty or
// holds more than one element.
func (q Query[T]) Single() (T, bool) {
	cur := q.Cursor()

	elem, ok := cur.Next()
	if !ok {
		var zero T
		return zero, false
	}

	if _, more := cur.Next(); more {
		var zero T
		return zero, false
	}

	return elem, true
}

// Any returns true as soon as pred returns true for an element of q, that is,
// an element matches. The traversal stops at the first match.
func (q Query[T]) Any(pred PredicateFunc[T]) bool {
	cur := q.Cursor()

	for {
		elem, ok := cur.Next()
		if !ok {
			return false
		}

		if pred(elem) {
			return true
		}
	}
}

// All returns true if pred returns true for all elements of q, that is, all
// elements match. The traversal stops at the first mismatch.
func (q Query[T]) All(pred PredicateFunc[T]) bool {
	return !q.Any(func(elem T) bool { return !pred(elem) })
}

// None returns true if pred returns true for no element of q.
func (q Query[T]) None(pred PredicateFunc[T]) bool {
	return !q.Any(pred)
}

// Contains returns true if q produces an element equal to elem.
func Contains[T comparable](q Query[T], elem T) bool {
	return q.Any(func(e T) bool { return e == elem })
}

// Reduce aggregates the elements of q using reduce, seeded with the first
// element. It returns false without calling reduce if q is empty.
func (q Query[T]) Reduce(reduce func(acc, elem T) T) (T, bool) {
	cur := q.Cursor()

	acc, ok := cur.Next()
	if !ok {
		var zero T
		return zero, false
	}

	for {
		elem, ok := cur.Next()
		if !ok {
			return acc, true
		}

		acc = reduce(acc, elem)
	}
}

// Fold aggregates the elements of q using fold, starting from seed. On an
// empty query it returns seed and never calls fold.
func Fold[T any, A any](q Query[T], seed A, fold func(acc A, elem T) A) A {
	acc := seed

	q.ForEach(func(elem T) {
		acc = fold(acc, elem)
	})

	return acc
}

// Partition traverses q once and splits its elements into those matching pred
// and those not, preserving source order in both slices.
func (q Query[T]) Partition(pred PredicateFunc[T]) (matching, rest []T) {
	q.ForEach(func(elem T) {
		if pred(elem) {
			matching = append(matching, elem)
		} else {
			rest = append(rest, elem)
		}
	})

	return matching, rest
}

// SequenceEqual returns true if left and right produce equal elements in the
// same order and have equal length.
func SequenceEqual[T comparable](left, right Query[T]) bool {
	return SequenceEqualFunc(left, right, func(a, b T) bool { return a == b })
}

// SequenceEqualFunc compares left and right in lockstep using eq, stopping at
// the first mismatch or length difference.
func SequenceEqualFunc[T any, U any](left Query[T], right Query[U], eq func(a T, b U) bool) bool {
	lcur := left.Cursor()
	rcur := right.Cursor()

	for {
		a, okA := lcur.Next()
		b, okB := rcur.Next()

		if okA != okB {
			return false
		}

		if !okA {
			return true
		}

		if !eq(a, b) {
			return false
		}
	}
}

// MinWith returns the smallest element of q per cmp, or false if q is empty.
// The first of several equal minima is returned.
func (q Query[T]) MinWith(cmp Comparator[T]) (T, bool) {
	cur := q.Cursor()

	best, ok := cur.Next()
	if !ok {
		return best, false
	}

	for {
		elem, ok := cur.Next()
		if !ok {
			return best, true
		}

		if cmp(elem, best) == Less {
			best = elem
		}
	}
}

// MaxWith returns the largest element of q per cmp, or false if q is empty.
// The first of several equal maxima is returned.
func (q Query[T]) MaxWith(cmp Comparator[T]) (T, bool) {
	cur := q.Cursor()

	best, ok := cur.Next()
	if !ok {
		return best, false
	}

	for {
		elem, ok := cur.Next()
		if !ok {
			return best, true
		}

		if cmp(elem, best) == Greater {
			best = elem
		}
	}
}

// MinMaxWith returns the smallest and largest elements of q per cmp in a
// single pass, or false if q is empty.
func (q Query[T]) MinMaxWith(cmp Comparator[T]) (smallest, largest T, ok bool) {
	cur := q.Cursor()

	first, found := cur.Next()
	if !found {
		return first, first, false
	}

	smallest, largest = first, first

	for {
		elem, more := cur.Next()
		if !more {
			return smallest, largest, true
		}

		if cmp(elem, smallest) == Less {
			smallest = elem
		}

		if cmp(elem, largest) == Greater {
			largest = elem
		}
	}
}

// Min returns the smallest element of q by natural order, or false if q is
// empty.
func Min[T constraints.Ordered](q Query[T]) (T, bool) {
	return q.MinWith(Natural[T]())
}

// Max returns the largest element of q by natural order, or false if q is
// empty.
func Max[T constraints.Ordered](q Query[T]) (T, bool) {
	return q.MaxWith(Natural[T]())
}

// MinMax returns the smallest and largest elements of q by natural order in a
// single pass, or false if q is empty.
func MinMax[T constraints.Ordered](q Query[T]) (smallest, largest T, ok bool) {
	return q.MinMaxWith(Natural[T]())
}

// MinBy returns the element of q with the smallest derived key, or false if q
// is empty.
func MinBy[T any, K constraints.Ordered](q Query[T], key KeyFunc[T, K]) (T, bool) {
	return q.MinWith(ByKey(key))
}

// MaxBy returns the element of q with the largest derived key, or false if q
// is empty.
func MaxBy[T any, K constraints.Ordered](q Query[T], key KeyFunc[T, K]) (T, bool) {
	return q.MaxWith(ByKey(key))
}

// IsSortedWith returns true if the elements of q never order Greater than
// their successor per cmp. Empty and singleton queries are trivially sorted.
func (q Query[T]) IsSortedWith(cmp Comparator[T]) bool {
	cur := q.Cursor()

	prev, ok := cur.Next()
	if !ok {
		return true
	}

	for {
		elem, ok := cur.Next()
		if !ok {
			return true
		}

		if cmp(prev, elem) == Greater {
			return false
		}

		prev = elem
	}
}

// IsSorted returns true if q is sorted by natural order, ascending.
func IsSorted[T constraints.Ordered](q Query[T]) bool {
	return q.IsSortedWith(Natural[T]())
}

// IsSortedDescending returns true if q is sorted by natural order, descending.
func IsSortedDescending[T constraints.Ordered](q Query[T]) bool {
	return q.IsSortedWith(Natural[T]().Reversed())
}

// IsSortedBy returns true if q is sorted ascending by the derived key.
func IsSortedBy[T any, K constraints.Ordered](q Query[T], key KeyFunc[T, K]) bool {
	return q.IsSortedWith(ByKey(key))
}

// IsSortedByDescending returns true if q is sorted descending by the derived
// key.
func IsSortedByDescending[T any, K constraints.Ordered](q Query[T], key KeyFunc[T, K]) bool {
	return q.IsSortedWith(ByKey(key).Reversed())
}

// Sum returns the sum of the elements of q, or zero if q is empty.
func Sum[T constraints.Integer | constraints.Float](q Query[T]) T {
	return Fold(q, 0, func(acc, elem T) T { return acc + elem })
}

// Average returns the arithmetic mean of the elements of q, or false if q is
// empty.
func Average[T constraints.Integer | constraints.Float](q Query[T]) (float64, bool) {
	sum := 0.0
	count := 0

	q.ForEach(func(elem T) {
		sum += float64(elem)
		count++
	})

	if count == 0 {
		return 0, false
	}

	return sum / float64(count), true
}
