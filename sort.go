package golinq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SortWith returns a slice-backed query of the elements of q ordered by cmp.
// The sort is stable: elements that compare Equal keep their source order.
// SortWith is eager and never returns over an infinite query.
func (q Query[T]) SortWith(cmp Comparator[T]) Query[T] {
	result := q.ToSlice()

	slices.SortStableFunc(result, func(a, b T) bool {
		return cmp(a, b) == Less
	})

	return FromSlice(result)
}

// Sort returns a slice-backed query of the elements of q in ascending natural
// order.
func Sort[T constraints.Ordered](q Query[T]) Query[T] {
	return q.SortWith(Natural[T]())
}

// SortDescending returns a slice-backed query of the elements of q in
// descending natural order.
func SortDescending[T constraints.Ordered](q Query[T]) Query[T] {
	return q.SortWith(Natural[T]().Reversed())
}

// SortBy returns a slice-backed query of the elements of q ordered ascending
// by the derived key. Elements with equal keys keep their source order.
func SortBy[T any, K constraints.Ordered](q Query[T], key KeyFunc[T, K]) Query[T] {
	return q.SortWith(ByKey(key))
}

// SortByDescending returns a slice-backed query of the elements of q ordered
// descending by the derived key. Elements with equal keys keep their source
// order.
func SortByDescending[T any, K constraints.Ordered](q Query[T], key KeyFunc[T, K]) Query[T] {
	return q.SortWith(ByKey(key).Reversed())
}
