package golinq

// Set-style operations. All of them are eager: they traverse their inputs
// once and return a new slice-backed query. The Func variants serve element
// types without well-defined equality; they compare pairwise against the
// elements kept so far, which costs O(n²), the documented price of working
// with nothing but an equality predicate.

// Distinct returns a slice-backed query of the distinct elements of q,
// keeping the first occurrence of each.
func Distinct[T comparable](q Query[T]) Query[T] {
	seen := map[T]struct{}{}

	var result []T

	q.ForEach(func(elem T) {
		if _, ok := seen[elem]; ok {
			return
		}

		seen[elem] = struct{}{}
		result = append(result, elem)
	})

	return FromSlice(result)
}

// DistinctBy returns a slice-backed query of the elements of q with distinct
// derived keys, keeping the first occurrence of each key.
func DistinctBy[T any, K comparable](q Query[T], key KeyFunc[T, K]) Query[T] {
	seen := map[K]struct{}{}

	var result []T

	q.ForEach(func(elem T) {
		k := key(elem)

		if _, ok := seen[k]; ok {
			return
		}

		seen[k] = struct{}{}
		result = append(result, elem)
	})

	return FromSlice(result)
}

// DistinctFunc is Distinct with equality decided by eq.
func (q Query[T]) DistinctFunc(eq func(a, b T) bool) Query[T] {
	var result []T

	q.ForEach(func(elem T) {
		for _, kept := range result {
			if eq(kept, elem) {
				return
			}
		}

		result = append(result, elem)
	})

	return FromSlice(result)
}

// Union returns a slice-backed query of the distinct elements of left
// followed by the distinct elements of right not already produced, preserving
// left-then-new-right order.
func Union[T comparable](left, right Query[T]) Query[T] {
	return Distinct(left.Concat(right))
}

// UnionFunc is Union with equality decided by eq.
func UnionFunc[T any](left, right Query[T], eq func(a, b T) bool) Query[T] {
	return left.Concat(right).DistinctFunc(eq)
}

// Except returns a slice-backed query of the elements of left that do not
// occur in right, preserving left order. Duplicates on the left are kept.
func Except[T comparable](left, right Query[T]) Query[T] {
	exclude := map[T]struct{}{}

	right.ForEach(func(elem T) {
		exclude[elem] = struct{}{}
	})

	var result []T

	left.ForEach(func(elem T) {
		if _, ok := exclude[elem]; !ok {
			result = append(result, elem)
		}
	})

	return FromSlice(result)
}

// ExceptFunc is Except with equality decided by eq. The right query is
// materialized once and scanned pairwise for every left element.
func ExceptFunc[T any](left, right Query[T], eq func(a, b T) bool) Query[T] {
	others := right.ToSlice()

	var result []T

	left.ForEach(func(elem T) {
		for _, other := range others {
			if eq(elem, other) {
				return
			}
		}

		result = append(result, elem)
	})

	return FromSlice(result)
}

// Intersect returns a slice-backed query of the elements of left that also
// occur in right, preserving left order. Duplicates on the left are kept.
func Intersect[T comparable](left, right Query[T]) Query[T] {
	include := map[T]struct{}{}

	right.ForEach(func(elem T) {
		include[elem] = struct{}{}
	})

	var result []T

	left.ForEach(func(elem T) {
		if _, ok := include[elem]; ok {
			result = append(result, elem)
		}
	})

	return FromSlice(result)
}

// IntersectFunc is Intersect with equality decided by eq. The right query is
// materialized once and scanned pairwise for every left element.
func IntersectFunc[T any](left, right Query[T], eq func(a, b T) bool) Query[T] {
	others := right.ToSlice()

	var result []T

	left.ForEach(func(elem T) {
		for _, other := range others {
			if eq(elem, other) {
				result = append(result, elem)
				return
			}
		}
	})

	return FromSlice(result)
}
