package golinq

import "golang.org/x/exp/constraints"

// Ordering is the three-valued result of comparing two elements.
type Ordering int

const (
	// Less means the first element orders before the second.
	Less Ordering = iota - 1
	// Equal means neither element orders before the other.
	Equal
	// Greater means the first element orders after the second.
	Greater
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	default:
		return "Equal"
	}
}

// Comparator compares two elements, returning Less if a orders before b,
// Greater if a orders after b, and Equal otherwise. A comparator must be
// total for every pair of elements it is applied to.
type Comparator[T any] func(a, b T) Ordering

// Natural returns a comparator using the natural order of T.
func Natural[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) Ordering {
		switch {
		case a < b:
			return Less
		case a > b:
			return Greater
		default:
			return Equal
		}
	}
}

// ByKey returns a comparator that orders elements by the natural order of the
// key derived by key.
func ByKey[T any, K constraints.Ordered](key KeyFunc[T, K]) Comparator[T] {
	cmp := Natural[K]()

	return func(a, b T) Ordering {
		return cmp(key(a), key(b))
	}
}

// Reversed returns a comparator with the opposite order of cmp.
func (cmp Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) Ordering {
		return cmp(b, a)
	}
}
