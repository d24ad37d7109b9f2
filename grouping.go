package golinq

import "iter"

// Grouping is the result of GroupBy: a key to members mapping that remembers
// the order in which keys were first seen. Members within a key keep their
// source order.
type Grouping[K comparable, V any] struct {
	keys    []K
	members map[K][]V
}

// GroupBy traverses q once and groups its elements by the key derived by key.
func GroupBy[T any, K comparable](q Query[T], key KeyFunc[T, K]) *Grouping[K, T] {
	return GroupByValue(q, key, func(elem T) T { return elem })
}

// GroupByValue is GroupBy with the members mapped through value before being
// collected.
func GroupByValue[T any, K comparable, V any](q Query[T], key KeyFunc[T, K], value MapFunc[T, V]) *Grouping[K, V] {
	grouping := &Grouping[K, V]{members: map[K][]V{}}

	q.ForEach(func(elem T) {
		k := key(elem)

		if _, ok := grouping.members[k]; !ok {
			grouping.keys = append(grouping.keys, k)
		}

		grouping.members[k] = append(grouping.members[k], value(elem))
	})

	return grouping
}

// Len returns the number of distinct keys.
func (g *Grouping[K, V]) Len() int { return len(g.keys) }

// Keys returns the keys in first-occurrence order.
func (g *Grouping[K, V]) Keys() []K {
	keys := make([]K, len(g.keys))
	copy(keys, g.keys)

	return keys
}

// Get returns the members collected under key, or false if the key never
// occurred.
func (g *Grouping[K, V]) Get(key K) ([]V, bool) {
	members, ok := g.members[key]
	return members, ok
}

// All returns an iterator over the groups in first-occurrence key order.
func (g *Grouping[K, V]) All() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for _, key := range g.keys {
			if !yield(key, g.members[key]) {
				return
			}
		}
	}
}
