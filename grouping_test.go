package golinq

import (
	"testing"

	"github.com/matryer/is"
)

func parity(elem int) string {
	if elem%2 == 0 {
		return "even"
	}

	return "odd"
}

func TestGroupBy(t *testing.T) {
	is := is.New(t)

	groups := GroupBy(Of(1, 2, 3, 4), parity)

	is.Equal(groups.Len(), 2)

	// keys in encounter order
	is.Equal(groups.Keys(), []string{"odd", "even"})

	odd, ok := groups.Get("odd")
	is.True(ok)
	is.Equal(odd, []int{1, 3})

	even, ok := groups.Get("even")
	is.True(ok)
	is.Equal(even, []int{2, 4})

	_, ok = groups.Get("other")
	is.True(!ok)
}

func TestGroupBy_Empty(t *testing.T) {
	is := is.New(t)

	groups := GroupBy(Empty[int](), parity)

	is.Equal(groups.Len(), 0)
	is.Equal(len(groups.Keys()), 0)
}

func TestGroupByValue(t *testing.T) {
	is := is.New(t)

	groups := GroupByValue(Of("apple", "avocado", "banana"),
		func(s string) byte { return s[0] },
		func(s string) int { return len(s) },
	)

	is.Equal(groups.Keys(), []byte{'a', 'b'})

	a, ok := groups.Get('a')
	is.True(ok)
	is.Equal(a, []int{5, 7})
}

func TestGrouping_All(t *testing.T) {
	is := is.New(t)

	groups := GroupBy(Of(1, 2, 3, 4, 5), parity)

	var keys []string
	var sizes []int

	for key, members := range groups.All() {
		keys = append(keys, key)
		sizes = append(sizes, len(members))
	}

	is.Equal(keys, []string{"odd", "even"})
	is.Equal(sizes, []int{3, 2})
}
