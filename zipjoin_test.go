package golinq

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestZip(t *testing.T) {
	is := is.New(t)

	zipped := Zip(Of(1, 2, 3), Of("a", "b"), func(x int, y string) string {
		return strconv.Itoa(x) + y
	})

	// stops at the shorter source
	is.Equal(zipped.ToSlice(), []string{"1a", "2b"})
	is.Equal(zipped.Count(), 2)
}

func TestZip_Empty(t *testing.T) {
	is := is.New(t)

	zipped := Zip(Empty[int](), Of("a"), func(x int, y string) string {
		return y
	})

	is.Equal(len(zipped.ToSlice()), 0)
}

func TestZip_Unbounded(t *testing.T) {
	is := is.New(t)

	pairs := Zip(naturals(), Of("a", "b", "c"), func(x int, y string) KeyValue[int, string] {
		return KeyValue[int, string]{Key: x, Value: y}
	})

	is.Equal(pairs.ToSlice(), []KeyValue[int, string]{
		{Key: 0, Value: "a"},
		{Key: 1, Value: "b"},
		{Key: 2, Value: "c"},
	})
}

func TestJoin(t *testing.T) {
	is := is.New(t)

	type order struct {
		customer string
		total    int
	}

	customers := Of("ann", "bob")
	orders := Of(
		order{customer: "bob", total: 3},
		order{customer: "ann", total: 5},
		order{customer: "ann", total: 7},
	)

	joined := Join(customers, orders,
		func(name string, o order) bool { return o.customer == name },
		func(name string, o order) int { return o.total },
	)

	// nested loop: one output per match, right side scanned in full per
	// left element
	is.Equal(joined.ToSlice(), []int{5, 7, 3})
}

func TestJoin_NoMatches(t *testing.T) {
	is := is.New(t)

	joined := Join(Of(1, 2), Of(3, 4),
		func(l, r int) bool { return l == r },
		func(l, r int) int { return l },
	)

	is.Equal(len(joined.ToSlice()), 0)
}

func TestJoin_Restartable(t *testing.T) {
	is := is.New(t)

	joined := Join(Of(1, 2, 3), Of(2, 3, 4),
		func(l, r int) bool { return l == r },
		func(l, r int) int { return l * 10 },
	)

	is.Equal(joined.ToSlice(), []int{20, 30})
	is.Equal(joined.ToSlice(), []int{20, 30})
}
