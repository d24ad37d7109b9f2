package golinq

import (
	"testing"

	"github.com/matryer/is"
)

func TestQuery_Seq(t *testing.T) {
	is := is.New(t)

	var collected []int

	for elem := range Of(1, 2, 3).Seq() {
		collected = append(collected, elem)
	}

	is.Equal(collected, []int{1, 2, 3})
}

func TestQuery_Seq_EarlyBreak(t *testing.T) {
	is := is.New(t)

	var collected []int

	for elem := range naturals().Seq() {
		if elem == 3 {
			break
		}

		collected = append(collected, elem)
	}

	is.Equal(collected, []int{0, 1, 2})
}

func TestQuery_AsSequence(t *testing.T) {
	is := is.New(t)

	// a query satisfies Sequence, so it can source another query
	inner := Of(1, 2, 3).Filter(even)
	outer := From[int](inner).Append(6)

	is.Equal(outer.ToSlice(), []int{2, 6})
}

func TestQuery_ZeroValue(t *testing.T) {
	is := is.New(t)

	var q Query[int]

	is.Equal(len(q.ToSlice()), 0)

	_, ok := q.First()
	is.True(!ok)
}

func TestCount_SizedThroughWrappers(t *testing.T) {
	is := is.New(t)

	// cardinality propagates through the wrapper layers without traversal:
	// an unbounded walk would never return
	huge := Range(0, 1<<40, 1)

	is.Equal(huge.Take(1<<20).Count(), 1<<20)
	is.Equal(huge.Skip(1<<39).Count(), 1<<39)
	is.Equal(huge.Take(10).Append(1, 2).Count(), 12)
	is.Equal(huge.Take(100).StepBy(3).Count(), 34)
	is.Equal(huge.Take(100).Chunk(7).Count(), 15)
	is.Equal(RepeatValue(0, 1<<30).Indexed().Count(), 1<<30)
}

func TestCursorExhaustionIsPermanent(t *testing.T) {
	is := is.New(t)

	cur := Of(1).Cursor()

	_, ok := cur.Next()
	is.True(ok)

	for i := 0; i < 3; i++ {
		_, ok = cur.Next()
		is.True(!ok)
	}
}

func TestIndependentCursors(t *testing.T) {
	is := is.New(t)

	q := Range(0, 3, 1)

	a := q.Cursor()
	b := q.Cursor()

	elemA, _ := a.Next()
	elemB, _ := b.Next()

	// each traversal owns its own state
	is.Equal(elemA, 0)
	is.Equal(elemB, 0)
}
