package golinq

import (
	"testing"

	"github.com/matryer/is"
)

func TestSkipLast(t *testing.T) {
	is := is.New(t)

	// generic path: the source is not slice-backed
	ints := Range(1, 6, 1)

	is.Equal(ints.SkipLast(2).ToSlice(), []int{1, 2, 3})
	is.Equal(ints.SkipLast(0).ToSlice(), []int{1, 2, 3, 4, 5})
	is.Equal(len(ints.SkipLast(5).ToSlice()), 0)
	is.Equal(len(ints.SkipLast(10).ToSlice()), 0)
	is.Equal(ints.SkipLast(2).Count(), 3)
}

func TestSkipLast_Negative(t *testing.T) {
	is := is.New(t)

	defer func() {
		is.Equal(recover(), ErrNegativeCount)
	}()

	Of(1, 2, 3).SkipLast(-1)
}

func TestTakeLast(t *testing.T) {
	is := is.New(t)

	ints := Range(1, 6, 1)

	is.Equal(ints.TakeLast(2).ToSlice(), []int{4, 5})
	is.Equal(ints.TakeLast(5).ToSlice(), []int{1, 2, 3, 4, 5})
	is.Equal(ints.TakeLast(10).ToSlice(), []int{1, 2, 3, 4, 5})
	is.Equal(len(ints.TakeLast(0).ToSlice()), 0)

	// the result is materialized and slice-backed
	is.Equal(ints.TakeLast(3).Count(), 3)
}

func TestChunk(t *testing.T) {
	is := is.New(t)

	ints := Range(1, 8, 1)

	is.Equal(ints.Chunk(3).ToSlice(), [][]int{{1, 2, 3}, {4, 5, 6}, {7}})
	is.Equal(Range(1, 7, 1).Chunk(3).ToSlice(), [][]int{{1, 2, 3}, {4, 5, 6}})
	is.Equal(Of(1).Chunk(3).ToSlice(), [][]int{{1}})
	is.Equal(len(Empty[int]().Chunk(3).ToSlice()), 0)
	is.Equal(ints.Chunk(3).Count(), 3)
}

func TestChunk_InvalidSize(t *testing.T) {
	is := is.New(t)

	defer func() {
		is.Equal(recover(), ErrInvalidSize)
	}()

	Of(1, 2, 3).Chunk(0)
}

func TestWindow(t *testing.T) {
	is := is.New(t)

	ints := Range(1, 6, 1)

	is.Equal(ints.Window(3).ToSlice(), [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}})
	is.Equal(ints.Window(5).ToSlice(), [][]int{{1, 2, 3, 4, 5}})
	is.Equal(len(ints.Window(6).ToSlice()), 0)
	is.Equal(ints.Window(3).Count(), 3)
}

func TestWindow_CopiesAreIndependent(t *testing.T) {
	is := is.New(t)

	windows := Range(1, 5, 1).Window(2).ToSlice()

	windows[0][0] = 99

	is.Equal(windows[1], []int{2, 3})
}

func TestWindow_InvalidSize(t *testing.T) {
	is := is.New(t)

	defer func() {
		is.Equal(recover(), ErrInvalidSize)
	}()

	Of(1, 2, 3).Window(-1)
}
