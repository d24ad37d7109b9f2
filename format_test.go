package golinq

import (
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestString(t *testing.T) {
	is := is.New(t)

	is.Equal(Of(1, 2, 3).String(), "[1, 2, 3]")
	is.Equal(Empty[int]().String(), "[]")
	is.Equal(Of("a").String(), "[a]")
	is.Equal(Range(0, 3, 1).String(), "[0, 1, 2]")
}

func TestString_Fmt(t *testing.T) {
	is := is.New(t)

	is.Equal(fmt.Sprintf("%v", Of(1, 2)), "[1, 2]")
}

func TestFormat_Options(t *testing.T) {
	is := is.New(t)

	rendered := Of(1, 2, 3).Format(
		WithSeparator(" | "),
		WithPrefix("<"),
		WithPostfix(">"),
	)

	is.Equal(rendered, "<1 | 2 | 3>")
}

func TestFormat_Limit(t *testing.T) {
	is := is.New(t)

	is.Equal(Of(1, 2, 3, 4).Format(WithLimit(2)), "[1, 2, ...]")
	is.Equal(Of(1, 2).Format(WithLimit(2)), "[1, 2]")
	is.Equal(Of(1, 2, 3).Format(WithLimit(0)), "[...]")
	is.Equal(Empty[int]().Format(WithLimit(0)), "[]")

	// a limit bounds rendering of an unbounded query
	is.Equal(naturals().Format(WithLimit(3)), "[0, 1, 2, ...]")
}

func TestFormat_TruncateMarker(t *testing.T) {
	is := is.New(t)

	is.Equal(Of(1, 2, 3).Format(WithLimit(1), WithTruncateMarker("and more")), "[1, and more]")
}

func TestFormat_NestedSlices(t *testing.T) {
	is := is.New(t)

	is.Equal(Of(1, 2, 3, 4).Chunk(2).String(), "[[1, 2], [3, 4]]")
	is.Equal(Of(1, 2, 3).Window(2).String(), "[[1, 2], [2, 3]]")
}

func TestFormat_NestedQueries(t *testing.T) {
	is := is.New(t)

	nested := Of(Of(1, 2), Of(3))

	is.Equal(nested.String(), "[[1, 2], [3]]")
	is.Equal(nested.Format(WithPrefix("("), WithPostfix(")")), "((1, 2), (3))")
}
