package golinq

import (
	"testing"

	"github.com/matryer/is"
)

func TestNatural(t *testing.T) {
	is := is.New(t)

	cmp := Natural[int]()

	is.Equal(cmp(1, 2), Less)
	is.Equal(cmp(2, 1), Greater)
	is.Equal(cmp(1, 1), Equal)

	strs := Natural[string]()

	is.Equal(strs("a", "b"), Less)
	is.Equal(strs("b", "b"), Equal)
}

func TestReversed(t *testing.T) {
	is := is.New(t)

	cmp := Natural[int]().Reversed()

	is.Equal(cmp(1, 2), Greater)
	is.Equal(cmp(2, 1), Less)
	is.Equal(cmp(1, 1), Equal)
}

func TestByKey(t *testing.T) {
	is := is.New(t)

	cmp := ByKey(func(s string) int { return len(s) })

	is.Equal(cmp("a", "bb"), Less)
	is.Equal(cmp("aa", "b"), Greater)
	is.Equal(cmp("aa", "bb"), Equal)
}

func TestOrdering_String(t *testing.T) {
	is := is.New(t)

	is.Equal(Less.String(), "Less")
	is.Equal(Equal.String(), "Equal")
	is.Equal(Greater.String(), "Greater")
}
