package golinq

// Sequence is a lazy recipe for producing values of type T. A Sequence stores
// no elements; it only knows how to start a traversal. Implementations must be
// immutable after construction, and constructing or wrapping a Sequence must
// never traverse it.
type Sequence[T any] interface {
	// Cursor starts a new traversal. A restartable Sequence returns an
	// independent cursor on every call; a single-use Sequence hands out its
	// one live cursor every time (see FromCursor).
	Cursor() Cursor[T]
}

// Cursor is the mutable state of a single traversal. A cursor is single-use:
// once Next reports exhaustion the cursor is spent permanently, and a cursor
// must never be shared between traversals.
type Cursor[T any] interface {
	// Next returns the next element, or the zero value and false once the
	// traversal is exhausted.
	Next() (T, bool)
}

// CursorFunc adapts a function to the Cursor interface.
type CursorFunc[T any] func() (T, bool)

// Next implements Cursor.
func (f CursorFunc[T]) Next() (T, bool) { return f() }

// sized is an optional Sequence capability: reporting the element count
// without traversal. Stages whose cardinality depends on an upstream sequence
// answer false unless the upstream is itself sized.
type sized interface {
	size() (int, bool)
}

// sizeOf reports the O(1) element count of seq, if it has one.
func sizeOf[T any](seq Sequence[T]) (int, bool) {
	if s, ok := seq.(sized); ok {
		return s.size()
	}
	return 0, false
}

// collect drains a fresh cursor of seq into a slice.
func collect[T any](seq Sequence[T]) []T {
	var result []T

	cur := seq.Cursor()

	for {
		elem, ok := cur.Next()
		if !ok {
			return result
		}

		result = append(result, elem)
	}
}

// emptySequence produces no elements.
type emptySequence[T any] struct{}

func (emptySequence[T]) Cursor() Cursor[T] {
	return CursorFunc[T](func() (T, bool) {
		var zero T
		return zero, false
	})
}

func (emptySequence[T]) size() (int, bool) { return 0, true }

// singleUseSequence wraps one live cursor. Every Cursor call hands out that
// same cursor, so only the first traversal observes the elements; combinators
// built on top inherit the single-pass limitation.
type singleUseSequence[T any] struct {
	cursor Cursor[T]
}

func (s *singleUseSequence[T]) Cursor() Cursor[T] { return s.cursor }
