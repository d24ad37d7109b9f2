// Package golinq provides lazy, composable queries over sequences of elements.
// Queries form a chain of combinator stages that elements are pulled through
// one at a time.
//
// Queries are constructed by wrapping a source: a slice, an arbitrary cursor,
// an iter.Seq, or a generator such as Range, RepeatValue, or Generate.
//
// Elements may then be operated upon using mapping, filtering, slicing, and
// windowing operations. Each chain operation wraps the previous query in a new
// combinator and returns a new query; the previous query stays valid and
// reusable. No elements are produced until a terminal operation forces
// evaluation.
//
// Finally, the elements are consumed by terminal operations, such as counting,
// reducing, sorting, grouping and partitioning them, checking for matching
// elements, or rendering them as a string. Terminal operations that
// materialize their result (the sort family, Distinct, the set operations,
// TakeLast) return a new slice-backed query with O(1) length.
//
// Evaluation is single-threaded, synchronous, and pull-based. Every cursor
// advancement is a direct call that returns only once the next element (or
// exhaustion) is determined. There is no cancellation primitive; a consumer
// stops a traversal early by simply abandoning its cursor. Combining an
// infinite source with an unbounded terminal operation, such as sorting an
// endless generator, never returns.
//
// A query built over a restartable source is itself restartable: every
// traversal starts from scratch and yields the identical element sequence.
// A query built over a one-shot cursor (see FromCursor) supports a single
// traversal only.
package golinq
