// Package vector provides bounds-checked edits over persistent lists.
// Every function returns a new list; the input list is never modified and
// unchanged structure is shared with the result where the list allows it.
package vector

import (
	"errors"
	"fmt"
	"iter"

	"github.com/benbjohnson/immutable"
)

// ErrOutOfBounds is wrapped by every BoundsError.
var ErrOutOfBounds = errors.New("index out of bounds")

// BoundsError reports an index outside the valid range for an operation.
type BoundsError struct {
	Op    string // "insert", "replace", "remove", "get"
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds for length %d", e.Op, e.Index, e.Len)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// OutOfBounds reports whether index falls outside [0, length).
func OutOfBounds(length, index int) bool {
	return index < 0 || index >= length
}

// Empty returns a new empty list.
func Empty[T any]() *immutable.List[T] {
	return immutable.NewList[T]()
}

// FromSlice builds a list holding a copy of values.
func FromSlice[T any](values []T) *immutable.List[T] {
	b := immutable.NewListBuilder[T]()
	for _, v := range values {
		b.Append(v)
	}
	return b.List()
}

// FromSeq builds a list from an iterator.
func FromSeq[T any](seq iter.Seq[T]) *immutable.List[T] {
	b := immutable.NewListBuilder[T]()
	for v := range seq {
		b.Append(v)
	}
	return b.List()
}

// ToSlice copies the list into a new slice.
func ToSlice[T any](l *immutable.List[T]) []T {
	out := make([]T, 0, l.Len())
	for _, v := range All(l) {
		out = append(out, v)
	}
	return out
}

// All iterates the list in order.
func All[T any](l *immutable.List[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		itr := l.Iterator()
		for !itr.Done() {
			i, v := itr.Next()
			if !yield(i, v) {
				return
			}
		}
	}
}

// Append adds v to the end of the list. It never fails.
func Append[T any](l *immutable.List[T], v T) *immutable.List[T] {
	return l.Append(v)
}

// Insert places v at index, shifting later items up. Index may equal the
// list length, in which case v is appended.
func Insert[T any](l *immutable.List[T], index int, v T) (*immutable.List[T], error) {
	n := l.Len()
	if index < 0 || index > n {
		return nil, &BoundsError{Op: "insert", Index: index, Len: n}
	}
	if index == n {
		return l.Append(v), nil
	}
	if index == 0 {
		return l.Prepend(v), nil
	}

	out := l.Slice(0, index).Append(v)
	for i := index; i < n; i++ {
		out = out.Append(l.Get(i))
	}
	return out, nil
}

// Replace swaps the item at index for v.
func Replace[T any](l *immutable.List[T], index int, v T) (*immutable.List[T], error) {
	if OutOfBounds(l.Len(), index) {
		return nil, &BoundsError{Op: "replace", Index: index, Len: l.Len()}
	}
	return l.Set(index, v), nil
}

// Remove drops the item at index, shifting later items down.
func Remove[T any](l *immutable.List[T], index int) (*immutable.List[T], error) {
	n := l.Len()
	if OutOfBounds(n, index) {
		return nil, &BoundsError{Op: "remove", Index: index, Len: n}
	}

	switch index {
	case 0:
		return l.Slice(1, n), nil
	case n - 1:
		return l.Slice(0, n-1), nil
	}

	out := l.Slice(0, index)
	for i := index + 1; i < n; i++ {
		out = out.Append(l.Get(i))
	}
	return out, nil
}

// Get returns the item at index, or a BoundsError.
func Get[T any](l *immutable.List[T], index int) (T, error) {
	if OutOfBounds(l.Len(), index) {
		var zero T
		return zero, &BoundsError{Op: "get", Index: index, Len: l.Len()}
	}
	return l.Get(index), nil
}

// Pick builds a new list from the items at the given indexes, in order.
// Indexes must already be valid.
func Pick[T any](l *immutable.List[T], indexes []int) *immutable.List[T] {
	b := immutable.NewListBuilder[T]()
	for _, idx := range indexes {
		b.Append(l.Get(idx))
	}
	return b.List()
}

// IndexWhere returns the position of the first item matching pred, or -1.
func IndexWhere[T any](l *immutable.List[T], pred func(T) bool) int {
	for i, v := range All(l) {
		if pred(v) {
			return i
		}
	}
	return -1
}
