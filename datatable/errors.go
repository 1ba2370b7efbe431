package datatable

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/leengari/datatable/internal/vector"
)

// ErrorKind classifies a failure. Each kind is itself an error so callers
// can test for it with errors.Is.
type ErrorKind string

func (k ErrorKind) Error() string {
	return string(k)
}

const (
	// ErrInvalidCast: a value's runtime type does not match the column type.
	ErrInvalidCast ErrorKind = "invalid cast"
	// ErrIndexOutOfBounds: a row or column index is outside [0, length).
	ErrIndexOutOfBounds ErrorKind = "index out of bounds"
	// ErrDuplicateColumnNames: two or more columns share a name.
	ErrDuplicateColumnNames ErrorKind = "duplicate column names"
	// ErrUnevenColumnLengths: columns do not all hold the same number of values.
	ErrUnevenColumnLengths ErrorKind = "uneven column lengths"
	// ErrColumnNotFound: no column matches the given name or identity.
	ErrColumnNotFound ErrorKind = "column not found"
	// ErrRowsBelongToDifferentTable: a row handle references another table.
	ErrRowsBelongToDifferentTable ErrorKind = "rows belong to different table"
	// ErrColumnCountMismatch: a whole-row edit supplied the wrong number of values.
	ErrColumnCountMismatch ErrorKind = "column count mismatch"
	// ErrColumnForSortItemNotFound: a sort item does not resolve to a column.
	ErrColumnForSortItemNotFound ErrorKind = "column for sort item not found"
	// ErrColumnNotComparable: a sort column's type has no natural ordering.
	ErrColumnNotComparable ErrorKind = "column not comparable"
	// ErrTypeMismatch: a typed view of a column was requested with the wrong type.
	ErrTypeMismatch ErrorKind = "type mismatch"
	// ErrInvalidRowIndex: a row handle was requested for a row that does not exist.
	ErrInvalidRowIndex ErrorKind = "invalid row index"
)

// NoIndex marks an Error whose failure is not tied to an index.
const NoIndex = math.MinInt

// Error describes a failed table operation with enough context to
// diagnose it without inspecting internal state.
type Error struct {
	Kind     ErrorKind
	Op       string    // operation that failed, e.g. "column.insert"
	Table    string    // table name (empty if unknown)
	Column   string    // column name (empty if not column specific)
	Index    int       // offending index (NoIndex if not applicable)
	Value    any       // offending value (may be nil)
	Expected *DataType // expected type for casts
	Reason   string    // human-readable explanation (optional)
	Err      error     // underlying cause (optional)
}

func (e *Error) Error() string {
	var parts []string

	head := string(e.Kind)
	if e.Op != "" {
		head = e.Op + ": " + head
	}
	parts = append(parts, head)

	switch {
	case e.Table != "" && e.Column != "":
		parts = append(parts, fmt.Sprintf("in %s.%s", e.Table, e.Column))
	case e.Column != "":
		parts = append(parts, fmt.Sprintf("column %s", e.Column))
	case e.Table != "":
		parts = append(parts, fmt.Sprintf("table %s", e.Table))
	}

	if e.Index != NoIndex {
		parts = append(parts, fmt.Sprintf("index %d", e.Index))
	}

	if e.Expected != nil {
		parts = append(parts, fmt.Sprintf("expected %s, got %T", *e.Expected, e.Value))
	} else if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, " - ")
}

// Unwrap exposes the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newInvalidCast(op, column string, index int, value any, expected DataType) *Error {
	return &Error{
		Kind:     ErrInvalidCast,
		Op:       op,
		Column:   column,
		Index:    index,
		Value:    value,
		Expected: &expected,
		Reason:   "item of invalid type passed",
	}
}

func newTypeMismatch(column string, actual, requested DataType) *Error {
	return &Error{
		Kind:   ErrTypeMismatch,
		Op:     "column.as_type",
		Column: column,
		Index:  NoIndex,
		Reason: fmt.Sprintf("column type %s doesn't match type requested %s", actual, requested),
	}
}

func newColumnNotFound(op, table, column string) *Error {
	return &Error{
		Kind:   ErrColumnNotFound,
		Op:     op,
		Table:  table,
		Column: column,
		Index:  NoIndex,
	}
}

// boundsError converts a vector bounds failure into an ErrIndexOutOfBounds.
// Other errors pass through unchanged.
func boundsError(op, column string, err error) error {
	var be *vector.BoundsError
	if !errors.As(err, &be) {
		return err
	}
	return &Error{
		Kind:   ErrIndexOutOfBounds,
		Op:     op,
		Column: column,
		Index:  be.Index,
		Reason: fmt.Sprintf("length is %d", be.Len),
		Err:    err,
	}
}

func newIndexOutOfBounds(op, table string, index, length int) *Error {
	return &Error{
		Kind:   ErrIndexOutOfBounds,
		Op:     op,
		Table:  table,
		Index:  index,
		Reason: fmt.Sprintf("length is %d", length),
	}
}
