package datatable

import (
	"bytes"
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/leengari/datatable/internal/vector"
)

// Column is a named, single-typed, ordered sequence of values.
//
// Columns are immutable: Add, Insert, Replace and Remove return a new Column
// and leave the receiver untouched. A nil value is a valid null of any type.
type Column interface {
	// Name returns the column name.
	Name() string
	// Type returns the element type every value in the column has.
	Type() DataType
	// Len returns the number of values.
	Len() int
	// ValueAt returns the value at index, or nil for a null.
	// It panics if index is out of range.
	ValueAt(index int) any
	// Values copies the column values into a new slice.
	Values() []any
	// Data returns the values as a persistent list.
	Data() *immutable.List[any]

	// Add appends value after checking its type.
	Add(value any) (Column, error)
	// Insert places value at index after checking its type.
	Insert(index int, value any) (Column, error)
	// Replace swaps the value at index after checking its type.
	Replace(index int, value any) (Column, error)
	// Remove drops the value at index.
	Remove(index int) (Column, error)

	// BuildFromRows returns a new column holding the values at indexes, in
	// the order given. Indexes are assumed valid for this column.
	BuildFromRows(indexes []int) Column

	// IsComparable reports whether the column values have a total ordering.
	IsComparable() bool

	compareAt(i, j int) int
	isNil() bool
}

// DataColumn is the typed Column implementation.
type DataColumn[T Element] struct {
	name     string
	dataType DataType
	data     *immutable.List[any]
	compare  func(a, b T) int
}

// EmptyColumn creates a column with no values.
func EmptyColumn[T Element](name string) *DataColumn[T] {
	return newDataColumn[T](name, vector.Empty[any]())
}

// NewColumn creates a column holding values.
func NewColumn[T Element](name string, values ...T) *DataColumn[T] {
	b := immutable.NewListBuilder[any]()
	for _, v := range values {
		b.Append(cloneItem(v))
	}
	return newDataColumn[T](name, b.List())
}

// ColumnFromSeq creates a column from an iterator of values.
func ColumnFromSeq[T Element](name string, seq iter.Seq[T]) *DataColumn[T] {
	b := immutable.NewListBuilder[any]()
	for v := range seq {
		b.Append(cloneItem(v))
	}
	return newDataColumn[T](name, b.List())
}

// ColumnFromList creates a column over an existing persistent list. Every
// element must be nil or of type T. Bytes elements are copied into a new
// list; other lists are shared as is.
func ColumnFromList[T Element](name string, data *immutable.List[any]) (*DataColumn[T], error) {
	notNil(data == nil, "data")

	for i, v := range vector.All(data) {
		if _, ok := v.(T); !ok && v != nil {
			return nil, newInvalidCast("column.build", name, i, v, TypeOf[T]())
		}
	}
	if TypeOf[T]() == TypeBytes {
		b := immutable.NewListBuilder[any]()
		for _, v := range vector.All(data) {
			b.Append(cloneValue(v))
		}
		data = b.List()
	}
	return newDataColumn[T](name, data), nil
}

// ColumnFromValues creates a column from untyped values, which may include
// nils for nulls.
func ColumnFromValues[T Element](name string, values ...any) (*DataColumn[T], error) {
	return ColumnFromList[T](name, vector.FromSlice(values))
}

func newDataColumn[T Element](name string, data *immutable.List[any]) *DataColumn[T] {
	return &DataColumn[T]{
		name:     name,
		dataType: TypeOf[T](),
		data:     data,
		compare:  comparatorFor[T](),
	}
}

// AsType returns c as its typed implementation, or ErrTypeMismatch when the
// column does not hold T.
func AsType[T Element](c Column) (*DataColumn[T], error) {
	notNil(c == nil || c.isNil(), "column")

	typed, ok := c.(*DataColumn[T])
	if !ok {
		return nil, newTypeMismatch(c.Name(), c.Type(), TypeOf[T]())
	}
	return typed, nil
}

func (c *DataColumn[T]) Name() string       { return c.name }
func (c *DataColumn[T]) Type() DataType     { return c.dataType }
func (c *DataColumn[T]) Len() int           { return c.data.Len() }
func (c *DataColumn[T]) IsComparable() bool { return c.compare != nil }
func (c *DataColumn[T]) isNil() bool        { return c == nil }

// Data returns the column values as a persistent list. Bytes columns
// return a copy so the column's buffers stay private.
func (c *DataColumn[T]) Data() *immutable.List[any] {
	if c.dataType != TypeBytes {
		return c.data
	}
	b := immutable.NewListBuilder[any]()
	for _, v := range vector.All(c.data) {
		b.Append(cloneValue(v))
	}
	return b.List()
}

func (c *DataColumn[T]) ValueAt(index int) any {
	return cloneValue(c.data.Get(index))
}

func (c *DataColumn[T]) Values() []any {
	out := make([]any, 0, c.data.Len())
	for _, v := range vector.All(c.data) {
		out = append(out, cloneValue(v))
	}
	return out
}

// Get returns the typed value at index. ok is false for a null.
func (c *DataColumn[T]) Get(index int) (value T, ok bool) {
	value, ok = c.data.Get(index).(T)
	return cloneItem(value), ok
}

// Items copies the typed values into a new slice. Nulls become zero values.
func (c *DataColumn[T]) Items() []T {
	out := make([]T, 0, c.data.Len())
	for _, v := range vector.All(c.data) {
		typed, _ := v.(T)
		out = append(out, cloneItem(typed))
	}
	return out
}

func (c *DataColumn[T]) Add(value any) (Column, error) {
	typed, err := c.cast("column.add", NoIndex, value)
	if err != nil {
		return nil, err
	}
	return c.withData(vector.Append(c.data, typed)), nil
}

func (c *DataColumn[T]) Insert(index int, value any) (Column, error) {
	typed, err := c.cast("column.insert", index, value)
	if err != nil {
		return nil, err
	}
	col, err := c.insert(index, typed)
	if err != nil {
		return nil, err
	}
	return col, nil
}

func (c *DataColumn[T]) Replace(index int, value any) (Column, error) {
	typed, err := c.cast("column.replace", index, value)
	if err != nil {
		return nil, err
	}
	col, err := c.replace(index, typed)
	if err != nil {
		return nil, err
	}
	return col, nil
}

func (c *DataColumn[T]) Remove(index int) (Column, error) {
	col, err := c.RemoveItem(index)
	if err != nil {
		return nil, err
	}
	return col, nil
}

// AddItem appends a typed value. It cannot fail.
func (c *DataColumn[T]) AddItem(value T) *DataColumn[T] {
	return c.withData(vector.Append[any](c.data, cloneItem(value)))
}

// InsertItem places a typed value at index.
func (c *DataColumn[T]) InsertItem(index int, value T) (*DataColumn[T], error) {
	return c.insert(index, cloneItem(value))
}

// ReplaceItem swaps the value at index for a typed value.
func (c *DataColumn[T]) ReplaceItem(index int, value T) (*DataColumn[T], error) {
	return c.replace(index, cloneItem(value))
}

// RemoveItem drops the value at index.
func (c *DataColumn[T]) RemoveItem(index int) (*DataColumn[T], error) {
	data, err := vector.Remove(c.data, index)
	if err != nil {
		return nil, boundsError("column.remove", c.name, err)
	}
	return c.withData(data), nil
}

func (c *DataColumn[T]) BuildFromRows(indexes []int) Column {
	return c.withData(vector.Pick(c.data, indexes))
}

func (c *DataColumn[T]) insert(index int, value any) (*DataColumn[T], error) {
	data, err := vector.Insert(c.data, index, value)
	if err != nil {
		return nil, boundsError("column.insert", c.name, err)
	}
	return c.withData(data), nil
}

func (c *DataColumn[T]) replace(index int, value any) (*DataColumn[T], error) {
	data, err := vector.Replace(c.data, index, value)
	if err != nil {
		return nil, boundsError("column.replace", c.name, err)
	}
	return c.withData(data), nil
}

// cast checks value against T. Nil passes as a null.
func (c *DataColumn[T]) cast(op string, index int, value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	typed, ok := value.(T)
	if !ok {
		return nil, newInvalidCast(op, c.name, index, value, c.dataType)
	}
	return cloneItem(typed), nil
}

// compareAt orders the values at i and j. Nulls sort before any value.
func (c *DataColumn[T]) compareAt(i, j int) int {
	a, aok := c.data.Get(i).(T)
	b, bok := c.data.Get(j).(T)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	return c.compare(a, b)
}

func (c *DataColumn[T]) withData(data *immutable.List[any]) *DataColumn[T] {
	return &DataColumn[T]{
		name:     c.name,
		dataType: c.dataType,
		data:     data,
		compare:  c.compare,
	}
}

// cloneItem copies a []byte value so column storage never aliases a caller's
// buffer. Other element types are values already.
func cloneItem[T Element](v T) T {
	if b, ok := any(v).([]byte); ok && b != nil {
		return any(bytes.Clone(b)).(T)
	}
	return v
}

func cloneValue(v any) any {
	if b, ok := v.([]byte); ok && b != nil {
		return bytes.Clone(b)
	}
	return v
}
