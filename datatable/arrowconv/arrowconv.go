// Package arrowconv converts tables to and from Apache Arrow records.
//
// Go int columns travel as int64 and decimal columns as utf8; both carry a
// field metadata tag so that FromRecord restores the original column type.
package arrowconv

import (
	"errors"
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/shopspring/decimal"

	"github.com/leengari/datatable/datatable"
)

// TypeKey is the field metadata key recording the source column type.
const TypeKey = "datatable.type"

// ErrUnsupportedType is returned for Arrow types with no column equivalent.
var ErrUnsupportedType = errors.New("unsupported arrow type")

var timestampType = &arrow.TimestampType{Unit: arrow.Nanosecond, TimeZone: "UTC"}

// Schema returns the Arrow schema for t's columns.
func Schema(t datatable.Tabular) *arrow.Schema {
	cols := t.Columns().Slice()
	fields := make([]arrow.Field, len(cols))
	for i, col := range cols {
		fields[i] = fieldFor(col)
	}
	return arrow.NewSchema(fields, nil)
}

func fieldFor(col datatable.Column) arrow.Field {
	f := arrow.Field{Name: col.Name(), Nullable: true}
	switch col.Type() {
	case datatable.TypeString:
		f.Type = arrow.BinaryTypes.String
	case datatable.TypeInt:
		f.Type = arrow.PrimitiveTypes.Int64
		f.Metadata = arrow.NewMetadata([]string{TypeKey}, []string{"int"})
	case datatable.TypeInt64:
		f.Type = arrow.PrimitiveTypes.Int64
	case datatable.TypeFloat:
		f.Type = arrow.PrimitiveTypes.Float64
	case datatable.TypeBool:
		f.Type = arrow.FixedWidthTypes.Boolean
	case datatable.TypeTime:
		f.Type = timestampType
	case datatable.TypeDecimal:
		f.Type = arrow.BinaryTypes.String
		f.Metadata = arrow.NewMetadata([]string{TypeKey}, []string{"decimal"})
	case datatable.TypeBytes:
		f.Type = arrow.BinaryTypes.Binary
	}
	return f
}

// ToRecord copies the rows of t, in t's row order, into a new record. The
// caller must Release the record.
func ToRecord(t datatable.Tabular, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	schema := Schema(t)

	rb := array.NewRecordBuilder(mem, schema)
	defer rb.Release()

	for ci, col := range t.Columns().All() {
		b := rb.Field(ci)
		for _, row := range t.All() {
			v := col.ValueAt(row.Index())
			if v == nil {
				b.AppendNull()
				continue
			}
			if err := appendValue(b, v); err != nil {
				return nil, fmt.Errorf("column %s: %w", col.Name(), err)
			}
		}
	}
	return rb.NewRecord(), nil
}

func appendValue(b array.Builder, v any) error {
	switch v := v.(type) {
	case string:
		b.(*array.StringBuilder).Append(v)
	case int:
		b.(*array.Int64Builder).Append(int64(v))
	case int64:
		b.(*array.Int64Builder).Append(v)
	case float64:
		b.(*array.Float64Builder).Append(v)
	case bool:
		b.(*array.BooleanBuilder).Append(v)
	case time.Time:
		b.(*array.TimestampBuilder).Append(arrow.Timestamp(v.UnixNano()))
	case decimal.Decimal:
		b.(*array.StringBuilder).Append(v.String())
	case []byte:
		b.(*array.BinaryBuilder).Append(v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return nil
}

// FromRecord builds a table named name from rec. Nulls are preserved.
func FromRecord(name string, rec arrow.Record, opts ...datatable.Option) (*datatable.Table, error) {
	schema := rec.Schema()
	cols := make([]datatable.Column, 0, rec.NumCols())
	for i, arr := range rec.Columns() {
		col, err := columnFrom(schema.Field(i), arr)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", schema.Field(i).Name, err)
		}
		cols = append(cols, col)
	}
	return datatable.Build(name, cols, opts...)
}

func columnFrom(f arrow.Field, arr arrow.Array) (datatable.Column, error) {
	tag := ""
	if idx := f.Metadata.FindKey(TypeKey); idx >= 0 {
		tag = f.Metadata.Values()[idx]
	}

	switch a := arr.(type) {
	case *array.String:
		if tag == "decimal" {
			return decimalColumn(f.Name, a)
		}
		return column(datatable.ColumnFromValues[string](f.Name, collect(a, a.Value)...))
	case *array.Int64:
		if tag == "int" {
			return column(datatable.ColumnFromValues[int](f.Name, collect(a, func(i int) int { return int(a.Value(i)) })...))
		}
		return column(datatable.ColumnFromValues[int64](f.Name, collect(a, a.Value)...))
	case *array.Float64:
		return column(datatable.ColumnFromValues[float64](f.Name, collect(a, a.Value)...))
	case *array.Boolean:
		return column(datatable.ColumnFromValues[bool](f.Name, collect(a, a.Value)...))
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return column(datatable.ColumnFromValues[time.Time](f.Name, collect(a, func(i int) time.Time {
			return a.Value(i).ToTime(unit)
		})...))
	case *array.Binary:
		return column(datatable.ColumnFromValues[[]byte](f.Name, collect(a, func(i int) []byte {
			v := a.Value(i)
			out := make([]byte, len(v))
			copy(out, v)
			return out
		})...))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, arr.DataType())
	}
}

func decimalColumn(name string, a *array.String) (datatable.Column, error) {
	values := make([]any, a.Len())
	for i := range values {
		if a.IsNull(i) {
			continue
		}
		d, err := decimal.NewFromString(a.Value(i))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		values[i] = d
	}
	return column(datatable.ColumnFromValues[decimal.Decimal](name, values...))
}

func column[T datatable.Element](c *datatable.DataColumn[T], err error) (datatable.Column, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

// collect reads every slot of arr through value, leaving nil for nulls.
func collect[T any](arr arrow.Array, value func(int) T) []any {
	out := make([]any, arr.Len())
	for i := range out {
		if !arr.IsNull(i) {
			out[i] = value(i)
		}
	}
	return out
}
