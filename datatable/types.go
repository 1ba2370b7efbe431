// Package datatable provides an immutable, typed, columnar table.
//
// A Table is built once from a set of Columns and is never modified
// afterwards. Every structural change (adding a column, replacing a row,
// removing a row) returns a new Table that shares unmodified column storage
// with the original. Views select and reorder rows of a Table without
// copying column data, and can be materialized back into a Table.
package datatable

import (
	"cmp"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DataType identifies the element type stored in a column.
type DataType int

const (
	// TypeString holds string values.
	TypeString DataType = iota
	// TypeInt holds int values.
	TypeInt
	// TypeInt64 holds int64 values.
	TypeInt64
	// TypeFloat holds float64 values.
	TypeFloat
	// TypeBool holds bool values.
	TypeBool
	// TypeTime holds time.Time values.
	TypeTime
	// TypeDecimal holds decimal.Decimal values.
	TypeDecimal
	// TypeBytes holds []byte values. Bytes columns have no natural ordering.
	TypeBytes
)

// String returns the string representation of a DataType.
func (dt DataType) String() string {
	switch dt {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeInt64:
		return "Int64"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	case TypeTime:
		return "Time"
	case TypeDecimal:
		return "Decimal"
	case TypeBytes:
		return "Bytes"
	default:
		return fmt.Sprintf("Unknown(%d)", dt)
	}
}

// Comparable reports whether values of this type have a total ordering.
func (dt DataType) Comparable() bool {
	return dt != TypeBytes
}

// Element is the closed set of Go types a column can hold.
type Element interface {
	string | int | int64 | float64 | bool | time.Time | decimal.Decimal | []byte
}

// TypeOf returns the DataType for the element type T.
func TypeOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case string:
		return TypeString
	case int:
		return TypeInt
	case int64:
		return TypeInt64
	case float64:
		return TypeFloat
	case bool:
		return TypeBool
	case time.Time:
		return TypeTime
	case decimal.Decimal:
		return TypeDecimal
	default:
		return TypeBytes
	}
}

// comparatorFor returns the natural ordering for T, or nil when T has none.
func comparatorFor[T Element]() func(a, b T) int {
	var zero T
	switch any(zero).(type) {
	case string:
		return func(a, b T) int { return cmp.Compare(any(a).(string), any(b).(string)) }
	case int:
		return func(a, b T) int { return cmp.Compare(any(a).(int), any(b).(int)) }
	case int64:
		return func(a, b T) int { return cmp.Compare(any(a).(int64), any(b).(int64)) }
	case float64:
		return func(a, b T) int { return cmp.Compare(any(a).(float64), any(b).(float64)) }
	case bool:
		return func(a, b T) int { return compareBool(any(a).(bool), any(b).(bool)) }
	case time.Time:
		return func(a, b T) int { return any(a).(time.Time).Compare(any(b).(time.Time)) }
	case decimal.Decimal:
		return func(a, b T) int { return any(a).(decimal.Decimal).Cmp(any(b).(decimal.Decimal)) }
	default:
		return nil
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
