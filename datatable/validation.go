package datatable

import (
	"fmt"
	"sort"
	"strings"
)

// validateColumns checks the two ColumnSet invariants in order: unique
// names, then equal lengths.
func validateColumns(table string, columns []Column) error {
	if err := validateColumnNames(table, columns); err != nil {
		return err
	}
	return validateColumnLengths(table, columns)
}

func validateColumnNames(table string, columns []Column) error {
	seen := make(map[string]int, len(columns))
	var dupes []string

	for _, col := range columns {
		seen[col.Name()]++
		if seen[col.Name()] == 2 {
			dupes = append(dupes, col.Name())
		}
	}

	if len(dupes) == 0 {
		return nil
	}
	return &Error{
		Kind:   ErrDuplicateColumnNames,
		Op:     "table.build",
		Table:  table,
		Index:  NoIndex,
		Reason: fmt.Sprintf("columns contain duplicate names: %s", strings.Join(dupes, ", ")),
	}
}

func validateColumnLengths(table string, columns []Column) error {
	lengths := make(map[int][]string)
	for _, col := range columns {
		lengths[col.Len()] = append(lengths[col.Len()], col.Name())
	}

	if len(lengths) <= 1 {
		return nil
	}

	keys := make([]int, 0, len(lengths))
	for n := range lengths {
		keys = append(keys, n)
	}
	sort.Ints(keys)

	parts := make([]string, 0, len(keys))
	for _, n := range keys {
		parts = append(parts, fmt.Sprintf("%d: [%s]", n, strings.Join(lengths[n], ", ")))
	}

	return &Error{
		Kind:   ErrUnevenColumnLengths,
		Op:     "table.build",
		Table:  table,
		Index:  NoIndex,
		Reason: fmt.Sprintf("columns have different lengths: %s", strings.Join(parts, "; ")),
	}
}
