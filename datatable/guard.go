package datatable

import "fmt"

// Guards panic when a required argument is nil. They never surface as
// returned errors.

func notNil(isNil bool, name string) {
	if isNil {
		panic(fmt.Sprintf("datatable: invalid value [nil] for argument %s", name))
	}
}

func columnsNotNil(columns []Column, name string) {
	for _, c := range columns {
		if c == nil || c.isNil() {
			panic(fmt.Sprintf("datatable: invalid value [nil] in collection for argument %s", name))
		}
	}
}
