package datatable

// Builder accumulates columns and validates them in a single Build call.
type Builder struct {
	name    string
	columns []Column
	opts    []Option
}

// NewBuilder starts a table named name.
func NewBuilder(name string, opts ...Option) *Builder {
	return &Builder{name: name, opts: opts}
}

// With appends a column, e.g. b.With(NewColumn("IntCol", 3, 5, 9)).
func (b *Builder) With(col Column) *Builder {
	notNil(col == nil || col.isNil(), "column")
	b.columns = append(b.columns, col)
	return b
}

// Build validates the accumulated columns and returns the table.
func (b *Builder) Build() (*Table, error) {
	return Build(b.name, b.columns, b.opts...)
}
