package web

// Table is a static table rendered by the "Table" component.
type Table struct {
	TableID string
	Columns []string
	Rows    [][]string
}

func NewTable(id string, columns ...string) *Table {
	return &Table{
		TableID: id,
		Columns: columns,
	}
}

// AddRow appends a row, padding or truncating it to the column count.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
	return t
}
