package models

// Table is one entry of the sample catalog. Columns are ordered and the
// first column is the table's primary key.
type Table struct {
	Name    string
	Columns []string
}

// PrimaryKey returns the first column, or "" for a table without columns.
func (t Table) PrimaryKey() string {
	if len(t.Columns) == 0 {
		return ""
	}
	return t.Columns[0]
}
