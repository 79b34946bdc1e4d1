package models

// Row maps a column name to its generated value. Values are int, float64,
// string or bool.
type Row map[string]any

// Dataset is the generated sample for one table. Columns keeps the catalog
// order, which a Row map cannot.
type Dataset struct {
	Table   string   `json:"table"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Values returns the row's values in the dataset's column order.
func (d Dataset) Values(row Row) []any {
	values := make([]any, len(d.Columns))
	for i, col := range d.Columns {
		values[i] = row[col]
	}
	return values
}
