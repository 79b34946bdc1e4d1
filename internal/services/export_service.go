package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sampledata/internal/models"
)

// FileName is the attachment name used for a table's CSV export.
func FileName(table string) string {
	return fmt.Sprintf("%s_sample_data.csv", table)
}

// WriteCSV writes a header of the dataset's columns followed by one record
// per row. Quoting follows encoding/csv.
func WriteCSV(w io.Writer, ds models.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ds.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(ds.Columns))
	for i, row := range ds.Rows {
		for j, v := range ds.Values(row) {
			record[j] = FormatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// FormatValue renders a generated value as CSV text. Booleans are written as
// True/False and floats always carry a decimal point, so 3.0 stays "3.0".
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		if !strings.ContainsAny(s, ".NI") { // NaN, +Inf, -Inf
			s += ".0"
		}
		return s
	case bool:
		if t {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(t)
	}
}
