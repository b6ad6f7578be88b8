package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/table"
)

// WriteCSV writes t as CSV. Short rows are padded with empty fields to the
// table's width.
func WriteCSV(w io.Writer, t table.Table) error {
	cw := csv.NewWriter(w)
	width := t.Width()

	record := make([]string, width)
	for _, row := range t {
		clear(record)
		for i, v := range row {
			record[i] = FormatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
