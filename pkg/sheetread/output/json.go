package output

import (
	"github.com/goccy/go-json"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/models"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/table"
)

type sheetJSON struct {
	BookName  string  `json:"book_name,omitempty"`
	SheetName string  `json:"sheet_name"`
	Rows      [][]any `json:"rows"`
}

// ToJSON encodes a sheet. Rows keep their source lengths.
func ToJSON(sd *models.SheetData, pretty bool) ([]byte, error) {
	return Marshal(sheetJSON{
		BookName:  sd.BookName,
		SheetName: sd.SheetName,
		Rows:      jsonRows(sd.Rows),
	}, pretty)
}

// Marshal encodes v as JSON, indented when pretty is set.
func Marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func jsonRows(t table.Table) [][]any {
	rows := make([][]any, len(t))
	for i, row := range t {
		out := make([]any, len(row))
		for j, v := range row {
			out[j] = jsonValue(v)
		}
		rows[i] = out
	}
	return rows
}
