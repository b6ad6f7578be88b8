package parser

import (
	"time"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/cell"
)

// isoLayouts are the layouts of ISO 8601 date cells (t="d").
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseISODate parses an ISO 8601 cell value. A value without a time part
// is a date; unparsable text stays a string.
func parseISODate(v string) cell.Raw {
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, v)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			return cell.DateOf(t)
		}
		return cell.DateTime{Time: t}
	}
	return cell.String(v)
}

func isEmpty(r cell.Raw) bool {
	return r == nil || r == cell.Empty
}

func isEmptyRow(row []cell.Raw) bool {
	for _, r := range row {
		if !isEmpty(r) {
			return false
		}
	}
	return true
}

// padRow extends row with empty cells up to width.
func padRow(row []cell.Raw, width int) []cell.Raw {
	for len(row) < width {
		row = append(row, cell.Empty)
	}
	return row
}

// dropColumns removes the first n cells of row.
func dropColumns(row []cell.Raw, n int) []cell.Raw {
	if n <= 0 {
		return row
	}
	if n >= len(row) {
		return row[:0]
	}
	return row[n:]
}

// dataBounds finds the 0-based bounding box of non-empty cells. minRow is
// -1 when every cell is empty.
func dataBounds(rows [][]cell.Raw) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, r := range row {
			if isEmpty(r) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
