package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"

	"github.com/tealeg/xlsx"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/cell"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/engine"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/models"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/numfmt"
)

// TealegEngine is the registry name of the tealeg/xlsx backed engine.
const TealegEngine = "tealeg"

type tealegWorkbook struct {
	f      *xlsx.File
	sheets []models.SheetInfo
}

type tealegSheet struct {
	sheet    *xlsx.Sheet
	date1904 bool
}

// OpenTealeg opens an xlsx workbook with tealeg/xlsx. The whole workbook is
// decoded up front. Encrypted workbooks are not supported.
func OpenTealeg(r io.Reader, opts engine.Options) (engine.Workbook, error) {
	if opts.Password != "" {
		return nil, engine.ErrPasswordUnsupported
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	f, err := xlsx.ReadZipReader(zr)
	if err != nil {
		return nil, err
	}

	wb := &tealegWorkbook{f: f, sheets: readSheetInfos(zr)}
	if wb.sheets == nil {
		for _, s := range f.Sheets {
			vis := models.Visible
			if s.Hidden {
				vis = models.Hidden
			}
			wb.sheets = append(wb.sheets, models.SheetInfo{Name: s.Name, Type: models.WorkSheet, Visible: vis})
		}
	}
	return wb, nil
}

func (wb *tealegWorkbook) Sheets() []models.SheetInfo {
	return slices.Clone(wb.sheets)
}

func (wb *tealegWorkbook) SheetByName(name string) (engine.Sheet, error) {
	s, ok := wb.f.Sheet[name]
	if !ok {
		return nil, fmt.Errorf("sheet %s does not exist", name)
	}
	return &tealegSheet{sheet: s, date1904: wb.f.Date1904}, nil
}

func (wb *tealegWorkbook) Close() error {
	return nil
}

func (s *tealegSheet) Name() string {
	return s.sheet.Name
}

func (s *tealegSheet) Rows(retainEmptyArea bool) iter.Seq2[[]cell.Raw, error] {
	return func(yield func([]cell.Raw, error) bool) {
		rows := make([][]cell.Raw, 0, len(s.sheet.Rows))
		for _, row := range s.sheet.Rows {
			rows = append(rows, s.convertRow(row))
		}

		if retainEmptyArea {
			for _, row := range rows {
				if !yield(padRow(row, s.sheet.MaxCol), nil) {
					return
				}
			}
			return
		}

		minRow, _, minCol, _ := dataBounds(rows)
		if minRow < 0 {
			return
		}
		for _, row := range rows[minRow:] {
			if !yield(dropColumns(row, minCol), nil) {
				return
			}
		}
	}
}

func (s *tealegSheet) convertRow(row *xlsx.Row) []cell.Raw {
	if row == nil {
		return []cell.Raw{}
	}
	raw := make([]cell.Raw, len(row.Cells))
	for i, c := range row.Cells {
		raw[i] = s.convert(c)
	}
	return raw
}

func (s *tealegSheet) convert(c *xlsx.Cell) cell.Raw {
	if c == nil || c.Value == "" {
		return cell.Empty
	}

	switch c.Type() {
	case xlsx.CellTypeBool:
		return cell.Bool(c.Value == "1")
	case xlsx.CellTypeString, xlsx.CellTypeError:
		return cell.String(c.Value)
	}

	// Numeric cells and formulas with a cached number.
	f, err := strconv.ParseFloat(c.Value, 64)
	if err != nil {
		if c.Type() == xlsx.CellTypeNumeric {
			return parseISODate(c.Value)
		}
		return cell.String(c.Value)
	}
	return numfmt.ToRaw(f, numfmt.Classify(c.NumFmt), s.date1904)
}
