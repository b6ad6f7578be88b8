package parser

import (
	"archive/zip"
	"bytes"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/cell"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/engine"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/models"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/numfmt"
)

// ExcelizeEngine is the registry name of the excelize backed engine.
const ExcelizeEngine = "excelize"

type excelizeWorkbook struct {
	f        *excelize.File
	date1904 bool
	sheets   []models.SheetInfo
	// kinds caches the number format kind per style id.
	kinds map[int]numfmt.Kind
}

type excelizeSheet struct {
	wb   *excelizeWorkbook
	name string
}

// OpenExcelize opens an xlsx, xlsm, xltx or xltm workbook with excelize.
func OpenExcelize(r io.Reader, opts engine.Options) (engine.Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{
		Password:       opts.Password,
		UnzipSizeLimit: opts.UnzipSizeLimit,
	})
	if err != nil {
		return nil, err
	}

	wb := &excelizeWorkbook{
		f:     f,
		kinds: make(map[int]numfmt.Kind),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}

	// Encrypted workbooks are not zip packages; their sheets are listed
	// from the decrypted file instead.
	if zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
		wb.sheets = readSheetInfos(zr)
	}
	if wb.sheets == nil {
		wb.sheets = sheetInfosFromFile(f)
	}

	return wb, nil
}

func sheetInfosFromFile(f *excelize.File) []models.SheetInfo {
	names := f.GetSheetList()
	infos := make([]models.SheetInfo, 0, len(names))
	for _, name := range names {
		vis := models.Visible
		if visible, err := f.GetSheetVisible(name); err == nil && !visible {
			vis = models.Hidden
		}
		infos = append(infos, models.SheetInfo{Name: name, Type: models.WorkSheet, Visible: vis})
	}
	return infos
}

func (wb *excelizeWorkbook) Sheets() []models.SheetInfo {
	return slices.Clone(wb.sheets)
}

func (wb *excelizeWorkbook) SheetByName(name string) (engine.Sheet, error) {
	idx, err := wb.f.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, excelize.ErrSheetNotExist{SheetName: name}
	}
	return &excelizeSheet{wb: wb, name: name}, nil
}

func (wb *excelizeWorkbook) Close() error {
	return wb.f.Close()
}

// kindOf returns the number format kind applied to a cell.
func (wb *excelizeWorkbook) kindOf(sheet, ref string) (numfmt.Kind, error) {
	styleID, err := wb.f.GetCellStyle(sheet, ref)
	if err != nil {
		return numfmt.General, err
	}
	if kind, ok := wb.kinds[styleID]; ok {
		return kind, nil
	}

	style, err := wb.f.GetStyle(styleID)
	if err != nil {
		return numfmt.General, err
	}
	kind := numfmt.Builtin(style.NumFmt)
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		kind = numfmt.Classify(*style.CustomNumFmt)
	}
	wb.kinds[styleID] = kind
	return kind, nil
}

func (s *excelizeSheet) Name() string {
	return s.name
}

// usedArea returns the sheet's declared used range, if it has one.
func (s *excelizeSheet) usedArea() (models.Area, bool) {
	ref, err := s.wb.f.GetSheetDimension(s.name)
	if err != nil || ref == "" {
		return models.Area{}, false
	}
	area, err := models.ParseArea(ref)
	if err != nil {
		return models.Area{}, false
	}
	return area, true
}

func (s *excelizeSheet) Rows(retainEmptyArea bool) iter.Seq2[[]cell.Raw, error] {
	return func(yield func([]cell.Raw, error) bool) {
		area, hasArea := s.usedArea()

		rows, err := s.wb.f.Rows(s.name)
		if err != nil {
			yield(nil, err)
			return
		}
		defer rows.Close()

		rowNum := 0
		started := false
		for rows.Next() {
			rowNum++
			cols, err := rows.Columns(excelize.Options{RawCellValue: true})
			if err != nil {
				yield(nil, err)
				return
			}
			raw, err := s.convertRow(rowNum, cols)
			if err != nil {
				yield(nil, err)
				return
			}

			if retainEmptyArea {
				if hasArea {
					raw = padRow(raw, area.Width())
				}
			} else {
				if hasArea {
					if rowNum < area.R1 {
						continue
					}
					raw = dropColumns(raw, area.C1-1)
				}
				if !started && isEmptyRow(raw) {
					continue
				}
				started = true
			}

			if !yield(raw, nil) {
				return
			}
		}
		if err := rows.Error(); err != nil {
			yield(nil, err)
		}
	}
}

func (s *excelizeSheet) convertRow(rowNum int, cols []string) ([]cell.Raw, error) {
	raw := make([]cell.Raw, len(cols))
	for i, v := range cols {
		if v == "" {
			raw[i] = cell.Empty
			continue
		}
		ref, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return nil, err
		}
		if raw[i], err = s.convert(ref, v); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

// convert types one non-empty stored value.
func (s *excelizeSheet) convert(ref, v string) (cell.Raw, error) {
	typ, err := s.wb.f.GetCellType(s.name, ref)
	if err != nil {
		return nil, err
	}

	switch typ {
	case excelize.CellTypeBool:
		return cell.Bool(v == "1" || strings.EqualFold(v, "true")), nil
	case excelize.CellTypeDate:
		return parseISODate(v), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return cell.String(v), nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return cell.String(v), nil
	}
	kind, err := s.wb.kindOf(s.name, ref)
	if err != nil {
		return nil, err
	}
	return numfmt.ToRaw(f, kind, s.wb.date1904), nil
}
