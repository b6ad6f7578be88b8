// Package models defines data structures shared by the sheetread packages.
package models

import "github.com/ukaji3/sheetread-go/pkg/sheetread/table"

// SheetType is the kind of sheet part backing a workbook entry.
type SheetType string

const (
	// WorkSheet is a regular grid of cells.
	WorkSheet SheetType = "worksheet"
	// ChartSheet holds a single chart and no cells.
	ChartSheet SheetType = "chartsheet"
	// DialogSheet is a legacy Excel 5 dialog.
	DialogSheet SheetType = "dialogsheet"
	// MacroSheet is a legacy Excel 4 macro sheet.
	MacroSheet SheetType = "macrosheet"
)

// Visibility is the visibility state of a sheet tab.
type Visibility string

const (
	Visible    Visibility = "visible"
	Hidden     Visibility = "hidden"
	VeryHidden Visibility = "veryhidden"
)

// SheetInfo describes one sheet of a workbook.
type SheetInfo struct {
	// Name is the sheet tab name.
	Name string `json:"name"`
	// Type is the kind of sheet.
	Type SheetType `json:"type"`
	// Visible is the tab visibility state.
	Visible Visibility `json:"visible"`
}

// IsWorkSheet reports whether the sheet holds cells.
func (s SheetInfo) IsWorkSheet() bool {
	return s.Type == WorkSheet
}

// SheetData is a materialized sheet together with where it came from.
type SheetData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty"`
	// SheetName is the name of the materialized sheet.
	SheetName string `json:"sheet_name"`
	// Rows contains the normalized rows.
	Rows table.Table `json:"rows"`
}
