package models

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Area represents cell coordinate bounds of a sheet's used range.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Width returns the number of columns from column A through C2.
func (a Area) Width() int {
	return a.C2
}

// ParseArea parses a range reference such as "A1:D10", "$B$2:$C$3" or a
// single cell "A1".
func ParseArea(ref string) (Area, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if ref == "" {
		return Area{}, fmt.Errorf("empty range reference")
	}

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return Area{}, fmt.Errorf("invalid range reference %q", ref)
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Area{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Area{}, err
	}

	return Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}
