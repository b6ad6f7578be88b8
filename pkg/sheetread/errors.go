package sheetread

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/table"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnknownEngine indicates no engine is registered under the requested name.
var ErrUnknownEngine = errors.New("unknown engine")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNotWorksheet indicates the requested sheet holds no cells, such as a chartsheet.
var ErrNotWorksheet = errors.New("sheet is not a worksheet")

// ErrSheetIndexOutOfRange indicates a sheet index past the workbook's worksheets.
var ErrSheetIndexOutOfRange = errors.New("sheet index out of range")

// ErrInvalidArgument indicates invalid read options, such as a non-positive row limit.
var ErrInvalidArgument = table.ErrInvalidArgument

// SheetError annotates an error with the sheet it happened on.
type SheetError struct {
	SheetName string
	Op        string // "resolve", "read"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Op, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, op string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Op:        op,
		Err:       err,
	}
}
