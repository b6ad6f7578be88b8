// Package engine defines the contract between workbook engines and the
// sheet materializer, and the registry engines are looked up from.
package engine

import (
	"errors"
	"io"
	"iter"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/cell"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/models"
)

// ErrPasswordUnsupported indicates the engine cannot open encrypted workbooks.
var ErrPasswordUnsupported = errors.New("engine does not support password protected workbooks")

// Workbook is an open workbook.
type Workbook interface {
	// Sheets lists every sheet in workbook order.
	Sheets() []models.SheetInfo
	// SheetByName resolves a sheet. Callers validate the name first.
	SheetByName(name string) (Sheet, error)
	// Close releases the workbook.
	Close() error
}

// Sheet is a resolved sheet handle.
type Sheet interface {
	Name() string
	// Rows yields raw rows from A1 through the used range. With
	// retainEmptyArea, empty cells are cell.Empty and every row is padded
	// to the used range's width. Without it, leading empty rows and
	// columns are dropped and rows are not padded.
	Rows(retainEmptyArea bool) iter.Seq2[[]cell.Raw, error]
}

// Options are engine-specific open options.
type Options struct {
	// Password decrypts a protected workbook.
	Password string
	// UnzipSizeLimit caps the unpacked size of the workbook in bytes.
	// Zero keeps the engine's default.
	UnzipSizeLimit int64
}

// OpenFunc opens a workbook from a stream.
type OpenFunc func(r io.Reader, opts Options) (Workbook, error)
