// Package sheetread reads one sheet of a spreadsheet workbook into a
// row-major table of normalized cell values.
package sheetread

import (
	"github.com/sirupsen/logrus"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/engine"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/parser"
)

// Options configures how a workbook is opened and which sheet is read.
type Options struct {
	// Engine is the registry name of the engine opening the workbook.
	// If empty, the excelize engine is used.
	Engine string
	// EngineOptions are passed to the engine's open function.
	EngineOptions engine.Options
	// SheetName selects a sheet by name. It takes precedence over SheetIndex.
	SheetName string
	// SheetIndex selects a worksheet by position among the worksheets.
	// If nil and SheetName is empty, the first worksheet is read.
	SheetIndex *int
	// RowLimit stops reading after this many rows. If nil, every row is read.
	RowLimit *int
	// Workers is the number of goroutines normalizing rows.
	Workers int
	// Logger receives debug logs. If nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default read options.
func DefaultOptions() Options {
	return Options{
		Engine:     parser.ExcelizeEngine,
		SheetIndex: Int(0),
	}
}

// Int returns a pointer to n, for SheetIndex and RowLimit.
func Int(n int) *int {
	return &n
}

func (o Options) engineName() string {
	if o.Engine == "" {
		return parser.ExcelizeEngine
	}
	return o.Engine
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}
