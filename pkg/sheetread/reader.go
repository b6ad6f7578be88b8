package sheetread

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/engine"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/models"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/table"
)

// Reader is an open workbook.
type Reader struct {
	wb       engine.Workbook
	engine   string
	bookName string
	opts     Options
	log      logrus.FieldLogger
}

// Open opens the workbook at path.
func Open(path string, opts Options) (*Reader, error) {
	st, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts.logger().WithFields(logrus.Fields{
		"path": path,
		"size": humanize.Bytes(uint64(st.Size())),
	}).Debug("opening workbook")

	r, err := OpenReader(f, opts)
	if err != nil {
		return nil, err
	}
	r.bookName = filepath.Base(path)
	return r, nil
}

// OpenReader opens a workbook from a stream.
func OpenReader(rd io.Reader, opts Options) (*Reader, error) {
	name := opts.engineName()
	open, ok := engine.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q, registered engines: %s", ErrUnknownEngine, name, strings.Join(engine.Names(), ", "))
	}

	wb, err := open(rd, opts.EngineOptions)
	if err != nil {
		return nil, fmt.Errorf("open workbook with %s engine: %w", name, err)
	}

	return &Reader{
		wb:     wb,
		engine: name,
		opts:   opts,
		log:    opts.logger().WithField("engine", name),
	}, nil
}

// Close releases the workbook.
func (r *Reader) Close() error {
	return r.wb.Close()
}

// Engine returns the name of the engine that opened the workbook.
func (r *Reader) Engine() string {
	return r.engine
}

// Sheets returns the metadata of every sheet, worksheets or not.
func (r *Reader) Sheets() []models.SheetInfo {
	return r.wb.Sheets()
}

// SheetNames returns the names of the worksheets in workbook order.
func (r *Reader) SheetNames() []string {
	var names []string
	for _, s := range r.wb.Sheets() {
		if s.IsWorkSheet() {
			names = append(names, s.Name)
		}
	}
	return names
}

// Info describes the workbook.
func (r *Reader) Info() models.WorkbookInfo {
	return models.WorkbookInfo{
		BookName: r.bookName,
		Engine:   r.engine,
		Sheets:   r.wb.Sheets(),
	}
}

// SheetByName resolves a worksheet by name.
func (r *Reader) SheetByName(name string) (engine.Sheet, error) {
	var info *models.SheetInfo
	for _, s := range r.wb.Sheets() {
		if s.Name == name {
			info = &s
			break
		}
	}
	if info == nil {
		return nil, NewSheetError(name, "resolve", ErrSheetNotFound)
	}
	if !info.IsWorkSheet() {
		return nil, NewSheetError(name, "resolve", fmt.Errorf("%w: %s", ErrNotWorksheet, info.Type))
	}

	s, err := r.wb.SheetByName(name)
	if err != nil {
		return nil, NewSheetError(name, "resolve", err)
	}
	return s, nil
}

// SheetByIndex resolves the worksheet at index among SheetNames.
func (r *Reader) SheetByIndex(index int) (engine.Sheet, error) {
	names := r.SheetNames()
	if index < 0 || index >= len(names) {
		return nil, fmt.Errorf("%w: index %d, workbook has %d worksheets", ErrSheetIndexOutOfRange, index, len(names))
	}
	return r.SheetByName(names[index])
}

// SheetData materializes a resolved sheet. Errors from the sheet are
// returned unchanged.
func (r *Reader) SheetData(s engine.Sheet, rowLimit *int) (table.Table, error) {
	start := time.Now()

	t, err := table.Materialize(s, table.Options{
		RowLimit: rowLimit,
		Workers:  r.opts.Workers,
	})
	if err != nil {
		return nil, err
	}

	r.log.WithFields(logrus.Fields{
		"sheet":   s.Name(),
		"rows":    humanize.Comma(int64(len(t))),
		"elapsed": time.Since(start),
	}).Debug("materialized sheet")
	return t, nil
}

// ReadSheet reads the sheet selected by the reader's options.
func (r *Reader) ReadSheet() (*models.SheetData, error) {
	s, err := r.selectSheet()
	if err != nil {
		return nil, err
	}

	rows, err := r.SheetData(s, r.opts.RowLimit)
	if err != nil {
		return nil, err
	}
	return &models.SheetData{
		BookName:  r.bookName,
		SheetName: s.Name(),
		Rows:      rows,
	}, nil
}

func (r *Reader) selectSheet() (engine.Sheet, error) {
	if r.opts.SheetName != "" {
		return r.SheetByName(r.opts.SheetName)
	}
	index := 0
	if r.opts.SheetIndex != nil {
		index = *r.opts.SheetIndex
	}
	return r.SheetByIndex(index)
}
