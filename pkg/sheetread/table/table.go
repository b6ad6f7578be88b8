// Package table materializes a sheet's raw rows into a normalized,
// row-major table.
package table

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/cell"
)

// ErrInvalidArgument indicates a caller passed options that can never be valid.
var ErrInvalidArgument = errors.New("invalid argument")

// Table is a materialized sheet: rows in source order, cells in column
// order. Rows may differ in length.
type Table [][]cell.Value

// Width returns the length of the longest row.
func (t Table) Width() int {
	w := 0
	for _, row := range t {
		w = max(w, len(row))
	}
	return w
}

// Source yields a sheet's raw rows. When retainEmptyArea is true, empty
// cells inside the sheet's used range are reported as cell.Empty instead
// of being dropped. A non-nil error ends the sequence.
type Source interface {
	Rows(retainEmptyArea bool) iter.Seq2[[]cell.Raw, error]
}

// Options configures materialization.
type Options struct {
	// RowLimit stops materialization once this many rows were produced.
	// If nil, every row is read. Must be positive when set.
	RowLimit *int
	// Workers is the number of goroutines normalizing rows. Zero or one
	// normalizes on the calling goroutine.
	Workers int
}

// Limit returns a RowLimit value for n.
func Limit(n int) *int {
	return &n
}

func (o Options) validate() error {
	if o.RowLimit != nil && *o.RowLimit <= 0 {
		return fmt.Errorf("%w: row limit must be positive, got %d", ErrInvalidArgument, *o.RowLimit)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidArgument, o.Workers)
	}
	return nil
}

func (o Options) reached(n int) bool {
	return o.RowLimit != nil && n >= *o.RowLimit
}
