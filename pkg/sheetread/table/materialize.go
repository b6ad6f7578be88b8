package table

import (
	"github.com/ukaji3/sheetread-go/pkg/sheetread/cell"
	"golang.org/x/sync/errgroup"
)

// minRowsPerWorker keeps tiny partitions from costing more than they save.
const minRowsPerWorker = 64

// Materialize reads src with the empty area retained and normalizes every
// cell. It stops pulling rows as soon as opts.RowLimit rows were produced.
//
// Errors from src are returned as is, without a partial table.
func Materialize(src Source, opts Options) (Table, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Workers > 1 {
		return materializeParallel(src, opts)
	}

	t := Table{}
	for raw, err := range src.Rows(true) {
		if err != nil {
			return nil, err
		}
		t = append(t, cell.NormalizeRow(raw))
		if opts.reached(len(t)) {
			break
		}
	}
	return t, nil
}

// materializeParallel pulls the raw rows first, then normalizes contiguous
// partitions concurrently. Each partition writes only its own slots, so the
// output keeps source order.
func materializeParallel(src Source, opts Options) (Table, error) {
	var raws [][]cell.Raw
	for raw, err := range src.Rows(true) {
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
		if opts.reached(len(raws)) {
			break
		}
	}

	t := make(Table, len(raws))
	chunk := max(minRowsPerWorker, (len(raws)+opts.Workers-1)/opts.Workers)

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for start := 0; start < len(raws); start += chunk {
		end := min(start+chunk, len(raws))
		g.Go(func() error {
			for i := start; i < end; i++ {
				t[i] = cell.NormalizeRow(raws[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}
