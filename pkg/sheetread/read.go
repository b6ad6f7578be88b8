package sheetread

import "github.com/ukaji3/sheetread-go/pkg/sheetread/models"

// Read opens the workbook at path, reads the sheet selected by opts and
// closes the workbook.
func Read(path string, opts Options) (*models.SheetData, error) {
	r, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.ReadSheet()
}
