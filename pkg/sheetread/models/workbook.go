package models

// WorkbookInfo lists the sheets of a workbook.
type WorkbookInfo struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty"`
	// Engine is the name of the engine that opened the workbook.
	Engine string `json:"engine"`
	// Sheets lists every sheet in workbook order.
	Sheets []SheetInfo `json:"sheets"`
}
