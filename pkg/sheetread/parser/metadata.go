// Package parser provides the workbook engines backed by spreadsheet
// libraries.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/models"
)

// workbookSheet is a <sheet> entry of xl/workbook.xml.
type workbookSheet struct {
	name  string
	rID   string
	state string
}

// readSheetInfos lists the sheets of an OOXML package in workbook order,
// typed by the relationship that backs each one. It returns nil when the
// package has no readable workbook part.
func readSheetInfos(r *zip.Reader) []models.SheetInfo {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return nil
	}
	sheets := parseWorkbookSheets(workbookXML)
	if len(sheets) == 0 {
		return nil
	}

	relTypes := map[string]string{}
	if relsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels"); err == nil && relsXML != nil {
		relTypes = parseWorkbookRels(relsXML)
	}

	infos := make([]models.SheetInfo, 0, len(sheets))
	for _, s := range sheets {
		infos = append(infos, models.SheetInfo{
			Name:    s.name,
			Type:    sheetTypeOf(relTypes[s.rID]),
			Visible: visibilityOf(s.state),
		})
	}
	return infos
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func parseWorkbookSheets(data []byte) []workbookSheet {
	var result []workbookSheet
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var s workbookSheet
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					s.name = attr.Value
				case "id":
					s.rID = attr.Value
				case "state":
					s.state = attr.Value
				}
			}
			if s.name != "" {
				result = append(result, s)
			}
		}
	}

	return result
}

// parseWorkbookRels maps relationship ids to relationship types.
func parseWorkbookRels(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, relType string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Type":
					relType = attr.Value
				}
			}
			if rID != "" {
				result[rID] = relType
			}
		}
	}

	return result
}

func sheetTypeOf(relType string) models.SheetType {
	relType = strings.ToLower(relType)
	switch {
	case strings.HasSuffix(relType, "/chartsheet"):
		return models.ChartSheet
	case strings.HasSuffix(relType, "/dialogsheet"):
		return models.DialogSheet
	case strings.HasSuffix(relType, "macrosheet"):
		return models.MacroSheet
	default:
		return models.WorkSheet
	}
}

func visibilityOf(state string) models.Visibility {
	switch strings.ToLower(state) {
	case "hidden":
		return models.Hidden
	case "veryhidden":
		return models.VeryHidden
	default:
		return models.Visible
	}
}
