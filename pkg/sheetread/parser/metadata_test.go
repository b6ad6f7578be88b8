package parser

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/models"
)

const testWorkbookXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets>
<sheet name="Data" sheetId="1" r:id="rId1"/>
<sheet name="Chart1" sheetId="2" r:id="rId2"/>
<sheet name="Secret" sheetId="3" state="veryHidden" r:id="rId3"/>
<sheet name="Macro" sheetId="4" state="hidden" r:id="rId4"/>
</sheets>
</workbook>`

const testWorkbookRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/chartsheet" Target="chartsheets/sheet1.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet2.xml"/>
<Relationship Id="rId4" Type="http://schemas.microsoft.com/office/2006/relationships/xlMacrosheet" Target="macrosheets/sheet1.xml"/>
<Relationship Id="rId5" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

func buildZip(t *testing.T, files map[string]string) *zip.Reader {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, body := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return r
}

func TestReadSheetInfos(t *testing.T) {
	r := buildZip(t, map[string]string{
		"xl/workbook.xml":            testWorkbookXML,
		"xl/_rels/workbook.xml.rels": testWorkbookRels,
	})

	infos := readSheetInfos(r)
	assert.Equal(t, []models.SheetInfo{
		{Name: "Data", Type: models.WorkSheet, Visible: models.Visible},
		{Name: "Chart1", Type: models.ChartSheet, Visible: models.Visible},
		{Name: "Secret", Type: models.WorkSheet, Visible: models.VeryHidden},
		{Name: "Macro", Type: models.MacroSheet, Visible: models.Hidden},
	}, infos)
}

func TestReadSheetInfosWithoutRels(t *testing.T) {
	r := buildZip(t, map[string]string{"xl/workbook.xml": testWorkbookXML})

	infos := readSheetInfos(r)
	require.Len(t, infos, 4)
	for _, info := range infos {
		assert.Equal(t, models.WorkSheet, info.Type, info.Name)
	}
}

func TestReadSheetInfosMissingWorkbook(t *testing.T) {
	r := buildZip(t, map[string]string{"docProps/app.xml": "<Properties/>"})
	assert.Nil(t, readSheetInfos(r))
}

func TestSheetTypeOf(t *testing.T) {
	tests := []struct {
		relType  string
		expected models.SheetType
	}{
		{"http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet", models.WorkSheet},
		{"http://purl.oclc.org/ooxml/officeDocument/relationships/chartsheet", models.ChartSheet},
		{"http://schemas.openxmlformats.org/officeDocument/2006/relationships/dialogsheet", models.DialogSheet},
		{"http://schemas.microsoft.com/office/2006/relationships/xlIntlMacrosheet", models.MacroSheet},
		{"", models.WorkSheet},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, sheetTypeOf(tt.relType), tt.relType)
	}
}
