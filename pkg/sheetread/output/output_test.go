package output

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/cell"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/models"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/table"
)

var sample = table.Table{
	{cell.String("name"), cell.String("when"), cell.String("n")},
	{cell.String("a,b"), cell.Timestamp{Time: time.Date(2024, time.January, 15, 13, 30, 0, 0, time.UTC)}, cell.Int(3)},
	{cell.Bool(true), cell.Duration(90 * time.Minute)},
	{cell.Float(math.NaN()), cell.Float(math.Inf(-1)), cell.Float(2.5)},
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value    cell.Value
		expected string
	}{
		{cell.Int(-7), "-7"},
		{cell.Float(0.1), "0.1"},
		{cell.Float(math.Inf(1)), "Infinity"},
		{cell.Empty, ""},
		{cell.Bool(false), "false"},
		{cell.Timestamp{Time: time.Date(2024, time.January, 15, 0, 0, 0, 500000000, time.UTC)}, "2024-01-15T00:00:00.5"},
		{cell.TimeOfDay{Hour: 9, Minute: 5}, "09:05:00"},
		{cell.Duration(90 * time.Minute), "1h30m0s"},
		{nil, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatValue(tt.value))
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(&models.SheetData{BookName: "b.xlsx", SheetName: "S", Rows: sample}, false)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"book_name": "b.xlsx",
		"sheet_name": "S",
		"rows": [
			["name", "when", "n"],
			["a,b", "2024-01-15T13:30:00", 3],
			[true, "1h30m0s"],
			["NaN", "-Infinity", 2.5]
		]
	}`, string(data))
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(&models.SheetData{SheetName: "S", Rows: table.Table{}}, true)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"sheet_name\": \"S\"")
	assert.NotContains(t, string(data), "book_name")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample))

	assert.Equal(t, "name,when,n\n"+
		"\"a,b\",2024-01-15T13:30:00,3\n"+
		"true,1h30m0s,\n"+
		"NaN,-Infinity,2.5\n", buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table.Table{}))
	assert.Empty(t, buf.String())
}
