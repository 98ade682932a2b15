// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"contascan/cli/internal/models"
)

func buildTestXLSX(t *testing.T, sheets map[string][][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestExtractLocalBytes(t *testing.T) {
	content := buildTestXLSX(t, map[string][][]any{
		"Ventas": {
			{"Producto", "Total", "Nota"},
			{"A", 8505, "enero"},
			{"B", 120, nil},
			{"C", 33.5, "ajuste"},
		},
	})

	wb, err := ExtractLocalBytes("ventas.xlsx", content)
	require.NoError(t, err)

	assert.Equal(t, "ventas.xlsx", wb.Filename)
	require.Len(t, wb.Sheets, 1)

	sh := wb.Sheets[0]
	assert.Equal(t, "Ventas", sh.SheetName)
	assert.Equal(t, []string{"Producto", "Total", "Nota"}, sh.Columns)
	assert.Equal(t, [2]int{3, 3}, sh.Shape)
	require.Len(t, sh.Rows, 3)

	assert.Equal(t, "A", sh.Rows[0]["Producto"])
	assert.Equal(t, float64(8505), sh.Rows[0]["Total"])
	assert.Nil(t, sh.Rows[1]["Nota"])

	assert.True(t, sh.IsNumeric("Total"))
	assert.False(t, sh.IsNumeric("Producto"))
}

func TestExtractLocalRejectsGarbage(t *testing.T) {
	_, err := ExtractLocalBytes("notes.xlsx", []byte("this is not a zip archive"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes.xlsx")
}

func TestBuildSheetBlankHeaders(t *testing.T) {
	sh := buildSheet("Hoja1", [][]string{
		{"Producto", "", "Total"},
		{"A", "x", "10"},
	})

	assert.Equal(t, []string{"Producto", "Column_2", "Total"}, sh.Columns)
	assert.Equal(t, "x", sh.Rows[0]["Column_2"])
}

func TestBuildSheetRaggedRows(t *testing.T) {
	sh := buildSheet("Hoja1", [][]string{
		{"A", "B", "C"},
		{"1", "2"},
	})

	require.Len(t, sh.Rows, 1)
	assert.Equal(t, float64(1), sh.Rows[0]["A"])
	v, present := sh.Rows[0]["C"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestDetectNumericColumnsThreshold(t *testing.T) {
	rows := []models.Row{
		{"Mixed": float64(1)},
		{"Mixed": float64(2)},
		{"Mixed": float64(3)},
		{"Mixed": float64(4)},
		{"Mixed": "n/a"},
	}
	// 4 of 5 parseable is exactly the 0.8 threshold
	assert.Equal(t, []string{"Mixed"}, detectNumericColumns([]string{"Mixed"}, rows))

	rows = append(rows, models.Row{"Mixed": "also text"})
	assert.Empty(t, detectNumericColumns([]string{"Mixed"}, rows))
}

func TestDetectNumericColumnsIgnoresNulls(t *testing.T) {
	rows := []models.Row{
		{"Total": float64(10)},
		{"Total": nil},
		{"Total": nil},
	}
	assert.Equal(t, []string{"Total"}, detectNumericColumns([]string{"Total"}, rows))

	empty := []models.Row{{"Total": nil}}
	assert.Empty(t, detectNumericColumns([]string{"Total"}, empty))
}
