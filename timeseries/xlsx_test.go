package timeseries

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newWorkbook(t *testing.T, sheet string, rows [][]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	return f
}

func TestLoadXLSXColumns(t *testing.T) {
	f := newWorkbook(t, "Sheet1", [][]interface{}{
		{"ds", "arima", "naive"},
		{"2020-01-01", 0.5, 1.25},
		{"2020-01-02", -0.75, nil},
		{"2020-01-03", 2, -3},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	pair, err := LoadXLSXColumns(buf, nil, "arima", "naive")
	require.NoError(t, err)
	require.Len(t, pair, 2)

	// Row 3 has an empty cell and is dropped for both columns.
	assert.Equal(t, []float64{0.5, 2}, pair[0].Values)
	assert.Equal(t, []float64{1.25, -3}, pair[1].Values)
}

func TestLoadXLSXNamedSheet(t *testing.T) {
	f := newWorkbook(t, "errors", [][]interface{}{
		{"e1", "e2"},
		{1, 2},
		{3, 4},
	})
	path := filepath.Join(t.TempDir(), "errors.xlsx")
	require.NoError(t, f.SaveAs(path))

	opts := DefaultXLSXOptions()
	opts.Sheet = "errors"

	pair, err := LoadXLSX(path, opts, "e1", "e2")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, pair[0].Values)
	assert.Equal(t, []float64{2, 4}, pair[1].Values)

	opts.Sheet = "missing"
	_, err = LoadXLSX(path, opts, "e1", "e2")
	assert.Error(t, err)
}

func TestLoadXLSXRejectsText(t *testing.T) {
	f := newWorkbook(t, "Sheet1", [][]interface{}{
		{"e1", "e2"},
		{1, "oops"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = LoadXLSXColumns(buf, nil, "e1", "e2")
	assert.ErrorContains(t, err, "cannot parse")
}

func TestLoadXLSXNotAWorkbook(t *testing.T) {
	_, err := LoadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), nil, "e1")
	assert.Error(t, err)
}
