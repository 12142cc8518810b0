package timeseries

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVColumns(t *testing.T) {
	csvData := `ds,arima,naive
2020-01-01,0.5,1.0
2020-01-02,-0.25,-1.5
2020-01-03,0.125,2.0`

	pair, err := LoadCSVColumns(strings.NewReader(csvData), DefaultCSVOptions(), "arima", "naive")
	require.NoError(t, err)
	require.Len(t, pair, 2)

	assert.Equal(t, []float64{0.5, -0.25, 0.125}, pair[0].Values)
	assert.Equal(t, []float64{1.0, -1.5, 2.0}, pair[1].Values)
	assert.Equal(t, "arima", pair[0].Name)
	assert.Equal(t, "naive", pair[1].Name)
}

func TestLoadCSVColumnsKeepsRowsAligned(t *testing.T) {
	csvData := `arima,naive
1,10
NA,20
3,NaN
4,40
,50
6,60`

	pair, err := LoadCSVColumns(strings.NewReader(csvData), nil, "arima", "naive")
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 4, 6}, pair[0].Values)
	assert.Equal(t, []float64{10, 40, 60}, pair[1].Values)
}

func TestLoadCSVColumnsRejectsBadCell(t *testing.T) {
	csvData := `arima,naive
1,10
2,abc`

	_, err := LoadCSVColumns(strings.NewReader(csvData), nil, "arima", "naive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), `"naive"`)
}

func TestLoadCSVColumnsMissingColumn(t *testing.T) {
	_, err := LoadCSVColumns(strings.NewReader("a,b\n1,2"), nil, "a", "c")
	assert.ErrorContains(t, err, `column "c" not found`)

	_, err = LoadCSVColumns(strings.NewReader("a,b\n1,2"), nil)
	assert.Error(t, err)
}

func TestLoadCSVColumnsWithFilter(t *testing.T) {
	csvData := `unique_id,ds,e1,e2
A,2020-01-01,1,2
B,2020-01-01,100,200
A,2020-01-02,3,4
B,2020-01-02,300,400`

	opts := DefaultCSVOptions()
	opts.IDColumn = "unique_id"
	opts.IDFilter = "A"
	opts.DateColumn = "ds"

	pair, err := LoadCSVColumns(strings.NewReader(csvData), opts, "e1", "e2")
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 3}, pair[0].Values)
	assert.Equal(t, []float64{2, 4}, pair[1].Values)
	require.Len(t, pair[0].Timestamps, 2)
	assert.Equal(t, 2, pair[0].Timestamps[1].Day())
}

func TestLoadCSVColumnsQuotedAndDelimited(t *testing.T) {
	csvData := `"e1";"e2"
"1.5";"2.5"
"3.5";"4.5"`

	opts := DefaultCSVOptions()
	opts.Delimiter = ';'

	pair, err := LoadCSVColumns(strings.NewReader(csvData), opts, "e1", "e2")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3.5}, pair[0].Values)
	assert.Equal(t, []float64{2.5, 4.5}, pair[1].Values)
}

func TestLoadCSVColumnsWithoutHeader(t *testing.T) {
	csvData := `# exported errors
2020-01-01,1,2
2020-01-02,3,4`

	opts := DefaultCSVOptions()
	opts.HasHeader = false
	opts.SkipRows = 1

	pair, err := LoadCSVColumns(strings.NewReader(csvData), opts, "1", "2")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, pair[0].Values)
	assert.Equal(t, []float64{2, 4}, pair[1].Values)

	_, err = LoadCSVColumns(strings.NewReader(csvData), opts, "e1")
	assert.Error(t, err)
}

func TestLoadCSVColumnsNoData(t *testing.T) {
	_, err := LoadCSVColumns(strings.NewReader("e1,e2\nNA,1\n"), nil, "e1", "e2")
	assert.ErrorContains(t, err, "no valid data")
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.csv")
	require.NoError(t, os.WriteFile(path, []byte("e1,e2\n1,2\n3,4\n"), 0o644))

	pair, err := LoadCSV(path, nil, "e1", "e2")
	require.NoError(t, err)
	assert.Equal(t, 2, pair[0].Len())

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), nil, "e1")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf,
		&Series{Values: []float64{1, -0.5}, Name: "loss"},
		&Series{Values: []float64{2, 3}},
	)
	require.NoError(t, err)
	assert.Equal(t, "loss,y2\n1,2\n-0.5,3\n", strings.ReplaceAll(buf.String(), "\r", ""))

	// Round trip through the loader.
	pair, err := LoadCSVColumns(&buf, nil, "loss", "y2")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -0.5}, pair[0].Values)
}

func TestWriteCSVLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, New([]float64{1, 2}), New([]float64{1}))
	assert.Error(t, err)
	assert.Error(t, WriteCSV(&buf))
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	assert.Equal(t, "2006-01-02", opts.DateFormat)
	assert.True(t, opts.HasHeader)
	assert.Equal(t, ',', opts.Delimiter)
}
