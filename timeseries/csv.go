package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn string // Column name for dates (optional)
	IDColumn   string // Column name for series ID (optional, for filtering)
	IDFilter   string // Value to filter by ID column
	DateFormat string // Date format (default: "2006-01-02")
	HasHeader  bool   // Whether CSV has header row (default: true)
	Delimiter  rune   // Field delimiter (default: ',')
	SkipRows   int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		HasHeader:  true,
		Delimiter:  ',',
	}
}

// LoadCSV loads one series per requested column from a CSV file.
func LoadCSV(filename string, opts *CSVOptions, columns ...string) ([]*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVColumns(file, opts, columns...)
}

// LoadCSVColumns reads the requested value columns row by row so that the
// returned series stay aligned. A row with a missing value in any requested
// column, or a row too short to hold it, is dropped for every column.
// Without a header, columns are addressed by their zero-based index.
func LoadCSVColumns(r io.Reader, opts *CSVOptions, columns ...string) ([]*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return columnsFromRows(rows, opts, columns)
}

// WriteCSV writes the series as aligned columns with a header row made of
// the series names. All series must have the same length.
func WriteCSV(w io.Writer, series ...*Series) error {
	if len(series) == 0 {
		return errors.New("no series to write")
	}
	n := series[0].Len()
	header := make([]string, len(series))
	for i, s := range series {
		if s.Len() != n {
			return fmt.Errorf("series %q has %d values, expected %d", s.Name, s.Len(), n)
		}
		header[i] = s.Name
		if header[i] == "" {
			header[i] = "y" + strconv.Itoa(i+1)
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, len(series))
	for row := 0; row < n; row++ {
		for i, s := range series {
			record[i] = strconv.FormatFloat(s.Values[row], 'f', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// columnsFromRows turns raw text rows (CSV or worksheet) into aligned series.
func columnsFromRows(rows [][]string, opts *CSVOptions, columns []string) ([]*Series, error) {
	if len(columns) == 0 {
		return nil, errors.New("no value columns requested")
	}

	dateIdx, idIdx := -1, -1
	valueIdx := make([]int, len(columns))

	if opts.HasHeader {
		if len(rows) == 0 {
			return nil, errors.New("missing header row")
		}
		index := make(map[string]int, len(rows[0]))
		for i, h := range rows[0] {
			index[cleanCell(h)] = i
		}
		rows = rows[1:]

		for i, c := range columns {
			idx, ok := index[c]
			if !ok {
				return nil, fmt.Errorf("column %q not found", c)
			}
			valueIdx[i] = idx
		}
		if opts.DateColumn != "" {
			if idx, ok := index[opts.DateColumn]; ok {
				dateIdx = idx
			}
		}
		if opts.IDColumn != "" {
			idx, ok := index[opts.IDColumn]
			if !ok {
				return nil, fmt.Errorf("id column %q not found", opts.IDColumn)
			}
			idIdx = idx
		}
	} else {
		for i, c := range columns {
			idx, err := strconv.Atoi(c)
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("column %q must be a zero-based index when there is no header", c)
			}
			valueIdx[i] = idx
		}
	}

	values := make([][]float64, len(columns))
	var timestamps []time.Time
	datesOK := dateIdx >= 0

	row := make([]float64, len(columns))
	for r, record := range rows {
		line := r + 1
		if opts.HasHeader {
			line++
		}

		if opts.IDFilter != "" && idIdx >= 0 {
			if idIdx >= len(record) || cleanCell(record[idIdx]) != opts.IDFilter {
				continue
			}
		}

		missing := false
		for i, idx := range valueIdx {
			if idx >= len(record) {
				missing = true
				break
			}
			cell := cleanCell(record[idx])
			if isMissing(cell) {
				missing = true
				break
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: column %q: cannot parse %q as a number", line, columns[i], cell)
			}
			row[i] = v
		}
		if missing {
			continue
		}

		for i := range columns {
			values[i] = append(values[i], row[i])
		}

		if datesOK {
			ts, ok := parseDate(record, dateIdx, opts.DateFormat)
			if !ok {
				datesOK = false
				timestamps = nil
			} else {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values[0]) == 0 {
		return nil, errors.New("no valid data found")
	}

	result := make([]*Series, len(columns))
	for i, c := range columns {
		s := &Series{Values: values[i], Name: c}
		if datesOK {
			s.Timestamps = timestamps
		}
		result[i] = s
	}
	return result, nil
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func isMissing(s string) bool {
	switch s {
	case "", "NA", "NaN", "nan", "null":
		return true
	}
	return false
}

func parseDate(record []string, idx int, layout string) (time.Time, bool) {
	if idx >= len(record) {
		return time.Time{}, false
	}
	dateStr := cleanCell(record[idx])
	formats := []string{
		layout,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006/01/02",
		"01/02/2006",
		"02-Jan-2006",
		"2006",
	}
	for _, f := range formats {
		if f == "" {
			continue
		}
		if ts, err := time.Parse(f, dateStr); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
