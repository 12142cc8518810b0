package timeseries

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXOptions holds options for worksheet loading.
type XLSXOptions struct {
	Sheet string // Worksheet name (default: first sheet)
	CSVOptions
}

// DefaultXLSXOptions returns default options for worksheet loading.
func DefaultXLSXOptions() *XLSXOptions {
	return &XLSXOptions{CSVOptions: *DefaultCSVOptions()}
}

// LoadXLSX loads one series per requested column from an Excel workbook.
func LoadXLSX(filename string, opts *XLSXOptions, columns ...string) ([]*Series, error) {
	f, err := excelize.OpenFile(filename, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return loadWorkbook(f, opts, columns)
}

// LoadXLSXColumns reads the requested value columns from a workbook stream
// with the same alignment rules as LoadCSVColumns.
func LoadXLSXColumns(r io.Reader, opts *XLSXOptions, columns ...string) ([]*Series, error) {
	f, err := excelize.OpenReader(r, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return loadWorkbook(f, opts, columns)
}

func loadWorkbook(f *excelize.File, opts *XLSXOptions, columns []string) ([]*Series, error) {
	if opts == nil {
		opts = DefaultXLSXOptions()
	}

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if opts.SkipRows > 0 {
		if opts.SkipRows >= len(rows) {
			return nil, errors.New("no valid data found")
		}
		rows = rows[opts.SkipRows:]
	}

	return columnsFromRows(rows, &opts.CSVOptions, columns)
}
