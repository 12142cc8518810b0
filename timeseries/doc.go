// Package timeseries provides the Series type and loaders for forecast errors.
//
// A Series holds one ordered sequence of values, typically the errors of a
// single forecasting method over an evaluation period.
//
// # Creating a Series
//
//	errors := timeseries.New([]float64{0.4, -1.2, 0.3, 0.9})
//	if err := errors.Validate(); err != nil {
//	    // NaN or Inf somewhere in the data
//	}
//
// # Loading Error Columns
//
// Errors of competing methods usually sit side by side in one file. The
// loaders read several columns at once and keep the rows aligned: a row
// with a missing value in any requested column is dropped for all of them.
//
//	pair, err := timeseries.LoadCSV("errors.csv", nil, "arima", "ets")
//
//	// Excel workbooks, first sheet by default
//	pair, err := timeseries.LoadXLSX("errors.xlsx", nil, "arima", "ets")
//
//	// Filter a long-format file by id
//	opts := timeseries.DefaultCSVOptions()
//	opts.IDColumn, opts.IDFilter = "unique_id", "store_17"
//	pair, err := timeseries.LoadCSV("errors.csv", opts, "arima", "ets")
//
// # Summary Statistics
//
//	mean := series.Mean()
//	std := series.Std()
//	median := series.Median()
//	p90 := series.Percentile(90)
//
// # Writing
//
// WriteCSV writes aligned series as columns, named after each series:
//
//	timeseries.WriteCSV(os.Stdout, lossDiff)
package timeseries
