// Package godm compares the predictive accuracy of competing forecasts with
// the Diebold-Mariano test.
//
// Given the forecast errors of two methods over the same period, the test
// builds a loss differential, estimates its long-run variance from the
// autocovariances induced by the forecast horizon, applies the
// Harvey-Leybourne-Newbold small-sample correction and reports a p-value
// from Student's t distribution.
//
// # Quick Start
//
// Compare two error series:
//
//	config := dm.DefaultConfig()
//	config.Horizon = 3
//	result, err := dm.Test(errorsARIMA, errorsNaive, config)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("DM=%.4f p=%.4f\n", result.Statistic, result.PValue)
//
// Load errors from a file:
//
//	pair, _ := timeseries.LoadCSV("errors.csv", nil, "arima", "naive")
//	result, _ := dm.TestSeries(pair[0], pair[1], nil)
//
// # Packages
//
//   - dm: the Diebold-Mariano test
//   - stats: autocovariance, long-run variance, Student's t, residual and stationarity diagnostics
//   - timeseries: Series type and CSV/XLSX loaders for forecast errors
//   - cmd/dmtest: command line front end over files of forecast errors
//
// # References
//
//   - Diebold, F.X., & Mariano, R.S. (1995). Comparing Predictive Accuracy. JBES 13(3)
//   - Harvey, D., Leybourne, S., & Newbold, P. (1997). Testing the equality of prediction mean squared errors. IJF 13(2)
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package godm
