// Package stats provides autocovariance, distribution and diagnostic functions for forecast errors.
//
// It supplies the numerical primitives behind the Diebold-Mariano test and
// the diagnostics used to check its assumptions on a loss differential.
//
// # Autocovariance
//
// Biased sample autocovariance for lags 0..maxLag, computed directly or
// through an FFT of the zero-padded series. Both agree to rounding error;
// the FFT form is O(n log n):
//
//	acov := stats.Autocovariance(d, h-1)
//	acov := stats.AutocovarianceFFT(d, h-1)
//
// # Long-Run Variance
//
// Combine autocovariances with a kernel:
//
//	// (h-1)-dependent series, may be negative
//	lrv := stats.LongRunVariance(acov, stats.Truncated)
//
//	// Newey-West, always non-negative
//	lrv := stats.LongRunVariance(acov, stats.Bartlett)
//
// # Distributions
//
//	p := stats.StudentsTCDF(-1.7, 99)
//
// # Diagnostics
//
//	// Ljung-Box test for autocorrelation up to lag 10
//	lb := stats.LjungBox(series, 10, 0)
//	if lb.PValue < 0.05 {
//	    // significant autocorrelation
//	}
//
//	// KPSS test, H0: series is level stationary
//	kpss := stats.KPSS(series, "c", 0)
//
//	// Autocorrelation Function with 95% bounds
//	acf := stats.ACFWithConfidence(series, 20)
//	significant := stats.SignificantLags(acf.Values, acf.ConfBounds)
package stats
