// Package dm implements the Diebold-Mariano test of equal predictive accuracy.
//
// The test compares two forecasting methods through their forecast errors
// over the same period. Errors are turned into a loss differential
//
//	d[i] = |e1[i]|^power - |e2[i]|^power
//
// whose mean is tested against zero. Errors of h-step forecasts are serially
// correlated up to lag h-1, so the variance of the mean is estimated from the
// autocovariances of d at lags 0..h-1, and the statistic is scaled by the
// Harvey-Leybourne-Newbold (1997) small-sample factor before being compared
// with Student's t on n-1 degrees of freedom.
//
// # Usage
//
//	config := dm.DefaultConfig()
//	config.Horizon = 4
//	config.Power = 1 // absolute error loss
//	result, err := dm.Test(e1, e2, config)
//	switch {
//	case errors.Is(err, dm.ErrDegenerateVariance):
//	    // the two methods have identical losses
//	case err != nil:
//	    return err
//	}
//	fmt.Printf("DM=%.4f p=%.4f (h=%d)\n", result.Statistic, result.PValue, result.Horizon)
//
// # Alternatives
//
//   - TwoSided: p = 2 * CDF(-|DM|)
//   - Less: p = CDF(DM)
//   - Greater: p = 1 - CDF(DM)
//
// A negative statistic means the first method had the smaller average loss.
//
// # Horizon Fallback
//
// With h > 1 the truncated autocovariance sum can be zero or negative. The
// test then logs a warning on Config.Logger and recomputes everything with
// h = 1; Result.Fallback reports that this happened. A non-positive variance
// at h = 1 is returned as ErrDegenerateVariance.
//
// # Numerical Primitives
//
// The autocovariance estimator and the t distribution are plain functions on
// Config and can be replaced, for instance with stats.Autocovariance to use
// the direct O(n*h) estimator instead of the FFT.
package dm
