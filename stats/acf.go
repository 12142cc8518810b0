// Package stats provides the autocovariance, distribution and diagnostic functions behind the DM test.
package stats

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/godm/timeseries"
)

// Autocovariance returns the biased sample autocovariance of values for
// lags 0 to maxLag:
//
//	cov(k) = 1/n * sum_{i=0}^{n-k-1} (x[i]-mean)(x[i+k]-mean)
//
// maxLag is capped at n-1. It returns nil for empty input or a negative lag.
func Autocovariance(values []float64, maxLag int) []float64 {
	n := len(values)
	if n == 0 || maxLag < 0 {
		return nil
	}
	if maxLag >= n {
		maxLag = n - 1
	}

	mean := stat.Mean(values, nil)
	acov := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := 0; i < n-k; i++ {
			sum += (values[i] - mean) * (values[i+k] - mean)
		}
		acov[k] = sum / float64(n)
	}

	return acov
}

// AutocovarianceFFT computes the same estimator as Autocovariance through
// the power spectrum of the demeaned series. The series is zero padded to a
// power of two of at least 2n so the circular correlation equals the linear one.
func AutocovarianceFFT(values []float64, maxLag int) []float64 {
	n := len(values)
	if n == 0 || maxLag < 0 {
		return nil
	}
	if maxLag >= n {
		maxLag = n - 1
	}

	size := 1
	for size < 2*n {
		size <<= 1
	}

	mean := stat.Mean(values, nil)
	padded := make([]float64, size)
	for i, v := range values {
		padded[i] = v - mean
	}

	fft := fourier.NewFFT(size)
	coeff := fft.Coefficients(nil, padded)
	for i, c := range coeff {
		coeff[i] = complex(real(c)*real(c)+imag(c)*imag(c), 0)
	}
	// Sequence is unnormalized: the round trip scales by size.
	seq := fft.Sequence(nil, coeff)

	scale := 1 / (float64(size) * float64(n))
	acov := make([]float64, maxLag+1)
	for k := range acov {
		acov[k] = seq[k] * scale
	}

	return acov
}

// ACF calculates the Autocorrelation Function for the given series.
// Returns ACF values for lags 0 to maxLag, or nil for a constant series.
func ACF(series *timeseries.Series, maxLag int) []float64 {
	acov := Autocovariance(series.Values, maxLag)
	if acov == nil || acov[0] == 0 {
		return nil
	}

	acf := make([]float64, len(acov))
	for k, c := range acov {
		acf[k] = c / acov[0]
	}

	return acf
}

// ACFResult represents the result of ACF analysis.
type ACFResult struct {
	Lags       []int
	Values     []float64
	ConfBounds float64 // 95% confidence bounds (±1.96/sqrt(n))
}

// ACFWithConfidence calculates ACF with confidence bounds.
func ACFWithConfidence(series *timeseries.Series, maxLag int) *ACFResult {
	acf := ACF(series, maxLag)
	if acf == nil {
		return nil
	}

	lags := make([]int, len(acf))
	for i := range lags {
		lags[i] = i
	}

	return &ACFResult{
		Lags:       lags,
		Values:     acf,
		ConfBounds: 1.96 / math.Sqrt(float64(series.Len())),
	}
}

// SignificantLags returns the lags where ACF values exceed confidence bounds.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ { // Skip lag 0
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}
