package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/godm/timeseries"
)

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int  // Degrees of freedom
	Serial    bool // Autocorrelation detected at the 5% level
}

// LjungBox performs the Ljung-Box test for autocorrelation up to lag `lags`.
// The null hypothesis is that there is no autocorrelation. fitdf is the
// number of parameters already estimated from the series and is subtracted
// from the degrees of freedom. Returns nil for fewer than 10 observations or
// a constant series.
func LjungBox(series *timeseries.Series, lags, fitdf int) *LjungBoxResult {
	n := series.Len()
	if n < 10 || lags < 1 {
		return nil
	}

	if lags >= n {
		lags = n - 1
	}

	acf := ACF(series, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n) * float64(n+2)

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	p := distuv.ChiSquared{K: float64(dof)}.Survival(q)
	return &LjungBoxResult{
		Statistic: q,
		PValue:    p,
		Lags:      lags,
		DOF:       dof,
		Serial:    p < 0.05,
	}
}
