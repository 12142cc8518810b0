package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/godm/timeseries"
)

// KPSSResult represents the result of a KPSS stationarity test.
type KPSSResult struct {
	Statistic    float64
	PValue       float64 // Interpolated from the critical value table, clamped to [0.01, 0.10]
	Lags         int
	CriticalVals map[string]float64
	IsStationary bool
}

// kpssTable holds the Kwiatkowski et al. (1992) critical values for the
// 10%, 5%, 2.5% and 1% levels.
var kpssTable = map[string][4]float64{
	"c":  {0.347, 0.463, 0.574, 0.739},
	"ct": {0.119, 0.146, 0.176, 0.216},
}

var kpssLevels = [4]float64{0.10, 0.05, 0.025, 0.01}

// KPSS performs the Kwiatkowski-Phillips-Schmidt-Shin test. The null
// hypothesis is that the series is level ("c") or trend ("ct") stationary.
// A non-positive nlags selects ceil(12 * (n/100)^(1/4)) lags for the
// Bartlett long-run variance. Returns nil for fewer than 10 observations.
func KPSS(series *timeseries.Series, regression string, nlags int) *KPSSResult {
	n := series.Len()
	if n < 10 {
		return nil
	}
	if regression != "ct" {
		regression = "c"
	}

	if nlags <= 0 {
		nlags = int(math.Ceil(12 * math.Pow(float64(n)/100, 0.25)))
	}
	if nlags >= n {
		nlags = n - 1
	}

	residuals := make([]float64, n)
	if regression == "ct" {
		t := make([]float64, n)
		floats.Span(t, 0, float64(n-1))
		a, b := stat.LinearRegression(t, series.Values, nil, false)
		for i, v := range series.Values {
			residuals[i] = v - a - b*t[i]
		}
	} else {
		mean := series.Mean()
		for i, v := range series.Values {
			residuals[i] = v - mean
		}
	}

	s2 := LongRunVariance(Autocovariance(residuals, nlags), Bartlett)
	if s2 <= 0 {
		s2 = 1e-10
	}

	cumSum := make([]float64, n)
	floats.CumSum(cumSum, residuals)
	etaSq := floats.Dot(cumSum, cumSum)
	kpssStat := etaSq / (float64(n) * float64(n) * s2)

	crit := kpssTable[regression]
	pValue := kpssPValue(kpssStat, crit)

	return &KPSSResult{
		Statistic: kpssStat,
		PValue:    pValue,
		Lags:      nlags,
		CriticalVals: map[string]float64{
			"10%":  crit[0],
			"5%":   crit[1],
			"2.5%": crit[2],
			"1%":   crit[3],
		},
		IsStationary: pValue >= 0.05,
	}
}

// kpssPValue interpolates linearly between the tabulated levels.
func kpssPValue(statistic float64, crit [4]float64) float64 {
	if statistic <= crit[0] {
		return kpssLevels[0]
	}
	if statistic >= crit[3] {
		return kpssLevels[3]
	}
	for i := 1; i < len(crit); i++ {
		if statistic <= crit[i] {
			frac := (statistic - crit[i-1]) / (crit[i] - crit[i-1])
			return kpssLevels[i-1] + frac*(kpssLevels[i]-kpssLevels[i-1])
		}
	}
	return kpssLevels[3]
}
