// Package dm implements the Diebold-Mariano test for comparing forecast accuracy.
package dm

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/godm/stats"
	"github.com/sartorproj/godm/timeseries"
)

// Result represents the result of a Diebold-Mariano test.
type Result struct {
	Statistic float64 // HLN-corrected DM statistic
	PValue    float64

	Alternative      Alternative
	Horizon          int // Horizon used for the variance and correction
	RequestedHorizon int // Horizon asked for; differs from Horizon after a fallback
	Power            float64
	N                int     // Number of observations
	DOF              int     // Degrees of freedom of the t distribution (N - 1)
	MeanLoss         float64 // Mean of the loss differential
	Variance         float64 // Long-run variance of the mean loss differential
}

// Fallback reports whether the requested horizon was replaced by 1 because
// its variance estimate was not positive.
func (r Result) Fallback() bool {
	return r.Horizon != r.RequestedHorizon
}

// Test performs the Diebold-Mariano test on the forecast errors e1 and e2
// of two methods over the same period. A nil config uses DefaultConfig.
//
// The loss differential d[i] = |e1[i]|^p - |e2[i]|^p is reduced to
// mean(d) / sqrt(lrv/n), where lrv sums the autocovariances of d for lags
// 0..h-1. The statistic is scaled by the Harvey-Leybourne-Newbold factor
// and compared with Student's t on n-1 degrees of freedom.
//
// When lrv is not positive and h > 1 the test logs a warning and is
// recomputed with h = 1. With h = 1 it fails with ErrDegenerateVariance.
func Test(e1, e2 []float64, config *Config) (Result, error) {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := config.withDefaults()

	if err := validate(e1, e2, &cfg); err != nil {
		return Result{}, err
	}

	d, err := LossDifferential(e1, e2, cfg.Power)
	if err != nil {
		return Result{}, err
	}

	n := len(d)
	h := cfg.Horizon

	acov := cfg.Autocovariance(d, h-1)
	if len(acov) != h {
		return Result{}, fmt.Errorf("dm: autocovariance estimator returned %d lags, expected %d", len(acov), h)
	}
	variance := stats.LongRunVariance(acov, stats.Truncated) / float64(n)

	if !(variance > 0) {
		if h == 1 {
			return Result{}, fmt.Errorf("%w: got %g with horizon 1, no fallback possible", ErrDegenerateVariance, variance)
		}

		cfg.Logger.Warn("variance is negative, retrying with horizon 1",
			zap.Int("requested_horizon", h),
			zap.Float64("variance", variance),
			zap.Int("n", n))

		fallback := cfg
		fallback.Horizon = 1
		result, err := Test(e1, e2, &fallback)
		if err != nil {
			return Result{}, err
		}
		result.RequestedHorizon = h
		return result, nil
	}

	meanLoss := stat.Mean(d, nil)
	statistic := meanLoss / math.Sqrt(variance) * HLNFactor(n, h)

	dof := n - 1
	return Result{
		Statistic:        statistic,
		PValue:           pValue(cfg.Alternative, statistic, float64(dof), cfg.CDF),
		Alternative:      cfg.Alternative,
		Horizon:          h,
		RequestedHorizon: h,
		Power:            cfg.Power,
		N:                n,
		DOF:              dof,
		MeanLoss:         meanLoss,
		Variance:         variance,
	}, nil
}

// TestSeries performs the Diebold-Mariano test on two error series.
func TestSeries(s1, s2 *timeseries.Series, config *Config) (Result, error) {
	if s1 == nil || s2 == nil {
		return Result{}, fmt.Errorf("%w: nil series", ErrInvalidInput)
	}
	return Test(s1.Values, s2.Values, config)
}

// LossDifferential returns d[i] = |e1[i]|^power - |e2[i]|^power.
func LossDifferential(e1, e2 []float64, power float64) ([]float64, error) {
	if len(e1) != len(e2) {
		return nil, fmt.Errorf("%w: error sequences have different lengths (%d and %d)", ErrInvalidInput, len(e1), len(e2))
	}

	d := make([]float64, len(e1))
	for i := range e1 {
		d[i] = math.Pow(math.Abs(e1[i]), power) - math.Pow(math.Abs(e2[i]), power)
		if math.IsNaN(d[i]) || math.IsInf(d[i], 0) {
			return nil, fmt.Errorf("%w: loss differential is not finite at index %d", ErrInvalidInput, i)
		}
	}
	return d, nil
}

// HLNFactor returns the Harvey-Leybourne-Newbold small-sample correction
//
//	sqrt((n + 1 - 2h + h(h-1)/n) / n)
//
// which is positive for 1 <= h < n.
func HLNFactor(n, h int) float64 {
	nf, hf := float64(n), float64(h)
	return math.Sqrt((nf + 1 - 2*hf + hf/nf*(hf-1)) / nf)
}

func pValue(alternative Alternative, statistic, dof float64, cdf CDFFunc) float64 {
	switch alternative {
	case Less:
		return cdf(statistic, dof)
	case Greater:
		return 1 - cdf(statistic, dof)
	default:
		return 2 * cdf(-math.Abs(statistic), dof)
	}
}

func validate(e1, e2 []float64, cfg *Config) error {
	if !cfg.Alternative.Valid() {
		return errAlternative(cfg.Alternative)
	}
	if cfg.Horizon < 1 {
		return fmt.Errorf("%w: horizon must be at least 1, got %d", ErrInvalidArgument, cfg.Horizon)
	}
	if !(cfg.Power > 0) || math.IsInf(cfg.Power, 0) {
		return fmt.Errorf("%w: power must be positive and finite, got %v", ErrInvalidArgument, cfg.Power)
	}

	if len(e1) != len(e2) {
		return fmt.Errorf("%w: error sequences have different lengths (%d and %d)", ErrInvalidInput, len(e1), len(e2))
	}
	if len(e1) < 2 {
		return fmt.Errorf("%w: need at least 2 observations, got %d", ErrInvalidInput, len(e1))
	}
	for j, e := range [2][]float64{e1, e2} {
		for i, v := range e {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: e%d has non-finite value %v at index %d", ErrInvalidInput, j+1, v, i)
			}
		}
	}

	if cfg.Horizon >= len(e1) {
		return fmt.Errorf("%w: horizon %d must be below the number of observations %d", ErrInvalidArgument, cfg.Horizon, len(e1))
	}
	return nil
}
