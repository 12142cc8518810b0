package dm

import (
	"go.uber.org/zap"

	"github.com/sartorproj/godm/stats"
)

// AutocovarianceFunc returns the biased sample autocovariances of values
// for lags 0 to maxLag.
type AutocovarianceFunc func(values []float64, maxLag int) []float64

// CDFFunc returns P(T <= x) for Student's t with dof degrees of freedom.
type CDFFunc func(x, dof float64) float64

// Config holds the parameters of a Diebold-Mariano test.
type Config struct {
	Alternative Alternative // Alternative hypothesis (default: TwoSided)
	Horizon     int         // Forecast horizon h the errors were produced at (default: 1)
	Power       float64     // Exponent of the absolute-error loss, usually 1 or 2 (default: 2)

	// Autocovariance estimates the autocovariance of the loss differential
	// (default: stats.AutocovarianceFFT).
	Autocovariance AutocovarianceFunc
	// CDF evaluates the reference t distribution (default: stats.StudentsTCDF).
	CDF CDFFunc
	// Logger receives the horizon fallback warning (default: no-op).
	Logger *zap.Logger
}

// DefaultConfig returns the default test configuration.
func DefaultConfig() *Config {
	return &Config{
		Alternative:    TwoSided,
		Horizon:        1,
		Power:          2,
		Autocovariance: stats.AutocovarianceFFT,
		CDF:            stats.StudentsTCDF,
		Logger:         zap.NewNop(),
	}
}

// withDefaults returns a copy of c with unset primitives and logger filled in.
func (c *Config) withDefaults() Config {
	out := *c
	if out.Autocovariance == nil {
		out.Autocovariance = stats.AutocovarianceFFT
	}
	if out.CDF == nil {
		out.CDF = stats.StudentsTCDF
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out
}
