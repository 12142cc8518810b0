package stats

// Kernel weights the autocovariances that enter a long-run variance.
type Kernel int

const (
	// Truncated gives every supplied lag full weight. With lags 0..h-1 this
	// is the variance of an (h-1)-dependent series, as used by the
	// Diebold-Mariano test.
	Truncated Kernel = iota
	// Bartlett applies the Newey-West weights 1 - k/(L+1), where L is the
	// highest supplied lag. The estimate is always non-negative.
	Bartlett
)

// String returns the kernel name.
func (k Kernel) String() string {
	switch k {
	case Truncated:
		return "truncated"
	case Bartlett:
		return "bartlett"
	}
	return "unknown"
}

// LongRunVariance combines autocovariances for lags 0..L into
//
//	acov[0] + 2 * sum_{k=1}^{L} w(k) * acov[k]
//
// It returns 0 for an empty slice. The result may be negative for the
// truncated kernel.
func LongRunVariance(acov []float64, kernel Kernel) float64 {
	if len(acov) == 0 {
		return 0
	}

	maxLag := len(acov) - 1
	lrv := acov[0]
	for k := 1; k <= maxLag; k++ {
		w := 1.0
		if kernel == Bartlett {
			w = 1 - float64(k)/float64(maxLag+1)
		}
		lrv += 2 * w * acov[k]
	}
	return lrv
}
