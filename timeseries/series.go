// Package timeseries provides the series type used to carry forecast errors.
package timeseries

import (
	"errors"
	"fmt"
	"math"
	"time"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series represents a time series with timestamps and values.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a new series from values. Timestamps are left empty.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// NewWithTimestamps creates a series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Validate reports the first value that is NaN or infinite.
func (s *Series) Validate() error {
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("series %q: non-finite value %v at index %d", s.Name, v, i)
		}
	}
	return nil
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the sample standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	m, err := mstats.Median(s.Values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Percentile returns the p-th percentile (0 < p <= 100) of the series.
func (s *Series) Percentile(p float64) float64 {
	v, err := mstats.Percentile(s.Values, p)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Quantile returns the nearest-rank p-th percentile (0 <= p <= 100). Unlike
// Percentile it is defined for every p on a non-empty series.
func (s *Series) Quantile(p float64) float64 {
	v, err := mstats.PercentileNearestRank(s.Values, p)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Abs returns a series of absolute values.
func (s *Series) Abs() *Series {
	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		result[i] = math.Abs(v)
	}

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name + "_abs",
	}
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	var timestamps []time.Time
	if len(s.Timestamps) >= end {
		timestamps = make([]time.Time, len(values))
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Tail returns the last n observations. A non-positive n returns the whole series.
func (s *Series) Tail(n int) *Series {
	if n <= 0 || n >= len(s.Values) {
		return s.Slice(0, len(s.Values))
	}
	return s.Slice(len(s.Values)-n, len(s.Values))
}
