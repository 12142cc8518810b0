package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// StudentsTCDF returns P(T <= x) for a standard Student's t distribution
// with dof degrees of freedom. It returns NaN for dof <= 0.
func StudentsTCDF(x, dof float64) float64 {
	if !(dof > 0) {
		return math.NaN()
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}.CDF(x)
}
