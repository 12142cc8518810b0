package dm

import (
	"fmt"
	"strings"
)

// Alternative selects the alternative hypothesis of the test.
type Alternative string

const (
	// TwoSided rejects when either method is more accurate.
	TwoSided Alternative = "two_sided"
	// Less uses the lower tail of the statistic: p = CDF(DM).
	Less Alternative = "less"
	// Greater uses the upper tail of the statistic: p = 1 - CDF(DM).
	Greater Alternative = "greater"
)

// Alternatives returns the accepted alternatives in canonical order.
func Alternatives() []Alternative {
	return []Alternative{TwoSided, Less, Greater}
}

// Valid reports whether a is one of the accepted alternatives.
func (a Alternative) Valid() bool {
	switch a {
	case TwoSided, Less, Greater:
		return true
	}
	return false
}

func (a Alternative) String() string {
	return string(a)
}

// ParseAlternative parses the textual form of an alternative. Matching is
// exact apart from surrounding whitespace and letter case.
func ParseAlternative(s string) (Alternative, error) {
	a := Alternative(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", errAlternative(s)
	}
	return a, nil
}

func errAlternative(got any) error {
	return fmt.Errorf("%w: alternative must be one of %v, got %q", ErrInvalidArgument, Alternatives(), fmt.Sprint(got))
}
