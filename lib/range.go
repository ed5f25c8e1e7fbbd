package extjfx

import (
	"cmp"
	"fmt"
)

// A Range is a closed interval of ordered values. The zero value is the
// empty interval at the type's zero element.
type Range[C cmp.Ordered] struct {
	lower, upper C
}

// NewRange returns the closed interval [lower, upper]. Equal bounds are
// permitted. It returns an error if lower > upper.
func NewRange[C cmp.Ordered](lower, upper C) (Range[C], error) {
	if lower > upper {
		return Range[C]{}, fmt.Errorf("range: lower bound %v greater than upper bound %v", lower, upper)
	}
	return Range[C]{lower: lower, upper: upper}, nil
}

// Lower returns the lower bound of the range.
func (r Range[C]) Lower() C { return r.lower }

// Upper returns the upper bound of the range.
func (r Range[C]) Upper() C { return r.upper }

// Contains reports whether v lies within the closed interval.
func (r Range[C]) Contains(v C) bool { return v >= r.lower && v <= r.upper }

func (r Range[C]) String() string { return fmt.Sprintf("[%v,%v]", r.lower, r.upper) }
