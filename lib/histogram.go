package extjfx

import (
	"fmt"
	"strconv"
	"strings"
)

// Buckets represents a Histogram's Y value buckets.
type Buckets []float64

// Histogram is a bucketed histogram of Y values.
type Histogram struct {
	Buckets Buckets
	Counts  []uint64
	Total   uint64
}

// Add finds the right bucket for the given point's Y value and increases
// its count by one as well as the total count.
func (h *Histogram) Add(p Point) {
	if len(h.Counts) != len(h.Buckets) {
		h.Counts = make([]uint64, len(h.Buckets))
	}

	var i int
	for ; i < len(h.Buckets)-1; i++ {
		if p.Y >= h.Buckets[i] && p.Y < h.Buckets[i+1] {
			break
		}
	}

	h.Total++
	h.Counts[i]++
}

// Nth returns the nth bucket represented as a string.
func (bs Buckets) Nth(i int) (left, right string) {
	if i >= len(bs)-1 {
		return strconv.FormatFloat(bs[i], 'g', -1, 64), "+Inf"
	}
	return strconv.FormatFloat(bs[i], 'g', -1, 64), strconv.FormatFloat(bs[i+1], 'g', -1, 64)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (bs *Buckets) UnmarshalText(value []byte) error {
	if len(value) < 2 || value[0] != '[' || value[len(value)-1] != ']' {
		return fmt.Errorf("bad buckets: %s", value)
	}
	for _, v := range strings.Split(string(value[1:len(value)-1]), ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		*bs = append(*bs, f)
	}
	if len(*bs) == 0 {
		return fmt.Errorf("bad buckets: %s", value)
	}
	return nil
}
