package extjfx

import (
	"testing"
)

func TestNewRange(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		lower, upper float64
		ok           bool
	}{
		{0, 1, true},
		{-5, 5, true},
		{3, 3, true},
		{1, 0, false},
		{0.1, -0.1, false},
	} {
		r, err := NewRange(tc.lower, tc.upper)
		if ok := err == nil; ok != tc.ok {
			t.Errorf("NewRange(%g, %g): err: %v, want ok: %v", tc.lower, tc.upper, err, tc.ok)
			continue
		}
		if !tc.ok {
			continue
		}
		if got, want := r.Lower(), tc.lower; got != want {
			t.Errorf("Lower(): got: %g, want: %g", got, want)
		}
		if got, want := r.Upper(), tc.upper; got != want {
			t.Errorf("Upper(): got: %g, want: %g", got, want)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	t.Parallel()

	r, err := NewRange(-1.0, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	for v, want := range map[float64]bool{
		-1.5: false,
		-1:   true,
		0:    true,
		1:    true,
		1.01: false,
	} {
		if got := r.Contains(v); got != want {
			t.Errorf("Contains(%g): got: %v, want: %v", v, got, want)
		}
	}
}

func TestRange_String(t *testing.T) {
	t.Parallel()

	r, _ := NewRange(2, 5)
	if got, want := r.String(), "[2,5]"; got != want {
		t.Errorf("String(): got: %q, want: %q", got, want)
	}
}
