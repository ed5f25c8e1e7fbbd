package extjfx

import "testing"

func TestAutoRangingCalculator(t *testing.T) {
	t.Parallel()

	var calc autoRangingCalculator

	calc.updateRange(nil)
	if got, want := calc.getRange(), (Range[float64]{0, 0}); got != want {
		t.Errorf("nil data: got: %v, want: %v", got, want)
	}

	calc.updateRange(ArrayDataOfPoints([]Point{{X: -3}, {X: 0}, {X: 12}}))
	if got, want := calc.getRange(), (Range[float64]{-3, 12}); got != want {
		t.Errorf("got: %v, want: %v", got, want)
	}

	// The window reverts when data empties.
	calc.updateRange(ArrayDataOfPoints(nil))
	if got, want := calc.getRange(), (Range[float64]{0, 0}); got != want {
		t.Errorf("empty data: got: %v, want: %v", got, want)
	}
}

func TestViewportBoundCalculator(t *testing.T) {
	t.Parallel()

	axis := NewAxis()
	axis.SetBounds(2, 8)

	calc := viewportBoundCalculator{vp: axis}
	calc.updateRange(nil) // no-op

	if got, want := calc.getRange(), (Range[float64]{2, 8}); got != want {
		t.Errorf("got: %v, want: %v", got, want)
	}

	// Live view: bound updates are visible without updateRange.
	axis.SetBounds(-1, 1)
	if got, want := calc.getRange(), (Range[float64]{-1, 1}); got != want {
		t.Errorf("after SetBounds: got: %v, want: %v", got, want)
	}
}
