package extjfx

// A rangeCalculator determines the X-domain window to reduce against. To
// avoid redundant recalculation the window is computed in updateRange and
// later read back with getRange.
type rangeCalculator interface {
	updateRange(data ChartData)
	getRange() Range[float64]
}

// autoRangingCalculator tracks the data's own X extent: the window spans
// from the first to the last X value, or [0, 0] when there is no data.
type autoRangingCalculator struct {
	xStart, xEnd float64
}

func (c *autoRangingCalculator) updateRange(data ChartData) {
	if data != nil && data.Size() > 0 {
		c.xStart = data.XAt(0)
		c.xEnd = data.XAt(data.Size() - 1)
	} else {
		c.xStart, c.xEnd = 0, 0
	}
}

func (c *autoRangingCalculator) getRange() Range[float64] {
	return Range[float64]{lower: c.xStart, upper: c.xEnd}
}

// viewportBoundCalculator reflects the live bounds of an externally owned
// viewport. updateRange is a no-op since the viewport is the source of
// truth.
type viewportBoundCalculator struct {
	vp Viewport
}

func (c *viewportBoundCalculator) updateRange(ChartData) {}

func (c *viewportBoundCalculator) getRange() Range[float64] {
	return Range[float64]{lower: c.vp.LowerBound(), upper: c.vp.UpperBound()}
}
