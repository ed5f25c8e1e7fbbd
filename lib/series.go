package extjfx

import (
	"sync"
	"time"
)

// DefaultMaxPointsCount is the reduction budget a ReducingSeries starts
// with.
const DefaultMaxPointsCount = 200

// boundsChangeDelay coalesces near-simultaneous lower+upper viewport bound
// updates into a single recomputation.
const boundsChangeDelay = 50 * time.Millisecond

// A SeriesChange describes one atomic replacement of the reduced list:
// the old list is fully removed and the new one fully added. Point identity
// is not meaningful across recomputations, so no incremental diff is ever
// reported.
type SeriesChange struct {
	Removed []Point
	Added   []Point
}

// A ReduceEvent describes one completed recomputation, for observability.
type ReduceEvent struct {
	SourceSize int
	OutputSize int
	Took       time.Duration
}

// A ReducingSeries maintains a reduced view over large source data, keyed
// to the visible range of a viewport. It listens for source invalidation
// and viewport changes, coalesces recomputation, and exposes the current
// reduced list as a read-only, observable sequence for a chart series to
// render.
//
// The reduced list is replaced, never mutated in place; consumers must not
// modify the slices they observe. Recomputation triggered by configuration
// changes (SetData, SetMaxPoints, SetReducer) is synchronous; recomputation
// triggered by data invalidation or viewport bound changes is asynchronous
// and eventually consistent.
type ReducingSeries struct {
	mu          sync.Mutex
	vp          Viewport
	data        ChartData
	calc        rangeCalculator
	reducer     DataReducer
	maxPoints   int
	reduced     []Point
	err         error
	subs        map[int]func(SeriesChange)
	subSeq      int
	observer    func(ReduceEvent)
	unsubData   func()
	unsubBounds func()
	unsubAuto   func()
	timer       *time.Timer
	pending     bool
	synchronous bool
	disposed    bool
}

// A SeriesOpt is a functional option for a ReducingSeries.
type SeriesOpt func(*ReducingSeries)

// WithData returns an opt that sets the initial source data.
func WithData(data ChartData) SeriesOpt {
	return func(s *ReducingSeries) { s.data = data }
}

// WithReducer returns an opt that sets the reduction strategy. A nil
// reducer passes the raw source data through unreduced.
func WithReducer(r DataReducer) SeriesOpt {
	return func(s *ReducingSeries) { s.reducer = r }
}

// WithMaxPoints returns an opt that sets the reduction budget.
// NewReducingSeries panics if it is below MinPointsCount.
func WithMaxPoints(n int) SeriesOpt {
	return func(s *ReducingSeries) { s.maxPoints = n }
}

// WithObserver returns an opt that registers fn to be called after every
// completed recomputation. fn runs with the series lock held and must not
// call back into the series.
func WithObserver(fn func(ReduceEvent)) SeriesOpt {
	return func(s *ReducingSeries) { s.observer = fn }
}

// NewReducingSeries returns a ReducingSeries bound to the given viewport,
// reduced with RDPReducer and a budget of DefaultMaxPointsCount unless opts
// say otherwise. It panics if vp is nil or an opt carries an invalid value.
func NewReducingSeries(vp Viewport, opts ...SeriesOpt) *ReducingSeries {
	if vp == nil {
		panic("extjfx: nil viewport")
	}

	s := &ReducingSeries{
		vp:        vp,
		reducer:   NewRDPReducer(),
		maxPoints: DefaultMaxPointsCount,
		reduced:   []Point{},
		subs:      map[int]func(SeriesChange){},
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.maxPoints < MinPointsCount {
		panic("extjfx: max points count below minimum of 2")
	}
	// Initial data goes through SetData so listener wiring happens in one
	// place.
	data := s.data
	s.data = nil

	s.selectCalculator(vp.IsAutoRanging())
	s.unsubBounds = vp.SubscribeBounds(s.onBoundsChanged)
	s.unsubAuto = vp.SubscribeAutoRanging(s.onAutoRangingChanged)

	if data != nil {
		_ = s.SetData(data)
	}
	return s
}

// SetData replaces the source data, detaching the invalidation listener
// from the old source and attaching to the new one, then recomputes
// synchronously: initial load must be immediate. A nil data clears the
// series. It returns the reduction error, if any.
func (s *ReducingSeries) SetData(data ChartData) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil
	}
	if s.unsubData != nil {
		s.unsubData()
		s.unsubData = nil
	}
	s.data = data
	if data != nil {
		s.unsubData = data.Subscribe(s.onDataInvalidated)
	}
	change, fns := s.reduceLocked(true)
	err := s.err
	s.mu.Unlock()

	s.fire(change, fns)
	return err
}

// Data returns the current source data.
func (s *ReducingSeries) Data() ChartData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// SetMaxPoints sets the reduction budget and recomputes immediately.
// It returns an error if n is below MinPointsCount, leaving the budget
// unchanged.
func (s *ReducingSeries) SetMaxPoints(n int) error {
	if n < MinPointsCount {
		return errBudget(n)
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil
	}
	s.maxPoints = n
	change, fns := s.reduceLocked(false)
	err := s.err
	s.mu.Unlock()

	s.fire(change, fns)
	return err
}

// MaxPoints returns the current reduction budget.
func (s *ReducingSeries) MaxPoints() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxPoints
}

// SetReducer replaces the reduction strategy and recomputes immediately.
// A nil reducer passes the raw source data through unreduced.
func (s *ReducingSeries) SetReducer(r DataReducer) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil
	}
	s.reducer = r
	change, fns := s.reduceLocked(false)
	err := s.err
	s.mu.Unlock()

	s.fire(change, fns)
	return err
}

// Reducer returns the current reduction strategy.
func (s *ReducingSeries) Reducer() DataReducer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reducer
}

// Len returns the length of the reduced list.
func (s *ReducingSeries) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reduced)
}

// At returns the reduced point at index i.
func (s *ReducingSeries) At(i int) Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reduced[i]
}

// Points returns a copy of the reduced list.
func (s *ReducingSeries) Points() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Point(nil), s.reduced...)
}

// Err returns the error of the most recent recomputation, if any.
func (s *ReducingSeries) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Subscribe registers fn to receive the replace-all change of every
// recomputation and returns a function that unregisters it.
func (s *ReducingSeries) Subscribe(fn func(SeriesChange)) (cancel func()) {
	s.mu.Lock()
	id := s.subSeq
	s.subSeq++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Refresh recomputes the reduced list synchronously, collapsing any
// pending coalesced recomputation into this one.
func (s *ReducingSeries) Refresh() error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
	change, fns := s.reduceLocked(true)
	err := s.err
	s.mu.Unlock()

	s.fire(change, fns)
	return err
}

// Dispose detaches the series from its viewport and source data and
// cancels any pending recomputation. Timers firing after disposal are
// ignored. A disposed series keeps serving its last reduced list.
func (s *ReducingSeries) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.disposed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.unsubData != nil {
		s.unsubData()
		s.unsubData = nil
	}
	s.unsubBounds()
	s.unsubAuto()
}

// onDataInvalidated handles a mutation of the current source: the
// recomputation is deferred to a fresh timer turn so that bursts of
// mutation coalesce into a single pass.
func (s *ReducingSeries) onDataInvalidated() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	if s.synchronous {
		change, fns := s.reduceLocked(true)
		s.mu.Unlock()
		s.fire(change, fns)
		return
	}
	if s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = true
	s.mu.Unlock()

	time.AfterFunc(0, func() { s.recompute(true) })
}

// onBoundsChanged handles a viewport bound update: any pending debounce
// timer restarts, so that near-simultaneous lower+upper updates cause one
// recomputation instead of two.
func (s *ReducingSeries) onBoundsChanged() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	if s.synchronous {
		change, fns := s.reduceLocked(false)
		s.mu.Unlock()
		s.fire(change, fns)
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(boundsChangeDelay, func() { s.recompute(false) })
	s.mu.Unlock()
}

// onAutoRangingChanged swaps the range calculator variant. It does not by
// itself recompute; the next range change or data invalidation will.
func (s *ReducingSeries) onAutoRangingChanged(auto bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.selectCalculator(auto)
}

func (s *ReducingSeries) selectCalculator(auto bool) {
	if auto {
		calc := &autoRangingCalculator{}
		// Prime the cache so a bounds-driven recomputation before the
		// next invalidation does not see a zero range.
		calc.updateRange(s.data)
		s.calc = calc
	} else {
		s.calc = &viewportBoundCalculator{vp: s.vp}
	}
}

// recompute runs an asynchronous (timer-driven) recomputation.
func (s *ReducingSeries) recompute(updateRange bool) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.pending = false
	change, fns := s.reduceLocked(updateRange)
	s.mu.Unlock()

	s.fire(change, fns)
}

// reduceLocked recomputes the reduced list and prepares the replace-all
// notification. The range calculator is refreshed only on the data
// invalidation path; viewport-bound calculators reflect live state already.
// On a reduction error the previous list is kept.
func (s *ReducingSeries) reduceLocked(updateRange bool) (SeriesChange, []func(SeriesChange)) {
	if updateRange {
		s.calc.updateRange(s.data)
	}

	began := time.Now()
	var next []Point
	switch {
	case s.data == nil || s.data.Size() == 0:
		next = []Point{}
	case s.reducer == nil:
		next = PointsOf(s.data)
	default:
		var err error
		next, err = s.reducer.Reduce(s.data, s.calc.getRange(), s.maxPoints)
		if s.err = err; err != nil {
			return SeriesChange{}, nil
		}
	}
	s.err = nil

	if s.observer != nil {
		var size int
		if s.data != nil {
			size = s.data.Size()
		}
		s.observer(ReduceEvent{
			SourceSize: size,
			OutputSize: len(next),
			Took:       time.Since(began),
		})
	}

	prev := s.reduced
	s.reduced = next

	fns := make([]func(SeriesChange), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return SeriesChange{Removed: prev, Added: next}, fns
}

func (s *ReducingSeries) fire(change SeriesChange, fns []func(SeriesChange)) {
	for _, fn := range fns {
		fn(change)
	}
}
