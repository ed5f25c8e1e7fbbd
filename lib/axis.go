package extjfx

import "sync"

// A Viewport is the X-axis collaborator a ReducingSeries tracks: numeric
// bounds, an auto-ranging flag, and change notification for each of them.
// Chart axis implementations of the host toolkit satisfy this contract; the
// concrete Axis below is sufficient for headless use.
type Viewport interface {
	// LowerBound returns the current lower X bound of the viewport.
	LowerBound() float64

	// UpperBound returns the current upper X bound of the viewport.
	UpperBound() float64

	// IsAutoRanging reports whether the viewport derives its bounds from
	// the data instead of a fixed user/zoom state.
	IsAutoRanging() bool

	// SubscribeBounds registers fn to run after either bound changes.
	SubscribeBounds(fn func()) (cancel func())

	// SubscribeAutoRanging registers fn to run after the auto-ranging
	// flag changes value, receiving the new value.
	SubscribeAutoRanging(fn func(bool)) (cancel func())
}

// Axis is a minimal Viewport implementation. A new Axis is auto-ranging
// with bounds [0, 0].
type Axis struct {
	mu          sync.Mutex
	lower       float64
	upper       float64
	autoRanging bool

	boundSubs *subscribers
	autoMu    sync.Mutex
	autoSeq   int
	autoSubs  map[int]func(bool)
}

// NewAxis returns an auto-ranging Axis.
func NewAxis() *Axis {
	return &Axis{
		autoRanging: true,
		boundSubs:   newSubscribers(),
		autoSubs:    map[int]func(bool){},
	}
}

func (a *Axis) LowerBound() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lower
}

func (a *Axis) UpperBound() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.upper
}

func (a *Axis) IsAutoRanging() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.autoRanging
}

// SetLowerBound sets the lower bound, notifying bound subscribers if the
// value changed.
func (a *Axis) SetLowerBound(v float64) {
	a.mu.Lock()
	changed := a.lower != v
	a.lower = v
	a.mu.Unlock()
	if changed {
		a.boundSubs.notify()
	}
}

// SetUpperBound sets the upper bound, notifying bound subscribers if the
// value changed.
func (a *Axis) SetUpperBound(v float64) {
	a.mu.Lock()
	changed := a.upper != v
	a.upper = v
	a.mu.Unlock()
	if changed {
		a.boundSubs.notify()
	}
}

// SetBounds sets both bounds, notifying bound subscribers once if either
// value changed.
func (a *Axis) SetBounds(lower, upper float64) {
	a.mu.Lock()
	changed := a.lower != lower || a.upper != upper
	a.lower, a.upper = lower, upper
	a.mu.Unlock()
	if changed {
		a.boundSubs.notify()
	}
}

// SetAutoRanging toggles the auto-ranging mode, notifying auto-ranging
// subscribers if the value changed.
func (a *Axis) SetAutoRanging(auto bool) {
	a.mu.Lock()
	changed := a.autoRanging != auto
	a.autoRanging = auto
	a.mu.Unlock()
	if !changed {
		return
	}

	a.autoMu.Lock()
	fns := make([]func(bool), 0, len(a.autoSubs))
	for _, fn := range a.autoSubs {
		fns = append(fns, fn)
	}
	a.autoMu.Unlock()

	for _, fn := range fns {
		fn(auto)
	}
}

func (a *Axis) SubscribeBounds(fn func()) (cancel func()) {
	return a.boundSubs.add(fn)
}

func (a *Axis) SubscribeAutoRanging(fn func(bool)) (cancel func()) {
	a.autoMu.Lock()
	id := a.autoSeq
	a.autoSeq++
	a.autoSubs[id] = fn
	a.autoMu.Unlock()

	return func() {
		a.autoMu.Lock()
		delete(a.autoSubs, id)
		a.autoMu.Unlock()
	}
}
