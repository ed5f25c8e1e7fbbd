package extjfx

import "sync"

// A PointList is a mutable, observable ordered sequence of points. All
// structural changes notify the registered subscribers. Callers that feed a
// PointList to a chart are responsible for keeping it sorted by X.
type PointList struct {
	mu   sync.Mutex
	pts  []Point
	subs *subscribers
}

// NewPointList returns an empty PointList.
func NewPointList() *PointList {
	return &PointList{subs: newSubscribers()}
}

// Append adds the given points at the end of the list.
func (l *PointList) Append(ps ...Point) {
	if len(ps) == 0 {
		return
	}
	l.mu.Lock()
	l.pts = append(l.pts, ps...)
	l.mu.Unlock()
	l.subs.notify()
}

// Set replaces the point at index i.
func (l *PointList) Set(i int, p Point) {
	l.mu.Lock()
	l.pts[i] = p
	l.mu.Unlock()
	l.subs.notify()
}

// RemoveAt removes the point at index i.
func (l *PointList) RemoveAt(i int) {
	l.mu.Lock()
	l.pts = append(l.pts[:i], l.pts[i+1:]...)
	l.mu.Unlock()
	l.subs.notify()
}

// Clear removes all points.
func (l *PointList) Clear() {
	l.mu.Lock()
	l.pts = l.pts[:0]
	l.mu.Unlock()
	l.subs.notify()
}

// Len returns the number of points in the list.
func (l *PointList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pts)
}

// At returns the point at index i.
func (l *PointList) At(i int) Point {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pts[i]
}

// Subscribe registers fn to run after every structural change and returns
// a function that unregisters it.
func (l *PointList) Subscribe(fn func()) (cancel func()) {
	return l.subs.add(fn)
}

// ListData adapts an externally owned PointList to the ChartData contract.
// Invalidation fires whenever the wrapped list changes.
type ListData struct {
	list *PointList
}

// NewListData returns a ChartData view over the given list.
func NewListData(list *PointList) *ListData {
	if list == nil {
		panic("extjfx: nil point list")
	}
	return &ListData{list: list}
}

func (d *ListData) Size() int         { return d.list.Len() }
func (d *ListData) XAt(i int) float64 { return d.list.At(i).X }
func (d *ListData) YAt(i int) float64 { return d.list.At(i).Y }
func (d *ListData) At(i int) Point    { return d.list.At(i) }

func (d *ListData) Subscribe(fn func()) (cancel func()) {
	return d.list.Subscribe(fn)
}

// subscribers is a registry of invalidation callbacks shared by the mutable
// ChartData backings.
type subscribers struct {
	mu   sync.Mutex
	seq  int
	subs map[int]func()
}

func newSubscribers() *subscribers {
	return &subscribers{subs: map[int]func(){}}
}

func (s *subscribers) add(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.seq
	s.seq++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *subscribers) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
