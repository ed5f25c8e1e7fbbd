package extjfx

import "sync"

// FifoData is a ChartData over a bounded circular buffer, meant as backing
// storage for charts presenting live time trends. While fewer points than
// the capacity have been appended it behaves like a growing list; once full,
// every append drops the oldest point. Each append fires invalidation.
type FifoData struct {
	mu   sync.Mutex
	buf  []Point
	head int // index of the oldest element once the buffer has wrapped
	full bool
	subs *subscribers
}

// NewFifoData returns a FifoData with the given capacity.
// It panics if capacity is not positive.
func NewFifoData(capacity int) *FifoData {
	if capacity <= 0 {
		panic("extjfx: fifo capacity must be positive")
	}
	return &FifoData{
		buf:  make([]Point, 0, capacity),
		subs: newSubscribers(),
	}
}

// Append adds p as the newest point, dropping the oldest one if the buffer
// is at capacity.
func (d *FifoData) Append(p Point) {
	d.mu.Lock()
	if d.full {
		d.buf[d.head] = p
		d.head++
		if d.head == cap(d.buf) {
			d.head = 0
		}
	} else {
		d.buf = append(d.buf, p)
		d.full = len(d.buf) == cap(d.buf)
	}
	d.mu.Unlock()
	d.subs.notify()
}

// Capacity returns the maximum number of points the buffer retains.
func (d *FifoData) Capacity() int { return cap(d.buf) }

func (d *FifoData) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buf)
}

func (d *FifoData) At(i int) Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf[d.index(i)]
}

func (d *FifoData) XAt(i int) float64 { return d.At(i).X }
func (d *FifoData) YAt(i int) float64 { return d.At(i).Y }

func (d *FifoData) Subscribe(fn func()) (cancel func()) {
	return d.subs.add(fn)
}

func (d *FifoData) index(i int) int {
	i += d.head
	if i >= len(d.buf) {
		i -= len(d.buf)
	}
	return i
}
