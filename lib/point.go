package extjfx

// A Point is a single (x, y) sample of a curve. Extra carries an opaque
// payload through reduction untouched; it takes no part in any computation.
type Point struct {
	X     float64
	Y     float64
	Extra any
}

// Equal returns true if the given Point is equal to the receiver.
// Extra payloads are compared with ==.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y && p.Extra == other.Extra
}

// Points is a slice of Point type elements sorted by ascending X.
type Points []Point

// The following methods implement sort.Interface
func (ps Points) Len() int           { return len(ps) }
func (ps Points) Less(i, j int) bool { return ps[i].X < ps[j].X }
func (ps Points) Swap(i, j int)      { ps[i], ps[j] = ps[j], ps[i] }
