package extjfx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPointList(t *testing.T) {
	t.Parallel()

	l := NewPointList()

	var fired int
	cancel := l.Subscribe(func() { fired++ })

	l.Append(Point{X: 1, Y: 1}, Point{X: 2, Y: 2}, Point{X: 3, Y: 3})
	l.Set(1, Point{X: 2, Y: 20})
	l.RemoveAt(0)

	if got, want := fired, 3; got != want {
		t.Errorf("notifications: got: %d, want: %d", got, want)
	}

	want := []Point{{X: 2, Y: 20}, {X: 3, Y: 3}}
	if diff := cmp.Diff(want, PointsOf(NewListData(l))); diff != "" {
		t.Error(diff)
	}

	cancel()
	l.Clear()

	if got, want := fired, 3; got != want {
		t.Errorf("notifications after cancel: got: %d, want: %d", got, want)
	}
	if got, want := l.Len(), 0; got != want {
		t.Errorf("Len() after Clear: got: %d, want: %d", got, want)
	}
}

func TestPointList_emptyAppendDoesNotNotify(t *testing.T) {
	t.Parallel()

	l := NewPointList()

	var fired int
	l.Subscribe(func() { fired++ })
	l.Append()

	if fired != 0 {
		t.Errorf("notifications: got: %d, want: 0", fired)
	}
}

func TestNewListData_nilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("NewListData(nil): expected panic")
		}
	}()

	NewListData(nil)
}
