package systems

import (
	"sort"
	"testing"
)

func TestLinkGridVisitsLaterNeighbours(t *testing.T) {
	g := NewLinkGrid(300, 300, 100)
	points := [][2]float64{
		{10, 10},   // 0: cell (0,0)
		{150, 10},  // 1: cell (1,0)
		{290, 290}, // 2: cell (2,2)
		{50, 150},  // 3: cell (0,1)
	}
	for i, p := range points {
		g.Insert(i, p[0], p[1])
	}

	var got []int
	g.ForEachLater(0, points[0][0], points[0][1], func(j int) { got = append(got, j) })
	sort.Ints(got)

	want := []int{1, 3}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("neighbours of 0 = %v, want %v", got, want)
	}

	got = got[:0]
	g.ForEachLater(3, points[3][0], points[3][1], func(j int) { got = append(got, j) })
	if len(got) != 0 {
		t.Errorf("neighbours of 3 = %v, want none (only earlier indices nearby)", got)
	}
}

func TestLinkGridClampsOutOfRange(t *testing.T) {
	g := NewLinkGrid(100, 100, 50)
	g.Insert(0, -20, -20)
	g.Insert(1, 500, 500)

	called := 0
	g.ForEachLater(-1, 0, 0, func(int) { called++ })
	if called != 1 {
		t.Errorf("clamped corner saw %d entries, want 1", called)
	}

	g.Clear()
	called = 0
	g.ForEachLater(-1, 0, 0, func(int) { called++ })
	if called != 0 {
		t.Errorf("cleared grid still holds %d entries", called)
	}
}
