package board

import (
	"testing"

	"golang.org/x/exp/rand"
)

// refCount is the list-scan reference the multiset is checked against
func refCount(ref []Cell, c Cell) int {
	n := 0
	for _, r := range ref {
		if r == c {
			n++
		}
	}
	return n
}

func TestOccupancyPushPopOrder(t *testing.T) {
	o := NewOccupancy(0)
	o.PushBack(Cell{1, 0})
	o.PushBack(Cell{2, 0})
	o.PushFront(Cell{0, 0})

	if o.Len() != 3 {
		t.Fatalf("Expected len 3, got %d", o.Len())
	}
	if f, _ := o.Front(); f != (Cell{0, 0}) {
		t.Errorf("Expected front (0,0), got %v", f)
	}
	if b, _ := o.Back(); b != (Cell{2, 0}) {
		t.Errorf("Expected back (2,0), got %v", b)
	}

	if c, ok := o.PopBack(); !ok || c != (Cell{2, 0}) {
		t.Errorf("PopBack = %v,%v", c, ok)
	}
	if c, ok := o.PopFront(); !ok || c != (Cell{0, 0}) {
		t.Errorf("PopFront = %v,%v", c, ok)
	}
	if c, ok := o.PopFront(); !ok || c != (Cell{1, 0}) {
		t.Errorf("PopFront = %v,%v", c, ok)
	}

	if _, ok := o.PopBack(); ok {
		t.Error("PopBack on empty queue should report false")
	}
	if _, ok := o.PopFront(); ok {
		t.Error("PopFront on empty queue should report false")
	}
	if o.Distinct() != 0 {
		t.Errorf("Expected empty count map, got %d entries", o.Distinct())
	}
}

func TestOccupancyMultiplicity(t *testing.T) {
	o := NewOccupancy(4)
	c := Cell{3, 3}
	o.PushBack(c)
	if !o.Contains(c) || o.ContainsMulti(c) {
		t.Fatal("single occurrence misreported")
	}
	o.PushBack(c)
	if !o.ContainsMulti(c) {
		t.Fatal("double occurrence not reported")
	}
	o.PopBack()
	if !o.Contains(c) || o.ContainsMulti(c) {
		t.Fatal("count not decremented")
	}
	o.PopBack()
	if o.Contains(c) {
		t.Fatal("cell still reported after final pop")
	}
}

func TestOccupancyGrowthWraps(t *testing.T) {
	o := NewOccupancy(0)
	// Force head to wrap before the ring doubles
	for i := 0; i < 5; i++ {
		o.PushFront(Cell{i, 0})
	}
	for i := 0; i < 20; i++ {
		o.PushBack(Cell{0, i + 1})
	}
	cells := o.Cells()
	if len(cells) != 25 {
		t.Fatalf("Expected 25 cells, got %d", len(cells))
	}
	for i := 0; i < 5; i++ {
		if cells[i] != (Cell{4 - i, 0}) {
			t.Errorf("cells[%d] = %v", i, cells[i])
		}
		if o.At(i) != cells[i] {
			t.Errorf("At(%d) disagrees with Cells()", i)
		}
	}
	if cells[24] != (Cell{0, 20}) {
		t.Errorf("Expected last (0,20), got %v", cells[24])
	}
}

// TestOccupancyDifferential replays random operations against a plain slice
func TestOccupancyDifferential(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	o := NewOccupancy(0)
	var ref []Cell

	// Small alphabet so duplicates are frequent
	universe := []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 2}}

	for step := 0; step < 5000; step++ {
		c := universe[r.Intn(len(universe))]
		switch r.Intn(4) {
		case 0:
			o.PushFront(c)
			ref = append([]Cell{c}, ref...)
		case 1:
			o.PushBack(c)
			ref = append(ref, c)
		case 2:
			got, ok := o.PopFront()
			if len(ref) == 0 {
				if ok {
					t.Fatalf("step %d: PopFront on empty returned %v", step, got)
				}
				continue
			}
			if !ok || got != ref[0] {
				t.Fatalf("step %d: PopFront = %v, want %v", step, got, ref[0])
			}
			ref = ref[1:]
		case 3:
			got, ok := o.PopBack()
			if len(ref) == 0 {
				if ok {
					t.Fatalf("step %d: PopBack on empty returned %v", step, got)
				}
				continue
			}
			if !ok || got != ref[len(ref)-1] {
				t.Fatalf("step %d: PopBack = %v, want %v", step, got, ref[len(ref)-1])
			}
			ref = ref[:len(ref)-1]
		}

		if o.Len() != len(ref) {
			t.Fatalf("step %d: len %d, want %d", step, o.Len(), len(ref))
		}
		for _, u := range universe {
			n := refCount(ref, u)
			if o.Contains(u) != (n >= 1) {
				t.Fatalf("step %d: Contains(%v) = %v, ref count %d", step, u, o.Contains(u), n)
			}
			if o.ContainsMulti(u) != (n >= 2) {
				t.Fatalf("step %d: ContainsMulti(%v) = %v, ref count %d", step, u, o.ContainsMulti(u), n)
			}
		}
	}
}

func TestOccupancyAtPanicsOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on out-of-range At")
		}
	}()
	o := NewOccupancy(0)
	o.At(0)
}
