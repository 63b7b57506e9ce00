package board

import (
	"sort"
	"testing"

	"golang.org/x/exp/rand"
)

// checkIndex verifies pos[list[i]] == i for every i
func checkIndex(t *testing.T, f *FreeCells) {
	t.Helper()
	if len(f.pos) != len(f.list) {
		t.Fatalf("pos has %d entries, list has %d", len(f.pos), len(f.list))
	}
	for i, c := range f.list {
		if f.pos[c] != i {
			t.Fatalf("pos[%v] = %d, want %d", c, f.pos[c], i)
		}
	}
}

func sortedCells(cells []Cell) []Cell {
	out := append([]Cell(nil), cells...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func TestFreeCellsInit(t *testing.T) {
	f := NewFreeCells(4, 3, Cell{1, 1}, Cell{3, 2})
	if f.Len() != 10 {
		t.Fatalf("Expected 10 free cells, got %d", f.Len())
	}
	if f.Contains(Cell{1, 1}) || f.Contains(Cell{3, 2}) {
		t.Error("excluded cell reported free")
	}
	if !f.Contains(Cell{0, 0}) {
		t.Error("(0,0) should be free")
	}
	checkIndex(t, f)
}

func TestFreeCellsInsertRemove(t *testing.T) {
	f := NewFreeCells(3, 3)

	if f.Insert(Cell{1, 1}) {
		t.Error("Insert of an already-free cell should be a no-op")
	}
	if !f.Remove(Cell{1, 1}) {
		t.Error("Remove of a free cell should succeed")
	}
	if f.Remove(Cell{1, 1}) {
		t.Error("second Remove should be a no-op")
	}
	if f.Remove(Cell{-1, 0}) {
		t.Error("Remove of an off-board cell should be a no-op")
	}
	checkIndex(t, f)
}

func TestFreeCellsRoundTrip(t *testing.T) {
	f := NewFreeCells(5, 5, Cell{2, 2})
	before := sortedCells(f.Cells())

	for _, c := range []Cell{{2, 2}, {0, 0}, {4, 4}} {
		if c == (Cell{2, 2}) {
			f.Insert(c)
			f.Remove(c)
		} else {
			f.Remove(c)
			f.Insert(c)
		}
		checkIndex(t, f)
	}

	after := sortedCells(f.Cells())
	if len(before) != len(after) {
		t.Fatalf("round trip changed size: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("round trip changed contents at %d: %v vs %v", i, before[i], after[i])
		}
	}
}

func TestFreeCellsSample(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	f := NewFreeCells(4, 4)

	cells := f.Cells()
	for i, c := range cells {
		// Remove every other cell, sampling after each mutation
		if i%2 == 0 {
			f.Remove(c)
		}
		got, ok := f.Sample(r)
		if !ok {
			t.Fatal("Sample reported empty on a non-empty index")
		}
		if !f.Contains(got) {
			t.Fatalf("Sample returned non-free cell %v", got)
		}
	}

	for _, c := range f.Cells() {
		f.Remove(c)
	}
	if _, ok := f.Sample(r); ok {
		t.Error("Sample on empty index should report false")
	}
	if f.Len() != 0 {
		t.Errorf("Expected empty index, got %d", f.Len())
	}
}

func TestFreeCellsSampleCoversAll(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	f := NewFreeCells(3, 2)
	seen := make(map[Cell]bool)
	for i := 0; i < 600; i++ {
		c, _ := f.Sample(r)
		seen[c] = true
	}
	if len(seen) != 6 {
		t.Errorf("Expected all 6 cells sampled, saw %d", len(seen))
	}
}
