package board

// Occupancy is a double-ended queue of cells with a per-cell multiplicity count.
// Front is the head end. Count entries are deleted when they reach zero, so
// len(count) is the number of distinct cells in the queue.
//
// Storage is a power-of-two ring buffer; it grows by doubling and never shrinks.
type Occupancy struct {
	buf   []Cell
	head  int // index of front element
	size  int
	count map[Cell]int
}

const minOccupancyCap = 8

// NewOccupancy creates an empty queue sized for roughly capHint cells
func NewOccupancy(capHint int) *Occupancy {
	n := minOccupancyCap
	for n < capHint {
		n <<= 1
	}
	return &Occupancy{
		buf:   make([]Cell, n),
		count: make(map[Cell]int, capHint),
	}
}

// Len returns the number of cells, duplicates included
func (o *Occupancy) Len() int {
	return o.size
}

// PushFront adds c at the head end
func (o *Occupancy) PushFront(c Cell) {
	o.reserve()
	o.head = (o.head - 1) & o.mask()
	o.buf[o.head] = c
	o.size++
	o.count[c]++
}

// PushBack adds c at the tail end
func (o *Occupancy) PushBack(c Cell) {
	o.reserve()
	o.buf[(o.head+o.size)&o.mask()] = c
	o.size++
	o.count[c]++
}

// PopFront removes and returns the head-end cell
func (o *Occupancy) PopFront() (Cell, bool) {
	if o.size == 0 {
		return Cell{}, false
	}
	c := o.buf[o.head]
	o.head = (o.head + 1) & o.mask()
	o.size--
	o.release(c)
	return c, true
}

// PopBack removes and returns the tail-end cell
func (o *Occupancy) PopBack() (Cell, bool) {
	if o.size == 0 {
		return Cell{}, false
	}
	o.size--
	c := o.buf[(o.head+o.size)&o.mask()]
	o.release(c)
	return c, true
}

// Front returns the head-end cell without removing it
func (o *Occupancy) Front() (Cell, bool) {
	if o.size == 0 {
		return Cell{}, false
	}
	return o.buf[o.head], true
}

// Back returns the tail-end cell without removing it
func (o *Occupancy) Back() (Cell, bool) {
	if o.size == 0 {
		return Cell{}, false
	}
	return o.buf[(o.head+o.size-1)&o.mask()], true
}

// At returns the i-th cell counted from the front. Panics when out of range.
func (o *Occupancy) At(i int) Cell {
	if i < 0 || i >= o.size {
		panic("board: occupancy index out of range")
	}
	return o.buf[(o.head+i)&o.mask()]
}

// Contains reports whether c appears at least once
func (o *Occupancy) Contains(c Cell) bool {
	return o.count[c] > 0
}

// ContainsMulti reports whether c appears more than once
func (o *Occupancy) ContainsMulti(c Cell) bool {
	return o.count[c] > 1
}

// Count returns the multiplicity of c
func (o *Occupancy) Count(c Cell) int {
	return o.count[c]
}

// Distinct returns the number of distinct cells
func (o *Occupancy) Distinct() int {
	return len(o.count)
}

// Cells returns a front-to-back copy
func (o *Occupancy) Cells() []Cell {
	out := make([]Cell, o.size)
	for i := range out {
		out[i] = o.buf[(o.head+i)&o.mask()]
	}
	return out
}

func (o *Occupancy) mask() int {
	return len(o.buf) - 1
}

func (o *Occupancy) release(c Cell) {
	n := o.count[c]
	switch {
	case n <= 0:
		panic("board: occupancy count drift")
	case n == 1:
		delete(o.count, c)
	default:
		o.count[c] = n - 1
	}
}

// reserve doubles the ring when full, unrolling it so head returns to 0
func (o *Occupancy) reserve() {
	if o.size < len(o.buf) {
		return
	}
	grown := make([]Cell, len(o.buf)*2)
	for i := 0; i < o.size; i++ {
		grown[i] = o.buf[(o.head+i)&o.mask()]
	}
	o.buf = grown
	o.head = 0
}
