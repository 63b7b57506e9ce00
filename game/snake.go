package game

import (
	"fmt"

	"gridsnake/board"
)

// Snake is one agent's body on the grid
type Snake struct {
	ID    int
	Score int // food eaten

	body *board.Occupancy

	lastTail    board.Cell // cell vacated by the last move or shrink
	hasLastTail bool
	diedAt      board.Cell // head cell on the collision tick
	ate         bool
	alive       bool
	exists      bool
}

// NewSnake creates a snake at start. The extra size-1 segments are stacked on
// the start cell and unfold as the snake moves.
func NewSnake(id int, start board.Cell, size int) *Snake {
	s := &Snake{
		ID:     id,
		body:   board.NewOccupancy(size * 2),
		alive:  true,
		exists: true,
	}
	s.body.PushBack(start)
	for i := 0; i < size-1; i++ {
		s.Grow()
	}
	return s
}

// Head returns the head cell, false once the body is empty
func (s *Snake) Head() (board.Cell, bool) {
	return s.body.Front()
}

// Tail returns the tail cell, false once the body is empty
func (s *Snake) Tail() (board.Cell, bool) {
	return s.body.Back()
}

// Body returns the segments head-first
func (s *Snake) Body() []board.Cell {
	return s.body.Cells()
}

// Len returns the number of segments, stacked duplicates included
func (s *Snake) Len() int {
	return s.body.Len()
}

// Occupies reports whether any segment covers c
func (s *Snake) Occupies(c board.Cell) bool {
	return s.body.Contains(c)
}

// Alive is false from the collision tick onward
func (s *Snake) Alive() bool {
	return s.alive
}

// Exists is false once a dead snake has fully shrunk away
func (s *Snake) Exists() bool {
	return s.exists
}

// Ate reports whether the last Update consumed food
func (s *Snake) Ate() bool {
	return s.ate
}

// LastRemovedTail returns the cell the last Update vacated. False when nothing
// was vacated or the popped cell is still covered by another segment.
func (s *Snake) LastRemovedTail() (board.Cell, bool) {
	return s.lastTail, s.hasLastTail
}

// Move advances the head one cell in dir and drops the tail segment
func (s *Snake) Move(dir board.Cell) {
	head, ok := s.body.Front()
	if !ok {
		panic(fmt.Sprintf("game: move on empty body of snake %d", s.ID))
	}
	s.body.PushFront(head.Add(dir))
	tail, _ := s.body.PopBack()
	s.setVacated(tail)
}

// Grow stacks a copy of the tail so the next move leaves it in place
func (s *Snake) Grow() {
	tail, ok := s.body.Back()
	if !ok {
		panic(fmt.Sprintf("game: grow on empty body of snake %d", s.ID))
	}
	s.body.PushBack(tail)
}

// Update advances the snake one tick. A dead snake loses its front segment
// instead of moving; once its body is empty it stops existing.
func (s *Snake) Update(dir board.Cell, food board.Cell, hasFood bool) {
	s.ate = false
	s.hasLastTail = false

	if !s.alive {
		s.shrink()
		return
	}

	s.Move(dir)
	if head, _ := s.body.Front(); hasFood && head == food {
		s.Grow()
		s.ate = true
		s.Score++
	}
}

// CheckCollision tests the head against the walls, the snake's own body and
// every other alive snake. A hit kills the snake.
func (s *Snake) CheckCollision(width, height int, others []*Snake, minSelfLen int) bool {
	head, ok := s.body.Front()
	if !ok {
		return false
	}
	hit := !head.InBounds(width, height)
	if !hit && s.body.Len() > minSelfLen {
		limit := 1
		// A length-1 snake that just ate stacks its growth copy on the head
		if tail, _ := s.body.Back(); s.ate && tail == head {
			limit = 2
		}
		hit = s.body.Count(head) > limit
	}
	if !hit {
		for _, o := range others {
			if o == s || !o.alive {
				continue
			}
			if o.body.Contains(head) {
				hit = true
				break
			}
		}
	}
	if hit {
		s.Die()
	}
	return hit
}

// Die marks the snake dead and strips its head at once. The stripped cell is
// reported through LastRemovedTail when nothing else of the body covers it.
func (s *Snake) Die() {
	s.alive = false
	if c, ok := s.body.PopFront(); ok {
		s.diedAt = c
		s.setVacated(c)
	}
}

// DiedAt returns where the head was when the snake died
func (s *Snake) DiedAt() (board.Cell, bool) {
	return s.diedAt, !s.alive
}

func (s *Snake) shrink() {
	c, ok := s.body.PopFront()
	if !ok {
		s.exists = false
		return
	}
	s.setVacated(c)
}

func (s *Snake) setVacated(c board.Cell) {
	if s.body.Contains(c) {
		s.hasLastTail = false
		return
	}
	s.lastTail = c
	s.hasLastTail = true
}
