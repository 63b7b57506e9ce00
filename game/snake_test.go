package game

import (
	"reflect"
	"testing"

	"gridsnake/board"
)

// makeSnake builds an alive snake from explicit head-first cells
func makeSnake(id int, cells ...board.Cell) *Snake {
	s := &Snake{
		ID:     id,
		body:   board.NewOccupancy(len(cells)),
		alive:  true,
		exists: true,
	}
	for _, c := range cells {
		s.body.PushBack(c)
	}
	return s
}

func TestSnakeNewStacksSegments(t *testing.T) {
	s := NewSnake(0, board.Cell{X: 2, Y: 2}, 3)
	if s.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", s.Len())
	}
	for i, c := range s.Body() {
		if c != (board.Cell{X: 2, Y: 2}) {
			t.Errorf("Segment %d: expected (2,2), got %v", i, c)
		}
	}
	if !s.Alive() || !s.Exists() {
		t.Error("New snake should be alive and exist")
	}
}

func TestSnakeMoveUnfolds(t *testing.T) {
	s := NewSnake(0, board.Cell{X: 2, Y: 2}, 3)

	s.Move(board.Right)
	if _, ok := s.LastRemovedTail(); ok {
		t.Error("Stacked tail still covered, nothing should be vacated")
	}
	s.Move(board.Right)
	if _, ok := s.LastRemovedTail(); ok {
		t.Error("Stacked tail still covered after second move")
	}
	s.Move(board.Right)
	tail, ok := s.LastRemovedTail()
	if !ok || tail != (board.Cell{X: 2, Y: 2}) {
		t.Errorf("Expected (2,2) vacated, got %v ok=%v", tail, ok)
	}

	want := []board.Cell{{X: 5, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 2}}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected body %v, got %v", want, got)
	}
}

func TestSnakeGrowKeepsHead(t *testing.T) {
	s := NewSnake(0, board.Cell{X: 1, Y: 1}, 1)
	s.Grow()
	if s.Len() != 2 {
		t.Fatalf("Expected length 2, got %d", s.Len())
	}
	if h, _ := s.Head(); h != (board.Cell{X: 1, Y: 1}) {
		t.Errorf("Grow moved the head to %v", h)
	}

	s.Move(board.Right)
	want := []board.Cell{{X: 2, Y: 1}, {X: 1, Y: 1}}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected body %v, got %v", want, got)
	}
	if _, ok := s.LastRemovedTail(); ok {
		t.Error("Duplicated tail cell should not be reported vacated")
	}
}

func TestSnakeUpdateEats(t *testing.T) {
	s := NewSnake(0, board.Cell{X: 1, Y: 1}, 1)
	s.Update(board.Right, board.Cell{X: 2, Y: 1}, true)

	if !s.Ate() {
		t.Fatal("Expected snake to eat")
	}
	if s.Score != 1 {
		t.Errorf("Expected score 1, got %d", s.Score)
	}
	if s.Len() != 2 {
		t.Errorf("Expected length 2, got %d", s.Len())
	}
	if h, _ := s.Head(); h != (board.Cell{X: 2, Y: 1}) {
		t.Errorf("Expected head (2,1), got %v", h)
	}

	s.Update(board.Right, board.Cell{X: 2, Y: 1}, false)
	if s.Ate() {
		t.Error("Ate flag should reset on the next update")
	}
}

func TestSnakeGrowthCopyIsNotSelfCollision(t *testing.T) {
	s := NewSnake(0, board.Cell{X: 5, Y: 5}, 1)
	s.Update(board.Right, board.Cell{X: 6, Y: 5}, true)

	if s.CheckCollision(10, 10, nil, 0) {
		t.Fatalf("Length-1 snake died eating, body %v", s.Body())
	}
	if !s.Alive() || s.Len() != 2 {
		t.Errorf("Expected alive snake of length 2, got alive=%v len=%d", s.Alive(), s.Len())
	}

	// The copy unfolds on the next move
	s.Update(board.Right, board.Cell{}, false)
	if s.CheckCollision(10, 10, nil, 0) {
		t.Errorf("Unexpected collision after growth, body %v", s.Body())
	}
	want := []board.Cell{{X: 7, Y: 5}, {X: 6, Y: 5}}
	if got := s.Body(); len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Expected body %v, got %v", want, got)
	}
}

func TestSnakeWallCollision(t *testing.T) {
	s := NewSnake(0, board.Cell{X: 0, Y: 0}, 1)
	s.Move(board.Left)
	if !s.CheckCollision(5, 5, nil, 0) {
		t.Fatal("Expected wall collision")
	}
	if s.Alive() {
		t.Error("Snake should be dead")
	}
	if s.Len() != 0 {
		t.Errorf("Expected head stripped, length %d", s.Len())
	}
	if !s.Exists() {
		t.Error("Snake should exist until an update finds it empty")
	}

	s.Update(board.Left, board.Cell{}, false)
	if s.Exists() {
		t.Error("Empty dead snake should stop existing")
	}
}

func TestSnakeDeathShrink(t *testing.T) {
	s := makeSnake(0, board.Cell{X: 3, Y: 0}, board.Cell{X: 2, Y: 0}, board.Cell{X: 1, Y: 0})
	s.Die()
	if s.Len() != 2 {
		t.Fatalf("Expected length 2 after death, got %d", s.Len())
	}
	if c, ok := s.LastRemovedTail(); !ok || c != (board.Cell{X: 3, Y: 0}) {
		t.Errorf("Expected (3,0) vacated, got %v ok=%v", c, ok)
	}

	s.Update(board.Right, board.Cell{X: 4, Y: 0}, true)
	if h, _ := s.Head(); h != (board.Cell{X: 1, Y: 0}) {
		t.Errorf("Dead snake should shrink from the front, head %v", h)
	}
	if s.Ate() {
		t.Error("Dead snake must not eat")
	}
	s.Update(board.Right, board.Cell{}, false)
	if s.Len() != 0 || !s.Exists() {
		t.Fatalf("Expected empty but existing, len=%d exists=%v", s.Len(), s.Exists())
	}
	s.Update(board.Right, board.Cell{}, false)
	if s.Exists() {
		t.Error("Expected snake gone")
	}
}

func TestSnakeSelfCollisionGuard(t *testing.T) {
	path := []board.Cell{board.Right, board.Down, board.Left, board.Up}

	bite := NewSnake(0, board.Cell{X: 2, Y: 2}, 5)
	for _, d := range path {
		bite.Move(d)
	}
	if !bite.CheckCollision(10, 10, nil, 0) {
		t.Error("Expected self collision without guard")
	}

	guarded := NewSnake(1, board.Cell{X: 2, Y: 2}, 5)
	for _, d := range path {
		guarded.Move(d)
	}
	if guarded.CheckCollision(10, 10, nil, 5) {
		t.Error("Length guard 5 should skip the self check for a 5-segment snake")
	}
}

func TestSnakeOtherCollision(t *testing.T) {
	a := makeSnake(0, board.Cell{X: 1, Y: 1})
	b := makeSnake(1, board.Cell{X: 2, Y: 1}, board.Cell{X: 3, Y: 1})
	all := []*Snake{a, b}

	if a.CheckCollision(5, 5, all, 0) {
		t.Fatal("No overlap yet")
	}
	a.Move(board.Right)
	if !a.CheckCollision(5, 5, all, 0) {
		t.Error("Expected collision with the other snake")
	}

	c := makeSnake(2, board.Cell{X: 1, Y: 3})
	d := makeSnake(3, board.Cell{X: 2, Y: 3})
	d.alive = false
	c.Move(board.Right)
	if c.CheckCollision(5, 5, []*Snake{c, d}, 0) {
		t.Error("Dead snakes are not collision targets")
	}
}

func TestSnakeMoveEmptyPanics(t *testing.T) {
	s := NewSnake(7, board.Cell{X: 0, Y: 0}, 1)
	s.Die()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic moving an empty snake")
		}
	}()
	s.Move(board.Right)
}

func TestFood(t *testing.T) {
	var f Food
	if f.Exists() {
		t.Fatal("Zero food should be absent")
	}
	f.Respawn(board.Cell{X: 3, Y: 4})
	if c, ok := f.Position(); !ok || c != (board.Cell{X: 3, Y: 4}) {
		t.Errorf("Expected (3,4), got %v ok=%v", c, ok)
	}
	f.Remove()
	if _, ok := f.Position(); ok {
		t.Error("Removed food still reported")
	}
}
