package game

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"gridsnake/board"
)

// Engine owns every snake, controller, the free-cell index and the food, and
// advances them one tick per Update. It is not safe for concurrent use; hosts
// serialize Update, HandleKey and the read queries themselves.
type Engine struct {
	cfg           Config
	width, height int

	snakes      map[int]*Snake
	controllers map[int]Controller
	ids         []int    // tracked ids, ascending
	list        []*Snake // snakes in ids order
	order       []int    // per-tick permutation scratch

	free *board.FreeCells
	food Food
	step uint64
	rng  *rand.Rand

	events []Event
	view   View
}

// NewEngine builds an engine from cfg. rng drives the per-tick iteration
// order and food placement; nil seeds one from cfg.Seed. Nothing is built when
// cfg is invalid.
func NewEngine(cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game config")
	}

	spawns := cfg.Spawns
	if len(spawns) == 0 {
		var err error
		spawns, err = SpawnPoints(cfg.Width, cfg.Height, cfg.NumSnakes)
		if err != nil {
			return nil, errors.Wrap(err, "invalid game config")
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	e := &Engine{
		cfg:         cfg,
		width:       cfg.Width,
		height:      cfg.Height,
		snakes:      make(map[int]*Snake, cfg.NumSnakes),
		controllers: make(map[int]Controller, cfg.NumSnakes),
		rng:         rng,
	}

	starts := make([]board.Cell, 0, len(spawns))
	for i, sp := range spawns {
		ctrl, err := NewController(cfg.ControllerFor(i), sp.Direction)
		if err != nil {
			return nil, errors.Wrapf(err, "snake %d", i)
		}
		e.snakes[i] = NewSnake(i, sp.Cell, cfg.SnakeSize)
		e.controllers[i] = ctrl
		e.ids = append(e.ids, i)
		starts = append(starts, sp.Cell)
	}
	e.rebuildList()
	e.free = board.NewFreeCells(cfg.Width, cfg.Height, starts...)

	return e, nil
}

// Update advances every tracked snake one step, in a fresh random order each
// tick. Returns false once no snake remains.
func (e *Engine) Update() bool {
	if len(e.ids) == 0 {
		return false
	}
	e.verify()

	e.step++
	e.events = e.events[:0]

	e.order = append(e.order[:0], e.ids...)
	e.rng.Shuffle(len(e.order), func(i, j int) {
		e.order[i], e.order[j] = e.order[j], e.order[i]
	})

	for _, id := range e.order {
		e.updateSnake(id)
	}
	return len(e.ids) > 0
}

func (e *Engine) updateSnake(id int) {
	s, ok := e.snakes[id]
	if !ok {
		panic(fmt.Sprintf("game: snake %d scheduled but not tracked", id))
	}
	ctrl, ok := e.controllers[id]
	if !ok {
		panic(fmt.Sprintf("game: snake %d has no controller", id))
	}

	// 1. Direction
	dir := ctrl.Direction()
	if s.Alive() {
		dir = ctrl.Decide(e.viewFor(s))
	}

	// 2. Move, or shrink when dead
	food, hasFood := e.food.Position()
	s.Update(dir, food, hasFood)

	// 3. Free-cell index: vacated tail back in, new head out
	if tail, ok := s.LastRemovedTail(); ok {
		e.release(tail)
	}
	head, hasHead := s.Head()
	if s.Alive() && hasHead {
		e.free.Remove(head)
	}

	// 4. Food
	if s.Ate() {
		e.food.Remove()
		e.emit(EventAte, id, head)
	}
	if !e.food.Exists() {
		e.respawnFood()
	}

	// 5. Collisions and survival growth
	if s.Alive() {
		if s.CheckCollision(e.width, e.height, e.list, e.cfg.SelfCollisionMinLength) {
			e.emit(EventDied, id, head)
			if c, ok := s.LastRemovedTail(); ok {
				e.release(c)
			}
		} else if e.cfg.Mode == ModeSurvival && e.step%uint64(e.cfg.SurvivalGrowEvery) == 0 {
			s.Grow()
			e.emit(EventGrew, id, head)
		}
	}

	// 6. Drop snakes that have fully shrunk away
	if !s.Exists() {
		e.remove(id)
		at, _ := s.DiedAt()
		e.emit(EventRemoved, id, at)
	}
}

// release returns c to the free index unless it is off the board or still
// covered by some snake
func (e *Engine) release(c board.Cell) {
	if !c.InBounds(e.width, e.height) {
		return
	}
	for _, s := range e.list {
		if s.Occupies(c) {
			return
		}
	}
	e.free.Insert(c)
}

func (e *Engine) respawnFood() {
	c, ok := e.free.Sample(e.rng)
	if !ok {
		e.emit(EventBoardFull, -1, board.Cell{})
		return
	}
	e.food.Respawn(c)
	e.emit(EventFoodSpawn, -1, c)
}

func (e *Engine) remove(id int) {
	delete(e.snakes, id)
	delete(e.controllers, id)
	for i, v := range e.ids {
		if v == id {
			e.ids = append(e.ids[:i], e.ids[i+1:]...)
			break
		}
	}
	e.rebuildList()
}

func (e *Engine) rebuildList() {
	sort.Ints(e.ids)
	e.list = e.list[:0]
	for _, id := range e.ids {
		e.list = append(e.list, e.snakes[id])
	}
}

func (e *Engine) viewFor(s *Snake) *View {
	food, hasFood := e.food.Position()
	e.view = View{
		Self:    s,
		Food:    food,
		HasFood: hasFood,
		Width:   e.width,
		Height:  e.height,
		Snakes:  e.list,
	}
	return &e.view
}

func (e *Engine) emit(t EventType, id int, c board.Cell) {
	e.events = append(e.events, Event{Type: t, SnakeID: id, Cell: c, Step: e.step})
}

// verify panics before any mutation when the tracked sets disagree or a live
// snake lost its body
func (e *Engine) verify() {
	if len(e.snakes) != len(e.ids) || len(e.controllers) != len(e.ids) {
		panic(fmt.Sprintf("game: tracking drift: %d ids, %d snakes, %d controllers",
			len(e.ids), len(e.snakes), len(e.controllers)))
	}
	for _, id := range e.ids {
		s, ok := e.snakes[id]
		if !ok {
			panic(fmt.Sprintf("game: id %d has no snake", id))
		}
		if _, ok := e.controllers[id]; !ok {
			panic(fmt.Sprintf("game: snake %d has no controller", id))
		}
		if s.Alive() && s.Len() == 0 {
			panic(fmt.Sprintf("game: live snake %d has an empty body", id))
		}
	}
}

// CheckInvariants walks the whole board and reports the first cell where the
// free index disagrees with snake occupancy. Costs O(width*height*snakes);
// meant for tests and debug builds, not the tick path.
func (e *Engine) CheckInvariants() error {
	free := 0
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			c := board.Cell{X: x, Y: y}
			covered := false
			for _, s := range e.list {
				if s.Occupies(c) {
					covered = true
					break
				}
			}
			if covered == e.free.Contains(c) {
				return errors.Errorf("cell %v: covered=%v free=%v", c, covered, !covered)
			}
			if !covered {
				free++
			}
		}
	}
	if free != e.free.Len() {
		return errors.Errorf("free index holds %d cells, board has %d", e.free.Len(), free)
	}
	if c, ok := e.food.Position(); ok && !e.free.Contains(c) {
		return errors.Errorf("food at %v sits on a covered cell", c)
	}
	return nil
}

// HandleKey routes a key-down to every live human-controlled snake. Returns
// true if any of them turned.
func (e *Engine) HandleKey(k Key) bool {
	turned := false
	for _, id := range e.ids {
		h, ok := e.controllers[id].(*Human)
		if !ok || !e.snakes[id].Alive() {
			continue
		}
		if h.HandleKey(k) {
			turned = true
		}
	}
	return turned
}

// PlaceFood puts the food on c if c is free. Returns false otherwise.
func (e *Engine) PlaceFood(c board.Cell) bool {
	if !e.free.Contains(c) {
		return false
	}
	e.food.Respawn(c)
	return true
}

// --- Read-only queries ---

// Width returns the board width in cells
func (e *Engine) Width() int { return e.width }

// Height returns the board height in cells
func (e *Engine) Height() int { return e.height }

// Mode returns the game mode
func (e *Engine) Mode() Mode { return e.cfg.Mode }

// Step returns the number of completed ticks
func (e *Engine) Step() uint64 { return e.step }

// SnakeCount returns the number of tracked snakes, dying ones included
func (e *Engine) SnakeCount() int { return len(e.ids) }

// AliveCount returns the number of snakes that have not collided
func (e *Engine) AliveCount() int {
	n := 0
	for _, s := range e.list {
		if s.Alive() {
			n++
		}
	}
	return n
}

// IDs returns the tracked snake ids in ascending order
func (e *Engine) IDs() []int {
	return append([]int(nil), e.ids...)
}

// Body returns a snake's cells head-first, nil for unknown ids
func (e *Engine) Body(id int) []board.Cell {
	s, ok := e.snakes[id]
	if !ok {
		return nil
	}
	return s.Body()
}

// Head returns a snake's head cell
func (e *Engine) Head(id int) (board.Cell, bool) {
	s, ok := e.snakes[id]
	if !ok {
		return board.Cell{}, false
	}
	return s.Head()
}

// Direction returns a snake's current controller direction
func (e *Engine) Direction(id int) (board.Cell, bool) {
	c, ok := e.controllers[id]
	if !ok {
		return board.Cell{}, false
	}
	return c.Direction(), true
}

// Alive reports whether a tracked snake is still alive
func (e *Engine) Alive(id int) bool {
	s, ok := e.snakes[id]
	return ok && s.Alive()
}

// FoodPosition returns the food cell, false when absent
func (e *Engine) FoodPosition() (board.Cell, bool) {
	return e.food.Position()
}

// FreeCount returns the number of unoccupied cells
func (e *Engine) FreeCount() int {
	return e.free.Len()
}

// Events returns what happened during the last Update
func (e *Engine) Events() []Event {
	return append([]Event(nil), e.events...)
}
