package game

import (
	"reflect"
	"testing"

	"gridsnake/board"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default config rejected: %v", err)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(" Survival "); err != nil || m != ModeSurvival {
		t.Errorf("Expected survival, got %v err=%v", m, err)
	}
	if _, err := ParseMode("arcade"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestParseKinds(t *testing.T) {
	got, err := ParseKinds("greedy, ASTAR,,human-wasd")
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{KindGreedy, KindAStar, KindHumanWASD}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if _, err := ParseKinds("greedy,snek"); err == nil {
		t.Error("Expected error for unknown kind")
	}
}

func TestControllerFor(t *testing.T) {
	single := Config{Controllers: []Kind{KindAStar}}
	if single.ControllerFor(5) != KindAStar {
		t.Error("A single kind should apply to every snake")
	}
	per := Config{Controllers: []Kind{KindGreedy, KindHumanArrow}}
	if per.ControllerFor(1) != KindHumanArrow {
		t.Errorf("Expected %s, got %s", KindHumanArrow, per.ControllerFor(1))
	}
}

func TestSpawnPointsSingle(t *testing.T) {
	spawns, err := SpawnPoints(40, 30, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := Spawn{Cell: board.Cell{X: 20, Y: 0}, Direction: board.Down}
	if len(spawns) != 1 || spawns[0] != want {
		t.Errorf("Expected %v, got %v", want, spawns)
	}
}

func TestSpawnPointsFaceInward(t *testing.T) {
	for n := 1; n <= MaxSnakes; n++ {
		spawns, err := SpawnPoints(40, 30, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(spawns) != n {
			t.Fatalf("n=%d: got %d spawns", n, len(spawns))
		}
		seen := make(map[board.Cell]bool)
		for _, s := range spawns {
			if !s.Cell.InBounds(40, 30) {
				t.Errorf("n=%d: spawn %v off the board", n, s.Cell)
			}
			if !s.Cell.Add(s.Direction).InBounds(40, 30) {
				t.Errorf("n=%d: spawn %v faces the wall", n, s)
			}
			if seen[s.Cell] {
				t.Errorf("n=%d: duplicate spawn %v", n, s.Cell)
			}
			seen[s.Cell] = true
		}
	}
}

func TestSpawnPointsErrors(t *testing.T) {
	if _, err := SpawnPoints(40, 30, MaxSnakes+1); err == nil {
		t.Error("Expected error above the slot count")
	}
	if _, err := SpawnPoints(40, 30, 0); err == nil {
		t.Error("Expected error for zero snakes")
	}
	if _, err := SpawnPoints(1, 1, 2); err == nil {
		t.Error("Expected error when slots collide")
	}
}
