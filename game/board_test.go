package game

import (
	"errors"
	"strings"
	"testing"
)

// mustBoard builds a board from per-cell snapshot rows, failing the test on
// any malformed layout.
func mustBoard(t *testing.T, rows ...string) *Board {
	t.Helper()

	snapshot := &Snapshot{SerializedBoard: strings.Join(rows, "\n")}
	board, err := snapshot.Board(false)
	if err != nil {
		t.Fatalf("unable to build board from snapshot: %v", err)
	}
	return board
}

func countMines(board *Board) int {
	mines := 0
	for _, cell := range board.Cells() {
		if cell.isMine {
			mines++
		}
	}
	return mines
}

// assertNeighborCounts brute-forces every cell's neighboring mines by
// coordinate and compares with the board's recorded counts.
func assertNeighborCounts(t *testing.T, board *Board) {
	t.Helper()

	for _, cell := range board.Cells() {
		want := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				neighbor := board.CellAt(cell.x+dx, cell.y+dy)
				if neighbor != nil && neighbor.isMine {
					want++
				}
			}
		}

		if cell.numMines != want {
			t.Errorf("%v: numMines = %d, want %d", cell, cell.numMines, want)
		}
	}
}

func TestNewPlacesExactMineCount(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"easy", Config{Width: 9, Height: 9, NumMines: 10, Seed: 1}},
		{"intermediate", Config{Width: 16, Height: 16, NumMines: 40, Seed: 2}},
		{"hard", Config{Width: 22, Height: 22, NumMines: 99, Seed: 3}},
		{"rectangular", Config{Width: 30, Height: 16, NumMines: 99, Seed: 4}},
		{"nearly full", Config{Width: 3, Height: 3, NumMines: 8, Seed: 5}},
		{"single mine", Config{Width: 2, Height: 1, NumMines: 1, Seed: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := New(tt.config)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			if mines := countMines(board); mines != tt.config.NumMines {
				t.Errorf("placed %d mines, want %d", mines, tt.config.NumMines)
			}
			if want := tt.config.Width*tt.config.Height - tt.config.NumMines; len(board.remaining) != want {
				t.Errorf("%d cells remaining, want %d", len(board.remaining), want)
			}

			assertNeighborCounts(t, board)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"zero width", Config{Width: 0, Height: 9, NumMines: 10}},
		{"zero height", Config{Width: 9, Height: 0, NumMines: 10}},
		{"negative width", Config{Width: -3, Height: 9, NumMines: 10}},
		{"zero mines", Config{Width: 9, Height: 9, NumMines: 0}},
		{"negative mines", Config{Width: 9, Height: 9, NumMines: -1}},
		{"all cells mined", Config{Width: 9, Height: 9, NumMines: 81}},
		{"too many mines", Config{Width: 9, Height: 9, NumMines: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := New(tt.config)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New() error = %v, want ErrInvalidConfig", err)
			}
			if board != nil {
				t.Error("New() returned a board for an invalid config")
			}
		})
	}
}

func TestNewIsDeterministicForSeed(t *testing.T) {
	config := Config{Width: 16, Height: 16, NumMines: 40, Seed: 42}

	first, err := New(config)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	second, err := New(config)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if a, b := first.Snapshot().SerializedBoard, second.Snapshot().SerializedBoard; a != b {
		t.Errorf("same seed produced different boards:\n%s\n---\n%s", a, b)
	}
}

func TestRelocateMine(t *testing.T) {
	board, err := New(Config{Width: 9, Height: 9, NumMines: 10, Seed: 7})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	var mine *Cell
	for _, cell := range board.Cells() {
		if cell.isMine {
			mine = cell
			break
		}
	}

	board.RelocateMine(mine)

	if mine.isMine {
		t.Error("relocated cell still holds a mine")
	}
	if mines := countMines(board); mines != 10 {
		t.Errorf("relocation changed mine count to %d, want 10", mines)
	}
	if !board.remaining.Contains(mine) {
		t.Error("relocated cell not tracked as a remaining safe cell")
	}

	assertNeighborCounts(t, board)
}

func TestRelocateMineNoOpOnSafeCell(t *testing.T) {
	board := mustBoard(t,
		"O##",
		"###",
		"##O",
	)
	before := board.Snapshot().SerializedBoard

	board.RelocateMine(board.CellAt(1, 1))

	if after := board.Snapshot().SerializedBoard; after != before {
		t.Errorf("relocating a safe cell changed the board:\n%s\n---\n%s", before, after)
	}
}
