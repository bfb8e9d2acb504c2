package game

import (
	"testing"
)

func TestRevealFloodsZeroRegion(t *testing.T) {
	board := mustBoard(t,
		"#####",
		"#####",
		"#####",
		"#####",
		"####O",
	)

	board.Reveal(board.CellAt(0, 0))

	for _, cell := range board.Cells() {
		if cell.isMine {
			if cell.isRevealed {
				t.Errorf("%v: flood revealed a mine", cell)
			}
			continue
		}
		if !cell.isRevealed {
			t.Errorf("%v: not revealed by flood", cell)
		}
	}

	// The mine's neighbors carry their numbers, everything else is empty
	if state := board.CellAt(3, 3).State(); state != Number1 {
		t.Errorf("CellAt(3, 3).State() = %v, want Number1", state)
	}
	if state := board.CellAt(0, 0).State(); state != Empty {
		t.Errorf("CellAt(0, 0).State() = %v, want Empty", state)
	}

	if board.State() != Won {
		t.Errorf("State() = %v, want Won", board.State())
	}
}

func TestRevealFloodStopsAtFlags(t *testing.T) {
	board := mustBoard(t,
		"#####",
		"#####",
		"#####",
		"#####",
		"####O",
	)
	flagged := board.CellAt(2, 2)
	board.ToggleMarker(flagged)

	board.Reveal(board.CellAt(0, 0))

	if flagged.isRevealed {
		t.Error("flood revealed a flagged cell")
	}
	if board.State() != Ongoing {
		t.Errorf("State() = %v, want Ongoing", board.State())
	}
	if len(board.remaining) != 1 || !board.remaining.Contains(flagged) {
		t.Errorf("remaining = %v, want only the flagged cell", board.remaining)
	}
}

func TestRevealIsIdempotent(t *testing.T) {
	board := mustBoard(t,
		"#####",
		"#####",
		"#####",
		"#####",
		"####O",
	)

	board.Reveal(board.CellAt(0, 0))
	once := board.Snapshot().SerializedBoard

	board.Reveal(board.CellAt(0, 0))
	twice := board.Snapshot().SerializedBoard

	if once != twice {
		t.Errorf("second reveal changed the board:\n%s\n---\n%s", once, twice)
	}
}

func TestRevealFlaggedCellIsNoOp(t *testing.T) {
	board := mustBoard(t,
		"O##",
		"###",
		"###",
	)
	cell := board.CellAt(2, 2)
	board.ToggleMarker(cell)

	board.Reveal(cell)

	if cell.isRevealed {
		t.Error("revealed a flagged cell")
	}
}

func TestRevealQuestionedCellClearsMarker(t *testing.T) {
	board := mustBoard(t,
		"O##",
		"###",
		"###",
	)
	cell := board.CellAt(1, 1)
	board.ToggleMarker(cell) // flag
	board.ToggleMarker(cell) // question

	board.Reveal(cell)

	if !cell.isRevealed {
		t.Error("questioned cell not revealed")
	}
	if cell.marker != MarkerNone {
		t.Errorf("marker = %v, want MarkerNone", cell.marker)
	}
}

func TestRevealMineLosesAndShowsAllMines(t *testing.T) {
	board := mustBoard(t,
		"O#f",
		"###",
		"#O#",
	)

	board.Reveal(board.CellAt(0, 0))

	if board.State() != Lost {
		t.Fatalf("State() = %v, want Lost", board.State())
	}
	if state := board.CellAt(0, 0).State(); state != MineLosing {
		t.Errorf("losing mine state = %v, want MineLosing", state)
	}
	if state := board.CellAt(1, 2).State(); state != MineUnrevealed {
		t.Errorf("other mine state = %v, want MineUnrevealed", state)
	}
	if state := board.CellAt(2, 0).State(); state != FlagWrong {
		t.Errorf("misplaced flag state = %v, want FlagWrong", state)
	}
}

func TestRevealAfterGameOverIsNoOp(t *testing.T) {
	board := mustBoard(t,
		"O##",
		"###",
		"###",
	)
	board.Reveal(board.CellAt(0, 0))
	if board.State() != Lost {
		t.Fatalf("State() = %v, want Lost", board.State())
	}

	cell := board.CellAt(2, 2)
	board.Reveal(cell)

	if cell.isRevealed {
		t.Error("reveal succeeded after the game ended")
	}
}

func TestToggleMarkerCycles(t *testing.T) {
	board := mustBoard(t,
		"O##",
		"###",
		"###",
	)
	cell := board.CellAt(2, 2)

	board.ToggleMarker(cell)
	if cell.marker != MarkerFlag || board.numFlags != 1 {
		t.Errorf("after first toggle: marker = %v, numFlags = %d; want MarkerFlag, 1", cell.marker, board.numFlags)
	}

	board.ToggleMarker(cell)
	if cell.marker != MarkerQuestion || board.numFlags != 0 {
		t.Errorf("after second toggle: marker = %v, numFlags = %d; want MarkerQuestion, 0", cell.marker, board.numFlags)
	}

	board.ToggleMarker(cell)
	if cell.marker != MarkerNone || board.numFlags != 0 {
		t.Errorf("after third toggle: marker = %v, numFlags = %d; want MarkerNone, 0", cell.marker, board.numFlags)
	}
}

func TestToggleMarkerOnRevealedCellIsNoOp(t *testing.T) {
	board := mustBoard(t,
		"O##",
		"###",
		"###",
	)
	cell := board.CellAt(1, 1)
	board.Reveal(cell)

	board.ToggleMarker(cell)

	if cell.marker != MarkerNone {
		t.Errorf("marker = %v, want MarkerNone", cell.marker)
	}
}

func TestFlagsAreCappedAtMineCount(t *testing.T) {
	board := mustBoard(t,
		"O###",
	)

	board.ToggleMarker(board.CellAt(1, 0))
	if board.numFlags != 1 {
		t.Fatalf("numFlags = %d, want 1", board.numFlags)
	}

	// Flag capacity exhausted: the next cell skips straight to question
	capped := board.CellAt(2, 0)
	board.ToggleMarker(capped)

	if capped.marker != MarkerQuestion {
		t.Errorf("marker = %v, want MarkerQuestion", capped.marker)
	}
	if board.numFlags != 1 {
		t.Errorf("numFlags = %d, want 1", board.numFlags)
	}
}

func TestToggleMarkerAfterGameOverIsNoOp(t *testing.T) {
	board := mustBoard(t,
		"O##",
		"###",
		"###",
	)
	board.Reveal(board.CellAt(0, 0))

	cell := board.CellAt(2, 2)
	board.ToggleMarker(cell)

	if cell.marker != MarkerNone {
		t.Errorf("marker = %v, want MarkerNone", cell.marker)
	}
}

func TestChordRevealsUnflaggedNeighbors(t *testing.T) {
	board := mustBoard(t,
		"O##",
		"###",
		"###",
	)
	board.Reveal(board.CellAt(1, 1))
	board.ToggleMarker(board.CellAt(0, 0))

	board.Chord(board.CellAt(1, 1))

	for _, cell := range board.Cells() {
		if cell.isMine {
			continue
		}
		if !cell.isRevealed {
			t.Errorf("%v: not revealed by chord", cell)
		}
	}
	if board.State() != Won {
		t.Errorf("State() = %v, want Won", board.State())
	}
}

func TestChordWithMisplacedFlagLoses(t *testing.T) {
	board := mustBoard(t,
		"O##",
		"###",
		"###",
	)
	board.Reveal(board.CellAt(1, 1))
	board.ToggleMarker(board.CellAt(1, 0)) // wrong cell

	board.Chord(board.CellAt(1, 1))

	if board.State() != Lost {
		t.Errorf("State() = %v, want Lost", board.State())
	}
	if !board.CellAt(0, 0).isRevealed {
		t.Error("chord did not reveal the mine behind the wrong flag")
	}
}

func TestChordWithoutMatchingFlagsIsNoOp(t *testing.T) {
	board := mustBoard(t,
		"O##",
		"###",
		"###",
	)
	center := board.CellAt(1, 1)
	board.Reveal(center)

	board.Chord(center)

	for _, cell := range board.Cells() {
		if cell != center && cell.isRevealed {
			t.Errorf("%v: revealed by chord with no flags placed", cell)
		}
	}
}

func TestChordOnHiddenOrEmptyCellIsNoOp(t *testing.T) {
	board := mustBoard(t,
		"O####",
		"#####",
		"#####",
	)
	board.ToggleMarker(board.CellAt(0, 1))

	// Hidden cell
	board.Chord(board.CellAt(1, 1))
	if board.CellAt(2, 1).isRevealed {
		t.Error("chord on a hidden cell revealed neighbors")
	}

	// Revealed cell with no neighboring mines
	board.Reveal(board.CellAt(4, 2))
	revealedBefore := board.Snapshot().SerializedBoard
	board.Chord(board.CellAt(4, 2))
	if after := board.Snapshot().SerializedBoard; after != revealedBefore {
		t.Error("chord on an empty cell changed the board")
	}
}

func TestCheckWinMatchesRevealedCount(t *testing.T) {
	board := mustBoard(t,
		"O##",
		"###",
		"###",
	)

	assertCheckWin := func() {
		t.Helper()

		revealed := 0
		for _, cell := range board.Cells() {
			if cell.isRevealed {
				revealed++
			}
		}
		want := revealed == board.NumCells()-board.NumMines()

		if got := board.CheckWin(); got != want {
			t.Errorf("CheckWin() = %v with %d cells revealed, want %v", got, revealed, want)
		}
	}

	assertCheckWin()

	board.Reveal(board.CellAt(1, 1))
	assertCheckWin()

	board.Reveal(board.CellAt(0, 1))
	board.Reveal(board.CellAt(1, 0))
	for _, cell := range board.Cells() {
		if !cell.isMine {
			board.Reveal(cell)
		}
	}
	assertCheckWin()
}
