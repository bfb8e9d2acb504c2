package random

import (
	"strings"
	"testing"

	"github.com/they4kman/buscaminas/game"
)

func boardFromRows(t *testing.T, rows ...string) *game.Board {
	t.Helper()

	snapshot := &game.Snapshot{Seed: 1, SerializedBoard: strings.Join(rows, "\n")}
	board, err := snapshot.Board(false)
	if err != nil {
		t.Fatalf("unable to build board: %v", err)
	}
	return board
}

func TestActClicksAHiddenUnflaggedCell(t *testing.T) {
	board := boardFromRows(t,
		"O.f",
		"...",
		"..#",
	)

	director := &Director{}
	director.Init(board)

	actions := director.Act()

	if len(actions) != 1 {
		t.Fatalf("Act() returned %d actions, want 1", len(actions))
	}

	action := actions[0]
	if action.Action != game.Click {
		t.Errorf("Action = %v, want Click", action.Action)
	}
	if action.Cell.IsRevealed() || action.Cell.IsFlagged() {
		t.Errorf("%v: clicked a revealed or flagged cell", action.Cell)
	}
}

func TestActPlaysOutAWholeGame(t *testing.T) {
	config := game.NewGameConfig()
	config.Width, config.Height, config.NumMines = 5, 5, 3
	config.Seed = 12345

	session, err := game.NewGame(config)
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}

	director := &Director{}
	director.Init(session.Board())

	for steps := 0; session.Board().CanPlay(); steps++ {
		if steps > 25 {
			t.Fatal("director failed to finish a 5x5 game in 25 steps")
		}

		actions := director.Act()
		if len(actions) == 0 {
			t.Fatal("director proposed no actions on an ongoing board")
		}
		for _, action := range actions {
			session.Apply(action)
		}
	}
}
