package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Snapshot is a serializable capture of a board: the placement of every
// mine plus each cell's revealed/marker state, one character per cell.
type Snapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (board *Board) Snapshot() *Snapshot {
	rows := make([]string, board.height)
	for y := 0; y < board.height; y++ {
		var row strings.Builder
		for x := 0; x < board.width; x++ {
			row.WriteString(board.cells[y][x].serialize())
		}
		rows[y] = row.String()
	}

	return &Snapshot{
		Seed:            board.seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *Snapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Board reconstructs the snapshotted board. With fresh set, all cells are
// loaded unrevealed and unmarked, ready for a new game on the same mine
// layout; otherwise the exact cell states are restored.
func (snapshot *Snapshot) Board(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	height := len(rows)
	if height == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty snapshot board", ErrInvalidConfig)
	}
	width := len(rows[0])

	board := newEmptyBoard(width, height, snapshot.Seed)

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: snapshot row %d has %d cells, want %d",
				ErrInvalidConfig, y, len(row), width)
		}

		for x, c := range row {
			cell := board.CellAt(x, y)
			if !cell.deserialize(string(c)) {
				return nil, fmt.Errorf("%w: unknown snapshot cell %q at (%d, %d)",
					ErrInvalidConfig, string(c), x, y)
			}

			if fresh {
				cell.isRevealed = false
				cell.isLosingMine = false
				cell.marker = MarkerNone
				cell.setState(Unrevealed)
			}

			if cell.isMine {
				board.numMines++
				board.remaining.Remove(cell)
			}
		}
	}

	if board.numMines == 0 || board.numMines >= board.NumCells() {
		return nil, fmt.Errorf("%w: snapshot has %d mines on %d cells",
			ErrInvalidConfig, board.numMines, board.NumCells())
	}

	board.recountNeighborMines()

	lost := false
	for _, cell := range board.Cells() {
		if cell.marker == MarkerFlag {
			board.numFlags++
		}
		if cell.isRevealed {
			if cell.isLosingMine {
				lost = true
			} else {
				cell.setState(CellState(cell.numMines))
				board.remaining.Remove(cell)
			}
		}
	}

	if lost {
		board.lose()
	} else if len(board.remaining) == 0 {
		board.win()
	}

	return board, nil
}
