package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/they4kman/buscaminas/util/collections"
)

// ErrInvalidConfig is returned when a board configuration cannot produce a
// playable board. No partial board is ever built from an invalid config.
var ErrInvalidConfig = errors.New("invalid board configuration")

type Config struct {
	Width, Height int // in number of cells
	NumMines      int

	// Seed for mine placement; 0 picks one from the wall clock
	Seed int64
}

func (config Config) Validate() error {
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidConfig, config.Width, config.Height)
	}
	if config.NumMines <= 0 || config.NumMines >= config.Width*config.Height {
		return fmt.Errorf("%w: mine count must be within (0, %d), got %d",
			ErrInvalidConfig, config.Width*config.Height, config.NumMines)
	}
	return nil
}

type Board struct {
	width, height int // in number of cells
	numMines      int
	cells         [][]Cell

	state    BoardState
	numFlags int

	// Safe cells not yet revealed; the game is won when this empties
	remaining collections.Set[*Cell]

	seed int64
	rand *rand.Rand
}

// New generates a board with numMines mines placed uniformly at random
// (sampling without replacement) and every cell's neighbor count computed.
func New(config Config) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board := newEmptyBoard(config.Width, config.Height, config.Seed)
	board.numMines = config.NumMines

	indexes := board.rand.Perm(board.width * board.height)
	for _, idx := range indexes[:board.numMines] {
		cell := board.cellAtIndex(idx)
		cell.isMine = true
		board.remaining.Remove(cell)
	}

	board.recountNeighborMines()

	return board, nil
}

func newEmptyBoard(width, height int, seed int64) *Board {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := &Board{
		state:     Ongoing,
		width:     width,
		height:    height,
		cells:     make([][]Cell, height),
		remaining: make(collections.Set[*Cell]),
		seed:      seed,
		rand:      rand.New(rand.NewSource(seed)),
	}

	idx := 0
	for y := 0; y < height; y++ {
		board.cells[y] = make([]Cell, width)

		for x := 0; x < width; x++ {
			cell := &board.cells[y][x]
			cell.board = board
			cell.idx = idx
			cell.x, cell.y = x, y
			cell.setState(Unrevealed)

			board.remaining.Add(cell)
			idx++
		}
	}

	return board
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) CanPlay() bool {
	return board.state == Ongoing
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) Rand() *rand.Rand {
	return board.rand
}

// CellAt returns the cell at (x, y), or nil if out of bounds.
func (board *Board) CellAt(x, y int) *Cell {
	if x >= 0 && y >= 0 && x < board.width && y < board.height {
		return &board.cells[y][x]
	}
	return nil
}

func (board *Board) cellAtIndex(idx int) *Cell {
	return &board.cells[idx/board.width][idx%board.width]
}

// Cells returns every cell of the board, in row-major order.
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			cells = append(cells, &board.cells[y][x])
		}
	}
	return cells
}

func (board *Board) recountNeighborMines() {
	for _, cell := range board.Cells() {
		cell.numMines = 0
	}
	for _, cell := range board.Cells() {
		if !cell.isMine {
			continue
		}
		for _, neighbor := range cell.Neighbors() {
			neighbor.numMines++
		}
	}
}

// RelocateMine moves the mine on cell to a uniformly random non-mine cell
// elsewhere on the board, then recomputes all neighbor counts. It backs the
// first-click-is-safe guarantee. No-op if cell holds no mine.
func (board *Board) RelocateMine(cell *Cell) {
	if !cell.isMine {
		return
	}

	candidates := make([]*Cell, 0, board.NumCells()-board.numMines)
	for _, candidate := range board.Cells() {
		if !candidate.isMine && candidate != cell {
			candidates = append(candidates, candidate)
		}
	}

	// numMines < width*height guarantees at least one candidate
	target := candidates[board.rand.Intn(len(candidates))]

	cell.isMine = false
	board.remaining.Add(cell)

	target.isMine = true
	board.remaining.Remove(target)

	board.recountNeighborMines()
}

// Reveal reveals cell. Revealing a flagged or already-revealed cell is a
// no-op; revealing a mine loses the game; revealing a cell with no
// neighboring mines floods its whole zero region and the numbered border.
func (board *Board) Reveal(cell *Cell) {
	if !board.CanPlay() {
		return
	}
	if cell.isRevealed || cell.marker == MarkerFlag {
		return
	}

	if !cell.isMine && cell.numMines == 0 {
		board.floodReveal(cell)
	} else {
		board.revealOne(cell)
	}
}

func (board *Board) revealOne(cell *Cell) {
	if cell.isRevealed || cell.marker == MarkerFlag {
		return
	}

	cell.marker = MarkerNone
	cell.isRevealed = true

	if cell.isMine {
		cell.isLosingMine = true
		cell.setState(MineLosing)
		board.lose()
		return
	}

	cell.setState(CellState(cell.numMines))
	board.remaining.Remove(cell)

	if len(board.remaining) == 0 {
		board.win()
	}
}

// ToggleMarker cycles a hidden cell through none -> flag -> question ->
// none. Flags are capacity-limited to the mine count; once exhausted, the
// cycle skips straight to question.
func (board *Board) ToggleMarker(cell *Cell) {
	if !board.CanPlay() || cell.isRevealed {
		return
	}

	switch cell.marker {
	case MarkerNone:
		if board.numFlags < board.numMines {
			cell.marker = MarkerFlag
			cell.setState(Flag)
			board.numFlags++
		} else {
			cell.marker = MarkerQuestion
			cell.setState(Question)
		}
	case MarkerFlag:
		board.numFlags--
		cell.marker = MarkerQuestion
		cell.setState(Question)
	case MarkerQuestion:
		cell.marker = MarkerNone
		cell.setState(Unrevealed)
	}
}

// Chord reveals all unflagged hidden neighbors of a revealed numbered cell,
// provided the number of flagged neighbors equals its mine count. Chorded
// reveals go through Reveal, so they flood zero cells and can lose the game
// on a misplaced flag; they never chord further.
func (board *Board) Chord(cell *Cell) {
	if !board.CanPlay() || !cell.isRevealed || cell.numMines == 0 {
		return
	}

	numFlaggedNeighbors := 0
	for _, neighbor := range cell.Neighbors() {
		if neighbor.marker == MarkerFlag {
			numFlaggedNeighbors++
		}
	}
	if numFlaggedNeighbors != cell.numMines {
		return
	}

	for _, neighbor := range cell.Neighbors() {
		if !neighbor.isRevealed && neighbor.marker != MarkerFlag {
			board.Reveal(neighbor)
		}
	}
}

// CheckWin reports whether every non-mine cell has been revealed.
func (board *Board) CheckWin() bool {
	return len(board.remaining) == 0
}

func (board *Board) win() {
	board.state = Won

	// Remaining mines flag themselves on a win, zeroing the mine counter
	for _, cell := range board.Cells() {
		if cell.isMine && cell.marker != MarkerFlag {
			cell.marker = MarkerFlag
			cell.setState(Flag)
			board.numFlags++
		}
	}
}

func (board *Board) lose() {
	board.state = Lost

	for _, cell := range board.Cells() {
		cell.revealLost()
	}
}

func (cell *Cell) revealLost() {
	if cell.marker == MarkerFlag {
		if !cell.isMine {
			cell.setState(FlagWrong)
		}
	} else if cell.isMine {
		if !cell.isLosingMine {
			cell.setState(MineUnrevealed)
		}
	}
}
