package game

import (
	"fmt"
)

type Cell struct {
	board *Board

	x, y     int
	idx      int
	numMines int

	isMine, isRevealed bool
	isLosingMine       bool
	marker             Marker

	state CellState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.marker == MarkerFlag
}

func (cell *Cell) Marker() Marker {
	return cell.marker
}

// NumMines returns the number of mined cells among the up-to-8 neighbors.
func (cell *Cell) NumMines() int {
	return cell.numMines
}

// State returns the displayable state of the cell.
func (cell *Cell) State() CellState {
	return cell.state
}

func (cell *Cell) setState(state CellState) {
	cell.state = state
}

// Neighbors returns the in-bounds neighbors of the cell, clamped at the
// grid edges (3, 5, or 8 cells).
func (cell *Cell) Neighbors() []*Cell {
	board := cell.board
	neighbors := make([]*Cell, 0, 8)

	isAtTopBorder := cell.y < 1
	isAtBottomBorder := cell.y >= board.height-1

	if cell.x >= 1 {
		neighbors = append(neighbors, board.CellAt(cell.x-1, cell.y))

		if !isAtTopBorder {
			neighbors = append(neighbors, board.CellAt(cell.x-1, cell.y-1))
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, board.CellAt(cell.x-1, cell.y+1))
		}
	}

	if cell.x < board.width-1 {
		neighbors = append(neighbors, board.CellAt(cell.x+1, cell.y))

		if !isAtTopBorder {
			neighbors = append(neighbors, board.CellAt(cell.x+1, cell.y-1))
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, board.CellAt(cell.x+1, cell.y+1))
		}
	}

	if !isAtTopBorder {
		neighbors = append(neighbors, board.CellAt(cell.x, cell.y-1))
	}
	if !isAtBottomBorder {
		neighbors = append(neighbors, board.CellAt(cell.x, cell.y+1))
	}

	return neighbors
}

func (cell *Cell) Click() CellAction {
	return CellAction{
		Cell:   cell,
		Action: Click,
	}
}

func (cell *Cell) RightClick() CellAction {
	return CellAction{
		Cell:   cell,
		Action: RightClick,
	}
}

func (cell *Cell) MiddleClick() CellAction {
	return CellAction{
		Cell:   cell,
		Action: MiddleClick,
	}
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		switch {
		case cell.isLosingMine:
			return "*"
		case cell.marker == MarkerFlag:
			return "F"
		case cell.marker == MarkerQuestion:
			return "Q"
		default:
			return "O"
		}
	case cell.marker == MarkerFlag:
		return "f"
	case cell.marker == MarkerQuestion:
		return "q"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c string) bool {
	switch c {
	case "*", "F", "O", "Q":
		cell.isMine = true

		switch c {
		case "*":
			cell.isLosingMine = true
			cell.isRevealed = true
			cell.setState(MineLosing)
		case "F":
			cell.marker = MarkerFlag
			cell.setState(Flag)
		case "Q":
			cell.marker = MarkerQuestion
			cell.setState(Question)
		default:
			cell.setState(Unrevealed)
		}
	case "f":
		cell.marker = MarkerFlag
		cell.setState(Flag)
	case "q":
		cell.marker = MarkerQuestion
		cell.setState(Question)
	case ".":
		// NOTE: this state will very likely be incorrect, until cell numbers
		// are recalculated
		cell.isRevealed = true
		cell.setState(Empty)
	case "#":
		cell.isRevealed = false
		cell.setState(Unrevealed)
	default:
		return false
	}

	return true
}
