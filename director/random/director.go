// Package random implements a director which clicks a uniformly random
// hidden, unflagged cell every step. It is also the fallback of smarter
// directors once they run out of deductions.
package random

import (
	"github.com/they4kman/buscaminas/game"
)

type Director struct {
	board *game.Board
}

func (director *Director) Init(board *game.Board) {
	director.board = board
}

func (director *Director) Act() []game.CellAction {
	candidates := make([]*game.Cell, 0, director.board.NumCells())
	for _, cell := range director.board.Cells() {
		if !cell.IsRevealed() && !cell.IsFlagged() {
			candidates = append(candidates, cell)
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	cell := candidates[director.board.Rand().Intn(len(candidates))]
	return []game.CellAction{cell.Click()}
}
