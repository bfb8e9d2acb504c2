package game

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/buscaminas/util/collections"
)

// floodReveal reveals cell and every cell connected to it through the
// zero-count region, plus the numbered border of that region. An explicit
// worklist with a visited set keeps the traversal free of recursion depth
// concerns and visits each cell at most once.
func (board *Board) floodReveal(cell *Cell) {
	visited := make(collections.Set[int])

	var queue deque.Deque
	queue.PushBack(cell)
	visited.Add(cell.idx)

	for queue.Len() > 0 {
		next := queue.PopFront().(*Cell)
		board.revealOne(next)

		// Only expand through cells that actually revealed as empty; a
		// flagged cell blocks the flood at its position
		if !next.isRevealed || next.numMines != 0 {
			continue
		}

		for _, neighbor := range next.Neighbors() {
			if neighbor.isRevealed || visited.Contains(neighbor.idx) {
				continue
			}
			visited.Add(neighbor.idx)
			queue.PushBack(neighbor)
		}
	}
}
