// Package constraint implements a deducing director. Every step it derives
// observations from the revealed numbers (how many mines remain among a
// cell's hidden neighbors), splits overlapping observations into smaller
// ones, and acts on whatever certainty falls out. With no certain move
// available it guesses the cell least likely to be mined, and with no
// information at all it falls back to random play.
package constraint

import (
	"math"

	"github.com/they4kman/buscaminas/director/random"
	"github.com/they4kman/buscaminas/game"
	"github.com/they4kman/buscaminas/util/collections"
)

// simplifyPasses bounds how many rounds of observation splitting run per
// step; new certainties surface within a couple of rounds in practice.
const simplifyPasses = 4

type Director struct {
	board *game.Board
}

// observation records that exactly numMines mines sit among cells. Flagged
// neighbors are subtracted up front, so numMines == 0 means every cell is
// safe and numMines == len(cells) means every cell is a mine.
type observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[*game.Cell]
}

func (observation *observation) mineProbability() float32 {
	return float32(observation.numMines) / float32(len(observation.cells))
}

func (director *Director) Init(board *game.Board) {
	director.board = board
}

func (director *Director) Act() []game.CellAction {
	observations := director.observe()
	observations = simplify(observations)

	if actions := deliberateActions(observations); len(actions) > 0 {
		return actions
	}

	if action, ok := director.lowestProbabilityClick(observations); ok {
		return []game.CellAction{action}
	}

	return director.actRandom()
}

func (director *Director) observe() []*observation {
	var observations []*observation

	for _, cell := range director.board.Cells() {
		if !cell.IsRevealed() || cell.NumMines() == 0 {
			continue
		}

		obs := &observation{
			origin:   cell,
			numMines: cell.NumMines(),
			cells:    make(collections.Set[*game.Cell]),
		}
		for _, neighbor := range cell.Neighbors() {
			if neighbor.IsRevealed() {
				continue
			}
			if neighbor.IsFlagged() {
				obs.numMines--
			} else {
				obs.cells.Add(neighbor)
			}
		}

		if len(obs.cells) > 0 {
			observations = append(observations, obs)
		}
	}

	return observations
}

// simplify splits observations along subset lines: when observation A's
// cells all lie within observation B's, the cells of B outside A must hold
// exactly B's mines minus A's.
func simplify(observations []*observation) []*observation {
	for pass := 0; pass < simplifyPasses; pass++ {
		var derived []*observation

		for _, obs := range observations {
			for _, other := range observations {
				if obs == other || len(obs.cells) >= len(other.cells) {
					continue
				}
				if _, isSubset := obs.cells.IntersectionEx(other.cells); !isSubset {
					continue
				}

				split := &observation{
					numMines: other.numMines - obs.numMines,
					cells:    other.cells.Difference(obs.cells),
				}
				if len(split.cells) > 0 && !containsObservation(observations, derived, split) {
					derived = append(derived, split)
				}
			}
		}

		if len(derived) == 0 {
			break
		}
		observations = append(observations, derived...)
	}

	return observations
}

func containsObservation(observations, derived []*observation, candidate *observation) bool {
	for _, obs := range observations {
		if obs.numMines == candidate.numMines && obs.cells.Equal(candidate.cells) {
			return true
		}
	}
	for _, obs := range derived {
		if obs.numMines == candidate.numMines && obs.cells.Equal(candidate.cells) {
			return true
		}
	}
	return false
}

// deliberateActions collects every certain move: flag the cells of
// observations whose mine count equals their size, click the cells of
// observations with no mines left.
func deliberateActions(observations []*observation) []game.CellAction {
	var actions []game.CellAction
	acted := make(collections.Set[*game.Cell])

	for _, obs := range observations {
		switch {
		case obs.numMines == len(obs.cells):
			for cell := range obs.cells {
				if !acted.Contains(cell) {
					acted.Add(cell)
					actions = append(actions, cell.RightClick())
				}
			}
		case obs.numMines == 0:
			for cell := range obs.cells {
				if !acted.Contains(cell) {
					acted.Add(cell)
					actions = append(actions, cell.Click())
				}
			}
		}
	}

	return actions
}

func (director *Director) lowestProbabilityClick(observations []*observation) (game.CellAction, bool) {
	lowestProbability := float32(math.Inf(1))
	cellProbabilities := make(map[*game.Cell]float32)

	for _, obs := range observations {
		probability := obs.mineProbability()

		for cell := range obs.cells {
			if probability < lowestProbability {
				lowestProbability = probability
			}

			pastProbability, hasPastProbability := cellProbabilities[cell]
			if !hasPastProbability || probability < pastProbability {
				cellProbabilities[cell] = probability
			}
		}
	}

	if len(cellProbabilities) == 0 {
		return game.CellAction{}, false
	}

	var lowestProbabilityCells []*game.Cell
	for cell, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}

	cell := lowestProbabilityCells[director.board.Rand().Intn(len(lowestProbabilityCells))]
	return cell.Click(), true
}

func (director *Director) actRandom() []game.CellAction {
	randomDirector := &random.Director{}
	randomDirector.Init(director.board)
	return randomDirector.Act()
}
