package game

type Action int

const (
	Click Action = iota
	RightClick
	MiddleClick
)

// CellAction is a single input a director wants performed, expressed in the
// same vocabulary as mouse input.
type CellAction struct {
	Cell   *Cell
	Action Action
}

// Director is a computer player. Act proposes the actions for a single
// step; the session applies them through the same entry points as human
// input, so directors get the first-click guard and chording for free.
type Director interface {
	Init(board *Board)
	Act() []CellAction
}
