package game

// CellState is the displayable state of a cell. It is all the presentation
// layer ever sees: mine states only appear once the game has ended.
type CellState int

const (
	Question CellState = iota - 2
	Unrevealed
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineUnrevealed
	MineLosing
)

type BoardState int

const (
	Lost BoardState = iota
	Won
	Ongoing
)

// Marker is the player-controlled mark on a hidden cell.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerFlag
	MarkerQuestion
)

// Difficulty is a named board preset. All presets use square boards.
type Difficulty struct {
	Name     string
	Size     int
	NumMines int
}

var (
	Easy         = Difficulty{Name: "easy", Size: 9, NumMines: 10}
	Intermediate = Difficulty{Name: "intermediate", Size: 16, NumMines: 40}
	Hard         = Difficulty{Name: "hard", Size: 22, NumMines: 99}
)

var Difficulties = []Difficulty{Easy, Intermediate, Hard}

func DifficultyByName(name string) (Difficulty, bool) {
	for _, difficulty := range Difficulties {
		if difficulty.Name == name {
			return difficulty, true
		}
	}
	return Difficulty{}, false
}
