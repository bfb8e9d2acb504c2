package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	Width, Height int
	NumMines      int

	Seed int64

	// Snapshot to load board configuration from
	Snapshot *Snapshot
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	Director Director

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:             Easy.Size,
		Height:            Easy.Size,
		NumMines:          Easy.NumMines,
		LoadSnapshotFresh: true,
	}
}

// ApplyDifficulty sets the board dimensions and mine count from a preset.
func (config *GameConfig) ApplyDifficulty(difficulty Difficulty) {
	config.Width = difficulty.Size
	config.Height = difficulty.Size
	config.NumMines = difficulty.NumMines
}

func (config GameConfig) boardConfig() Config {
	return Config{
		Width:    config.Width,
		Height:   config.Height,
		NumMines: config.NumMines,
		Seed:     config.Seed,
	}
}

func (config GameConfig) Validate() error {
	if config.Snapshot != nil {
		return nil
	}
	return config.boardConfig().Validate()
}

// Game is a single play session: one board, one elapsed-time counter, one
// win-or-loss. All operations are synchronous and run on the caller's
// thread; the presentation layer owns the one-second ticker and feeds it in
// through Tick.
type Game struct {
	config GameConfig
	board  *Board

	firstClickTaken bool
	timerRunning    bool
	elapsedSeconds  int
	ended           bool

	log logrus.FieldLogger
}

func NewGame(config GameConfig) (*Game, error) {
	var board *Board
	var err error
	if config.Snapshot != nil {
		board, err = config.Snapshot.Board(config.LoadSnapshotFresh)
	} else {
		board, err = New(config.boardConfig())
	}
	if err != nil {
		return nil, err
	}

	game := &Game{
		config: config,
		board:  board,
		log: logrus.WithFields(logrus.Fields{
			"width":  board.Width(),
			"height": board.Height(),
			"mines":  board.NumMines(),
			"seed":   board.Seed(),
		}),
	}

	// A resumed snapshot already has its first reveal behind it
	for _, cell := range board.Cells() {
		if cell.isRevealed {
			game.firstClickTaken = true
			game.timerRunning = board.CanPlay()
			break
		}
	}

	if config.Director != nil {
		config.Director.Init(board)
	}

	game.log.Debug("game started")

	return game, nil
}

func (game *Game) Board() *Board {
	return game.board
}

func (game *Game) Config() GameConfig {
	return game.config
}

func (game *Game) ElapsedSeconds() int {
	return game.elapsedSeconds
}

// MinesRemaining is the value of the mine counter display: mines minus
// placed flags.
func (game *Game) MinesRemaining() int {
	return game.board.NumMines() - game.board.NumFlags()
}

// Tick advances the elapsed-time counter by one second. The counter only
// runs between the first reveal and the end of the game.
func (game *Game) Tick() {
	if game.timerRunning && game.board.CanPlay() {
		game.elapsedSeconds++
	}
}

// PrimaryClick reveals the cell at (x, y); on an already-revealed numbered
// cell it chords instead. Out-of-bounds coordinates are a no-op.
func (game *Game) PrimaryClick(x, y int) {
	game.PrimaryClickCell(game.board.CellAt(x, y))
}

// SecondaryClick cycles the marker on the cell at (x, y).
func (game *Game) SecondaryClick(x, y int) {
	game.SecondaryClickCell(game.board.CellAt(x, y))
}

// MiddleClick chords on the cell at (x, y).
func (game *Game) MiddleClick(x, y int) {
	game.MiddleClickCell(game.board.CellAt(x, y))
}

func (game *Game) PrimaryClickCell(cell *Cell) {
	if cell == nil || !game.board.CanPlay() {
		return
	}

	if cell.isRevealed {
		if cell.numMines > 0 {
			game.board.Chord(cell)
			game.afterAction()
		}
		return
	}

	// A click that reveals nothing must not consume the first-click guard
	// or start the clock
	if cell.marker == MarkerFlag {
		return
	}

	game.guardFirstClick(cell)
	game.board.Reveal(cell)
	game.afterAction()
}

func (game *Game) SecondaryClickCell(cell *Cell) {
	if cell == nil {
		return
	}
	game.board.ToggleMarker(cell)
}

func (game *Game) MiddleClickCell(cell *Cell) {
	if cell == nil || !game.board.CanPlay() {
		return
	}
	game.board.Chord(cell)
	game.afterAction()
}

// Apply performs a director-proposed action through the regular click
// entry points.
func (game *Game) Apply(action CellAction) {
	switch action.Action {
	case Click:
		game.PrimaryClickCell(action.Cell)
	case RightClick:
		game.SecondaryClickCell(action.Cell)
	case MiddleClick:
		game.MiddleClickCell(action.Cell)
	}
}

// guardFirstClick makes the first revealed cell of a session never a mine,
// relocating the mine elsewhere if need be, and starts the clock.
func (game *Game) guardFirstClick(cell *Cell) {
	if game.firstClickTaken {
		return
	}
	game.firstClickTaken = true

	if cell.isMine {
		game.board.RelocateMine(cell)
	}

	game.timerRunning = true
}

func (game *Game) afterAction() {
	if game.board.CanPlay() || game.ended {
		return
	}
	game.ended = true
	game.timerRunning = false

	result := "loss"
	if game.board.State() == Won {
		result = "win"
	}
	game.log.WithFields(logrus.Fields{
		"result":  result,
		"elapsed": game.elapsedSeconds,
	}).Info("game over")

	game.saveSnapshot()
}

func (game *Game) saveSnapshot() {
	if game.config.SavedSnapshotsDir == "" {
		return
	}

	dir := game.config.SavedSnapshotsDir
	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			game.log.WithError(err).Error("unable to stat snapshots dir")
			return
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			game.log.WithError(err).Error("unable to create snapshots dir")
			return
		}
	} else if !stat.Mode().IsDir() {
		game.log.Errorf("%s is not a directory; cannot save snapshots to it", dir)
		return
	}

	path := filepath.Join(dir, game.replayFilename(time.Now()))

	snapshot := game.board.Snapshot()
	if err := os.WriteFile(path, []byte(snapshot.Serialize()), 0666); err != nil {
		game.log.WithError(err).Error("unable to write snapshot")
		return
	}

	game.log.WithField("path", path).Debug("saved snapshot")
}

// replayFilename names a saved snapshot by timestamp, board seed, and
// result. The seed keeps games ending within the same second from
// overwriting each other.
func (game *Game) replayFilename(t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))
	fmt.Fprintf(&filenameBuilder, "%d_", game.board.Seed())

	var stateStr string
	switch game.board.State() {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
