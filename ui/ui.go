// Package ui is the pixel-backed presentation layer. It renders the board
// from read-only cell states and translates window input into session
// operations; no game rules live here.
package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/buscaminas/game"
)

const (
	cellWidth      = 24
	headerHeight   = 50
	minWindowWidth = 200

	// Cadence of director steps while the game is ongoing
	directorInterval = 250 * time.Millisecond

	// Annotation fade settings for director actions
	annotationBaseAlpha = 0.5
	annotationDuration  = 400 * time.Millisecond
)

func windowBounds(width, height int) pixel.Rect {
	return pixel.R(
		0, 0,
		math.Max(float64(width*cellWidth), minWindowWidth),
		float64(height*cellWidth+headerHeight),
	)
}

func screenToGridCoords(board *game.Board, pos pixel.Vec) (int, int) {
	return int(pos.X) / cellWidth, board.Height() - int(pos.Y)/cellWidth - 1
}

func Run(config game.GameConfig) {
	cfg := pixelgl.WindowConfig{
		Title:  "buscaminas",
		Bounds: windowBounds(config.Width, config.Height),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	glyphs := text.New(pixel.ZV, basicAtlas)

	var boardTopLeft pixel.Vec
	var scoreText *text.Text
	var timerText *text.Text
	var cellPosText *text.Text
	var hoveredCell *game.Cell

	var currentGame *game.Game
	resetGame := func() {
		currentGame, err = game.NewGame(config)
		if err != nil {
			logrus.WithError(err).Fatal("unable to start game")
		}

		board := currentGame.Board()
		win.SetBounds(windowBounds(board.Width(), board.Height()))

		topLeft := win.Bounds().Vertices()[1]
		topRight := win.Bounds().Max
		boardTopLeft = topLeft.Sub(pixel.V(0, headerHeight))

		scoreText = text.New(topLeft.Add(pixel.V(20, -30)), basicAtlas)
		scoreText.Color = colornames.Black

		timerText = text.New(topRight.Add(pixel.V(-50, -30)), basicAtlas)
		timerText.Color = colornames.Black

		cellPosText = text.New(topRight.Add(pixel.V(-120, -30)), basicAtlas)
		cellPosText.Color = colornames.Darkcyan
	}

	resetGame()

	annotations := newAnnotationQueue(annotationBaseAlpha, annotationDuration)

	var (
		frames       = 0
		second       = time.Tick(time.Second)
		directorTick = time.Tick(directorInterval)
	)

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		board := currentGame.Board()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
			currentGame.Tick()
		default:
		}

		if config.Director != nil && board.CanPlay() {
			select {
			case <-directorTick:
				for _, action := range config.Director.Act() {
					currentGame.Apply(action)
					annotations.add(action)
				}
			default:
			}
		}

		scoreText.Clear()
		scoreText.Color = colornames.Black

		fmt.Fprintf(scoreText, "%03d", currentGame.MinesRemaining())
		if !board.CanPlay() {
			var boardState string
			if board.State() == game.Won {
				boardState = "WIN!"
				scoreText.Color = colornames.Green
			} else if board.State() == game.Lost {
				boardState = "LOSE :("
				scoreText.Color = colornames.Red
			}

			fmt.Fprintf(scoreText, "   %s", boardState)
		}
		scoreText.Draw(win, pixel.IM)

		timerText.Clear()
		fmt.Fprintf(timerText, "%03d", currentGame.ElapsedSeconds())
		timerText.Draw(win, pixel.IM)

		if win.MouseInsideWindow() {
			x, y := screenToGridCoords(board, win.MousePosition())
			hoveredCell = board.CellAt(x, y)
		} else {
			hoveredCell = nil
		}

		cellPosText.Clear()
		if hoveredCell != nil {
			fmt.Fprintf(cellPosText, "(%d, %d)", hoveredCell.X(), hoveredCell.Y())
			cellPosText.Draw(win, pixel.IM)
		}

		imd := imdraw.New(nil)
		glyphs.Clear()
		for _, cell := range board.Cells() {
			drawCell(imd, glyphs, boardTopLeft, cell)
		}
		imd.Draw(win)
		glyphs.Draw(win, pixel.IM)

		annotations.draw(win, boardTopLeft)

		if !board.CanPlay() {
			// Start a new game with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				config.Seed = board.Rand().Int63()
				resetGame()
			}

			continue
		}

		if hoveredCell != nil {
			if win.JustPressed(pixelgl.MouseButtonLeft) {
				currentGame.PrimaryClickCell(hoveredCell)
			}
			if win.JustPressed(pixelgl.MouseButtonRight) {
				currentGame.SecondaryClickCell(hoveredCell)
			}
			if win.JustPressed(pixelgl.MouseButtonMiddle) {
				currentGame.MiddleClickCell(hoveredCell)
			}
		}
	}
}
