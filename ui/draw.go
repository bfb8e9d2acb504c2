package ui

import (
	"image/color"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"

	"github.com/they4kman/buscaminas/game"
)

// Colour scheme roughly based on classic Minesweeper
var numberColors = map[game.CellState]color.RGBA{
	game.Number1: colornames.Blue,
	game.Number2: colornames.Green,
	game.Number3: colornames.Red,
	game.Number4: colornames.Darkblue,
	game.Number5: colornames.Darkred,
	game.Number6: colornames.Turquoise,
	game.Number7: colornames.Black,
	game.Number8: colornames.Gray,
}

var numberGlyphs = map[game.CellState]string{
	game.Number1: "1",
	game.Number2: "2",
	game.Number3: "3",
	game.Number4: "4",
	game.Number5: "5",
	game.Number6: "6",
	game.Number7: "7",
	game.Number8: "8",
}

// cellRect returns the screen-space corners of the cell at grid (x, y).
func cellRect(boardTopLeft pixel.Vec, x, y int) (pixel.Vec, pixel.Vec) {
	min := boardTopLeft.Add(pixel.V(
		float64(cellWidth*x),
		-float64(cellWidth*(y+1)),
	))
	return min, min.Add(pixel.V(cellWidth, cellWidth))
}

func drawCell(imd *imdraw.IMDraw, glyphs *text.Text, boardTopLeft pixel.Vec, cell *game.Cell) {
	min, max := cellRect(boardTopLeft, cell.X(), cell.Y())
	center := min.Add(pixel.V(cellWidth/2, cellWidth/2))
	state := cell.State()

	fill := colornames.Lightgray
	switch state {
	case game.Unrevealed, game.Flag, game.FlagWrong, game.Question, game.MineUnrevealed:
		fill = colornames.Silver
	case game.MineLosing:
		fill = colornames.Indianred
	}

	imd.Color = fill
	imd.Push(min, max)
	imd.Rectangle(0)

	imd.Color = colornames.Darkgray
	imd.Push(min, max)
	imd.Rectangle(1)

	switch state {
	case game.Flag, game.FlagWrong:
		drawFlag(imd, center)
		if state == game.FlagWrong {
			drawCross(imd, min, max)
		}
	case game.Mine, game.MineUnrevealed, game.MineLosing:
		imd.Color = colornames.Black
		imd.Push(center)
		imd.Circle(cellWidth/4, 0)
	case game.Question:
		writeGlyph(glyphs, center, colornames.Darkslateblue, "?")
	default:
		if glyph, isNumber := numberGlyphs[state]; isNumber {
			writeGlyph(glyphs, center, numberColors[state], glyph)
		}
	}
}

func drawFlag(imd *imdraw.IMDraw, center pixel.Vec) {
	// Pole
	imd.Color = colornames.Black
	imd.Push(
		center.Add(pixel.V(0, -cellWidth/3)),
		center.Add(pixel.V(0, cellWidth/3)),
	)
	imd.Line(1)

	// Pennant
	imd.Color = colornames.Red
	imd.Push(
		center.Add(pixel.V(0, cellWidth/3)),
		center.Add(pixel.V(0, 0)),
		center.Add(pixel.V(-cellWidth/3, cellWidth/6)),
	)
	imd.Polygon(0)
}

func drawCross(imd *imdraw.IMDraw, min, max pixel.Vec) {
	inset := pixel.V(3, 3)
	imd.Color = colornames.Darkred
	imd.Push(min.Add(inset), max.Sub(inset))
	imd.Line(2)
	imd.Push(pixel.V(min.X+inset.X, max.Y-inset.Y), pixel.V(max.X-inset.X, min.Y+inset.Y))
	imd.Line(2)
}

func writeGlyph(glyphs *text.Text, center pixel.Vec, clr color.RGBA, glyph string) {
	// Center the 7x13 basicfont glyph on the cell
	glyphs.Dot = center.Add(pixel.V(-3.5, -5))
	glyphs.Color = clr
	glyphs.WriteString(glyph)
}
