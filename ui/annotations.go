package ui

import (
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/gammazero/deque"

	"github.com/they4kman/buscaminas/game"
)

// annotation highlights a cell a director just acted on.
type annotation struct {
	action     game.CellAction
	firstShown time.Time
}

type annotationQueue struct {
	queue deque.Deque

	// Transparency of annotations when first displayed
	baseAlpha float64
	// Total time an annotation will be displayed
	duration time.Duration
}

func newAnnotationQueue(baseAlpha float64, duration time.Duration) *annotationQueue {
	return &annotationQueue{
		baseAlpha: baseAlpha,
		duration:  duration,
	}
}

func (annotations *annotationQueue) add(action game.CellAction) {
	annotations.queue.PushBack(annotation{
		action:     action,
		firstShown: time.Now(),
	})
}

func (annotations *annotationQueue) draw(win *pixelgl.Window, boardTopLeft pixel.Vec) {
	now := time.Now()

	for annotations.queue.Len() > 0 {
		front := annotations.queue.Front().(annotation)
		if now.Sub(front.firstShown) <= annotations.duration {
			break
		}
		annotations.queue.PopFront()
	}

	if annotations.queue.Len() == 0 {
		return
	}

	imd := imdraw.New(nil)

	for i := 0; i < annotations.queue.Len(); i++ {
		shown := annotations.queue.At(i).(annotation)

		cell := shown.action.Cell
		start, end := cellRect(boardTopLeft, cell.X(), cell.Y())

		var baseColor pixel.RGBA
		switch shown.action.Action {
		case game.Click:
			baseColor = pixel.RGB(1, 0, 0)
		case game.RightClick:
			baseColor = pixel.RGB(0, 0, 1)
		case game.MiddleClick:
			baseColor = pixel.RGB(0, 1, 0)
		}

		progress := 1 - float64(now.Sub(shown.firstShown))/float64(annotations.duration)
		alpha := annotations.baseAlpha * inOutCubic(progress)

		imd.Color = baseColor.Mul(pixel.Alpha(alpha))
		imd.Push(start, end)
		imd.Rectangle(0) // 0 = filled
	}

	imd.Draw(win)
}

func inOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	} else {
		t -= 2
		return 0.5 * (t*t*t + 2)
	}
}
