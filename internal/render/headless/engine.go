package headless

import (
	"errors"

	"chosenoffset.com/basegame/internal/render"
)

// Engine implements render.Engine by stepping the game in a plain loop.
// Each tick mirrors a windowed backend: events, Update, Layout, Draw, present.
type Engine struct {
	Width, Height int
	Title         string
	Resizable     bool

	// MaxFrames stops the loop after that many presented frames. Zero runs
	// until the game terminates.
	MaxFrames int

	// OnFrame runs at the start of every tick, before Update. Use it to
	// script key presses, resizes and close requests.
	OnFrame func(frame int, e *Engine)

	// Screen is the surface handed to Draw. Its recorder holds the
	// operations of the most recent frame.
	Screen *Image

	// Frames counts presented frames.
	Frames int

	closeRequested bool
}

// NewEngine creates a headless engine that runs at most maxFrames frames.
func NewEngine(maxFrames int) *Engine {
	return &Engine{MaxFrames: maxFrames}
}

// SetWindowSize sets the simulated window size.
func (e *Engine) SetWindowSize(width, height int) {
	e.Width, e.Height = width, height
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	e.Title = title
}

// SetWindowResizable records whether resizing is allowed.
func (e *Engine) SetWindowResizable(resizable bool) {
	e.Resizable = resizable
}

// Resize changes the simulated window size. The game sees it on the next
// Layout call.
func (e *Engine) Resize(width, height int) {
	e.Width, e.Height = width, height
}

// RequestClose raises the close flag, as if the user clicked the close button.
func (e *Engine) RequestClose() {
	e.closeRequested = true
}

// CloseRequested reports whether RequestClose has been called.
func (e *Engine) CloseRequested() bool {
	return e.closeRequested
}

// RunGame steps the game until it terminates, fails, or MaxFrames is reached.
func (e *Engine) RunGame(game render.Game) error {
	for e.MaxFrames == 0 || e.Frames < e.MaxFrames {
		if e.OnFrame != nil {
			e.OnFrame(e.Frames, e)
		}

		if err := game.Update(); err != nil {
			if errors.Is(err, render.ErrTerminated) {
				return nil
			}
			return err
		}

		w, h := game.Layout(e.Width, e.Height)
		if e.Screen == nil || !sameSize(e.Screen, w, h) {
			e.Screen = NewImage("screen", w, h)
		}
		e.Screen.Recorder().Reset()
		game.Draw(e.Screen)
		e.Frames++
	}
	return nil
}

func sameSize(img render.Image, w, h int) bool {
	iw, ih := img.Size()
	return iw == w && ih == h
}
