package render

import (
	"errors"
	"image"
)

// ErrTerminated is returned from Game.Update to end the loop normally.
// Backends translate it into their own termination signal.
var ErrTerminated = errors.New("render: terminated")

// Filter is the sampling filter used when a texture is scaled.
type Filter int

// Filter constants
const (
	FilterNearest Filter = iota
	FilterLinear
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Sub-image extraction
	SubImage(r image.Rectangle) Image

	// Fill operations
	Clear()

	// Drawing operations
	DrawTriangles(vertices []Vertex, indices []uint16, img Image, opts *DrawTrianglesOptions)

	// Resource management
	Dispose()
}

// DrawTrianglesOptions contains options for drawing triangles.
type DrawTrianglesOptions struct {
	Filter Filter
}

// Vertex represents a vertex for triangle rendering.
// Dst is in destination pixels, Src in source texels.
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// InputManager reports the current keyboard state.
type InputManager interface {
	IsKeyPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the directional bindings
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// ResourceLoader uploads decoded pixels into backend images.
type ResourceLoader interface {
	// UploadImage copies img into a new GPU-resident image. The caller may
	// discard img once it returns.
	UploadImage(img *image.RGBA) (Image, error)
}

// Window exposes the state of the single OS window.
type Window interface {
	// CloseRequested reports whether the user asked to close the window.
	CloseRequested() bool
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update runs once per presented frame, after input has been polled.
	// Returning ErrTerminated ends the loop without error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// It doubles as the resize notification.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	Window

	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
