package game

import "image"

// Viewport tracks the drawable size of the window and maps normalized
// device coordinates onto it.
type Viewport struct {
	Width  int
	Height int
	clip   image.Rectangle
}

// NewViewport creates a viewport already sized to width x height.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.OnResize(width, height)
	return v
}

// OnResize records a new drawable size. Negative sizes are treated as zero.
func (v *Viewport) OnResize(width, height int) {
	v.Width = max(width, 0)
	v.Height = max(height, 0)
	v.clip = image.Rect(0, 0, v.Width, v.Height)
}

// Clip returns the pixel region rendering is confined to.
func (v *Viewport) Clip() image.Rectangle {
	return v.clip
}

// Empty reports whether the viewport has no area, e.g. a minimized window.
func (v *Viewport) Empty() bool {
	return v.clip.Empty()
}

// ToPixel maps NDC (x right, y up, [-1,1]) to pixels relative to the clip
// origin (x right, y down).
func (v *Viewport) ToPixel(x, y float64) (float32, float32) {
	px := (x + 1) / 2 * float64(v.Width)
	py := (1 - y) / 2 * float64(v.Height)
	return float32(px), float32(py)
}
