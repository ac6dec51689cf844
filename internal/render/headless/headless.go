// Package headless provides a display-less render backend. Images record
// the operations issued against them instead of rasterizing, which lets the
// game loop run in tests and in CI smoke runs.
package headless

import (
	"errors"
	"fmt"
	"image"

	"chosenoffset.com/basegame/internal/render"
)

// OpKind identifies a recorded operation.
type OpKind int

// Recorded operation kinds
const (
	OpClear OpKind = iota
	OpDrawTriangles
)

// Op is a single operation recorded against an Image.
type Op struct {
	Kind     OpKind
	Target   image.Rectangle // bounds of the image the op was issued on
	Source   string          // label of the source image for draws
	Vertices []render.Vertex
	Indices  []uint16
	Filter   render.Filter
}

// Recorder collects operations from an image and all of its sub-images.
type Recorder struct {
	Ops []Op
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Draws returns only the draw operations, in issue order.
func (r *Recorder) Draws() []Op {
	var draws []Op
	for _, op := range r.Ops {
		if op.Kind == OpDrawTriangles {
			draws = append(draws, op)
		}
	}
	return draws
}

// Image implements render.Image without a GPU.
type Image struct {
	Label    string
	bounds   image.Rectangle
	rec      *Recorder
	disposed *bool
	sub      bool
}

// NewImage creates a recording image of the given size.
func NewImage(label string, width, height int) *Image {
	disposed := false
	return &Image{
		Label:    label,
		bounds:   image.Rect(0, 0, width, height),
		rec:      &Recorder{},
		disposed: &disposed,
	}
}

// Recorder returns the recorder shared by this image and its sub-images.
func (i *Image) Recorder() *Recorder {
	return i.rec
}

// Disposed reports whether Dispose has been called.
func (i *Image) Disposed() bool {
	return *i.disposed
}

// Bounds returns the bounds of the image.
func (i *Image) Bounds() image.Rectangle {
	return i.bounds
}

// Size returns the width and height of the image.
func (i *Image) Size() (width, height int) {
	return i.bounds.Dx(), i.bounds.Dy()
}

// SubImage returns a view sharing this image's recorder.
func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{
		Label:    i.Label,
		bounds:   r.Intersect(i.bounds),
		rec:      i.rec,
		disposed: i.disposed,
		sub:      true,
	}
}

// Clear records a clear.
func (i *Image) Clear() {
	i.rec.Ops = append(i.rec.Ops, Op{Kind: OpClear, Target: i.bounds})
}

// DrawTriangles records a draw.
func (i *Image) DrawTriangles(vertices []render.Vertex, indices []uint16, img render.Image, opts *render.DrawTrianglesOptions) {
	op := Op{
		Kind:     OpDrawTriangles,
		Target:   i.bounds,
		Vertices: append([]render.Vertex(nil), vertices...),
		Indices:  append([]uint16(nil), indices...),
	}
	if src, ok := img.(*Image); ok {
		op.Source = src.Label
	}
	if opts != nil {
		op.Filter = opts.Filter
	}
	i.rec.Ops = append(i.rec.Ops, op)
}

// Dispose marks the image as released. Like ebiten, disposing a
// sub-image does nothing.
func (i *Image) Dispose() {
	if i.sub {
		return
	}
	*i.disposed = true
}

// Loader implements render.ResourceLoader, handing out recording images.
type Loader struct {
	// Uploaded holds every image created, in order.
	Uploaded []*Image
	// Fail, if set, is returned by UploadImage.
	Fail error
}

// UploadImage creates a recording image with the size of img.
func (l *Loader) UploadImage(img *image.RGBA) (render.Image, error) {
	if l.Fail != nil {
		return nil, l.Fail
	}
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("headless: cannot upload an empty image")
	}
	out := NewImage(fmt.Sprintf("texture%d", len(l.Uploaded)), img.Bounds().Dx(), img.Bounds().Dy())
	l.Uploaded = append(l.Uploaded, out)
	return out, nil
}

// Input implements render.InputManager with keys held by the caller.
type Input struct {
	held map[render.Key]bool
}

// NewInput creates an input with no keys held.
func NewInput() *Input {
	return &Input{held: make(map[render.Key]bool)}
}

// Press holds the given keys down until released.
func (in *Input) Press(keys ...render.Key) {
	for _, k := range keys {
		in.held[k] = true
	}
}

// Release lets go of the given keys.
func (in *Input) Release(keys ...render.Key) {
	for _, k := range keys {
		delete(in.held, k)
	}
}

// IsKeyPressed returns whether the key is held.
func (in *Input) IsKeyPressed(key render.Key) bool {
	return in.held[key]
}
