package game

import (
	"chosenoffset.com/basegame/internal/render"
	"chosenoffset.com/basegame/internal/texture"
)

// quadIndices splits a BL, BR, TR, TL quad into two triangles.
var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// quadCorners are the texture coordinates of the BL, BR, TR, TL corners.
var quadCorners = [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// FrameRenderer redraws the background and the sprite from scratch each frame.
type FrameRenderer struct {
	// HalfSize is the sprite's half width and half height in NDC.
	HalfSize float64

	vertices [4]render.Vertex
}

// NewFrameRenderer creates a renderer for sprites of the given half size.
func NewFrameRenderer(halfSize float64) *FrameRenderer {
	return &FrameRenderer{HalfSize: halfSize}
}

// RenderFrame clears screen, then draws the background over the whole
// viewport and the sprite centred at pos. The background is always drawn
// first; nothing is drawn into an empty viewport.
func (r *FrameRenderer) RenderFrame(screen render.Image, background, sprite *texture.Texture, pos Position, vp *Viewport) {
	screen.Clear()
	if vp.Empty() {
		return
	}

	dst := screen.SubImage(vp.Clip())
	r.drawQuad(dst, background, vp, -1, -1, 1, 1)
	r.drawQuad(dst, sprite, vp,
		pos.X-r.HalfSize, pos.Y-r.HalfSize,
		pos.X+r.HalfSize, pos.Y+r.HalfSize)
}

// drawQuad draws tex stretched over the NDC rectangle (x0,y0)-(x1,y1).
func (r *FrameRenderer) drawQuad(dst render.Image, tex *texture.Texture, vp *Viewport, x0, y0, x1, y1 float64) {
	xs := [4]float64{x0, x1, x1, x0}
	ys := [4]float64{y0, y0, y1, y1}
	for i, uv := range quadCorners {
		dx, dy := vp.ToPixel(xs[i], ys[i])
		r.vertices[i] = render.Vertex{
			DstX:   dx,
			DstY:   dy,
			SrcX:   float32(uv[0] * float64(tex.Width)),
			SrcY:   float32(uv[1] * float64(tex.Height)),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	dst.DrawTriangles(r.vertices[:], quadIndices, tex.Image, &render.DrawTrianglesOptions{
		Filter: tex.Filter,
	})
}
