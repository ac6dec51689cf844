package game

// Position is a point in normalized device coordinates. It is never clamped
// to the visible range.
type Position struct {
	X, Y float64
}

// Add returns p moved by d.
func (p Position) Add(d Displacement) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Displacement is the offset applied to the sprite in one frame.
type Displacement struct {
	DX, DY float64
}

// IsZero reports whether d moves nothing.
func (d Displacement) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}
