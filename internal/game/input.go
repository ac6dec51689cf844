package game

import "chosenoffset.com/basegame/internal/render"

// Bindings maps the four movement directions to keys.
type Bindings struct {
	Left, Right, Up, Down render.Key
}

// ArrowKeys is the only binding set the game uses.
var ArrowKeys = Bindings{
	Left:  render.KeyLeft,
	Right: render.KeyRight,
	Up:    render.KeyUp,
	Down:  render.KeyDown,
}

// InputState turns held direction keys into a per-frame displacement.
type InputState struct {
	input render.InputManager
	keys  Bindings
	speed float64
}

// NewInputState creates an InputState moving speed units per held key per frame.
func NewInputState(input render.InputManager, keys Bindings, speed float64) *InputState {
	return &InputState{input: input, keys: keys, speed: speed}
}

// Poll samples the current key state. Each axis sums its two keys, so
// opposite keys cancel and diagonals are not normalized.
func (s *InputState) Poll() Displacement {
	var d Displacement
	if s.input.IsKeyPressed(s.keys.Left) {
		d.DX -= s.speed
	}
	if s.input.IsKeyPressed(s.keys.Right) {
		d.DX += s.speed
	}
	if s.input.IsKeyPressed(s.keys.Up) {
		d.DY += s.speed
	}
	if s.input.IsKeyPressed(s.keys.Down) {
		d.DY -= s.speed
	}
	return d
}
