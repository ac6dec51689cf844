package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/basegame/internal/config"
	"chosenoffset.com/basegame/internal/render"
	"chosenoffset.com/basegame/internal/texture"
)

// State is the lifecycle stage of a Loop.
type State int

// Loop states. Terminated is final.
const (
	StateUninitialized State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// InitializationError reports a window or graphics subsystem that could
// not be brought up.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("failed to initialize graphics: %v", e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// Loop owns the window state, both textures and the sprite position, and
// implements render.Game so a backend engine can drive it.
type Loop struct {
	cfg      *config.Config
	window   render.Window
	textures *texture.Loader
	input    *InputState
	renderer *FrameRenderer
	viewport *Viewport

	state      State
	background *texture.Texture
	sprite     *texture.Texture
	pos        Position
	frames     int
}

// NewLoop creates a loop in the uninitialized state.
func NewLoop(cfg *config.Config, window render.Window, input render.InputManager, resources render.ResourceLoader) *Loop {
	return &Loop{
		cfg:      cfg,
		window:   window,
		textures: texture.NewLoader(resources),
		input:    NewInputState(input, ArrowKeys, cfg.Player.Speed),
		renderer: NewFrameRenderer(cfg.Player.HalfSize),
		viewport: NewViewport(cfg.Window.Width, cfg.Window.Height),
	}
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Position returns the sprite position.
func (l *Loop) Position() Position {
	return l.pos
}

// Viewport returns the viewport kept in sync with the window.
func (l *Loop) Viewport() *Viewport {
	return l.viewport
}

// Textures returns the background and sprite textures. Both are nil
// unless the loop is running.
func (l *Loop) Textures() (background, sprite *texture.Texture) {
	return l.background, l.sprite
}

// Frames returns the number of frames drawn so far.
func (l *Loop) Frames() int {
	return l.frames
}

// Start loads both textures and moves the loop to running. On failure every
// texture already loaded is released and the loop is terminated.
func (l *Loop) Start() error {
	if l.state != StateUninitialized {
		return fmt.Errorf("cannot start game loop in state %s", l.state)
	}

	bg, err := l.textures.Load(l.cfg.Assets.Background)
	if err != nil {
		l.Shutdown()
		return err
	}
	l.background = bg

	sprite, err := l.textures.Load(l.cfg.Assets.Sprite)
	if err != nil {
		l.Shutdown()
		return err
	}
	l.sprite = sprite

	l.state = StateRunning
	log.Println("Game loop running")
	return nil
}

// Update runs after the previous frame was presented and events were
// polled: it honours a close request, otherwise moves the sprite from the
// held keys. The first call starts the loop instead.
func (l *Loop) Update() error {
	switch l.state {
	case StateUninitialized:
		return l.Start()
	case StateTerminated:
		return render.ErrTerminated
	}

	if l.window.CloseRequested() {
		log.Println("Window close requested")
		l.Shutdown()
		return render.ErrTerminated
	}

	if d := l.input.Poll(); !d.IsZero() {
		l.pos = l.pos.Add(d)
	}
	return nil
}

// Layout receives the window's drawable size and resizes the viewport to match.
func (l *Loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != l.viewport.Width || outsideHeight != l.viewport.Height {
		log.Printf("Viewport resized to %dx%d", outsideWidth, outsideHeight)
		l.viewport.OnResize(outsideWidth, outsideHeight)
	}
	return l.viewport.Width, l.viewport.Height
}

// Draw renders one frame while the loop is running.
func (l *Loop) Draw(screen render.Image) {
	if l.state != StateRunning {
		return
	}
	l.renderer.RenderFrame(screen, l.background, l.sprite, l.pos, l.viewport)
	l.frames++
}

// Shutdown releases both textures and terminates the loop. Calling it
// again has no effect.
func (l *Loop) Shutdown() {
	if l.state == StateTerminated {
		return
	}
	l.background.Dispose()
	l.sprite.Dispose()
	l.background, l.sprite = nil, nil
	l.state = StateTerminated
	log.Printf("Game loop terminated after %d frames", l.frames)
}

// Run configures the window and drives the loop on engine until it
// terminates. Resources are released on every exit path.
func (l *Loop) Run(engine render.Engine) error {
	engine.SetWindowSize(l.cfg.Window.Width, l.cfg.Window.Height)
	engine.SetWindowTitle(l.cfg.Window.Title)
	engine.SetWindowResizable(l.cfg.Window.Resizable)

	err := engine.RunGame(l)
	l.Shutdown()
	if err == nil {
		return nil
	}

	var assetErr *texture.AssetLoadError
	if errors.As(err, &assetErr) {
		return err
	}
	return &InitializationError{Err: err}
}
