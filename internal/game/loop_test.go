package game

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"chosenoffset.com/basegame/internal/config"
	"chosenoffset.com/basegame/internal/placeholders"
	"chosenoffset.com/basegame/internal/render"
	"chosenoffset.com/basegame/internal/render/headless"
	"chosenoffset.com/basegame/internal/texture"
)

// newTestLoop builds a loop over freshly generated assets and a headless engine.
func newTestLoop(t *testing.T, maxFrames int) (*Loop, *headless.Engine, *headless.Input, *headless.Loader) {
	t.Helper()
	bg, sprite, err := placeholders.GenerateAndSave(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to generate assets: %v", err)
	}

	cfg := config.Default()
	cfg.Assets.Background = bg
	cfg.Assets.Sprite = sprite

	engine := headless.NewEngine(maxFrames)
	input := headless.NewInput()
	resources := &headless.Loader{}
	return NewLoop(cfg, engine, input, resources), engine, input, resources
}

func TestLoopStartLoadsBothTextures(t *testing.T) {
	loop, _, _, resources := newTestLoop(t, 0)

	if loop.State() != StateUninitialized {
		t.Fatalf("Expected uninitialized, got %s", loop.State())
	}
	if err := loop.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if loop.State() != StateRunning {
		t.Errorf("Expected running, got %s", loop.State())
	}

	bg, sprite := loop.Textures()
	if bg.Width != placeholders.BackgroundWidth || bg.Height != placeholders.BackgroundHeight {
		t.Errorf("Background is %dx%d", bg.Width, bg.Height)
	}
	if sprite.Width != placeholders.SpriteSize || sprite.Height != placeholders.SpriteSize {
		t.Errorf("Sprite is %dx%d", sprite.Width, sprite.Height)
	}
	if len(resources.Uploaded) != 2 {
		t.Errorf("Expected 2 uploads, got %d", len(resources.Uploaded))
	}

	if err := loop.Start(); err == nil {
		t.Error("Expected error starting a running loop")
	}
}

func TestLoopMovesRightForTenFrames(t *testing.T) {
	loop, _, input, _ := newTestLoop(t, 0)
	if err := loop.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	input.Press(render.KeyRight)
	screen := headless.NewImage("screen", 800, 600)
	for i := 0; i < 10; i++ {
		loop.Draw(screen)
		loop.Layout(800, 600)
		if err := loop.Update(); err != nil {
			t.Fatalf("Update %d failed: %v", i, err)
		}
	}

	pos := loop.Position()
	if math.Abs(pos.X-0.5) > 1e-9 {
		t.Errorf("Expected x = 0.5, got %g", pos.X)
	}
	if pos.Y != 0 {
		t.Errorf("Expected y = 0, got %g", pos.Y)
	}
}

func TestLoopIdleKeysKeepPosition(t *testing.T) {
	loop, _, input, _ := newTestLoop(t, 0)
	if err := loop.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	input.Press(render.KeyUp)
	if err := loop.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	want := loop.Position()

	tests := []struct {
		name string
		keys []render.Key
	}{
		{"no keys", nil},
		{"left and right cancel", []render.Key{render.KeyLeft, render.KeyRight}},
		{"up and down cancel", []render.Key{render.KeyUp, render.KeyDown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input.Release(render.KeyUp, render.KeyDown, render.KeyLeft, render.KeyRight)
			input.Press(tt.keys...)
			if err := loop.Update(); err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			if got := loop.Position(); got != want {
				t.Errorf("Position = %+v, want %+v", got, want)
			}
		})
	}
}

func TestLoopRunOnEngine(t *testing.T) {
	// One tick to start, then ten ticks of movement.
	loop, engine, input, resources := newTestLoop(t, 11)
	input.Press(render.KeyRight, render.KeyUp)

	if err := loop.Run(engine); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	pos := loop.Position()
	if math.Abs(pos.X-0.5) > 1e-9 || math.Abs(pos.Y-0.5) > 1e-9 {
		t.Errorf("Expected (0.5, 0.5), got (%g, %g)", pos.X, pos.Y)
	}
	if engine.Width != 800 || engine.Height != 600 || engine.Title != "2D Game" || !engine.Resizable {
		t.Errorf("Window configured as %dx%d %q resizable=%v", engine.Width, engine.Height, engine.Title, engine.Resizable)
	}
	if loop.Frames() != 11 {
		t.Errorf("Expected 11 frames drawn, got %d", loop.Frames())
	}
	if loop.State() != StateTerminated {
		t.Errorf("Expected terminated after Run, got %s", loop.State())
	}
	for i, img := range resources.Uploaded {
		if !img.Disposed() {
			t.Errorf("Texture %d not released", i)
		}
	}
}

func TestLoopCloseRequest(t *testing.T) {
	loop, engine, _, resources := newTestLoop(t, 100)
	engine.OnFrame = func(frame int, e *headless.Engine) {
		if frame == 3 {
			e.RequestClose()
		}
	}

	if err := loop.Run(engine); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if engine.Frames != 3 {
		t.Errorf("Expected 3 presented frames before close, got %d", engine.Frames)
	}
	if loop.State() != StateTerminated {
		t.Errorf("Expected terminated, got %s", loop.State())
	}
	for i, img := range resources.Uploaded {
		if !img.Disposed() {
			t.Errorf("Texture %d not released", i)
		}
	}
	if err := loop.Update(); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Update after termination = %v, want ErrTerminated", err)
	}
}

func TestLoopCloseRequestStopsMovement(t *testing.T) {
	loop, engine, input, _ := newTestLoop(t, 100)
	input.Press(render.KeyRight)
	engine.OnFrame = func(frame int, e *headless.Engine) {
		if frame == 3 {
			e.RequestClose()
		}
	}

	if err := loop.Run(engine); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Ticks 1 and 2 move; the closing tick 3 does not.
	if pos := loop.Position(); math.Abs(pos.X-0.1) > 1e-9 {
		t.Errorf("Expected x = 0.1 after close, got %g", pos.X)
	}
}

func TestLoopMissingAssetIsFatal(t *testing.T) {
	loop, engine, _, resources := newTestLoop(t, 10)
	missing := filepath.Join(t.TempDir(), "character.gif")
	loop.cfg.Assets.Sprite = missing

	err := loop.Run(engine)

	var loadErr *texture.AssetLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected AssetLoadError, got %v", err)
	}
	if loadErr.Path != missing {
		t.Errorf("Expected path %q, got %q", missing, loadErr.Path)
	}
	if engine.Frames != 0 {
		t.Errorf("Expected no frames presented, got %d", engine.Frames)
	}
	if loop.State() != StateTerminated {
		t.Errorf("Expected terminated, got %s", loop.State())
	}
	// The background loaded before the failure must be released.
	if len(resources.Uploaded) != 1 || !resources.Uploaded[0].Disposed() {
		t.Errorf("Expected the background texture released, uploads = %d", len(resources.Uploaded))
	}
}

type failingEngine struct {
	*headless.Engine
	err error
}

func (e *failingEngine) RunGame(render.Game) error {
	return e.err
}

func TestLoopEngineFailureIsInitializationError(t *testing.T) {
	loop, engine, _, _ := newTestLoop(t, 1)
	cause := errors.New("no display")

	err := loop.Run(&failingEngine{Engine: engine, err: cause})

	var initErr *InitializationError
	if !errors.As(err, &initErr) {
		t.Fatalf("Expected InitializationError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Expected wrapped cause, got %v", err)
	}
	if loop.State() != StateTerminated {
		t.Errorf("Expected terminated, got %s", loop.State())
	}
}

func TestLoopSurvivesZeroSizeWindow(t *testing.T) {
	loop, engine, _, _ := newTestLoop(t, 6)
	minimizedDraws := -1
	engine.OnFrame = func(frame int, e *headless.Engine) {
		switch frame {
		case 2:
			e.Resize(0, 0)
		case 4:
			// Frame 3 was drawn while minimized.
			minimizedDraws = len(e.Screen.Recorder().Draws())
			e.Resize(400, 300)
		}
	}

	if err := loop.Run(engine); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if minimizedDraws != 0 {
		t.Errorf("Expected no draws while minimized, got %d", minimizedDraws)
	}
	draws := engine.Screen.Recorder().Draws()
	if len(draws) != 2 {
		t.Fatalf("Expected 2 draws after restore, got %d", len(draws))
	}
	if w := engine.Screen.Bounds().Dx(); w != 400 {
		t.Errorf("Expected 400px screen after restore, got %d", w)
	}
	if tr := draws[0].Vertices[2]; tr.DstX != 400 || tr.DstY != 0 {
		t.Errorf("Background top-right = (%g, %g), want (400, 0)", tr.DstX, tr.DstY)
	}
	if bl := draws[0].Vertices[0]; bl.DstX != 0 || bl.DstY != 300 {
		t.Errorf("Background bottom-left = (%g, %g), want (0, 300)", bl.DstX, bl.DstY)
	}
	if vp := loop.Viewport(); vp.Width != 400 || vp.Height != 300 {
		t.Errorf("Viewport = %dx%d, want 400x300", vp.Width, vp.Height)
	}
}

func TestLoopShutdownIsIdempotent(t *testing.T) {
	loop, _, _, resources := newTestLoop(t, 0)
	if err := loop.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	loop.Shutdown()
	loop.Shutdown()

	if loop.State() != StateTerminated {
		t.Errorf("Expected terminated, got %s", loop.State())
	}
	if bg, sprite := loop.Textures(); bg != nil || sprite != nil {
		t.Error("Expected textures cleared after shutdown")
	}
	for i, img := range resources.Uploaded {
		if !img.Disposed() {
			t.Errorf("Texture %d not released", i)
		}
	}

	screen := headless.NewImage("screen", 8, 8)
	loop.Draw(screen)
	if len(screen.Recorder().Ops) != 0 {
		t.Error("Expected no drawing after termination")
	}
}
