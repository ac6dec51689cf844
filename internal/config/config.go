// Package config holds the fixed parameters of the game. They are set at
// build time and do not change while the game runs.
package config

import (
	"errors"
	"fmt"
)

// Compile-time game parameters
const (
	WindowWidth     = 800
	WindowHeight    = 600
	WindowTitle     = "2D Game"
	BackgroundAsset = "res/background.png"
	SpriteAsset     = "res/character.gif"
	MovementSpeed   = 0.05
	SpriteHalfSize  = 0.1
)

// Config holds all game parameters
type Config struct {
	Window WindowConfig
	Assets AssetConfig
	Player PlayerConfig
}

// WindowConfig describes the single game window
type WindowConfig struct {
	Width     int // Initial width in pixels
	Height    int // Initial height in pixels
	Title     string
	Resizable bool
}

// AssetConfig names the two image files
type AssetConfig struct {
	Background string
	Sprite     string
}

// PlayerConfig defines sprite movement and size in normalized device coordinates
type PlayerConfig struct {
	Speed    float64 // Units per frame, per axis
	HalfSize float64 // Half width and half height of the sprite quad
}

// Default returns the configuration built from the constants above
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     WindowTitle,
			Resizable: true,
		},
		Assets: AssetConfig{
			Background: BackgroundAsset,
			Sprite:     SpriteAsset,
		},
		Player: PlayerConfig{
			Speed:    MovementSpeed,
			HalfSize: SpriteHalfSize,
		},
	}
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Assets.Background == "" {
		errs = append(errs, errors.New("background asset path is empty"))
	}
	if c.Assets.Sprite == "" {
		errs = append(errs, errors.New("sprite asset path is empty"))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed must not be negative, got %g", c.Player.Speed))
	}
	if c.Player.HalfSize <= 0 {
		errs = append(errs, fmt.Errorf("player half size must be positive, got %g", c.Player.HalfSize))
	}
	return errors.Join(errs...)
}
