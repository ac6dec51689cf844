package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/colornames"
)

// Default sizes for the generated images
const (
	BackgroundWidth  = 256
	BackgroundHeight = 192
	SpriteSize       = 32
	TileSize         = 32
)

// ColorPalette defines colors for the placeholder art
var ColorPalette = struct {
	SkyTop      color.RGBA
	SkyBottom   color.RGBA
	Ground      color.RGBA
	GridLine    color.RGBA
	Player      color.RGBA
	Outline     color.RGBA
	Transparent color.RGBA
}{
	SkyTop:      colornames.Midnightblue,
	SkyBottom:   colornames.Steelblue,
	Ground:      colornames.Darkolivegreen,
	GridLine:    colornames.Darkslategray,
	Player:      color.RGBA{0, 255, 100, 255}, // Bright green
	Outline:     colornames.White,
	Transparent: color.RGBA{0, 0, 0, 0},
}

// CreateBackground creates a sky gradient over a gridded ground strip.
// The ground sits at the bottom so a wrong vertical flip is easy to spot.
func CreateBackground(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	groundTop := height * 3 / 4

	for y := 0; y < groundTop; y++ {
		t := float64(y) / float64(max(groundTop-1, 1))
		row := Blend(ColorPalette.SkyTop, ColorPalette.SkyBottom, t)
		draw.Draw(img, image.Rect(0, y, width, y+1), &image.Uniform{row}, image.Point{}, draw.Src)
	}
	draw.Draw(img, image.Rect(0, groundTop, width, height), &image.Uniform{ColorPalette.Ground}, image.Point{}, draw.Src)

	// Grid on the ground
	for y := groundTop; y < height; y += TileSize / 4 {
		for x := 0; x < width; x++ {
			img.Set(x, y, ColorPalette.GridLine)
		}
	}
	for x := 0; x < width; x += TileSize {
		for y := groundTop; y < height; y++ {
			img.Set(x, y, ColorPalette.GridLine)
		}
	}

	return img
}

// CreateCharacter creates a circular sprite on a transparent background
func CreateCharacter(size int) *image.Paletted {
	palette := color.Palette{ColorPalette.Transparent, ColorPalette.Player, ColorPalette.Outline}
	img := image.NewPaletted(image.Rect(0, 0, size, size), palette)

	center := size / 2
	radius := size/2 - 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.SetColorIndex(x, y, 1)
			} else if distSq <= (radius+1)*(radius+1) {
				img.SetColorIndex(x, y, 2)
			}
		}
	}

	// Eyes near the top so orientation is visible
	for _, ex := range []int{center - size/6, center + size/6} {
		img.SetColorIndex(ex, center-size/6, 2)
	}

	return img
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// SaveGIF saves a paletted image as a single-frame GIF
func SaveGIF(img *image.Paletted, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gif.Encode(file, img, &gif.Options{NumColors: len(img.Palette)})
}

// Paths of the generated files inside the output directory
const (
	BackgroundFile = "background.png"
	CharacterFile  = "character.gif"
)

// GenerateAndSave writes the background and character images into dir and
// returns their paths.
func GenerateAndSave(dir string) (background, character string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	background = filepath.Join(dir, BackgroundFile)
	if err := SavePNG(CreateBackground(BackgroundWidth, BackgroundHeight), background); err != nil {
		return "", "", fmt.Errorf("failed to save %s: %w", BackgroundFile, err)
	}

	character = filepath.Join(dir, CharacterFile)
	if err := SaveGIF(CreateCharacter(SpriteSize), character); err != nil {
		return "", "", fmt.Errorf("failed to save %s: %w", CharacterFile, err)
	}

	return background, character, nil
}

// Blend linearly interpolates between two colors, t in [0,1]
func Blend(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}
