// Package texture decodes image files and uploads them as GPU textures.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"chosenoffset.com/basegame/internal/render"
)

// Format is the pixel layout of a texture.
type Format int

// FormatRGBA8 is four channels, eight bits each. It is the only format.
const FormatRGBA8 Format = iota

// Texture is a GPU-resident image and its fixed sampling parameters.
type Texture struct {
	Image  render.Image
	Width  int
	Height int
	Format Format
	Filter render.Filter
	Path   string
}

// Dispose releases the GPU image. It is safe to call more than once.
func (t *Texture) Dispose() {
	if t == nil || t.Image == nil {
		return
	}
	t.Image.Dispose()
	t.Image = nil
}

// AssetLoadError reports an image file that could not become a texture.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load texture file %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("image has zero width or height")

// Loader turns image files into textures using a backend uploader.
type Loader struct {
	resources render.ResourceLoader
}

// NewLoader creates a loader that uploads through resources.
func NewLoader(resources render.ResourceLoader) *Loader {
	return &Loader{resources: resources}
}

// Load decodes the file at path and uploads it. Any failure is an
// *AssetLoadError and no texture is returned.
func (l *Loader) Load(path string) (*Texture, error) {
	pixels, err := Decode(path)
	if err != nil {
		return nil, err
	}

	img, err := l.resources.UploadImage(pixels)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: fmt.Errorf("upload: %w", err)}
	}
	if img == nil {
		return nil, &AssetLoadError{Path: path, Err: errors.New("upload returned no image")}
	}

	b := pixels.Bounds()
	log.Printf("Loaded texture %s (%dx%d)", path, b.Dx(), b.Dy())
	return &Texture{
		Image:  img,
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: FormatRGBA8,
		Filter: render.FilterLinear,
		Path:   path,
	}, nil
}

// Decode reads an image file into an RGBA buffer whose first row is the
// bottom row of the source. Animated GIFs yield their first frame.
func Decode(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	if src.Bounds().Empty() {
		return nil, &AssetLoadError{Path: path, Err: ErrEmptyImage}
	}
	return flipRGBA(src), nil
}

// flipRGBA converts src to RGBA with the rows in reverse order.
func flipRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	upright := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(upright, upright.Bounds(), src, b.Min, draw.Src)

	flipped := image.NewRGBA(image.Rect(0, 0, w, h))
	rowLen := w * 4
	for y := 0; y < h; y++ {
		from := upright.Pix[y*upright.Stride : y*upright.Stride+rowLen]
		to := flipped.Pix[(h-1-y)*flipped.Stride : (h-1-y)*flipped.Stride+rowLen]
		copy(to, from)
	}
	return flipped
}
