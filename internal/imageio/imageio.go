// Package imageio decodes image files into the normalized RGBA form the
// comparison engine works on, and writes rendered artifacts back out.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrLoadFailure reports an unreadable file or undecodable image data.
var ErrLoadFailure = errors.New("image load failure")

// Load opens and decodes the image at path. typeHint forces a specific
// decoder (jpeg, png, bmp, tiff); when empty the format is sniffed from
// the data.
func Load(path, typeHint string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %s: %v", ErrLoadFailure, path, err)
	}
	defer file.Close()

	img, err := Decode(file, typeHint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode reads one image from r and converts it to RGBA for consistent
// pixel access downstream.
func Decode(r io.Reader, typeHint string) (*image.RGBA, error) {
	var decoded image.Image
	var err error

	switch strings.ToLower(typeHint) {
	case "":
		decoded, _, err = image.Decode(r)
	case "jpeg", "jpg":
		decoded, err = jpeg.Decode(r)
	case "png":
		decoded, err = png.Decode(r)
	case "bmp":
		decoded, err = bmp.Decode(r)
	case "tiff", "tif":
		decoded, err = tiff.Decode(r)
	default:
		return nil, fmt.Errorf("%w: unsupported image type %q", ErrLoadFailure, typeHint)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not decode image: %v", ErrLoadFailure, err)
	}
	return toRGBA(decoded), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// SavePNG writes img to path as a PNG.
func SavePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("could not encode %s: %w", path, err)
	}
	return nil
}
