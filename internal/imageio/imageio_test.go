package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 128, A: 255})
		}
	}
	return img
}

func TestDecodePNGRoundTrip(t *testing.T) {
	src := testImage(8, 6)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	got, err := Decode(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, 8, got.Bounds().Dx())
	assert.Equal(t, 6, got.Bounds().Dy())
	assert.Equal(t, src.RGBAAt(3, 2), got.RGBAAt(3, 2))
}

func TestDecodeWithTypeHint(t *testing.T) {
	src := testImage(4, 4)
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, src))

	got, err := Decode(&buf, "bmp")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Bounds().Dx())
}

func TestDecodeWrongHintFails(t *testing.T) {
	src := testImage(4, 4)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	_, err := Decode(&buf, "jpeg")
	assert.ErrorIs(t, err, ErrLoadFailure)
}

func TestDecodeUnsupportedHint(t *testing.T) {
	_, err := Decode(strings.NewReader("anything"), "webp")
	assert.ErrorIs(t, err, ErrLoadFailure)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not an image"), "")
	assert.ErrorIs(t, err, ErrLoadFailure)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.png"), "")
	assert.ErrorIs(t, err, ErrLoadFailure)
}

func TestLoadAndSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	require.NoError(t, SavePNG(path, testImage(5, 5)))

	got, err := Load(path, "png")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Bounds().Dx())
	assert.Equal(t, 5, got.Bounds().Dy())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestToRGBANormalizesOrigin(t *testing.T) {
	// Non-RGBA input with a shifted origin must come out as an RGBA
	// image anchored at (0,0).
	src := image.NewNRGBA(image.Rect(10, 10, 14, 14))
	got := toRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 4, 4), got.Bounds())
}
