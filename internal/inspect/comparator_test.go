package inspect

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRGBDistanceSymmetric(t *testing.T) {
	cmp, err := NewPixelComparator(MetricRGB)
	require.NoError(t, err)

	pairs := [][2]Pixel{
		{{0, 0, 0}, {255, 255, 255}},
		{{10, 200, 30}, {12, 190, 33}},
		{{100, 100, 100}, {100, 100, 100}},
		{{255, 0, 0}, {0, 0, 255}},
	}
	for _, pair := range pairs {
		assert.Equal(t, cmp.Distance(pair[0], pair[1]), cmp.Distance(pair[1], pair[0]))
	}
}

func TestRGBDistanceZeroIffIdentical(t *testing.T) {
	cmp, err := NewPixelComparator(MetricRGB)
	require.NoError(t, err)

	assert.Zero(t, cmp.Distance(Pixel{42, 42, 42}, Pixel{42, 42, 42}))
	assert.NotZero(t, cmp.Distance(Pixel{42, 42, 42}, Pixel{42, 42, 43}))
}

func TestRGBDistanceBlackWhite(t *testing.T) {
	cmp, err := NewPixelComparator(MetricRGB)
	require.NoError(t, err)

	// sqrt(3 * 255^2)
	got := cmp.Distance(Pixel{0, 0, 0}, Pixel{255, 255, 255})
	assert.InDelta(t, math.Sqrt(3*255*255), got, 1e-9)
	assert.InDelta(t, 441.67, got, 0.01)
}

func TestCIEDE2000ZeroOnIdentical(t *testing.T) {
	cmp, err := NewPixelComparator(MetricCIEDE2000)
	require.NoError(t, err)

	assert.InDelta(t, 0, cmp.Distance(Pixel{80, 90, 100}, Pixel{80, 90, 100}), 1e-9)
	assert.Greater(t, cmp.Distance(Pixel{0, 0, 0}, Pixel{255, 255, 255}), 1.0)
}

func TestNewPixelComparatorUnknownMetric(t *testing.T) {
	_, err := NewPixelComparator("ssim")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestComparePointPassFail(t *testing.T) {
	ref := solidImage(10, 10, color.RGBA{100, 100, 100, 255})
	test := solidImage(10, 10, color.RGBA{110, 100, 100, 255})
	cmp, _ := NewPixelComparator(MetricRGB)

	r, err := ComparePoint(ref, test, Coordinate{3, 4}, 30.0, cmp)
	require.NoError(t, err)
	assert.Equal(t, Coordinate{3, 4}, r.Coord)
	assert.Equal(t, Pixel{100, 100, 100}, r.Ref)
	assert.Equal(t, Pixel{110, 100, 100}, r.Test)
	assert.Equal(t, [3]int{10, 0, 0}, r.ChannelDiff)
	assert.InDelta(t, 10.0, r.Diff, 1e-9)
	assert.True(t, r.Pass)

	// Strict inequality: a point exactly at the threshold fails.
	r, err = ComparePoint(ref, test, Coordinate{3, 4}, 10.0, cmp)
	require.NoError(t, err)
	assert.False(t, r.Pass)
}

func TestComparePointMismatchedGeometry(t *testing.T) {
	ref := solidImage(20, 20, color.RGBA{A: 255})
	test := solidImage(10, 10, color.RGBA{A: 255})
	cmp, _ := NewPixelComparator(MetricRGB)

	// Valid in the reference, outside the smaller test image.
	_, err := ComparePoint(ref, test, Coordinate{15, 15}, 30.0, cmp)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// And the other way around.
	_, err = ComparePoint(test, ref, Coordinate{15, 15}, 30.0, cmp)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Inside both, no error.
	_, err = ComparePoint(ref, test, Coordinate{5, 5}, 30.0, cmp)
	assert.NoError(t, err)
}

func TestPixelAtSubImageOffset(t *testing.T) {
	// PixelAt addresses pixels relative to the image's own bounds, so a
	// sub-image with a non-zero origin still reads the right samples.
	base := solidImage(10, 10, color.RGBA{10, 20, 30, 255})
	base.SetRGBA(5, 5, color.RGBA{200, 0, 0, 255})
	sub := base.SubImage(image.Rect(4, 4, 8, 8)).(*image.RGBA)

	p, ok := PixelAt(sub, Coordinate{1, 1})
	require.True(t, ok)
	assert.Equal(t, Pixel{200, 0, 0}, p)

	_, ok = PixelAt(sub, Coordinate{4, 4})
	assert.False(t, ok)
}
