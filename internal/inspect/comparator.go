package inspect

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Metric identifiers accepted by NewPixelComparator.
const (
	// MetricRGB is the Euclidean distance between the two RGB vectors,
	// in [0, ~441.7]. The default threshold is calibrated for it.
	MetricRGB = "rgb"
	// MetricCIEDE2000 is the perceptual Delta E 2000 distance. Its
	// scale is unrelated to MetricRGB; pick a matching threshold
	// (around 2-5 for a just-noticeable difference).
	MetricCIEDE2000 = "ciede2000"
)

// PixelComparator computes the scalar difference between two color
// samples.
type PixelComparator interface {
	Distance(ref, test Pixel) float64
}

// NewPixelComparator returns the comparator for the named metric.
func NewPixelComparator(metric string) (PixelComparator, error) {
	switch strings.ToLower(metric) {
	case MetricRGB:
		return rgbComparator{}, nil
	case MetricCIEDE2000:
		return ciede2000Comparator{}, nil
	default:
		return nil, fmt.Errorf("unsupported metric %q (expected %s or %s): %w",
			metric, MetricRGB, MetricCIEDE2000, ErrInvalidParameter)
	}
}

type rgbComparator struct{}

func (rgbComparator) Distance(ref, test Pixel) float64 {
	dr := float64(int(test.R) - int(ref.R))
	dg := float64(int(test.G) - int(ref.G))
	db := float64(int(test.B) - int(ref.B))
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

type ciede2000Comparator struct{}

func (ciede2000Comparator) Distance(ref, test Pixel) float64 {
	cr := colorful.Color{R: float64(ref.R) / 255.0, G: float64(ref.G) / 255.0, B: float64(ref.B) / 255.0}
	ct := colorful.Color{R: float64(test.R) / 255.0, G: float64(test.G) / 255.0, B: float64(test.B) / 255.0}
	return cr.DistanceCIEDE2000(ct)
}

// PixelAt extracts the color sample at c, or reports false when c lies
// outside the image bounds.
func PixelAt(img *image.RGBA, c Coordinate) (Pixel, bool) {
	b := img.Bounds()
	if c.X < 0 || c.X >= b.Dx() || c.Y < 0 || c.Y >= b.Dy() {
		return Pixel{}, false
	}
	off := img.PixOffset(b.Min.X+c.X, b.Min.Y+c.Y)
	return Pixel{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2]}, true
}

// ComparePoint evaluates one sampled point against both images. The
// coordinate must be valid in both; with mismatched image geometry a
// point inside one image but outside the other fails with
// ErrOutOfBounds rather than being clamped or skipped.
func ComparePoint(ref, test *image.RGBA, c Coordinate, threshold float64, cmp PixelComparator) (PointResult, error) {
	rp, ok := PixelAt(ref, c)
	if !ok {
		return PointResult{}, fmt.Errorf("point (%d,%d) outside reference image %dx%d: %w",
			c.X, c.Y, ref.Bounds().Dx(), ref.Bounds().Dy(), ErrOutOfBounds)
	}
	tp, ok := PixelAt(test, c)
	if !ok {
		return PointResult{}, fmt.Errorf("point (%d,%d) outside test image %dx%d: %w",
			c.X, c.Y, test.Bounds().Dx(), test.Bounds().Dy(), ErrOutOfBounds)
	}

	diff := cmp.Distance(rp, tp)
	return PointResult{
		Coord: c,
		Ref:   rp,
		Test:  tp,
		ChannelDiff: [3]int{
			int(tp.R) - int(rp.R),
			int(tp.G) - int(rp.G),
			int(tp.B) - int(rp.B),
		},
		Diff: diff,
		Pass: diff < threshold,
	}, nil
}
