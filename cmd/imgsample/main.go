// Command imgsample generates reference/test image pairs with
// controlled defects, for demos and manual testing of imgcheck.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/spf13/pflag"

	"github.com/uriel-s/image-comparison-tool/internal/imageio"
)

func main() {
	var outDir string
	pflag.StringVarP(&outDir, "output", "o", "./images", "Directory to write the sample image pairs.")
	pflag.Parse()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	generators := []func(string) (string, string, error){writeDefectPair, writeGradientPair}
	for i, generate := range generators {
		refPath, testPath, err := generate(outDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating samples: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Pair %d: %s vs %s\n", i+1, refPath, testPath)
	}
}

// writeDefectPair draws a sectioned reference image and a test copy
// with defects of decreasing severity: a black spot, a white spot, two
// subtle color shifts, a noise patch and a bright line.
func writeDefectPair(outDir string) (refPath, testPath string, err error) {
	const w, h = 800, 600

	dc := gg.NewContext(w, h)
	dc.SetRGB255(50, 100, 150)
	dc.Clear()
	fillRect(dc, 0, 0, w, 150, 100, 150, 200)
	fillRect(dc, 0, 150, 200, float64(h)-150, 50, 180, 80)
	fillRect(dc, 600, 150, 200, float64(h)-150, 200, 60, 70)
	fillRect(dc, 200, 200, 400, 200, 220, 200, 50)
	dc.SetRGB255(150, 100, 250)
	dc.DrawEllipse(400, 300, 100, 50)
	dc.Fill()

	refPath = filepath.Join(outDir, "reference_defect_test.png")
	if err = imageio.SavePNG(refPath, dc.Image()); err != nil {
		return "", "", err
	}

	// Defects go on a copy of the reference.
	fillRect(dc, 100, 50, 100, 50, 0, 0, 0)
	fillRect(dc, 650, 200, 100, 100, 255, 255, 255)
	fillRect(dc, 250, 250, 50, 50, 180, 130, 255)
	fillRect(dc, 400, 280, 50, 50, 170, 120, 230)

	test := toRGBA(dc.Image())
	addNoisePatch(test, 50, 100, 100, 130)
	for x := 300; x < 500; x++ {
		test.SetRGBA(x, 180, color.RGBA{R: 255, B: 255, A: 255})
		test.SetRGBA(x, 181, color.RGBA{R: 255, B: 255, A: 255})
	}

	testPath = filepath.Join(outDir, "test_defect_test.png")
	if err = imageio.SavePNG(testPath, test); err != nil {
		return "", "", err
	}
	return refPath, testPath, nil
}

// writeGradientPair draws a smooth RGB gradient and a quantized copy
// with 32-level banding, exercising many small per-point differences.
func writeGradientPair(outDir string) (refPath, testPath string, err error) {
	const w, h = 400, 300

	ref := image.NewRGBA(image.Rect(0, 0, w, h))
	test := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := uint8(255 * x / w)
			g := uint8(255 * y / h)
			b := uint8(255 * (x + y) / (w + h))
			ref.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
			test.SetRGBA(x, y, color.RGBA{R: r / 32 * 32, G: g / 32 * 32, B: b / 32 * 32, A: 255})
		}
	}

	refPath = filepath.Join(outDir, "reference_gradient.png")
	testPath = filepath.Join(outDir, "test_gradient.png")
	if err = imageio.SavePNG(refPath, ref); err != nil {
		return "", "", err
	}
	if err = imageio.SavePNG(testPath, test); err != nil {
		return "", "", err
	}
	return refPath, testPath, nil
}

func fillRect(dc *gg.Context, x, y, w, h float64, r, g, b int) {
	dc.SetRGB255(r, g, b)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
}

// addNoisePatch shifts every third pixel in the patch strongly towards
// red, simulating sensor noise in a corner.
func addNoisePatch(img *image.RGBA, x0, y0, x1, y1 int) {
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			if (x+y)%3 != 0 {
				continue
			}
			c := img.RGBAAt(x, y)
			c.R = clamp8(int(c.R) + 60)
			c.G = clamp8(int(c.G) - 40)
			img.SetRGBA(x, y, c)
		}
	}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}
