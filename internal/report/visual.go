package report

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/uriel-s/image-comparison-tool/internal/inspect"
)

const (
	margin      = 24.0
	titleBand   = 36.0
	chartHeight = 180.0
	markRadius  = 5.0
)

// Visual draws the side-by-side comparison artifact: reference and test
// images with numbered sample markers (green pass, red fail), a bar
// chart of per-point differences with a dashed threshold line, and a
// one-line verdict.
func Visual(ref, test *image.RGBA, s *inspect.Summary) image.Image {
	refW, refH := float64(ref.Bounds().Dx()), float64(ref.Bounds().Dy())
	testW, testH := float64(test.Bounds().Dx()), float64(test.Bounds().Dy())

	imgBand := refH
	if testH > imgBand {
		imgBand = testH
	}
	canvasW := int(margin + refW + margin + testW + margin)
	canvasH := int(titleBand + imgBand + margin + chartHeight + titleBand)
	if canvasW < 480 {
		canvasW = 480
	}

	dc := gg.NewContext(canvasW, canvasH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.DrawString("Image Quality Comparison Report", margin, titleBand/2+4)

	refX, imgY := margin, titleBand
	testX := margin + refW + margin
	dc.DrawImage(ref, int(refX), int(imgY))
	dc.DrawImage(test, int(testX), int(imgY))
	dc.DrawString("Reference", refX, imgY+refH+14)
	dc.DrawString("Test", testX, imgY+testH+14)

	// Reference markers are always green; test markers carry the verdict.
	for i, p := range s.Points {
		drawMarker(dc, refX+float64(p.Coord.X), imgY+float64(p.Coord.Y), i+1, true)
		drawMarker(dc, testX+float64(p.Coord.X), imgY+float64(p.Coord.Y), i+1, p.Pass)
	}

	drawBarChart(dc, s, margin, titleBand+imgBand+margin, float64(canvasW)-2*margin, chartHeight)

	verdict := fmt.Sprintf("%d/%d points passed (%.1f%%) - grade %s", s.Passed, s.Total, s.PassRate, s.Grade)
	dc.SetRGB(0, 0, 0)
	dc.DrawString(verdict, margin, float64(canvasH)-titleBand/2+4)

	return dc.Image()
}

func drawMarker(dc *gg.Context, x, y float64, label int, pass bool) {
	if pass {
		dc.SetRGB(0, 0.7, 0)
	} else {
		dc.SetRGB(0.85, 0, 0)
	}
	dc.DrawCircle(x, y, markRadius)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(x, y, markRadius)
	dc.SetLineWidth(1)
	dc.Stroke()
	dc.SetRGB(0, 0, 0)
	dc.DrawString(fmt.Sprintf("%d", label), x+markRadius+2, y-markRadius)
}

func drawBarChart(dc *gg.Context, s *inspect.Summary, x, y, w, h float64) {
	maxDiff := s.Threshold
	for _, p := range s.Points {
		if p.Diff > maxDiff {
			maxDiff = p.Diff
		}
	}
	// Headroom so the tallest bar does not touch the band above.
	maxDiff *= 1.15
	if maxDiff <= 0 {
		maxDiff = 1
	}

	plotH := h - 20
	barSlot := w / float64(len(s.Points))
	barW := barSlot * 0.6

	for i, p := range s.Points {
		barH := p.Diff / maxDiff * plotH
		bx := x + float64(i)*barSlot + (barSlot-barW)/2
		by := y + plotH - barH
		if p.Pass {
			dc.SetRGBA(0, 0.7, 0, 0.8)
		} else {
			dc.SetRGBA(0.85, 0, 0, 0.8)
		}
		dc.DrawRectangle(bx, by, barW, barH)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawString(fmt.Sprintf("P%d", i+1), bx, y+plotH+14)
		dc.DrawString(fmt.Sprintf("%.1f", p.Diff), bx, by-3)
	}

	thresholdY := y + plotH - s.Threshold/maxDiff*plotH
	dc.SetRGB(0.9, 0.55, 0)
	dc.SetLineWidth(1.5)
	dc.SetDash(6, 4)
	dc.DrawLine(x, thresholdY, x+w, thresholdY)
	dc.Stroke()
	dc.SetDash()
	dc.DrawString(fmt.Sprintf("threshold %.1f", s.Threshold), x+w-110, thresholdY-4)

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawLine(x, y+plotH, x+w, y+plotH)
	dc.Stroke()
}
