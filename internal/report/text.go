// Package report renders a comparison summary into human-readable
// artifacts: a plain-text report, an annotated visual, and a styled
// terminal digest.
package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/uriel-s/image-comparison-tool/internal/inspect"
)

const rule = "================================================================================"
const thinRule = "----------------------------------------"

// Text renders the full plain-text report for one comparison run.
func Text(s *inspect.Summary, refPath, testPath string, now time.Time) string {
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(rule)
	line("IMAGE QUALITY COMPARISON REPORT")
	line(rule)
	line("Analysis Date: %s", now.Format("2006-01-02 15:04:05"))
	line("Reference Image: %s", filepath.Base(refPath))
	line("Test Image: %s", filepath.Base(testPath))
	line("")

	line("EXECUTIVE SUMMARY:")
	line(thinRule)
	line("Total test points: %d", s.Total)
	line("Points with significant defects: %d", s.Failed)
	line("Points passed: %d", s.Passed)
	line("Pass rate: %.1f%%", s.PassRate)
	line("Overall result: %s", s.Grade)
	line("")

	line("DETAILED PIXEL ANALYSIS:")
	line(rule)
	for i, p := range s.Points {
		status := "PASS"
		if !p.Pass {
			status = "FAIL (significant defect)"
		}
		line("Test Point %d:", i+1)
		line("  Location (X,Y): (%d, %d)", p.Coord.X, p.Coord.Y)
		line("  Reference RGB: (%d, %d, %d)", p.Ref.R, p.Ref.G, p.Ref.B)
		line("  Test RGB: (%d, %d, %d)", p.Test.R, p.Test.G, p.Test.B)
		line("  RGB Differences (R,G,B): (%d, %d, %d)", p.ChannelDiff[0], p.ChannelDiff[1], p.ChannelDiff[2])
		line("  Total Difference: %.2f", p.Diff)
		line("  Status: %s", status)
		line("")
	}

	line("TECHNICAL DETAILS:")
	line(thinRule)
	line("Difference metric: %s", metricDescription(s.Metric))
	line("Significance threshold: %.2f (differences at or above are flagged)", s.Threshold)
	line("Test point selection method: %s", s.Method)
	line("")

	line("RECOMMENDATIONS:")
	line(thinRule)
	line("%s IMAGE QUALITY: %s", gradeMark(s.Grade), s.Grade)
	line("  %s", s.Grade.Description())
	line("  Recommended action: %s", s.Grade.Recommendation())

	return b.String()
}

func metricDescription(metric string) string {
	switch metric {
	case inspect.MetricCIEDE2000:
		return "CIEDE2000 Delta E in Lab space"
	default:
		return "Euclidean distance in RGB space"
	}
}

func gradeMark(g inspect.Grade) string {
	switch g {
	case inspect.GradeExcellent, inspect.GradeGood:
		return "[ok]"
	case inspect.GradeAcceptable:
		return "[warn]"
	default:
		return "[fail]"
	}
}
