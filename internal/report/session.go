package report

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/uriel-s/image-comparison-tool/internal/imageio"
	"github.com/uriel-s/image-comparison-tool/internal/inspect"
)

// Session groups the file artifacts of one run under a timestamped
// directory, mirroring how operators archive successive checks.
type Session struct {
	Dir        string
	ReportPath string
	VisualPath string
}

// Save writes the text report and the visual artifact for the run into
// <baseDir>/analysis_<timestamp>_<method>/.
func Save(baseDir string, ref, test *image.RGBA, s *inspect.Summary, refPath, testPath string, now time.Time) (*Session, error) {
	stamp := now.Format("20060102_150405")
	dir := filepath.Join(baseDir, fmt.Sprintf("analysis_%s_%s", stamp, s.Method))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create session directory %s: %w", dir, err)
	}

	sess := &Session{
		Dir:        dir,
		ReportPath: filepath.Join(dir, fmt.Sprintf("comparison_report_%s.txt", stamp)),
		VisualPath: filepath.Join(dir, fmt.Sprintf("comparison_visualization_%s.png", stamp)),
	}

	if err := os.WriteFile(sess.ReportPath, []byte(Text(s, refPath, testPath, now)), 0o644); err != nil {
		return nil, fmt.Errorf("could not write report: %w", err)
	}
	if err := imageio.SavePNG(sess.VisualPath, Visual(ref, test, s)); err != nil {
		return nil, fmt.Errorf("could not write visualization: %w", err)
	}
	return sess, nil
}
