// Package checker wires the comparison engine to its collaborators for
// one CLI invocation: image loading, progress display, report output.
package checker

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/uriel-s/image-comparison-tool/internal/imageio"
	"github.com/uriel-s/image-comparison-tool/internal/inspect"
	"github.com/uriel-s/image-comparison-tool/internal/report"
)

var durationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("202"))

// Run loads the image pair, executes the comparison pipeline and emits
// the configured reports. Any stage error aborts the run.
func Run(cfg *Config) error {
	log.Printf("Starting comparison of %s vs %s (method=%s points=%d threshold=%.2f metric=%s workers=%d)",
		cfg.ReferencePath, cfg.TestPath, cfg.Method, cfg.Points, cfg.Threshold, cfg.Metric, cfg.Workers)

	ref, err := imageio.Load(cfg.ReferencePath, cfg.ImageType)
	if err != nil {
		return fmt.Errorf("failed to load reference image: %w", err)
	}
	test, err := imageio.Load(cfg.TestPath, cfg.ImageType)
	if err != nil {
		return fmt.Errorf("failed to load test image: %w", err)
	}
	log.Printf("Reference image loaded: %dx%d", ref.Bounds().Dx(), ref.Bounds().Dy())
	log.Printf("Test image loaded: %dx%d", test.Bounds().Dx(), test.Bounds().Dy())

	opts := inspect.Options{
		Method:    cfg.Method,
		Count:     cfg.Points,
		Custom:    cfg.CustomPoints,
		Threshold: cfg.Threshold,
		Seed:      cfg.Seed,
		Metric:    cfg.Metric,
		Workers:   cfg.Workers,
	}

	var processed int64
	var total int64
	if !cfg.Quiet {
		opts.Progress = func(done, n int) {
			atomic.StoreInt64(&processed, int64(done))
			atomic.StoreInt64(&total, int64(n))
		}
	}

	done := make(chan struct{})
	var spinnerWg sync.WaitGroup
	if !cfg.Quiet {
		spinnerWg.Add(1)
		go func() {
			defer spinnerWg.Done()
			runSpinner(done, &processed, &total)
		}()
	}

	startTime := time.Now()
	summary, err := inspect.Run(ref, test, opts)
	close(done)
	spinnerWg.Wait()
	if err != nil {
		return err
	}
	duration := time.Since(startTime)
	log.Printf("Compared %d points in %s.", summary.Total, duration)

	if !cfg.Quiet {
		fmt.Print(report.Terminal(summary))
		fmt.Printf("Processing time: %s\n", durationStyle.Render(fmt.Sprintf("%.4fs", duration.Seconds())))
	}

	if cfg.Save {
		sess, err := report.Save(cfg.OutputDirectory, ref, test, summary, cfg.ReferencePath, cfg.TestPath, time.Now())
		if err != nil {
			return err
		}
		log.Printf("Saved report to %s", sess.ReportPath)
		log.Printf("Saved visualization to %s", sess.VisualPath)
		if !cfg.Quiet {
			fmt.Printf("Reports saved in %s\n", sess.Dir)
		}
	}
	return nil
}

// runSpinner animates a progress line until the run finishes.
func runSpinner(done <-chan struct{}, processed, total *int64) {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			fmt.Printf("\r%s Comparison complete. %d/%d points processed.\n",
				"✓", atomic.LoadInt64(processed), atomic.LoadInt64(total))
			return
		case <-ticker.C:
			s, _ = s.Update(spinner.TickMsg{})
			fmt.Printf("\r%s Comparing points %d/%d...",
				s.View(), atomic.LoadInt64(processed), atomic.LoadInt64(total))
		}
	}
}
