package inspect

import "fmt"

// Aggregate folds per-point results into an immutable summary, grading
// the pass rate against the given scale.
func Aggregate(points []PointResult, threshold float64, method Method, metric string, grading GradeScale) (*Summary, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("cannot grade zero samples: %w", ErrEmptyInput)
	}
	if err := grading.validate(); err != nil {
		return nil, err
	}

	passed := 0
	for _, p := range points {
		if p.Pass {
			passed++
		}
	}
	total := len(points)
	passRate := 100 * float64(passed) / float64(total)

	return &Summary{
		Points:    points,
		Total:     total,
		Passed:    passed,
		Failed:    total - passed,
		PassRate:  passRate,
		Grade:     grading.GradeFor(passRate),
		Threshold: threshold,
		Method:    method,
		Metric:    metric,
	}, nil
}
