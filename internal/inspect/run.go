package inspect

import (
	"fmt"
	"image"
)

// Run executes the full pipeline on a decoded image pair: point
// selection, per-point comparison and aggregation. It is fail-fast: the
// first error at any stage aborts the run and no partial summary is
// produced. Point selection uses the reference image's dimensions.
func Run(ref, test *image.RGBA, opts Options) (*Summary, error) {
	if ref == nil || test == nil {
		return nil, fmt.Errorf("both images are required: %w", ErrInvalidParameter)
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	cmp, err := NewPixelComparator(opts.Metric)
	if err != nil {
		return nil, err
	}

	points, err := SelectPoints(ref.Bounds().Dx(), ref.Bounds().Dy(), opts)
	if err != nil {
		return nil, err
	}

	var results []PointResult
	if opts.Workers > 1 {
		results, err = comparePointsParallel(ref, test, points, opts, cmp)
	} else {
		results, err = comparePointsSequential(ref, test, points, opts, cmp)
	}
	if err != nil {
		return nil, err
	}

	return Aggregate(results, opts.Threshold, opts.Method, opts.Metric, opts.Grading)
}

func comparePointsSequential(ref, test *image.RGBA, points []Coordinate, opts Options, cmp PixelComparator) ([]PointResult, error) {
	results := make([]PointResult, len(points))
	for i, c := range points {
		r, err := ComparePoint(ref, test, c, opts.Threshold, cmp)
		if err != nil {
			return nil, err
		}
		results[i] = r
		if opts.Progress != nil {
			opts.Progress(i+1, len(points))
		}
	}
	return results, nil
}
