package inspect

import (
	"image"
	"sync"
	"sync/atomic"
)

type pointJob struct {
	idx   int
	coord Coordinate
}

// comparePointsParallel fans the sampled points out over opts.Workers
// goroutines. Each worker writes into a distinct slot of the pre-sized
// result slice, so the summary keeps selector order regardless of
// scheduling. On error the earliest failing point (by selector order)
// wins and no results are returned.
func comparePointsParallel(ref, test *image.RGBA, points []Coordinate, opts Options, cmp PixelComparator) ([]PointResult, error) {
	results := make([]PointResult, len(points))
	errs := make([]error, len(points))
	jobs := make(chan pointJob, len(points))

	var done int64
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				r, err := ComparePoint(ref, test, job.coord, opts.Threshold, cmp)
				if err != nil {
					errs[job.idx] = err
					continue
				}
				results[job.idx] = r
				if opts.Progress != nil {
					opts.Progress(int(atomic.AddInt64(&done, 1)), len(points))
				}
			}
		}()
	}

	for i, c := range points {
		jobs <- pointJob{idx: i, coord: c}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
