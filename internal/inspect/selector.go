package inspect

import (
	"fmt"
	"math"
	"math/rand"
)

// SelectPoints produces the ordered sequence of coordinates to sample
// for an image of the given dimensions, according to opts.Method. The
// order is part of the contract: per-point results keep it.
func SelectPoints(width, height int, opts Options) ([]Coordinate, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image dimensions %dx%d must be positive: %w", width, height, ErrInvalidParameter)
	}
	if opts.Method == MethodCustom {
		return validateCustom(width, height, opts.Custom)
	}
	if opts.Count <= 0 {
		return nil, fmt.Errorf("point count %d must be positive: %w", opts.Count, ErrInvalidParameter)
	}
	if opts.Count > width*height {
		return nil, fmt.Errorf("point count %d exceeds the %d pixels of a %dx%d image: %w",
			opts.Count, width*height, width, height, ErrInvalidParameter)
	}

	switch opts.Method {
	case MethodStrategic:
		return selectStrategic(width, height, opts.Count)
	case MethodGrid:
		return selectGrid(width, height, opts.Count)
	case MethodRandom:
		return selectRandom(width, height, opts.Count, opts.Seed), nil
	default:
		return nil, fmt.Errorf("unsupported method %q: %w", opts.Method, ErrInvalidParameter)
	}
}

// strategicCandidates returns the fixed priority-ordered candidate set:
// the four corners first (inset proportionally so samples do not land on
// the outermost pixel row of e.g. letterboxed frames), then the center,
// then the four edge midpoints.
func strategicCandidates(width, height int) []Coordinate {
	inset := min(width, height) / 10
	left, top := inset, inset
	right, bottom := width-1-inset, height-1-inset
	cx, cy := width/2, height/2

	return []Coordinate{
		{left, top},
		{right, top},
		{left, bottom},
		{right, bottom},
		{cx, cy},
		{cx, top},
		{cx, bottom},
		{left, cy},
		{right, cy},
	}
}

func selectStrategic(width, height, count int) ([]Coordinate, error) {
	candidates := strategicCandidates(width, height)
	if count <= len(candidates) {
		return dedupe(candidates[:count], count)
	}

	// More points requested than the fixed set holds: interleave cell
	// centers of a covering grid, skipping locations already taken.
	points := make([]Coordinate, len(candidates), count)
	copy(points, candidates)
	seen := make(map[Coordinate]bool, count)
	for _, c := range points {
		seen[c] = true
	}
	extra, err := selectGrid(width, height, count)
	if err != nil {
		return nil, err
	}
	for _, c := range extra {
		if len(points) == count {
			break
		}
		if !seen[c] {
			seen[c] = true
			points = append(points, c)
		}
	}
	if len(points) < count {
		return nil, fmt.Errorf("cannot place %d distinct strategic points on a %dx%d image: %w",
			count, width, height, ErrInvalidParameter)
	}
	return points, nil
}

// selectGrid partitions the image into a near-square arrangement of at
// least count cells and returns every cell center, row-major.
func selectGrid(width, height, count int) ([]Coordinate, error) {
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	rows := (count + cols - 1) / cols
	if cols > width || rows > height {
		return nil, fmt.Errorf("a %dx%d cell grid does not fit a %dx%d image: %w",
			cols, rows, width, height, ErrInvalidParameter)
	}

	points := make([]Coordinate, 0, cols*rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			points = append(points, Coordinate{
				X: ((2*j + 1) * width) / (2 * cols),
				Y: ((2*i + 1) * height) / (2 * rows),
			})
		}
	}
	return points, nil
}

// selectRandom draws count coordinates uniformly without replacement.
// The sequence is fully determined by the seed.
func selectRandom(width, height, count int, seed int64) []Coordinate {
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[Coordinate]bool, count)
	points := make([]Coordinate, 0, count)
	for len(points) < count {
		c := Coordinate{X: rng.Intn(width), Y: rng.Intn(height)}
		if seen[c] {
			continue
		}
		seen[c] = true
		points = append(points, c)
	}
	return points
}

// validateCustom bounds-checks caller-supplied coordinates. Any invalid
// coordinate rejects the whole batch; no partial selection is returned.
func validateCustom(width, height int, custom []Coordinate) ([]Coordinate, error) {
	if len(custom) == 0 {
		return nil, fmt.Errorf("custom method requires at least one coordinate: %w", ErrInvalidParameter)
	}
	for _, c := range custom {
		if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
			return nil, fmt.Errorf("custom point (%d,%d) is outside image bounds %dx%d: %w",
				c.X, c.Y, width, height, ErrInvalidParameter)
		}
	}
	points := make([]Coordinate, len(custom))
	copy(points, custom)
	return points, nil
}

func dedupe(points []Coordinate, count int) ([]Coordinate, error) {
	seen := make(map[Coordinate]bool, len(points))
	out := make([]Coordinate, 0, len(points))
	for _, c := range points {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	if len(out) < count {
		return nil, fmt.Errorf("only %d distinct points available for %d requested: %w", len(out), count, ErrInvalidParameter)
	}
	return out, nil
}
