package inspect

// Coordinate is a sample location on an image, with 0 <= X < width and
// 0 <= Y < height of the image it is evaluated against.
type Coordinate struct {
	X int
	Y int
}

// Pixel is one 3-channel color sample, 0-255 per channel.
type Pixel struct {
	R uint8
	G uint8
	B uint8
}

// PointResult records the comparison of a single sampled point. It is
// created once per point and never modified afterwards.
type PointResult struct {
	Coord Coordinate
	Ref   Pixel
	Test  Pixel
	// ChannelDiff holds the signed per-channel deltas (test minus
	// reference) for R, G and B.
	ChannelDiff [3]int
	// Diff is the scalar difference produced by the active metric.
	Diff float64
	// Pass is true when Diff is strictly below the threshold.
	Pass bool
}

// Summary is the immutable record of one comparison run.
type Summary struct {
	// Points holds the per-point results in selector order.
	Points    []PointResult
	Total     int
	Passed    int
	Failed    int
	// PassRate is a percentage in [0, 100]. It is not rounded here;
	// rounding is left to report rendering.
	PassRate  float64
	Grade     Grade
	Threshold float64
	Method    Method
	Metric    string
}
