package checker

import "github.com/uriel-s/image-comparison-tool/internal/inspect"

// Config holds all the configuration parameters for one CLI invocation,
// parsed from command-line flags.
type Config struct {
	ReferencePath   string
	TestPath        string
	Method          inspect.Method
	Points          int
	CustomPoints    []inspect.Coordinate
	Threshold       float64
	Seed            int64
	Metric          string
	Workers         int
	ImageType       string
	OutputDirectory string
	Save            bool
	Quiet           bool
}
