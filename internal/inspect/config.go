package inspect

import (
	"fmt"
	"strings"
)

// DefaultThreshold is the RGB Euclidean distance below which a sampled
// point counts as a pass.
const DefaultThreshold = 30.0

// Method identifies a point-selection strategy.
type Method string

const (
	MethodStrategic Method = "strategic"
	MethodGrid      Method = "grid"
	MethodRandom    Method = "random"
	MethodCustom    Method = "custom"
)

// ParseMethod normalizes and validates a method name.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(s)); m {
	case MethodStrategic, MethodGrid, MethodRandom, MethodCustom:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported method %q (expected strategic, grid, random or custom): %w", s, ErrInvalidParameter)
	}
}

// Options holds all the parameters for one comparison run. The zero
// value is not usable; populate Method and Count (or Custom) and leave
// the rest to their defaults via normalize.
type Options struct {
	Method Method
	// Count is the number of points to sample. Ignored for the custom
	// method, which uses len(Custom).
	Count int
	// Custom holds explicit coordinates for the custom method.
	Custom []Coordinate
	// Threshold is the scalar difference below which a point passes.
	// Zero means DefaultThreshold; negative is invalid.
	Threshold float64
	// Seed drives the random method. The same seed always produces the
	// same point sequence.
	Seed int64
	// Metric names the per-point difference metric, one of MetricRGB
	// (default) or MetricCIEDE2000.
	Metric string
	// Workers sets the number of comparison goroutines. Values below 2
	// select the sequential path. Summary ordering is identical either
	// way.
	Workers int
	// Grading overrides the pass-rate cutoffs. The zero value means
	// DefaultGradeScale.
	Grading GradeScale
	// Progress, when set, is invoked after each compared point with the
	// number of points done and the total. It must be safe for
	// concurrent use when Workers > 1.
	Progress func(done, total int)
}

// normalize fills defaults and validates the option set.
func (o *Options) normalize() error {
	if o.Method == "" {
		o.Method = MethodStrategic
	}
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Threshold < 0 {
		return fmt.Errorf("threshold %.2f must not be negative: %w", o.Threshold, ErrInvalidParameter)
	}
	if o.Metric == "" {
		o.Metric = MetricRGB
	}
	if o.Grading == (GradeScale{}) {
		o.Grading = DefaultGradeScale
	}
	if err := o.Grading.validate(); err != nil {
		return err
	}
	if o.Method == MethodCustom {
		o.Count = len(o.Custom)
	}
	return nil
}
