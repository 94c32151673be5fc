package inspect

import "fmt"

// Grade is the coarse quality classification derived from the pass rate.
type Grade int

const (
	GradeFail Grade = iota
	GradeAcceptable
	GradeGood
	GradeExcellent
)

func (g Grade) String() string {
	switch g {
	case GradeExcellent:
		return "EXCELLENT"
	case GradeGood:
		return "GOOD"
	case GradeAcceptable:
		return "ACCEPTABLE"
	default:
		return "FAIL"
	}
}

// Description returns the one-line quality assessment used in reports.
func (g Grade) Description() string {
	switch g {
	case GradeExcellent:
		return "No significant pixel defects detected. Image is suitable for production use."
	case GradeGood:
		return "Minor pixel defects detected but within acceptable limits. Image quality is good."
	case GradeAcceptable:
		return "Some pixel defects detected but still within acceptable range. Consider monitoring."
	default:
		return "Significant pixel defects detected. Image quality is below acceptable standards."
	}
}

// Recommendation returns the suggested follow-up action for the grade.
func (g Grade) Recommendation() string {
	switch g {
	case GradeExcellent:
		return "Continue with current process."
	case GradeGood:
		return "Monitor quality trends."
	case GradeAcceptable:
		return "Investigate potential causes and implement improvements."
	default:
		return "Review and correct the imaging process immediately. Do not use for production without fixes."
	}
}

// GradeScale holds the pass-rate cutoffs (percentages) for each grade
// above FAIL. Cutoffs are evaluated top-down, first match wins.
type GradeScale struct {
	Excellent  float64
	Good       float64
	Acceptable float64
}

// DefaultGradeScale is the standard grading used by the tool.
var DefaultGradeScale = GradeScale{
	Excellent:  95.0,
	Good:       87.5,
	Acceptable: 75.0,
}

// validate rejects scales whose cutoffs are not strictly decreasing or
// fall outside [0, 100]; such a scale would break the monotonicity of
// the grade mapping.
func (s GradeScale) validate() error {
	if s.Excellent > 100 || s.Acceptable < 0 {
		return fmt.Errorf("grade cutoffs must lie in [0, 100]: %w", ErrInvalidParameter)
	}
	if !(s.Excellent > s.Good && s.Good > s.Acceptable) {
		return fmt.Errorf("grade cutoffs must be strictly decreasing (excellent %.1f, good %.1f, acceptable %.1f): %w",
			s.Excellent, s.Good, s.Acceptable, ErrInvalidParameter)
	}
	return nil
}

// GradeFor maps a pass rate to its grade.
func (s GradeScale) GradeFor(passRate float64) Grade {
	switch {
	case passRate >= s.Excellent:
		return GradeExcellent
	case passRate >= s.Good:
		return GradeGood
	case passRate >= s.Acceptable:
		return GradeAcceptable
	default:
		return GradeFail
	}
}
