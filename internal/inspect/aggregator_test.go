package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultsWithPassRate builds 1000 point results with the given number
// passing, so pass rates with one decimal place are exactly
// representable.
func resultsWithPassRate(passedPerMille int) []PointResult {
	points := make([]PointResult, 1000)
	for i := range points {
		points[i].Pass = i < passedPerMille
	}
	return points
}

func TestAggregateGradeBoundaries(t *testing.T) {
	cases := []struct {
		passedPerMille int
		want           Grade
	}{
		{1000, GradeExcellent},
		{950, GradeExcellent},
		{949, GradeGood},
		{875, GradeGood},
		{874, GradeAcceptable},
		{750, GradeAcceptable},
		{749, GradeFail},
		{0, GradeFail},
	}
	for _, tc := range cases {
		s, err := Aggregate(resultsWithPassRate(tc.passedPerMille), DefaultThreshold, MethodGrid, MetricRGB, DefaultGradeScale)
		require.NoError(t, err)
		assert.InDelta(t, float64(tc.passedPerMille)/10, s.PassRate, 1e-9)
		assert.Equal(t, tc.want, s.Grade, "pass rate %.1f", s.PassRate)
	}
}

func TestAggregateGradeMonotonic(t *testing.T) {
	prev := GradeFail
	for perMille := 0; perMille <= 1000; perMille += 25 {
		s, err := Aggregate(resultsWithPassRate(perMille), DefaultThreshold, MethodGrid, MetricRGB, DefaultGradeScale)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.Grade, prev, "grade regressed at pass rate %.1f", s.PassRate)
		prev = s.Grade
	}
}

func TestAggregateCounts(t *testing.T) {
	points := []PointResult{
		{Pass: true}, {Pass: false}, {Pass: true}, {Pass: true},
	}
	s, err := Aggregate(points, 12.5, MethodRandom, MetricRGB, DefaultGradeScale)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.InDelta(t, 75.0, s.PassRate, 1e-9)
	assert.Equal(t, GradeAcceptable, s.Grade)
	assert.Equal(t, 12.5, s.Threshold)
	assert.Equal(t, MethodRandom, s.Method)
	assert.Len(t, s.Points, 4)
}

func TestAggregateEmptyInput(t *testing.T) {
	_, err := Aggregate(nil, DefaultThreshold, MethodGrid, MetricRGB, DefaultGradeScale)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Aggregate([]PointResult{}, DefaultThreshold, MethodGrid, MetricRGB, DefaultGradeScale)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAggregateCustomGradeScale(t *testing.T) {
	strict := GradeScale{Excellent: 99.0, Good: 95.0, Acceptable: 90.0}
	s, err := Aggregate(resultsWithPassRate(950), DefaultThreshold, MethodGrid, MetricRGB, strict)
	require.NoError(t, err)
	assert.Equal(t, GradeGood, s.Grade)
}

func TestAggregateInvalidGradeScale(t *testing.T) {
	cases := []GradeScale{
		{Excellent: 80, Good: 87.5, Acceptable: 75},
		{Excellent: 95, Good: 95, Acceptable: 75},
		{Excellent: 120, Good: 87.5, Acceptable: 75},
		{Excellent: 95, Good: 87.5, Acceptable: -5},
	}
	for _, scale := range cases {
		_, err := Aggregate(resultsWithPassRate(500), DefaultThreshold, MethodGrid, MetricRGB, scale)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
}
