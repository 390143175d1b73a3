package mshadow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockSampleTracksWallClock(t *testing.T) {
	t1 := clockSample()
	t1a := time.Now()
	time.Sleep(200 * time.Millisecond)
	t2 := clockSample()
	t2a := time.Now()

	diff := clockDiff(t1, t2)
	diffa := t2a.Sub(t1a).Nanoseconds()
	assert.True(t, FloatsEqualWithTolerance(float64(diff), float64(diffa), 5),
		"clock diverges from wall clock: %v vs %v", time.Duration(diff), time.Duration(diffa))
}

func TestCalcMinClockSample(t *testing.T) {
	minDiff := calcMinClockSample()
	t.Logf("calcMinClockSample result: %d ns", minDiff)
	assert.True(t, minDiff >= 1, "clock precision below 1 ns is implausible")
	assert.True(t, minDiff < 1_000_000, "clock precision above 1 ms is implausible")
}

func TestClockPrecisionCaches(t *testing.T) {
	prev := clockPrecisionNs
	defer func() { clockPrecisionNs = prev }()

	clockPrecisionNs = int64(123456)
	assert.Equal(t, int64(123456), ClockPrecision(), "ClockPrecision should return the cached value")

	clockPrecisionNs = int64(-1)
	p1 := ClockPrecision()
	p2 := ClockPrecision()
	assert.Equal(t, p1, p2, "ClockPrecision should cache its measurement")
	assert.True(t, p1 >= 1)
}
