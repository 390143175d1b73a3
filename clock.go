package mshadow

import "math"

const iterationsForCalibration = 1_000_000

var (
	// clockPrecisionNs caches the measured precision of clockSample() on the
	// runtime system in nanoseconds.
	clockPrecisionNs = int64(-1)
)

// ClockPrecision returns the precision of timestamps obtained via
// clockSample() on the runtime system in nanoseconds. It is measured once and
// cached. Typical values are 100ns on Windows and 20-100ns elsewhere.
func ClockPrecision() int64 {
	if clockPrecisionNs == int64(-1) {
		clockPrecisionNs = calcMinClockSample()
	}
	return clockPrecisionNs
}

func calcMinClockSample() int64 {
	var minDiff = int64(math.MaxInt64) // initial large value
	for range iterationsForCalibration {
		t1 := clockSample()
		t2 := clockSample()
		diff := clockDiff(t1, t2)
		if diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}
