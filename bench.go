package mshadow

import (
	"fmt"
	"math"
)

// MinimumDataPoints is the smallest number of per-call runtimes accepted by
// CompareFillRuntimes.
const MinimumDataPoints = 11

// FillComparison reports how two engine configurations compare on repeated
// fill calls.
type FillComparison struct {
	MedianANs float64 // median per-call runtime of configuration A, nanoseconds
	MedianBNs float64 // median per-call runtime of configuration B, nanoseconds
	// RelativeSpeedupAvsB is 1 - medianA/medianB: positive when A is faster.
	RelativeSpeedupAvsB float64
}

// MeasureUniformFill runs calls SampleUniform fills of dst on r and returns
// the per-call runtimes in nanoseconds. Timestamps come from the
// high-precision platform clock; runtimes near ClockPrecision() carry
// substantial measurement noise.
func MeasureUniformFill[T Float](r *Random[T], dst Tensor[T], calls int) []float64 {
	runtimes := make([]float64, calls)
	for i := range runtimes {
		t1 := clockSample()
		r.SampleUniform(dst, 0, 1)
		t2 := clockSample()
		runtimes[i] = float64(clockDiff(t1, t2))
	}
	return runtimes
}

// CompareFillRuntimes compares two per-call runtime samples by their medians.
// A positive RelativeSpeedupAvsB means sample A is faster. The input slices
// are not modified. An error is returned when either sample has fewer than
// MinimumDataPoints entries.
func CompareFillRuntimes(sampleA, sampleB []float64) (FillComparison, error) {
	if len(sampleA) < MinimumDataPoints || len(sampleB) < MinimumDataPoints {
		return FillComparison{}, fmt.Errorf(
			"not enough data points: need at least %d runtimes for each of A and B", MinimumDataPoints)
	}

	medA := QuickMedian(append([]float64(nil), sampleA...))
	medB := QuickMedian(append([]float64(nil), sampleB...))

	var delta float64
	switch {
	case math.IsNaN(medA) || math.IsNaN(medB):
		delta = math.NaN()
	case medA == medB:
		delta = 0.0
	default:
		// Scale-aware epsilon guard against a zero or tiny denominator.
		eps := math.Max(math.Abs(medB)*1e-12, math.SmallestNonzeroFloat64)
		denom := medB
		if math.Abs(medB) < eps {
			denom = eps
		}
		delta = 1.0 - medA/denom
	}

	return FillComparison{
		MedianANs:           medA,
		MedianBNs:           medB,
		RelativeSpeedupAvsB: delta,
	}, nil
}
