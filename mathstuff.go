package mshadow

import (
	"math"
	"math/rand"
)

// Statistics returns the mean, variance and standard deviation of data.
// For empty input it returns (0, -1, -1).
func Statistics(data []float64) (mean, variance, stddev float64) {
	if len(data) == 0 {
		return 0, -1, -1
	}

	var sum float64
	n := float64(len(data))

	for _, value := range data {
		sum += value
	}
	mean = sum / n

	for _, value := range data {
		variance += (value - mean) * (value - mean)
	}
	variance /= n
	stddev = math.Sqrt(variance)
	return
}

// FloatsEqualWithTolerance reports whether f1 and f2 agree within the given
// tolerance, expressed as a percentage of either value.
func FloatsEqualWithTolerance(f1, f2, tolerancePercentage float64) bool {
	absTol1 := math.Abs(f1 * tolerancePercentage / 100)
	if f1-absTol1 <= f2 && f1+absTol1 >= f2 {
		return true
	}
	absTol2 := math.Abs(f2 * tolerancePercentage / 100)
	if f2-absTol2 <= f1 && f2+absTol2 >= f1 {
		return true
	}
	return false
}

// partition rearranges xs around a pivot and returns its final index.
func partition(xs []float64, low, high int) int {
	pivot := xs[high]
	i := low
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[high] = xs[high], xs[i]
	return i
}

// quickselect finds the k-th smallest element (0-based) in expected O(n)
// time, choosing pivots with an Xorshift source.
// See https://en.wikipedia.org/wiki/Quickselect
func quickselect(xs []float64, k int) float64 {
	rng := NewXorshift(rand.Uint64())

	low, high := 0, len(xs)-1
	for low <= high {
		pivotIndex := low + int(rng.Uint64()%uint64(high-low+1))
		xs[pivotIndex], xs[high] = xs[high], xs[pivotIndex] // move pivot to end
		p := partition(xs, low, high)
		if p == k {
			return xs[p]
		} else if p < k {
			low = p + 1
		} else {
			high = p - 1
		}
	}
	return xs[k] // fallback
}

// QuickMedian returns the median of xs in expected O(n) time. For an even
// number of elements it returns the higher of the two middle ones.
// Note: this function reorders the input slice; pass a copy to keep the
// original ordering.
func QuickMedian(xs []float64) float64 {
	return quickselect(xs, len(xs)/2)
}
