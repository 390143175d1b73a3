package main

import (
	"fmt"

	"github.com/Blz-Galaxy/mshadow"
)

func main() {
	const seed = 42
	const calls = 101

	vec := mshadow.New[float64](mshadow.CPU, seed)
	defer vec.Close()
	scalar := mshadow.New[float64](mshadow.CPU, seed, mshadow.WithScalarFallback())
	defer scalar.Close()

	dst := mshadow.NewTensor[float64](mshadow.Shape{1024, 64})

	vecTimes := mshadow.MeasureUniformFill(vec, dst, calls)
	scalarTimes := mshadow.MeasureUniformFill(scalar, dst, calls)

	cmp, err := mshadow.CompareFillRuntimes(vecTimes, scalarTimes)
	if err != nil {
		panic(err)
	}
	fmt.Printf("clock precision:   %d ns\n", mshadow.ClockPrecision())
	fmt.Printf("vector stream:     median %.0f ns per fill\n", cmp.MedianANs)
	fmt.Printf("scalar fallback:   median %.0f ns per fill\n", cmp.MedianBNs)
	fmt.Printf("relative speedup:  %.1f%%\n", cmp.RelativeSpeedupAvsB*100.0)

	// Distribution sanity check on the vector stream.
	gauss := mshadow.NewTensor[float64](mshadow.Shape{100_000})
	vec.SampleGaussian(gauss, 0, 1)
	mean, variance, _ := mshadow.Statistics(gauss.Data)
	fmt.Printf("gaussian moments:  mean %.4f, variance %.4f\n", mean, variance)
}
