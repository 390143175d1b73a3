package mshadow

import "math"

// Xorshift is the scalar fallback random source, an xorshift* generator
// (see https://en.wikipedia.org/wiki/Xorshift#xorshift*). It is deterministic
// for a given seed, has a period of 2^64-1, and is not cryptographically
// secure. It produces one value per call and is not safe for concurrent use;
// each Random engine owns its own instance.
type Xorshift struct {
	State uint64
}

// NewXorshift creates a scalar source from a seed. The raw seed is expanded
// through a SplitMix64 step so that any seed value, including zero, yields a
// valid nonzero xorshift state.
func NewXorshift(seed uint64) *Xorshift {
	z := seed + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	if z == 0 {
		z = 0x9E3779B97F4A7C15
	}
	return &Xorshift{State: z}
}

// Uint64 returns the next pseudo-random number in the sequence.
func (x *Xorshift) Uint64() uint64 {
	v := x.State
	v ^= v >> 12
	v ^= v << 25
	v ^= v >> 27
	x.State = v
	return v * 0x2545F4914F6CDD1D
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
// This function will never return 1.0 and never returns NaN or Inf.
// It uses 52 random bits for the mantissa, the maximum randomness a float64
// can hold without breaking uniformity.
func (x *Xorshift) Float64() float64 {
	u := x.Uint64() & 0x000FFFFFFFFFFFFF // 52 random bits for mantissa

	const exp uint64 = 1023
	bits := (exp << 52) | u
	return math.Float64frombits(bits) - 1.0
}

// Float32 returns a uniformly distributed float32 in [0.0, 1.0).
// This function will never return 1.0. It uses 23 random bits for the
// mantissa, the maximum randomness a float32 can hold without breaking
// uniformity.
func (x *Xorshift) Float32() float32 {
	u := uint32(x.Uint64()) & 0x7FFFFF // 23 random bits for mantissa

	const exp uint32 = 127
	bits := (exp << 23) | u
	return math.Float32frombits(bits) - 1.0
}

// Float64Open returns a uniformly distributed float64 in the open interval
// (0.0, 1.0), excluding both endpoints. The Box-Muller polar transform draws
// from this to keep log(s) finite.
func (x *Xorshift) Float64Open() float64 {
	return (float64(x.Uint64()>>11) + 0.5) / (1 << 53)
}

// Float32Open returns a uniformly distributed float32 in the open interval
// (0.0, 1.0), excluding both endpoints. Only 23 random bits are used so the
// +0.5 offset stays exactly representable and the result cannot round to 1.0.
func (x *Xorshift) Float32Open() float32 {
	return (float32(x.Uint64()>>41) + 0.5) / (1 << 23)
}
