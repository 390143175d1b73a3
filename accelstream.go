package mshadow

import "gonum.org/v1/gonum/mathext/prng"

// AccelStream models the accelerator random generator handle: an opaque
// device stream that natively emits only standard-range uniforms and
// parameterized Gaussians. Rescaling uniforms into arbitrary [a, b) bounds is
// the engine's job (a separate elementwise pass), mirroring device runtimes
// whose uniform kernel takes no bounds.
//
// The current implementation runs the device stream on the host with an
// MT19937-64 generator; the call surface is what an accelerator runtime
// binding would provide.
type AccelStream[T Float] struct {
	src    *prng.MT19937_64
	closed bool
}

// NewAccelStream creates an accelerator generator handle seeded with seed.
func NewAccelStream[T Float](seed uint64) (*AccelStream[T], error) {
	src := prng.NewMT19937_64()
	src.Seed(seed)
	return &AccelStream[T]{src: src}, nil
}

// UniformNative fills dst with the stream's native uniform output in [0, 1).
func (s *AccelStream[T]) UniformNative(dst []T) error {
	if s.closed {
		return errStreamClosed
	}
	for i := range dst {
		dst[i] = unitFloat[T](s.src.Uint64())
	}
	return nil
}

// Gaussian fills dst with values drawn from Normal(mu, sigma) using the
// Box-Muller polar transform over the device stream.
func (s *AccelStream[T]) Gaussian(dst []T, mu, sigma T) error {
	if s.closed {
		return errStreamClosed
	}
	var g1, g2 T
	for j := range dst {
		if j&1 == 0 {
			g1, g2 = normalPair[T](s.openFloat)
			dst[j] = mu + g1*sigma
		} else {
			dst[j] = mu + g2*sigma
		}
	}
	return nil
}

// Close releases the device handle. Using the handle after Close reports an
// error.
func (s *AccelStream[T]) Close() error {
	if s.closed {
		return errStreamClosed
	}
	s.closed = true
	s.src = nil
	return nil
}

func (s *AccelStream[T]) openFloat() float64 {
	return (float64(s.src.Uint64()>>11) + 0.5) / (1 << 53)
}

// unitFloat maps 64 random bits onto [0, 1) at the precision of T.
// The result never equals 1.0.
func unitFloat[T Float](u uint64) T {
	var t T
	if _, ok := any(t).(float32); ok {
		return T(float32(u>>40) / (1 << 24))
	}
	return T(float64(u>>11) / (1 << 53))
}
