package mshadow

import (
	"errors"

	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

// VecStream is the host bulk generator: a seeded MT19937 stream driving
// gonum's distribution samplers. Each call fills a whole column of the
// destination. Bounds and distribution parameters are passed straight to the
// sampler; no post-processing pass is needed on the host path.
type VecStream[T Float] struct {
	src    *prng.MT19937
	closed bool
}

var errStreamClosed = errors.New("generator stream is closed")

// NewVecStream creates a host bulk generator seeded with seed.
func NewVecStream[T Float](seed uint64) (*VecStream[T], error) {
	src := prng.NewMT19937()
	src.Seed(seed)
	return &VecStream[T]{src: src}, nil
}

// Uniform fills dst with values uniformly distributed in [a, b).
func (s *VecStream[T]) Uniform(dst []T, a, b T) error {
	if s.closed {
		return errStreamClosed
	}
	d := distuv.Uniform{Min: float64(a), Max: float64(b), Src: s.src}
	for i := range dst {
		dst[i] = T(d.Rand())
	}
	return nil
}

// Gaussian fills dst with values drawn from Normal(mu, sigma).
func (s *VecStream[T]) Gaussian(dst []T, mu, sigma T) error {
	if s.closed {
		return errStreamClosed
	}
	d := distuv.Normal{Mu: float64(mu), Sigma: float64(sigma), Src: s.src}
	for i := range dst {
		dst[i] = T(d.Rand())
	}
	return nil
}

// Close releases the stream. Using the stream after Close reports an error.
func (s *VecStream[T]) Close() error {
	if s.closed {
		return errStreamClosed
	}
	s.closed = true
	s.src = nil
	return nil
}
