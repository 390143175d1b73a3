package mshadow

import (
	"errors"
	"fmt"
	"math"
)

// RandBufferSize is the fixed capacity, in elements, of the scratch buffer
// backing the temporary expressions returned by Uniform and Gaussian. Every
// shape requested through those calls must have a padded element count
// strictly below this capacity.
const RandBufferSize = 1_000_000

// Device selects the compute device a Random engine is bound to.
type Device int

const (
	// CPU generates on the host, by default through the vectorized bulk
	// stream (VecStream).
	CPU Device = iota
	// Accel generates through an accelerator generator handle (AccelStream).
	Accel
)

// Option configures engine construction.
type Option func(*engineOptions)

type engineOptions struct {
	scalarFallback bool
}

// WithScalarFallback makes a CPU engine bypass the vectorized bulk stream and
// generate every value through the engine's scalar Xorshift source. The
// scalar path is fully deterministic per seed across platforms. The option
// has no effect on Accel engines.
func WithScalarFallback() Option {
	return func(o *engineOptions) { o.scalarFallback = true }
}

// Random is a per-device random number engine. It owns exactly one generator
// backend and one scratch buffer, both acquired at construction and released
// by Close. One instance is not safe for concurrent use; parallel sampling
// requires independent engines with independent seeds.
type Random[T Float] struct {
	dev Device
	vec *VecStream[T]   // host bulk path, nil in scalar-fallback mode
	acc *AccelStream[T] // accelerator path
	src *Xorshift       // scalar fallback source, always present
	buf []T             // scratch storage for temporary expressions

	closed bool
}

// New constructs a Random engine bound to dev and seeded with seed. A failed
// backend initialization is fatal: the engine panics rather than returning a
// broken handle.
func New[T Float](dev Device, seed uint64, opts ...Option) *Random[T] {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}
	r := &Random[T]{dev: dev, src: NewXorshift(seed)}
	switch dev {
	case CPU:
		if !o.scalarFallback {
			vs, err := NewVecStream[T](seed)
			assertOK(err, "mshadow: host random stream failed to initialize")
			r.vec = vs
		}
	case Accel:
		as, err := NewAccelStream[T](seed)
		assertOK(err, "mshadow: accelerator random generator failed to initialize")
		r.acc = as
	default:
		panic(fmt.Sprintf("mshadow: unknown device %d", dev))
	}
	r.buf = make([]T, RandBufferSize)
	return r
}

// Device returns the compute device the engine is bound to.
func (r *Random[T]) Device() Device { return r.dev }

// Close releases the generator backend and frees the scratch buffer, in that
// order. It must be called exactly once; a second Close reports an error and
// releases nothing.
func (r *Random[T]) Close() error {
	if r.closed {
		return errors.New("mshadow: random engine closed twice")
	}
	r.closed = true
	if r.vec != nil {
		assertOK(r.vec.Close(), "mshadow: failed to release host random stream")
	}
	if r.acc != nil {
		assertOK(r.acc.Close(), "mshadow: failed to release accelerator generator")
	}
	r.buf = nil
	return nil
}

// SampleUniform fills dst with values uniformly distributed in [a, b).
// The destination is flattened to 2D and filled column by column. A failing
// generator backend is a fatal condition and panics.
func (r *Random[T]) SampleUniform(dst Tensor[T], a, b T) {
	mat := dst.FlatTo2D()
	for i := 0; i < mat.Cols; i++ {
		col := mat.Col(i)
		switch {
		case r.vec != nil:
			assertOK(r.vec.Uniform(col, a, b), "mshadow: host uniform generation failed")
		case r.acc != nil:
			assertOK(r.acc.UniformNative(col), "mshadow: accelerator uniform generation failed")
			// The device stream only emits [0,1); rescale into [a,b) in a
			// second pass.
			for j := range col {
				col[j] = col[j]*(b-a) + a
			}
		default:
			for j := range col {
				col[j] = r.randNext()*(b-a) + a
			}
		}
	}
}

// SampleGaussian fills dst with values drawn from Normal(mu, sigma).
// The scalar fallback produces samples in pairs via the Box-Muller polar
// transform: even rows draw a fresh pair, odd rows consume the spare.
func (r *Random[T]) SampleGaussian(dst Tensor[T], mu, sigma T) {
	mat := dst.FlatTo2D()
	for i := 0; i < mat.Cols; i++ {
		col := mat.Col(i)
		switch {
		case r.vec != nil:
			assertOK(r.vec.Gaussian(col, mu, sigma), "mshadow: host gaussian generation failed")
		case r.acc != nil:
			assertOK(r.acc.Gaussian(col, mu, sigma), "mshadow: accelerator gaussian generation failed")
		default:
			var g1, g2 T
			for j := range col {
				if j&1 == 0 {
					g1, g2 = normalPair[T](r.openNext)
					col[j] = mu + g1*sigma
				} else {
					col[j] = mu + g2*sigma
				}
			}
		}
	}
}

// Uniform returns a temporary expression of the given shape filled with
// uniform [0,1) values, for use as an operand in a surrounding expression.
//
// The expression is a view into the engine's single scratch buffer and is
// valid only until the next call to Uniform or Gaussian on this engine.
// Composing two such temporaries in one unmaterialized expression is
// incorrect: the second call overwrites the first's memory. Combining one
// temporary with non-random operands before the next sampling call is safe.
func (r *Random[T]) Uniform(shape Shape) Expr[T] {
	t := r.temp(shape)
	r.SampleUniform(t, 0, 1)
	return MakeExpr(t)
}

// Gaussian returns a temporary expression of the given shape filled with
// standard-normal values. The same scratch-buffer aliasing contract as
// Uniform applies: the expression is valid only until the next call to
// Uniform or Gaussian on this engine.
func (r *Random[T]) Gaussian(shape Shape) Expr[T] {
	t := r.temp(shape)
	r.SampleGaussian(t, 0, 1)
	return MakeExpr(t)
}

// temp reinterprets the front of the scratch buffer with the requested shape
// and a leading stride padded to a multiple of 4. Requesting a padded size at
// or above the scratch capacity is a fatal configuration error.
func (r *Random[T]) temp(shape Shape) Tensor[T] {
	if len(shape) == 0 {
		panic("mshadow: temporary shape must have rank >= 1")
	}
	stride := padStride(shape[0])
	size := stride
	for _, d := range shape[1:] {
		size *= d
	}
	if size >= RandBufferSize {
		panic(fmt.Sprintf(
			"mshadow: random engine buffer too small for shape %v: %d padded elements, capacity %d",
			shape, size, RandBufferSize))
	}
	return Tensor[T]{
		Data:   r.buf[:size],
		Shape:  append(Shape(nil), shape...),
		Stride: stride,
	}
}

// padStride rounds a leading dimension up to a multiple of 4.
func padStride(n int) int {
	return ((n + 3) >> 2) << 2
}

// randNext returns one uniform value in [0,1) from the scalar source at the
// engine's precision. Never returns 1.0.
func (r *Random[T]) randNext() T {
	var t T
	if _, ok := any(t).(float32); ok {
		return T(r.src.Float32())
	}
	return T(r.src.Float64())
}

// openNext returns one uniform value in (0,1) from the scalar source at the
// engine's precision, widened to float64 for the Box-Muller transform.
func (r *Random[T]) openNext() float64 {
	var t T
	if _, ok := any(t).(float32); ok {
		return float64(r.src.Float32Open())
	}
	return r.src.Float64Open()
}

// normalPair draws two independent standard-normal samples via the
// Box-Muller polar transform: rejection-sample a point (x, y) uniformly on
// the open unit disk (excluding the origin), then scale by
// sqrt(-2*ln(s)/s) where s = x*x + y*y. The per-iteration rejection
// probability is about 21.5%, so the loop terminates quickly.
func normalPair[T Float](next func() float64) (T, T) {
	var x, y, s float64
	for {
		x = 2*next() - 1
		y = 2*next() - 1
		s = x*x + y*y
		if s > 0 && s < 1 {
			break
		}
	}
	t := math.Sqrt(-2 * math.Log(s) / s)
	return T(x * t), T(y * t)
}

// assertOK converts a backend status error into a fatal failure. A failing
// generator backend indicates broken device or library state that no local
// retry can fix.
func assertOK(err error, msg string) {
	if err != nil {
		panic(fmt.Sprintf("%s: %v", msg, err))
	}
}
