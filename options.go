package flatvec

import "github.com/hupe1980/flatvec/engine"

type options struct {
	precision  Precision
	noIndexing bool
	engine     *engine.Engine
}

func newOptions(optFns []Option) options {
	opts := options{
		precision: Double,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.engine == nil {
		opts.engine = engine.Default()
	}
	return opts
}

// Option configures a Vector constructor.
type Option func(*options)

// WithPrecision sets the element precision.
// Ignored by FromFloat32s, FromFloat64s and FromBytes, whose input fixes it.
//
// Defaults to Double.
func WithPrecision(p Precision) Option {
	return func(o *options) {
		o.precision = p
	}
}

// WithArrayIndexing controls whether Index returns a slice-like accessor.
//
// Defaults to true.
func WithArrayIndexing(enabled bool) Option {
	return func(o *options) {
		o.noIndexing = !enabled
	}
}

// WithEngine binds the vector to eng.
// If nil is passed, engine.Default() is used.
func WithEngine(eng *engine.Engine) Option {
	return func(o *options) {
		o.engine = eng
	}
}
