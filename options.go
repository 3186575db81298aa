package seqset

import (
	"log/slog"

	"github.com/hupe1980/seqset/source"
)

type options struct {
	logger      *Logger
	source      source.Opener
	secondary   string
	pwm         bool
	seed        int64
	seedSet     bool
	autoSplit   bool
	parallelism int
}

// Option configures dataset construction.
type Option func(*options)

// WithLogger configures structured logging for dataset operations.
// The default is a no-op logger.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithSource configures where input files are read from. The default reads
// the local filesystem with transparent gzip decompression.
func WithSource(opener source.Opener) Option {
	return func(o *options) {
		if opener == nil {
			opener = source.NewLocal("")
		}
		o.source = opener
	}
}

// WithStructure enables dual-alphabet mode: each record carries a structure
// line over the secondary alphabet, position-paired with the sequence, and
// records are encoded over the joint alphabet.
func WithStructure(secondary string) Option {
	return func(o *options) {
		o.secondary = secondary
		o.pwm = false
	}
}

// WithStructurePWM enables dual-alphabet mode with PWM structures: each
// record carries |secondary| rows of per-position probabilities instead of a
// single structure string. PWM columns are expected to sum to 1; this is not
// enforced at load.
func WithStructurePWM(secondary string) Option {
	return func(o *options) {
		o.secondary = secondary
		o.pwm = true
	}
}

// WithSeed seeds the dataset's random generator, making out-of-alphabet
// repair and unseeded splits reproducible. Without it the generator is seeded
// from the clock.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithAutoSplit controls the automatic 70%/15%/15% split performed after
// loading. Enabled by default; disable to call Split yourself.
func WithAutoSplit(enabled bool) Option {
	return func(o *options) {
		o.autoSplit = enabled
	}
}

// WithParallelism bounds the number of class files loaded concurrently.
// Values below 1 fall back to the default of 4. Record order and random
// repair stay deterministic regardless of the value.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = defaultParallelism
		}
		o.parallelism = n
	}
}

const defaultParallelism = 4

func applyOptions(optFns []Option) options {
	o := options{
		logger:      NoopLogger(),
		source:      source.NewLocal(""),
		autoSplit:   true,
		parallelism: defaultParallelism,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
