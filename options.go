package intset

type options struct {
	logger *Logger
}

// Option configures set constructors.
type Option func(*options)

// WithLogger sets the logger used for Debug-level resize and cache events.
//
// If nil is passed, logging stays disabled. Logging is off by default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
