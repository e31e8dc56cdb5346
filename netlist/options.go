// Emission options, functional-options style.
package netlist

// Options control how generated netlists are rendered.
type Options struct {
	// ExplicitPortMap forces by-name port binding for every emitted
	// instance, regardless of the instanced model's own preference.
	// Positional binding is the default; a model can still request by-name
	// binding for itself via its ExplicitPortMap flag.
	ExplicitPortMap bool
}

// Option adjusts one emission setting.
type Option func(*Options)

// DefaultOptions returns the positional-by-default rendering settings.
func DefaultOptions() Options { return Options{} }

// WithExplicitPortMaps forces by-name port binding for every instance.
func WithExplicitPortMaps() Option {
	return func(o *Options) { o.ExplicitPortMap = true }
}

// buildOptions folds opts over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
