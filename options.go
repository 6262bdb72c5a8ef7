package stablevec

type options struct {
	capacity int
}

// Option configures constructor behavior.
type Option func(*options)

// WithCapacity preallocates room for n elements so that the first n pushes
// do not reallocate. It does not create slots: Cap() of a fresh vector is
// still 0 and the first Push still returns index 0.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
