package kdgo

// DefaultBucketCapacity is the number of (point, item) pairs a leaf bucket
// holds before an insert triggers a split.
const DefaultBucketCapacity = 24

type options struct {
	bucketCapacity int
	logger         *Logger
}

func defaultOptions() options {
	return options{
		bucketCapacity: DefaultBucketCapacity,
		logger:         NoopLogger(),
	}
}

// Option configures tree construction behavior.
type Option func(*options)

// WithBucketCapacity configures the leaf bucket capacity. Larger buckets
// trade deeper pruning for cheaper splits and better scan locality; the
// default suits datasets in the thousands-to-millions range. Capacity must
// be >= 1 or construction fails.
func WithBucketCapacity(capacity int) Option {
	return func(o *options) {
		o.bucketCapacity = capacity
	}
}

// WithLogger configures structured logging for tree maintenance events
// (bucket splits, singular overflow). If nil is passed, logging stays
// disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
