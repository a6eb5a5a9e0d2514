package stackpool

type options struct {
	maxNodes int64
}

// Option configures a Pool at construction time.
type Option func(*options)

// WithMaxNodes caps the number of nodes the pool may ever materialize.
// Once the cap is reached and the free list is empty, growth fails with
// ErrResourceExhausted. Values <= 0 leave the pool bounded only by the
// handle space.
func WithMaxNodes(n int64) Option {
	return func(o *options) {
		o.maxNodes = n
	}
}
