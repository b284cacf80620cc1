package transform

// CollisionPolicy decides which source pixel survives when several land
// on the same destination cell.
type CollisionPolicy int

const (
	// LastWins keeps the pixel written last in iteration order.
	LastWins CollisionPolicy = iota
	// FirstWins keeps the first pixel written and ignores later ones.
	FirstWins
)

// String returns the policy name.
func (p CollisionPolicy) String() string {
	if p == FirstWins {
		return "first-wins"
	}
	return "last-wins"
}

// Option configures a scatter operation.
//
// Example:
//
//	transform.Scale(src, dst, 0.5, 0.5, transform.WithCollisionPolicy(transform.FirstWins))
type Option func(*options)

// options holds optional configuration for a scatter.
type options struct {
	policy CollisionPolicy
}

// defaultOptions returns the default scatter options.
func defaultOptions() options {
	return options{
		policy: LastWins,
	}
}

// WithCollisionPolicy sets how destination collisions are resolved.
// The default is LastWins.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
