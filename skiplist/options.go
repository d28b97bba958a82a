package skiplist

import "fmt"

type Options struct {
	MaxLevel int
	Policy   LevelPolicy
}

// Option configures a List created by New or Restore.
type Option func(*Options)

// WithMaxLevel sets the highest level a node may be assigned.
func WithMaxLevel(maxLevel int) Option {
	return func(o *Options) {
		o.MaxLevel = maxLevel
	}
}

// WithLevelPolicy sets the strategy used to draw the level of new nodes.
func WithLevelPolicy(p LevelPolicy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

func checkedOptions(opts ...Option) (Options, error) {
	o := Options{
		MaxLevel: DefaultMaxLevel,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxLevel < 1 || o.MaxLevel > MaxLevelLimit {
		return Options{}, fmt.Errorf("%w: %d not in [1, %d]", ErrBadMaxLevel, o.MaxLevel, MaxLevelLimit)
	}
	if o.Policy == nil {
		o.Policy = GeometricPolicy{}
	}
	return o, nil
}
