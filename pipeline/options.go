package pipeline

import (
	"image"
	"log/slog"

	"github.com/gogpu/imgops"
	"github.com/gogpu/imgops/internal/imageio"
	"github.com/gogpu/imgops/transform"
)

// Option configures a Processor or Runner during creation.
//
// Example:
//
//	r := pipeline.NewRunner(
//	    pipeline.WithConcurrency(4),
//	    pipeline.WithCanvasSize(2000, 2000),
//	)
//	defer r.Close()
type Option func(*options)

// options holds optional configuration shared by Processor and Runner.
type options struct {
	concurrency   int
	canvas        image.Point
	filterWorkers int
	collision     transform.CollisionPolicy
	inputCache    int64
	logger        *slog.Logger
	load          func(path string) (*imgops.Canvas, error)
	save          func(c *imgops.Canvas, path string) error
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		concurrency: 1,
		collision:   transform.LastWins,
		inputCache:  DefaultInputCachePixels,
		load:        imageio.Load,
		save: func(c *imgops.Canvas, path string) error {
			return imageio.Save(c, path)
		},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithConcurrency sets how many jobs a Runner processes at once.
// Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = max(n, 1)
	}
}

// WithCanvasSize fixes the destination size of every transform step.
// Without it a transform destination is sized to fit the transformed
// source. Non-positive dimensions restore fitting.
func WithCanvasSize(width, height int) Option {
	return func(o *options) {
		if width <= 0 || height <= 0 {
			o.canvas = image.Point{}
			return
		}
		o.canvas = image.Pt(width, height)
	}
}

// WithFilterWorkers sets the number of goroutines each filter step uses.
// See filter.WithWorkers.
func WithFilterWorkers(n int) Option {
	return func(o *options) {
		o.filterWorkers = n
	}
}

// WithCollisionPolicy sets how transform steps resolve destination
// collisions. The default is transform.LastWins.
func WithCollisionPolicy(p transform.CollisionPolicy) Option {
	return func(o *options) {
		o.collision = p
	}
}

// DefaultInputCachePixels is the default size of a Runner's decoded input
// cache, in pixels.
const DefaultInputCachePixels = 1 << 25

// WithInputCache sets how many decoded input pixels a Runner keeps for
// reuse by later jobs. Zero or less disables the limit.
func WithInputCache(pixels int64) Option {
	return func(o *options) {
		o.inputCache = pixels
	}
}

// WithLogger sets the logger. By default imgops.Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLoader replaces the function that reads job inputs.
func WithLoader(load func(path string) (*imgops.Canvas, error)) Option {
	return func(o *options) {
		if load != nil {
			o.load = load
		}
	}
}

// WithSaver replaces the function that writes job outputs.
func WithSaver(save func(c *imgops.Canvas, path string) error) Option {
	return func(o *options) {
		if save != nil {
			o.save = save
		}
	}
}
