package filter

import (
	"log/slog"

	"github.com/gogpu/imgops"
	"github.com/gogpu/imgops/internal/parallel"
)

// Engine runs filters, optionally splitting the rows of a canvas into
// bands processed by a worker pool.
//
// The zero Engine is valid and runs sequentially. The package-level filter
// functions use a sequential Engine.
//
// Every filter reads src and writes dst. dst must be at least as large as
// src; src and dst must not be the same canvas for window filters.
type Engine struct {
	pool   *parallel.WorkerPool
	logger *slog.Logger
}

// Option configures an Engine during creation.
//
// Example:
//
//	e := filter.NewEngine(filter.WithWorkers(8))
//	defer e.Close()
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers sets the number of goroutines used per filter call.
// Values below 2 keep the engine sequential; a negative value uses
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithLogger sets the logger used by the engine. By default the engine
// logs through imgops.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = l
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{logger: o.logger}
	if o.workers < 0 || o.workers > 1 {
		e.pool = parallel.NewWorkerPool(o.workers)
	}
	return e
}

// Close releases the engine's workers. The engine keeps working
// sequentially after Close.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

// Workers returns the number of goroutines used per filter call.
func (e *Engine) Workers() int {
	if e.pool == nil || !e.pool.IsRunning() {
		return 1
	}
	return e.pool.Workers()
}

func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return imgops.Logger()
}

// rows runs fn over [lo, hi), in bands when the engine has workers.
func (e *Engine) rows(lo, hi int, fn func(y0, y1 int)) {
	if hi <= lo {
		return
	}
	if e.pool == nil || !e.pool.IsRunning() {
		fn(lo, hi)
		return
	}
	e.pool.ForEachBand(lo, hi, func(b parallel.Band) {
		fn(b.Y0, b.Y1)
	})
}

// Apply evaluates fn on the window around every interior source pixel and
// writes the result to the same coordinate of dst.
//
// Interior means 1 <= x <= width-2 and 1 <= y <= height-2. The one-pixel
// border of dst is never written, and a source narrower or shorter than 3
// pixels leaves dst untouched.
func (e *Engine) Apply(src, dst *imgops.Canvas, fn WindowFunc) {
	e.applyWindows("window", src, dst, fn)
}

func (e *Engine) applyWindows(op string, src, dst *imgops.Canvas, fn WindowFunc) {
	w, h := src.Width(), src.Height()
	if w < 3 || h < 3 {
		e.log().Debug("filter skipped", "op", op, "width", w, "height", h)
		return
	}

	e.rows(1, h-1, func(y0, y1 int) {
		var win Window
		for y := y0; y < y1; y++ {
			for x := 1; x < w-1; x++ {
				Sample(src, x, y, &win)
				dst.SetPixel(x, y, fn(&win))
			}
		}
	})

	e.log().Debug("filter complete", "op", op, "width", w, "height", h, "workers", e.Workers())
}

// applyPixels maps every source pixel, borders included, through fn.
func (e *Engine) applyPixels(op string, src, dst *imgops.Canvas, fn func(p imgops.Pixel) imgops.Pixel) {
	w, h := src.Width(), src.Height()

	e.rows(0, h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x, p := range src.Row(y) {
				dst.SetPixel(x, y, fn(p))
			}
		}
	})

	e.log().Debug("filter complete", "op", op, "width", w, "height", h, "workers", e.Workers())
}

// sequential backs the package-level filter functions.
var sequential = &Engine{}
