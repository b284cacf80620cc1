package pipeline

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/imgops"
	"github.com/gogpu/imgops/filter"
	"github.com/gogpu/imgops/transform"
)

// Processor runs step sequences on canvases.
//
// A Processor is safe for concurrent use. Close releases its filter workers.
type Processor struct {
	filters   *filter.Engine
	canvas    image.Point
	collision transform.CollisionPolicy
	log       *slog.Logger
}

// NewProcessor creates a Processor. WithConcurrency, WithLoader and
// WithSaver are ignored.
func NewProcessor(opts ...Option) *Processor {
	return newProcessor(applyOptions(opts))
}

func newProcessor(o options) *Processor {
	l := o.logger
	if l == nil {
		l = imgops.Logger()
	}
	return &Processor{
		filters:   filter.NewEngine(filter.WithWorkers(o.filterWorkers), filter.WithLogger(l)),
		canvas:    o.canvas,
		collision: o.collision,
		log:       l,
	}
}

// Close releases the filter workers.
func (p *Processor) Close() {
	p.filters.Close()
}

// Apply runs steps in order. Each step reads the previous result and writes
// a fresh white canvas, so src is never modified. With no steps Apply
// returns a copy of src.
//
// Apply checks ctx between steps and returns ctx.Err() once it is done.
func (p *Processor) Apply(ctx context.Context, src *imgops.Canvas, steps []Step) (*imgops.Canvas, error) {
	stages := make([]stage, len(steps))
	for i, s := range steps {
		st, err := s.compile()
		if err != nil {
			return nil, err
		}
		stages[i] = st
	}

	cur := src.Clone()
	for i, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := st(p, cur)
		if err != nil {
			return nil, err
		}
		cur = next
		p.log.Debug("pipeline: step done", "step", steps[i].String(), "index", i)
	}
	return cur, nil
}

// MaxCanvasPixels bounds the destination size of a transform step, fitted
// or fixed.
const MaxCanvasPixels = 1 << 28

// transformCanvas returns the destination canvas for t applied to src.
func (p *Processor) transformCanvas(t transform.Transform, src *imgops.Canvas) (*imgops.Canvas, error) {
	if p.canvas != (image.Point{}) {
		if err := checkCanvasSize(p.canvas.X, p.canvas.Y); err != nil {
			return nil, err
		}
		return imgops.NewCanvas(p.canvas.X, p.canvas.Y), nil
	}

	r := t.Extent(src.Width(), src.Height())
	w, h := max(r.Max.X, 0), max(r.Max.Y, 0)
	if src.Width() > 0 && src.Height() > 0 && (w == 0 || h == 0) {
		return nil, fmt.Errorf("%w: extent %v", ErrEmptyCanvas, r)
	}
	if err := checkCanvasSize(w, h); err != nil {
		return nil, err
	}
	return imgops.NewCanvas(w, h), nil
}

// checkCanvasSize reports ErrCanvasTooLarge when w x h exceeds MaxCanvasPixels.
func checkCanvasSize(w, h int) error {
	if w > 0 && h > MaxCanvasPixels/w {
		return fmt.Errorf("%w: %dx%d", ErrCanvasTooLarge, w, h)
	}
	return nil
}
