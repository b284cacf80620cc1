package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/imgops"
	"github.com/gogpu/imgops/filter"
	"github.com/gogpu/imgops/transform"
)

// stage is an operation bound to its parsed arguments.
type stage func(p *Processor, src *imgops.Canvas) (*imgops.Canvas, error)

// operation is a registry entry.
type operation struct {
	usage string
	parse func(args Args) (stage, error)
}

// OpInfo describes a registered operation.
type OpInfo struct {
	Name  string
	Usage string
}

var registry = map[string]operation{
	"translate": {
		usage: "translate:dx,dy",
		parse: func(args Args) (stage, error) {
			if err := checkArity(args, 2, 2); err != nil {
				return nil, err
			}
			dx, err := argInt(args, 0, 0)
			if err != nil {
				return nil, err
			}
			dy, err := argInt(args, 1, 0)
			if err != nil {
				return nil, err
			}
			return transformStage("translate", func(_, _ int) transform.Transform {
				return transform.Translation(dx, dy)
			}), nil
		},
	},
	"scale": {
		usage: "scale:sx[,sy]",
		parse: func(args Args) (stage, error) {
			if err := checkArity(args, 1, 2); err != nil {
				return nil, err
			}
			sx, err := argFloat(args, 0, 1)
			if err != nil {
				return nil, err
			}
			sy, err := argFloat(args, 1, sx)
			if err != nil {
				return nil, err
			}
			return transformStage("scale", func(_, _ int) transform.Transform {
				return transform.Scaling(sx, sy)
			}), nil
		},
	},
	"rotate": {
		usage: "rotate:degrees",
		parse: func(args Args) (stage, error) {
			if err := checkArity(args, 1, 1); err != nil {
				return nil, err
			}
			deg, err := argFloat(args, 0, 0)
			if err != nil {
				return nil, err
			}
			return transformStage("rotate", func(w, h int) transform.Transform {
				return transform.Rotation(deg, w, h)
			}), nil
		},
	},
	"flip": {
		usage: "flip:v|h",
		parse: func(args Args) (stage, error) {
			if err := checkArity(args, 1, 1); err != nil {
				return nil, err
			}
			dir, err := transform.ParseDirection(args[0])
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
			}
			return transformStage("flip", func(w, h int) transform.Transform {
				return transform.Flipping(dir, w, h)
			}), nil
		},
	},
	"average":   filterOp("average", (*filter.Engine).Average),
	"gaussian":  filterOp("gaussian", (*filter.Engine).Gaussian),
	"mode":      filterOp("mode", (*filter.Engine).Mode),
	"median":    filterOp("median", (*filter.Engine).Median),
	"grayscale": filterOp("grayscale", (*filter.Engine).Grayscale),
	"negative":  filterOp("negative", (*filter.Engine).Negative),
	"border": {
		usage: "border[:threshold]",
		parse: func(args Args) (stage, error) {
			if err := checkArity(args, 0, 1); err != nil {
				return nil, err
			}
			th, err := argFloat(args, 0, 0)
			if err != nil {
				return nil, err
			}
			return filterStage(func(e *filter.Engine, src, dst *imgops.Canvas) {
				e.BorderDetection(src, dst, th)
			}), nil
		},
	},
	"dilate": morphOp("dilate", (*filter.Engine).Dilate),
	"erode":  morphOp("erode", (*filter.Engine).Erode),
	"threshold": {
		usage: "threshold[:cutoff]",
		parse: func(args Args) (stage, error) {
			if err := checkArity(args, 0, 1); err != nil {
				return nil, err
			}
			cutoff, err := argInt(args, 0, 127)
			if err != nil {
				return nil, err
			}
			if cutoff < 0 || cutoff > 255 {
				return nil, fmt.Errorf("%w: cutoff %d outside [0, 255]", ErrInvalidArgs, cutoff)
			}
			return filterStage(func(e *filter.Engine, src, dst *imgops.Canvas) {
				e.Threshold(src, dst, uint8(cutoff))
			}), nil
		},
	},
	"contrast": {
		usage: "contrast:factor",
		parse: func(args Args) (stage, error) {
			if err := checkArity(args, 1, 1); err != nil {
				return nil, err
			}
			factor, err := argInt(args, 0, 1)
			if err != nil {
				return nil, err
			}
			return filterStage(func(e *filter.Engine, src, dst *imgops.Canvas) {
				e.Contrast(src, dst, factor)
			}), nil
		},
	},
	"brightness": {
		usage: "brightness:delta",
		parse: func(args Args) (stage, error) {
			if err := checkArity(args, 1, 1); err != nil {
				return nil, err
			}
			delta, err := argInt(args, 0, 0)
			if err != nil {
				return nil, err
			}
			return filterStage(func(e *filter.Engine, src, dst *imgops.Canvas) {
				e.Brightness(src, dst, delta)
			}), nil
		},
	},
}

func lookup(name string) (operation, bool) {
	op, ok := registry[strings.ToLower(name)]
	return op, ok
}

// Ops returns the registered operations sorted by name.
func Ops() []OpInfo {
	infos := make([]OpInfo, 0, len(registry))
	for name, op := range registry {
		infos = append(infos, OpInfo{Name: name, Usage: op.usage})
	}
	slices.SortFunc(infos, func(a, b OpInfo) int { return strings.Compare(a.Name, b.Name) })
	return infos
}

// transformStage builds a stage that scatters the source into a fresh canvas.
// build receives the source dimensions.
func transformStage(name string, build func(w, h int) transform.Transform) stage {
	return func(p *Processor, src *imgops.Canvas) (*imgops.Canvas, error) {
		t := build(src.Width(), src.Height())
		dst, err := p.transformCanvas(t, src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		stats := t.Apply(src, dst, transform.WithCollisionPolicy(p.collision))
		p.log.Debug("pipeline: transform",
			"op", name,
			"size", fmt.Sprintf("%dx%d", dst.Width(), dst.Height()),
			"written", stats.Written,
			"dropped", stats.Dropped,
			"collisions", stats.Collisions,
			"holes", stats.Holes)
		return dst, nil
	}
}

// filterStage builds a stage that filters the source into a fresh canvas of
// the same size.
func filterStage(fn func(e *filter.Engine, src, dst *imgops.Canvas)) stage {
	return func(p *Processor, src *imgops.Canvas) (*imgops.Canvas, error) {
		dst := imgops.NewCanvas(src.Width(), src.Height())
		fn(p.filters, src, dst)
		return dst, nil
	}
}

// filterOp registers an operation without arguments.
func filterOp(name string, fn func(e *filter.Engine, src, dst *imgops.Canvas)) operation {
	return operation{
		usage: name,
		parse: func(args Args) (stage, error) {
			if err := checkArity(args, 0, 0); err != nil {
				return nil, err
			}
			return filterStage(fn), nil
		},
	}
}

// morphOp registers dilate or erode. Without arguments the flat structuring
// kernel is used; one argument sets every offset; nine arguments give the
// offsets row by row.
func morphOp(name string, fn func(e *filter.Engine, src, dst *imgops.Canvas, k filter.StructuringKernel)) operation {
	return operation{
		usage: name + "[:offset | :o1,...,o9]",
		parse: func(args Args) (stage, error) {
			k := filter.FlatStructuringKernel()
			switch len(args) {
			case 0:
			case 1:
				v, err := argInt(args, 0, 0)
				if err != nil {
					return nil, err
				}
				for i := range 9 {
					k.Offsets[i/3][i%3] = v
				}
			case 9:
				for i := range 9 {
					v, err := argInt(args, i, 0)
					if err != nil {
						return nil, err
					}
					k.Offsets[i/3][i%3] = v
				}
			default:
				return nil, fmt.Errorf("%w: want 0, 1 or 9 arguments, got %d", ErrInvalidArgs, len(args))
			}
			return filterStage(func(e *filter.Engine, src, dst *imgops.Canvas) {
				fn(e, src, dst, k)
			}), nil
		},
	}
}
