package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/imgops"
	"github.com/gogpu/imgops/internal/cache"
)

// Result is the outcome of one job.
type Result struct {
	Job      string
	Output   string
	Width    int
	Height   int
	Duration time.Duration
	// Err is the save error, if any. Load and step failures abort the run
	// instead of being recorded here.
	Err error
}

// Report summarizes a run. Results are in plan order.
type Report struct {
	Results []Result
}

// Saved returns the number of jobs whose output was written.
func (r *Report) Saved() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil && res.Output != "" {
			n++
		}
	}
	return n
}

// Failed returns the results whose output could not be saved.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Pixels returns the total number of output pixels saved.
func (r *Report) Pixels() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n += res.Width * res.Height
		}
	}
	return n
}

// Runner executes plans, running up to a fixed number of jobs at once.
//
// Decoded inputs are cached so that jobs sharing an input file decode it
// once. The cache lives as long as the Runner.
type Runner struct {
	proc        *Processor
	concurrency int
	inputs      *cache.Cache[string, *imgops.Canvas]
	load        func(path string) (*imgops.Canvas, error)
	save        func(c *imgops.Canvas, path string) error
	log         *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	o := applyOptions(opts)
	proc := newProcessor(o)
	inputs := cache.New[string](o.inputCache, func(c *imgops.Canvas) int64 {
		return int64(c.Width()) * int64(c.Height())
	})
	return &Runner{
		proc:        proc,
		concurrency: o.concurrency,
		inputs:      inputs,
		load:        o.load,
		save:        o.save,
		log:         proc.log,
	}
}

// Processor returns the processor used for job steps.
func (r *Runner) Processor() *Processor {
	return r.proc
}

// Close releases the runner's filter workers.
func (r *Runner) Close() {
	r.proc.Close()
}

// Run executes every job of plan.
//
// A job whose input cannot be loaded or whose steps fail aborts the run:
// the remaining jobs are cancelled and Run returns that error. A job whose
// output cannot be saved is logged, recorded in the report and does not
// affect other jobs.
//
// The report is returned even when Run fails; jobs that did not finish have
// an empty Output.
func (r *Runner) Run(ctx context.Context, plan *Plan) (*Report, error) {
	report := &Report{Results: make([]Result, len(plan.Jobs))}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i := range plan.Jobs {
		job := plan.Jobs[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.runJob(ctx, job)
			report.Results[i] = res
			return err
		})
	}

	err := g.Wait()
	st := r.inputs.Stats()
	r.log.Debug("pipeline: run complete", "jobs", len(plan.Jobs), "saved", report.Saved(),
		"input_hits", st.Hits, "input_misses", st.Misses)
	return report, err
}

// runJob loads, processes and saves a single job.
func (r *Runner) runJob(ctx context.Context, job Job) (Result, error) {
	start := time.Now()
	res := Result{Job: job.Name}

	src, err := r.inputs.Load(job.Input, func() (*imgops.Canvas, error) {
		return r.load(job.Input)
	})
	if err != nil {
		return res, fmt.Errorf("pipeline: job %s: load %s: %w", job.Name, job.Input, err)
	}
	r.log.Info("pipeline: job started", "job", job.Name, "input", job.Input, "steps", len(job.Steps))

	out, err := r.proc.Apply(ctx, src, job.Steps)
	if err != nil {
		return res, fmt.Errorf("pipeline: job %s: %w", job.Name, err)
	}

	res.Output = job.Output
	res.Width, res.Height = out.Width(), out.Height()
	if err := r.save(out, job.Output); err != nil {
		res.Err = err
		r.log.Warn("pipeline: output not saved", "job", job.Name, "output", job.Output, "err", err)
	} else {
		r.log.Info("pipeline: job saved", "job", job.Name, "output", job.Output,
			"width", res.Width, "height", res.Height)
	}
	res.Duration = time.Since(start)
	return res, nil
}
