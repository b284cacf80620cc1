// Package pipeline chains transforms and filters into named steps and runs
// batches of image jobs.
//
// A step is written "op" or "op:arg1,arg2":
//
//	steps, err := pipeline.ParseSteps([]string{"rotate:90", "median", "threshold:128"})
//	p := pipeline.NewProcessor(pipeline.WithFilterWorkers(4))
//	defer p.Close()
//	out, err := p.Apply(ctx, src, steps)
//
// Every step writes a fresh white canvas. Filter steps keep the source
// size; transform steps use the size set by [WithCanvasSize] or, by
// default, the smallest canvas anchored at the origin that holds the
// transformed image.
//
// A [Plan] groups independent jobs; a [Runner] executes them concurrently.
// [Ops] lists the available operations.
package pipeline
