package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/imgops"
	"github.com/gogpu/imgops/pipeline"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	workers int
	canvas  string
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:           "imgops",
		Short:         "Affine transforms and 3x3 neighborhood filters for images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if g.verbose {
				level = slog.LevelDebug
			}
			imgops.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log every step")
	pf.IntVarP(&g.workers, "workers", "w", 1, "goroutines per filter step (-1 for all CPUs)")
	pf.StringVar(&g.canvas, "canvas", "", "fixed transform canvas size WxH (default: fit)")

	root.AddCommand(newApplyCmd(&g), newBatchCmd(&g), newOpsCmd())
	return root
}

// pipelineOptions converts the global flags to pipeline options.
func (g *globalFlags) pipelineOptions() ([]pipeline.Option, error) {
	opts := []pipeline.Option{pipeline.WithFilterWorkers(g.workers)}
	if g.canvas != "" {
		w, h, err := parseSize(g.canvas)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pipeline.WithCanvasSize(w, h))
	}
	return opts, nil
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("canvas size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("canvas size %q: bad width", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("canvas size %q: bad height", s)
	}
	if h > pipeline.MaxCanvasPixels/w {
		return 0, 0, fmt.Errorf("canvas size %q: %w", s, pipeline.ErrCanvasTooLarge)
	}
	return w, h, nil
}
