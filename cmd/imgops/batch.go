package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/imgops/pipeline"
)

func newBatchCmd(g *globalFlags) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch PLAN.json",
		Short: "Run every job of a JSON plan",
		Long: `Run every job of a JSON plan concurrently.

A job whose input cannot be read stops the whole batch. A job whose output
cannot be written is reported and the other jobs continue.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := pipeline.LoadPlan(args[0])
			if err != nil {
				return err
			}
			opts, err := g.pipelineOptions()
			if err != nil {
				return err
			}

			r := pipeline.NewRunner(append(opts, pipeline.WithConcurrency(jobs))...)
			defer r.Close()

			report, err := r.Run(cmd.Context(), plan)
			if err != nil {
				return err
			}

			pr := message.NewPrinter(language.English)
			out := cmd.OutOrStdout()
			for _, res := range report.Failed() {
				pr.Fprintf(out, "FAILED %s -> %s: %v\n", res.Job, res.Output, res.Err)
			}
			pr.Fprintf(out, "saved %d of %d images, %d pixels\n",
				report.Saved(), len(plan.Jobs), report.Pixels())

			if n := len(report.Failed()); n > 0 {
				return fmt.Errorf("%d outputs not saved", n)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "jobs run at once")
	return cmd
}
