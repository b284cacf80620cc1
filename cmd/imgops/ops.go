package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/imgops/pipeline"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the available step operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "OP\tUSAGE")
			for _, op := range pipeline.Ops() {
				fmt.Fprintf(tw, "%s\t%s\n", op.Name, op.Usage)
			}
			return tw.Flush()
		},
	}
}
