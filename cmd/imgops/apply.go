package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/imgops/internal/imageio"
	"github.com/gogpu/imgops/pipeline"
)

func newApplyCmd(g *globalFlags) *cobra.Command {
	var (
		input   string
		output  string
		steps   []string
		quality int
	)

	cmd := &cobra.Command{
		Use:   "apply -i INPUT -o OUTPUT --step OP[:ARGS]...",
		Short: "Apply a sequence of steps to one image",
		Example: `  imgops apply -i in.png -o out.png --step rotate:90 --step median
  imgops apply -i in.jpg -o edges.png --step grayscale --step border:60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := pipeline.ParseSteps(steps)
			if err != nil {
				return err
			}
			if len(parsed) == 0 {
				return errors.New("no --step given")
			}
			opts, err := g.pipelineOptions()
			if err != nil {
				return err
			}

			start := time.Now()
			src, err := imageio.Load(input)
			if err != nil {
				return err
			}

			p := pipeline.NewProcessor(opts...)
			defer p.Close()

			out, err := p.Apply(cmd.Context(), src, parsed)
			if err != nil {
				return err
			}
			if err := imageio.Save(out, output, imageio.WithJPEGQuality(quality)); err != nil {
				return err
			}

			pr := message.NewPrinter(language.English)
			pr.Fprintf(cmd.OutOrStdout(), "%s: %d steps, %dx%d (%d pixels) in %v\n",
				output, len(parsed), out.Width(), out.Height(), out.Width()*out.Height(),
				time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "input image")
	f.StringVarP(&output, "output", "o", "", "output image; the extension picks the format")
	f.StringArrayVarP(&steps, "step", "s", nil, "step to apply, repeatable (see 'imgops ops')")
	f.IntVarP(&quality, "quality", "q", imageio.DefaultJPEGQuality, "JPEG quality 1-100")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
