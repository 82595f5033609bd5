package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mutk-project/relgraph/pkg/pedigree/tomlfixture"
	"github.com/mutk-project/relgraph/pkg/render"
)

// renderCommand creates the "render" command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		noCache bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "render <pedigree.toml>",
		Short: "Compile a pedigree fixture and render its relationship graph to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := tomlfixture.Load(args[0])
			if err != nil {
				return err
			}

			comp, err := c.newCompiler(noCache)
			if err != nil {
				return err
			}

			progress := newProgress(c.Logger)
			if err := comp.Construct(cmd.Context(), fx.Pedigree, fx.Options); err != nil {
				return err
			}
			progress.done("compiled pedigree")

			dot := render.ToDOT(comp.Graph())
			svg, err := render.RenderSVG(dot)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, svg, 0o644); err != nil {
				return err
			}

			printSuccess("Rendered graph")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the plan cache")
	cmd.Flags().StringVarP(&output, "output", "o", "out.svg", "SVG output path")
	return cmd
}
