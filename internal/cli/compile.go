package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mutk-project/relgraph/pkg/pedigree/tomlfixture"
)

// compileCommand creates the "compile" command.
func (c *CLI) compileCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "compile <pedigree.toml>",
		Short: "Compile a pedigree fixture into a relationship graph and elimination plan",
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

			if err := comp.PrintGraph(os.Stdout); err != nil {
				return err
			}

			plan := comp.Plan()
			printNewline()
			printKeyValue("vertices", strconv.Itoa(comp.Graph().NumVertices()))
			printKeyValue("elim. order", strconv.Itoa(len(plan.Order)))
			printKeyValue("cliques", strconv.Itoa(len(plan.Tree)))
			printStats(comp.Graph().NumVertices(), len(comp.Graph().Edges()), comp.Cached())
			printNextStep("render this pedigree", "relgraph render "+args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the plan cache")
	return cmd
}
