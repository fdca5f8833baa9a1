package zodiac

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func buildListModulesCmd(opts *rootOptions, load runtimeLoader) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list-modules",
		Short: "List the modules enabled on the Safe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts, load, func(ctx context.Context, rt *runtime) error {
				if err := rt.fetchModules(ctx); err != nil {
					return err
				}

				modules := rt.modules.DaoModules()
				if asJSON {
					return printJSON(rt.out, modules)
				}
				if len(modules) == 0 {
					_, err := fmt.Fprintf(rt.out, "No modules enabled on Safe %s\n", rt.session.SafeAddress().Hex())
					return err
				}

				tw := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ADDRESS\tKIND\tMASTER COPY\tMODULES")
				for _, m := range modules {
					subs := make([]string, len(m.SubModules))
					for i, s := range m.SubModules {
						subs[i] = s.Hex()
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Address.Hex(), m.Kind, m.MasterCopy.Hex(), strings.Join(subs, ","))
				}

				return tw.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the modules as JSON")

	return cmd
}
