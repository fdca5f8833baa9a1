package zodiac

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errSecurityRisk is returned when the Safe does not own the checked ENS name.
var errSecurityRisk = errors.New("ens name is not owned by the safe")

func buildCheckENSCmd(opts *rootOptions, load runtimeLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "check-ens <name>",
		Short: "Check the Safe owns the ENS name of its snapshot space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, opts, load, func(ctx context.Context, rt *runtime) error {
				ownership, err := rt.ens.CheckOwnership(ctx, rt.session, args[0])
				if err != nil {
					return err
				}

				fmt.Fprintf(rt.out, "name:  %s\nnode:  %s\nowner: %s\n", ownership.Name, ownership.Node.Hex(), ownership.Owner.Hex())
				if ownership.SecurityRisk() {
					fmt.Fprintln(rt.out, securityRiskMessage(ownership))
					return errSecurityRisk
				}
				fmt.Fprintf(rt.out, "%s is owned by the Safe\n", ownership.Name)

				return nil
			})
		},
	}
}
