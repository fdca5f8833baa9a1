package zodiac

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gnosisguild/zodiac/sdk"
)

type rootOptions struct {
	safe           string
	chainID        uint64
	setupPath      string
	dryRun         bool
	verbose        bool
	ledger         bool
	derivationPath string
}

// runtimeLoader connects the commands to a chain, a transaction service and a terminal.
type runtimeLoader func(ctx context.Context, opts *rootOptions, out io.Writer) (*runtime, error)

// BuildZodiacCmd returns the zodiac command tree.
func BuildZodiacCmd() *cobra.Command {
	return buildRootCmd(loadRuntime)
}

func buildRootCmd(load runtimeLoader) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "zodiac",
		Short: "Configure and deploy Zodiac modules on a Safe",
		Long: `Configure a transaction delay modifier or a Reality.eth module and propose its deployment
to the Safe through the Safe Transaction Service.

The RPC endpoint, the transaction service and the proposer key are read from a .env file
(RPC_URL, TX_SERVICE_URL and PRIVATE_KEY).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lggr, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			cmd.SetContext(sdk.WithLogger(cmd.Context(), lggr))

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.safe, "safe", "", "Address of the Safe to configure")
	cmd.PersistentFlags().Uint64Var(&opts.chainID, "chain-id", 0, "EVM chain id of the Safe, read from the RPC endpoint when 0")
	cmd.PersistentFlags().StringVar(&opts.setupPath, "setup", "", "YAML file the wizard answers are loaded from and saved to")
	cmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "Print the module transactions instead of proposing them")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.ledger, "ledger", false, "Sign the Safe transaction with a Ledger instead of PRIVATE_KEY")
	cmd.PersistentFlags().StringVar(&opts.derivationPath, "derivation-path", "m/44'/60'/0'/0/0", "The derivation path for the ledger")

	cmd.AddCommand(buildAddDelayCmd(opts, load))
	cmd.AddCommand(buildAddRealityCmd(opts, load))
	cmd.AddCommand(buildListModulesCmd(opts, load))
	cmd.AddCommand(buildCheckENSCmd(opts, load))

	return cmd
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	if verbose {
		lggr, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}

		return lggr.Sugar(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	lggr, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return lggr.Sugar(), nil
}

// withRuntime loads the runtime, runs fn and releases the chain connection.
func withRuntime(cmd *cobra.Command, opts *rootOptions, load runtimeLoader, fn func(context.Context, *runtime) error) error {
	if opts.safe == "" {
		return errors.New("--safe is required")
	}

	rt, err := load(cmd.Context(), opts, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	defer rt.Close()

	return fn(cmd.Context(), rt)
}
