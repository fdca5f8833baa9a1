package zodiac

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"

	"github.com/gnosisguild/zodiac"
	"github.com/gnosisguild/zodiac/internal/prompt"
	"github.com/gnosisguild/zodiac/sdk"
	"github.com/gnosisguild/zodiac/sdk/evm"
	"github.com/gnosisguild/zodiac/store"
	"github.com/gnosisguild/zodiac/types"
)

// ownershipChecker reports who controls an ENS name.
type ownershipChecker interface {
	CheckOwnership(ctx context.Context, session sdk.Session, name string) (evm.ENSOwnership, error)
}

// runtime is everything a command talks to.
type runtime struct {
	session   sdk.StaticSession
	driver    prompt.Driver
	factory   sdk.ModuleFactory
	txService sdk.TxService
	inspector sdk.ModuleInspector
	ens       ownershipChecker
	modules   *store.ModulesStore
	out       io.Writer

	deployOpts []zodiac.DeployerOption
	close      func()
}

// Close releases the chain connection.
func (rt *runtime) Close() {
	if rt.close != nil {
		rt.close()
	}
}

func loadRuntime(ctx context.Context, opts *rootOptions, out io.Writer) (*runtime, error) {
	if !common.IsHexAddress(opts.safe) {
		return nil, fmt.Errorf("invalid safe address %q", opts.safe)
	}

	client, err := dialRPC(ctx)
	if err != nil {
		return nil, err
	}

	chainID := types.ChainID(opts.chainID)
	if chainID == 0 {
		id, err := client.ChainID(ctx)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to read chain id: %w", err)
		}
		chainID = types.ChainID(id.Uint64())
	}

	var signer evm.Signer
	var serviceURL string
	if !opts.dryRun {
		signer, err = loadSigner(opts)
		if err != nil {
			client.Close()
			return nil, err
		}
		serviceURL, err = txServiceURL()
		if err != nil {
			client.Close()
			return nil, err
		}
	}

	sdk.LoggerFrom(ctx).Debugf("connected to %s for safe %s", chainID.Name(), opts.safe)

	return &runtime{
		session:   sdk.StaticSession{Safe: common.HexToAddress(opts.safe), Chain: chainID},
		driver:    prompt.NewSurveyDriver(out),
		factory:   evm.NewModuleFactory(client),
		txService: evm.NewTxService(serviceURL, client, signer),
		inspector: evm.NewInspector(client, nil),
		ens:       evm.NewENSChecker(client, nil),
		modules:   store.NewModulesStore(),
		out:       out,
		deployOpts: []zodiac.DeployerOption{
			zodiac.WithMaxAttempts(3),
			zodiac.WithBackoff(time.Second),
		},
		close: client.Close,
	}, nil
}

func loadSigner(opts *rootOptions) (evm.Signer, error) {
	if opts.ledger {
		path, err := accounts.ParseDerivationPath(opts.derivationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse derivation path: %w", err)
		}

		return evm.NewLedgerSigner(path), nil
	}

	pk, err := loadPrivateKey()
	if err != nil {
		return nil, err
	}

	return evm.NewPrivateKeySigner(pk), nil
}

// fetchModules loads the Safe's modules into the store.
func (rt *runtime) fetchModules(ctx context.Context) error {
	return rt.modules.FetchModulesList(ctx, store.FetchModulesListRequest{
		Inspector:   rt.inspector,
		ChainID:     rt.session.ChainID(),
		SafeAddress: rt.session.SafeAddress(),
	})
}

// deploy proposes the module, or prints its transactions on a dry run.
func (rt *runtime) deploy(ctx context.Context, opts *rootOptions, req zodiac.DeployRequest) error {
	deployOpts := append([]zodiac.DeployerOption{}, rt.deployOpts...)
	deployOpts = append(deployOpts, zodiac.WithModulesRefresh(rt.modules, rt.inspector))
	deployer := zodiac.NewDeployer(rt.factory, rt.txService, deployOpts...)

	if opts.dryRun {
		txs, err := deployer.Prepare(ctx, rt.session, req)
		if err != nil {
			return err
		}

		return printJSON(rt.out, txs)
	}

	result := deployer.Deploy(ctx, rt.session, req)
	switch result.Status {
	case zodiac.DeploymentSuccess:
		fmt.Fprintf(rt.out, "Proposed %d transaction(s) to Safe %s\n", len(result.Transactions), rt.session.SafeAddress().Hex())
		fmt.Fprintf(rt.out, "safeTxHash: %s\n", result.SafeTxHash.Hex())
		if result.SafeTx != nil {
			fmt.Fprintf(rt.out, "nonce: %d, confirmations: %d/%d\n",
				result.SafeTx.Nonce, len(result.SafeTx.Confirmations), result.SafeTx.ConfirmationsRequired)
		}

		return nil
	case zodiac.DeploymentProposed:
		fmt.Fprintf(rt.out, "Proposed as %s, but %v\n", result.SafeTxHash.Hex(), result.Err)

		return nil
	default:
		return result.Err
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
