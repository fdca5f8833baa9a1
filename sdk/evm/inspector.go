package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/gnosisguild/zodiac/sdk"
	"github.com/gnosisguild/zodiac/types"
)

var _ sdk.ModuleInspector = (*Inspector)(nil)

// SentinelModules is the start of the module linked list kept by the Safe and by modifiers.
var SentinelModules = common.HexToAddress("0x0000000000000000000000000000000000000001")

const (
	defaultPageSize    = 50
	defaultConcurrency = 8
)

// Inspector lists the modules enabled on a Safe and classifies them by master copy.
type Inspector struct {
	client      ContractCaller
	contracts   ContractsResolver
	pageSize    int64
	concurrency int
}

// NewInspector creates a new Inspector for evm chains.
func NewInspector(client ContractCaller, contracts ContractsResolver) *Inspector {
	if contracts == nil {
		contracts = DefaultContracts
	}

	return &Inspector{
		client:      client,
		contracts:   contracts,
		pageSize:    defaultPageSize,
		concurrency: defaultConcurrency,
	}
}

// GetModules returns the modules enabled on the Safe. Modifiers also report the modules
// enabled on them.
func (i *Inspector) GetModules(ctx context.Context, chainID types.ChainID, safe common.Address) ([]types.Module, error) {
	contracts, err := i.contracts(chainID)
	if err != nil {
		return nil, err
	}

	addrs, err := i.EnabledModules(ctx, safe)
	if err != nil {
		return nil, err
	}

	modules := make([]types.Module, len(addrs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)
	for idx, addr := range addrs {
		g.Go(func() error {
			m, err := i.inspect(gctx, contracts, addr)
			if err != nil {
				return err
			}
			modules[idx] = m

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Debugf("found %d module(s) on safe %s", len(modules), safe.Hex())

	return modules, nil
}

// EnabledModules walks the module list of a Safe or modifier page by page.
func (i *Inspector) EnabledModules(ctx context.Context, avatar common.Address) ([]common.Address, error) {
	var modules []common.Address

	start := SentinelModules
	for {
		out, err := callContract(ctx, i.client, common.Address{}, avatar, AvatarABI, "getModulesPaginated",
			start, big.NewInt(i.pageSize))
		if err != nil {
			return nil, err
		}

		page, ok := out[0].([]common.Address)
		if !ok {
			return nil, fmt.Errorf("unexpected modules type %T", out[0])
		}
		next, ok := out[1].(common.Address)
		if !ok {
			return nil, fmt.Errorf("unexpected next type %T", out[1])
		}
		modules = append(modules, page...)

		if len(page) == 0 || next == SentinelModules || next == (common.Address{}) {
			return modules, nil
		}
		start = next
	}
}

// InspectModule classifies a single module, for example an attach target read from a saved
// setup.
func (i *Inspector) InspectModule(ctx context.Context, chainID types.ChainID, addr common.Address) (types.Module, error) {
	contracts, err := i.contracts(chainID)
	if err != nil {
		return types.Module{}, err
	}

	return i.inspect(ctx, contracts, addr)
}

func (i *Inspector) inspect(ctx context.Context, contracts Contracts, addr common.Address) (types.Module, error) {
	code, err := i.client.CodeAt(ctx, addr, nil)
	if err != nil {
		return types.Module{}, fmt.Errorf("failed to load code of module %s: %w", addr.Hex(), err)
	}

	m := types.Module{Address: addr, Kind: types.ModuleKindUnknown}
	if masterCopy, ok := MasterCopyFromCode(code); ok {
		m.MasterCopy = masterCopy
		m.Kind = contracts.KindOf(masterCopy)
	}

	if m.Kind.IsModifier() {
		m.SubModules, err = i.EnabledModules(ctx, addr)
		if err != nil {
			return types.Module{}, err
		}
	}

	return m, nil
}
