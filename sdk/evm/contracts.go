package evm

import (
	"maps"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/gnosisguild/zodiac/sdk"
	sdkerrors "github.com/gnosisguild/zodiac/sdk/errors"
	"github.com/gnosisguild/zodiac/types"
)

// Contracts are the Zodiac and Safe singletons the SDK talks to on a chain.
type Contracts struct {
	ModuleProxyFactory common.Address                      `json:"moduleProxyFactory" yaml:"moduleProxyFactory" validate:"required"`
	MultiSend          common.Address                      `json:"multiSend" yaml:"multiSend" validate:"required"`
	MasterCopies       map[types.ModuleKind]common.Address `json:"masterCopies" yaml:"masterCopies" validate:"required,min=1"`

	// ENSRegistry is zero on chains without ENS.
	ENSRegistry common.Address `json:"ensRegistry,omitzero" yaml:"ensRegistry,omitempty"`
}

// The Zodiac singletons are deployed through the singleton factory and share their address
// on every chain.
var (
	DefaultModuleProxyFactory = common.HexToAddress("0x000000000000aDdB49795b0f9bA5BC298cDda236")
	DefaultMultiSendCallOnly  = common.HexToAddress("0x40A2aCCbd92BCA938b02010E17A5b8929b49130D")
	DefaultENSRegistry        = common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")

	DefaultMasterCopies = map[types.ModuleKind]common.Address{
		types.ModuleKindDelay:        common.HexToAddress("0xd54895B1121A2eE3f37b502F507631FA1331BED6"),
		types.ModuleKindRealityETH:   common.HexToAddress("0x4e35DA39Fa5893a70A40Ce964F993d891E607cC0"),
		types.ModuleKindRealityERC20: common.HexToAddress("0x6f628F0c3A3Ff75c39CF310901f10d79692Ed889"),
	}
)

// ensChains are the chains the ENS registry is deployed on.
var ensChains = map[uint64]bool{
	chainsel.ETHEREUM_MAINNET.EvmChainID:         true,
	chainsel.ETHEREUM_TESTNET_SEPOLIA.EvmChainID: true,
}

var _ sdk.Validator = Contracts{}

// Validate checks every required contract is set.
func (c Contracts) Validate() error {
	return validator.New().Struct(c)
}

// MasterCopy returns the master copy of a module kind.
func (c Contracts) MasterCopy(kind types.ModuleKind) (common.Address, error) {
	addr, ok := c.MasterCopies[kind]
	if !ok || addr == (common.Address{}) {
		return common.Address{}, sdkerrors.NewUnsupportedModuleKindError(kind)
	}

	return addr, nil
}

// KindOf returns the module kind whose master copy is addr.
func (c Contracts) KindOf(masterCopy common.Address) types.ModuleKind {
	for kind, addr := range c.MasterCopies {
		if addr == masterCopy {
			return kind
		}
	}

	return types.ModuleKindUnknown
}

// Merge returns c with every non-zero field of override applied.
func (c Contracts) Merge(override Contracts) Contracts {
	out := c
	out.MasterCopies = maps.Clone(c.MasterCopies)
	if out.MasterCopies == nil {
		out.MasterCopies = make(map[types.ModuleKind]common.Address)
	}

	if override.ModuleProxyFactory != (common.Address{}) {
		out.ModuleProxyFactory = override.ModuleProxyFactory
	}
	if override.MultiSend != (common.Address{}) {
		out.MultiSend = override.MultiSend
	}
	if override.ENSRegistry != (common.Address{}) {
		out.ENSRegistry = override.ENSRegistry
	}
	for kind, addr := range override.MasterCopies {
		out.MasterCopies[kind] = addr
	}

	return out
}

// ContractsResolver returns the contracts of a chain.
type ContractsResolver func(chainID types.ChainID) (Contracts, error)

// DefaultContracts returns the singleton deployments for any EVM chain known to
// chain-selectors.
func DefaultContracts(chainID types.ChainID) (Contracts, error) {
	if _, err := chainID.Details(); err != nil {
		return Contracts{}, sdkerrors.NewUnsupportedChainError(chainID)
	}

	c := Contracts{
		ModuleProxyFactory: DefaultModuleProxyFactory,
		MultiSend:          DefaultMultiSendCallOnly,
		MasterCopies:       maps.Clone(DefaultMasterCopies),
	}
	if ensChains[uint64(chainID)] {
		c.ENSRegistry = DefaultENSRegistry
	}

	return c, nil
}

// StaticContracts resolves every chain to the defaults with override applied.
func StaticContracts(override Contracts) ContractsResolver {
	return func(chainID types.ChainID) (Contracts, error) {
		c, err := DefaultContracts(chainID)
		if err != nil {
			return Contracts{}, err
		}
		c = c.Merge(override)

		return c, c.Validate()
	}
}
