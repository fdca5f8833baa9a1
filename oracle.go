package zodiac

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gnosisguild/zodiac/types"
)

// InstanceType is the bond currency of a Reality.eth oracle instance.
type InstanceType string

const (
	InstanceTypeETH    InstanceType = "ETH"
	InstanceTypeGNO    InstanceType = "GNO"
	InstanceTypeCustom InstanceType = "custom"
)

// ModuleKind returns the reality module variant matching the bond currency.
func (t InstanceType) ModuleKind() types.ModuleKind {
	if t == InstanceTypeGNO {
		return types.ModuleKindRealityERC20
	}

	return types.ModuleKindRealityETH
}

// InstanceOption is a selectable Reality.eth oracle deployment.
type InstanceOption struct {
	Type    InstanceType
	Address common.Address
}

// Label renders the option as "<type>-<address>".
func (o InstanceOption) Label() string {
	return fmt.Sprintf("%s-%s", o.Type, o.Address.Hex())
}

// ParseInstanceOption parses a "<type>-<address>" label.
func ParseInstanceOption(label string) (InstanceOption, error) {
	kind, addr, ok := strings.Cut(label, "-")
	if !ok || !common.IsHexAddress(addr) {
		return InstanceOption{}, fmt.Errorf("invalid oracle instance %q", label)
	}

	switch InstanceType(kind) {
	case InstanceTypeETH, InstanceTypeGNO, InstanceTypeCustom:
	default:
		return InstanceOption{}, fmt.Errorf("invalid oracle instance type %q", kind)
	}

	return InstanceOption{Type: InstanceType(kind), Address: common.HexToAddress(addr)}, nil
}

var (
	// MainnetOracleOptions are the Reality.eth instances offered on Ethereum mainnet.
	MainnetOracleOptions = []InstanceOption{
		{Type: InstanceTypeETH, Address: common.HexToAddress("0x5b7dD1E86623548AF054A4985F7fc8Ccbb554E2c")},
		{Type: InstanceTypeGNO, Address: common.HexToAddress("0x33aa365a53a4c9ba777fb5f450901a8eef73f0a9")},
	}

	// TestnetOracleOptions are offered on every other chain.
	TestnetOracleOptions = []InstanceOption{
		{Type: InstanceTypeETH, Address: common.HexToAddress("0xaf33DcB6E8c5c4D9dDF579f53031b514d19449CA")},
	}
)

// OracleOptions returns the oracle instances offered for a chain. The first option is the
// default selection.
func OracleOptions(chainID types.ChainID) []InstanceOption {
	if chainID.IsMainnet() {
		return MainnetOracleOptions
	}

	return TestnetOracleOptions
}

// ArbitratorOption selects who arbitrates disputed oracle answers.
type ArbitratorOption string

const (
	ArbitratorNone   ArbitratorOption = "NO_ARBITRATOR"
	ArbitratorKleros ArbitratorOption = "KLEROS"
	ArbitratorCustom ArbitratorOption = "CUSTOM"
)

// ArbitratorOptions lists the selectable options in display order.
var ArbitratorOptions = []ArbitratorOption{ArbitratorNone, ArbitratorKleros, ArbitratorCustom}

// KlerosArbitrators holds the Kleros arbitrator proxy per chain.
var KlerosArbitrators = map[types.ChainID]common.Address{
	types.MainnetChainID: common.HexToAddress("0xf72CfD1B34a91A64f9A98537fe63FBaB7530AdcA"),
}

// ResolveArbitrator maps the arbitrator choice to the address passed to the module.
func ResolveArbitrator(chainID types.ChainID, data OracleArbitratorData) (common.Address, error) {
	switch data.ArbitratorOption {
	case ArbitratorNone:
		return common.Address{}, nil
	case ArbitratorKleros:
		addr, ok := KlerosArbitrators[chainID]
		if !ok {
			return common.Address{}, NewArbitratorUnavailableError(data.ArbitratorOption, chainID)
		}

		return addr, nil
	case ArbitratorCustom:
		if data.CustomArbitrator == (common.Address{}) {
			return common.Address{}, NewArbitratorUnavailableError(data.ArbitratorOption, chainID)
		}

		return data.CustomArbitrator, nil
	default:
		return common.Address{}, fmt.Errorf("unknown arbitrator option %q", data.ArbitratorOption)
	}
}
