package chaintest

import (
	"github.com/ethereum/go-ethereum/common"
	cselectors "github.com/smartcontractkit/chain-selectors"

	"github.com/gnosisguild/zodiac/types"
)

var (
	Chain1RawID = cselectors.GETH_TESTNET.EvmChainID // 1337
	Chain1ID    = types.ChainID(Chain1RawID)         // 1337

	Chain2RawID = cselectors.ETHEREUM_TESTNET_SEPOLIA.EvmChainID // 11155111
	Chain2ID    = types.ChainID(Chain2RawID)                     // 11155111

	Chain3RawID = cselectors.ETHEREUM_MAINNET.EvmChainID // 1
	Chain3ID    = types.ChainID(Chain3RawID)             // 1

	// TestInvalidChainID is a chain id that chain-selectors does not know.
	TestInvalidChainID = types.ChainID(987654321987)

	// TestSafe is the Safe address used across tests.
	TestSafe = common.HexToAddress("0x0000000000000000000000000000000000005afe")
)
