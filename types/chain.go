package types

import (
	"errors"
	"fmt"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ChainID is an EVM chain id as reported by the Safe session.
type ChainID uint64

var (
	// ErrUnknownChain is returned when a chain id is not registered in chain-selectors.
	ErrUnknownChain = errors.New("unknown chain")

	// MainnetChainID is Ethereum mainnet.
	MainnetChainID = ChainID(chainsel.ETHEREUM_MAINNET.EvmChainID)
)

// Details returns the chain-selectors entry for the chain id.
func (c ChainID) Details() (chainsel.Chain, error) {
	chain, ok := chainsel.ChainByEvmChainID(uint64(c))
	if !ok {
		return chainsel.Chain{}, fmt.Errorf("%w: %d", ErrUnknownChain, uint64(c))
	}

	return chain, nil
}

// Name returns the chain-selectors name of the chain, or the decimal id when unknown.
func (c ChainID) Name() string {
	chain, err := c.Details()
	if err != nil || chain.Name == "" {
		return fmt.Sprintf("%d", uint64(c))
	}

	return chain.Name
}

// IsMainnet reports whether the chain is Ethereum mainnet.
func (c ChainID) IsMainnet() bool {
	return c == MainnetChainID
}
