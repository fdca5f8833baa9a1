// package evmsim implements a simulated EVM chain for testing purposes.
package evmsim

import (
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

const (
	// DefaultGasLimit is the default gas limit for each transaction in the simulated chain
	DefaultGasLimit = uint64(8000000)

	// DefaultBalance is the default balance for each account in the simulated chain
	DefaultBalance = 1e18

	// SimulatedChainID is the chain ID used for the simulated chain. EVM Simulated chains always use 1337
	//
	// https://pkg.go.dev/github.com/ethereum/go-ethereum/ethclient/simulated#NewBackend
	SimulatedChainID = 1337
)

// SimulatedChain represents a simulated chain with a backend and a list of signers.
type SimulatedChain struct {
	Backend *simulated.Backend
	Signers []*Signer
}

// Signer is a funded account of the simulated chain.
type Signer struct {
	PrivateKey *ecdsa.PrivateKey
}

// NewTransactOpts creates a new transact options with the signer's private key and sets default
// values.
func (s *Signer) NewTransactOpts(t *testing.T) *bind.TransactOpts {
	t.Helper()

	auth, err := bind.NewKeyedTransactorWithChainID(s.PrivateKey, big.NewInt(SimulatedChainID))
	require.NoError(t, err)

	// Set default values
	auth.GasLimit = DefaultGasLimit

	return auth
}

// Address extracts the address from the signer's private key.
func (s *Signer) Address(t *testing.T) common.Address {
	t.Helper()

	publicKeyECDSA, ok := s.PrivateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		t.Fatal("error casting public key from crypto to ecdsa")
	}

	return crypto.PubkeyToAddress(*publicKeyECDSA)
}

// NewSimulatedChain creates a new simulated chain with the given number of signers.
func NewSimulatedChain(t *testing.T, numSigners uint64) SimulatedChain {
	t.Helper()

	signers := make([]*Signer, 0, numSigners)
	for range numSigners {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		signers = append(signers, &Signer{PrivateKey: key})
	}

	genesisAlloc := gethTypes.GenesisAlloc{}
	for _, s := range signers {
		genesisAlloc[s.Address(t)] = gethTypes.Account{
			Balance: big.NewInt(DefaultBalance),
		}
	}

	sim := simulated.NewBackend(genesisAlloc,
		simulated.WithBlockGasLimit(DefaultGasLimit),
	)
	t.Cleanup(func() {
		_ = sim.Close()
	})

	return SimulatedChain{
		Backend: sim,
		Signers: signers,
	}
}

// DeployCode deploys raw init code with the signer and mines a block. The returned address
// holds whatever runtime code the init code returns.
func (s *SimulatedChain) DeployCode(t *testing.T, signer *Signer, initCode []byte) (common.Address, *gethTypes.Transaction) {
	t.Helper()

	addr, tx, _, err := bind.DeployContract(signer.NewTransactOpts(t), abi.ABI{}, initCode, s.Backend.Client())
	require.NoError(t, err)

	// Mine a block
	s.Backend.Commit()

	receipt, err := bind.WaitMined(t.Context(), s.Backend.Client(), tx)
	require.NoError(t, err)
	require.Equal(t, gethTypes.ReceiptStatusSuccessful, receipt.Status)

	return addr, tx
}
