package evm

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// fakeCaller is a fake implementation of ContractCaller. Calls are answered by handlers keyed
// on the target address and method name.
type fakeCaller struct {
	mu       sync.Mutex
	code     map[common.Address][]byte
	handlers map[string]func(msg ethereum.CallMsg, args []any) ([]any, error)
	abis     map[string]*abi.ABI
	calls    []ethereum.CallMsg
	codeErr  error
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{
		code:     make(map[common.Address][]byte),
		handlers: make(map[string]func(ethereum.CallMsg, []any) ([]any, error)),
		abis:     make(map[string]*abi.ABI),
	}
}

// handle registers the answer of method on to. The handler receives the unpacked arguments
// and returns the values to pack as outputs.
func (f *fakeCaller) handle(to common.Address, contractABI *abi.ABI, method string, fn func(msg ethereum.CallMsg, args []any) ([]any, error)) {
	key := f.key(to, contractABI.Methods[method].ID)
	f.handlers[key] = fn
	f.abis[key] = contractABI
}

func (f *fakeCaller) key(to common.Address, selector []byte) string {
	return fmt.Sprintf("%s:%x", to.Hex(), selector)
}

// CodeAt implements bind.ContractCaller.
func (f *fakeCaller) CodeAt(_ context.Context, contract common.Address, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.codeErr != nil {
		return nil, f.codeErr
	}

	return f.code[contract], nil
}

// CallContract implements bind.ContractCaller.
func (f *fakeCaller) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, msg)
	f.mu.Unlock()

	if msg.To == nil || len(msg.Data) < 4 {
		return nil, fmt.Errorf("invalid call")
	}
	key := f.key(*msg.To, msg.Data[:4])
	fn, ok := f.handlers[key]
	if !ok {
		return nil, fmt.Errorf("execution reverted: no handler for %s", key)
	}

	method, err := f.abis[key].MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}

	out, err := fn(msg, args)
	if err != nil {
		return nil, err
	}

	return method.Outputs.Pack(out...)
}

// fakeSigner implements the Signer interface for testing purposes.
type fakeSigner struct {
	sig  []byte
	addr common.Address
	err  error
}

// SignSafeTx implements the Signer interface.
func (f *fakeSigner) SignSafeTx(SafeTx) ([]byte, error) {
	return f.sig, f.err
}

// GetAddress implements the Signer interface.
func (f *fakeSigner) GetAddress() (common.Address, error) {
	return f.addr, nil
}
