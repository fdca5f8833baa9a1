package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const (
	SignatureVOffset    = 27
	SignatureVThreshold = 2
)

// ContractCaller is the read access the SDK needs from a chain client. *ethclient.Client
// satisfies it.
type ContractCaller interface {
	bind.ContractCaller
}

// callContract packs a view call, runs it against the latest block and unpacks the result.
func callContract(
	ctx context.Context,
	client ContractCaller,
	from, to common.Address,
	contractABI *abi.ABI,
	method string,
	args ...any,
) ([]any, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	out, err := client.CallContract(ctx, ethereum.CallMsg{From: from, To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s on %s: %w", method, to.Hex(), err)
	}

	res, err := contractABI.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}

	return res, nil
}

// normalizeV moves a 0/1 recovery id into the 27/28 range the Safe contracts expect.
func normalizeV(sig []byte) []byte {
	if len(sig) == 65 && sig[64] < SignatureVThreshold {
		sig[64] += SignatureVOffset
	}

	return sig
}
