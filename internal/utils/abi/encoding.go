package abi

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// Args builds the JSON argument list Encode and Decode expect from plain solidity type names.
//
//	Args("address", "uint256") == `[{"type":"address"},{"type":"uint256"}]`
func Args(types ...string) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf(`{"type":%q}`, t))
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// Encode is the equivalent of abi.encode.
// Module initializers are passed to setUp as abi.encode'd bytes, so the factory needs the
// encoding without a method selector.
func Encode(abiStr string, values ...any) ([]byte, error) {
	// Create a dummy method with arguments
	inDef := fmt.Sprintf(`[{ "name" : "method", "type": "function", "inputs": %s}]`, abiStr)
	inAbi, err := abi.JSON(strings.NewReader(inDef))
	if err != nil {
		return nil, err
	}

	res, err := inAbi.Pack("method", values...)
	if err != nil {
		return nil, err
	}

	return res[4:], nil
}

// Decode is the equivalent of abi.decode.
func Decode(abiStr string, data []byte) ([]any, error) {
	inDef := fmt.Sprintf(`[{ "name" : "method", "type": "function", "outputs": %s}]`, abiStr)
	inAbi, err := abi.JSON(strings.NewReader(inDef))
	if err != nil {
		return nil, err
	}

	return inAbi.Unpack("method", data)
}

// Selector returns the 4 byte function selector of a canonical signature such as
// "enableModule(address)".
func Selector(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:4]
}
