package evm

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/gnosisguild/zodiac/types"
)

// safeTxTypes are the EIP-712 types of a Safe transaction (Safe >= 1.3.0).
var safeTxTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	"SafeTx": {
		{Name: "to", Type: "address"},
		{Name: "value", Type: "uint256"},
		{Name: "data", Type: "bytes"},
		{Name: "operation", Type: "uint8"},
		{Name: "safeTxGas", Type: "uint256"},
		{Name: "baseGas", Type: "uint256"},
		{Name: "gasPrice", Type: "uint256"},
		{Name: "gasToken", Type: "address"},
		{Name: "refundReceiver", Type: "address"},
		{Name: "nonce", Type: "uint256"},
	},
}

// SafeTx is a Safe multisig transaction. Gas fields are left at zero: the proposal is
// executed without refunds.
type SafeTx struct {
	Safe    common.Address
	ChainID types.ChainID
	types.Transaction
	Nonce uint64
}

// NewSafeTx wraps a transaction for a Safe at a nonce.
func NewSafeTx(safe common.Address, chainID types.ChainID, tx types.Transaction, nonce uint64) SafeTx {
	return SafeTx{Safe: safe, ChainID: chainID, Transaction: tx, Nonce: nonce}
}

// TypedData returns the EIP-712 document of the transaction.
func (tx SafeTx) TypedData() apitypes.TypedData {
	return apitypes.TypedData{
		Types:       safeTxTypes,
		PrimaryType: "SafeTx",
		Domain: apitypes.TypedDataDomain{
			ChainId:           (*math.HexOrDecimal256)(new(big.Int).SetUint64(uint64(tx.ChainID))),
			VerifyingContract: tx.Safe.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"to":             tx.To.Hex(),
			"value":          tx.ValueOrZero().String(),
			"data":           hexutil.Encode(tx.Data),
			"operation":      fmt.Sprintf("%d", uint8(tx.Operation)),
			"safeTxGas":      "0",
			"baseGas":        "0",
			"gasPrice":       "0",
			"gasToken":       common.Address{}.Hex(),
			"refundReceiver": common.Address{}.Hex(),
			"nonce":          fmt.Sprintf("%d", tx.Nonce),
		},
	}
}

// HashParts returns the domain separator and the struct hash of the transaction.
func (tx SafeTx) HashParts() (domainSeparator, structHash common.Hash, err error) {
	td := tx.TypedData()

	domain, err := td.HashStruct("EIP712Domain", td.Domain.Map())
	if err != nil {
		return common.Hash{}, common.Hash{}, fmt.Errorf("failed to hash domain: %w", err)
	}
	msg, err := td.HashStruct(td.PrimaryType, td.Message)
	if err != nil {
		return common.Hash{}, common.Hash{}, fmt.Errorf("failed to hash safe tx: %w", err)
	}

	return common.BytesToHash(domain), common.BytesToHash(msg), nil
}

// Hash returns the safeTxHash: keccak256(0x19 0x01 domainSeparator structHash).
func (tx SafeTx) Hash() (common.Hash, error) {
	domain, msg, err := tx.HashParts()
	if err != nil {
		return common.Hash{}, err
	}

	return crypto.Keccak256Hash(typedDataPayload(domain, msg)), nil
}

func typedDataPayload(domain, msg common.Hash) []byte {
	payload := make([]byte, 0, 66)
	payload = append(payload, 0x19, 0x01)
	payload = append(payload, domain.Bytes()...)

	return append(payload, msg.Bytes()...)
}
