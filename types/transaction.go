package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Transaction is a single call the Safe is asked to make.
type Transaction struct {
	To        common.Address `json:"to"`
	Value     *big.Int       `json:"value"`
	Data      hexutil.Bytes  `json:"data"`
	Operation Operation      `json:"operation"`

	// Description is a human readable summary used when printing a batch.
	Description string `json:"description,omitempty"`
}

// NewCall returns a value-less CALL transaction to the given address.
func NewCall(to common.Address, data []byte, description string) Transaction {
	return Transaction{
		To:          to,
		Value:       big.NewInt(0),
		Data:        data,
		Operation:   OperationCall,
		Description: description,
	}
}

// Validate ensures the transaction can be proposed to a Safe.
func (t Transaction) Validate() error {
	if t.To == (common.Address{}) {
		return fmt.Errorf("transaction target is the zero address")
	}
	if t.Value != nil && t.Value.Sign() < 0 {
		return fmt.Errorf("invalid transaction value: %v", t.Value)
	}

	return t.Operation.Validate()
}

// ValueOrZero returns the value, treating nil as zero.
func (t Transaction) ValueOrZero() *big.Int {
	if t.Value == nil {
		return big.NewInt(0)
	}

	return t.Value
}

// SafeTransaction is a multisig transaction queued on a Safe, as reported by the transaction
// service.
type SafeTransaction struct {
	SafeTxHash            common.Hash    `json:"safeTxHash"`
	Safe                  common.Address `json:"safe"`
	To                    common.Address `json:"to"`
	Value                 string         `json:"value"`
	Data                  hexutil.Bytes  `json:"data"`
	Operation             Operation      `json:"operation"`
	Nonce                 uint64         `json:"nonce"`
	ConfirmationsRequired uint64         `json:"confirmationsRequired"`
	Confirmations         []Confirmation `json:"confirmations"`
	IsExecuted            bool           `json:"isExecuted"`
	TransactionHash       *common.Hash   `json:"transactionHash"`
}

// Confirmation is an owner signature attached to a SafeTransaction.
type Confirmation struct {
	Owner     common.Address `json:"owner"`
	Signature hexutil.Bytes  `json:"signature"`
}
