package evm

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/gnosisguild/zodiac/types"
)

// EncodeMultiSend packs transactions in the MultiSend layout:
// operation (1 byte), to (20 bytes), value (32 bytes), data length (32 bytes), data.
func EncodeMultiSend(txs []types.Transaction) ([]byte, error) {
	var packed []byte
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		if tx.Operation != types.OperationCall {
			return nil, fmt.Errorf("transaction %d: multisend call only cannot delegate call", i)
		}

		packed = append(packed, byte(tx.Operation))
		packed = append(packed, tx.To.Bytes()...)
		packed = append(packed, math.U256Bytes(new(big.Int).Set(tx.ValueOrZero()))...)
		packed = append(packed, math.U256Bytes(big.NewInt(int64(len(tx.Data))))...)
		packed = append(packed, tx.Data...)
	}

	return packed, nil
}

// Batch folds transactions into the single transaction a Safe executes. A single transaction
// is returned as is, several become a delegate call to multiSend.
func Batch(multiSend common.Address, txs []types.Transaction) (types.Transaction, error) {
	switch len(txs) {
	case 0:
		return types.Transaction{}, errors.New("no transactions to batch")
	case 1:
		return txs[0], txs[0].Validate()
	}

	packed, err := EncodeMultiSend(txs)
	if err != nil {
		return types.Transaction{}, err
	}
	data, err := MultiSendABI.Pack("multiSend", packed)
	if err != nil {
		return types.Transaction{}, err
	}

	return types.Transaction{
		To:          multiSend,
		Value:       big.NewInt(0),
		Data:        data,
		Operation:   types.OperationDelegateCall,
		Description: fmt.Sprintf("multisend of %d transactions", len(txs)),
	}, nil
}
