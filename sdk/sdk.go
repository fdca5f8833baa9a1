package sdk

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gnosisguild/zodiac/types"
)

// Session identifies the Safe the wizard is configuring. It is passed explicitly to every
// call that needs chain identity.
type Session interface {
	SafeAddress() common.Address
	ChainID() types.ChainID
}

// StaticSession is a Session backed by fixed values.
type StaticSession struct {
	Safe  common.Address
	Chain types.ChainID
}

var (
	_ Session   = StaticSession{}
	_ Validator = StaticSession{}
)

// SafeAddress implements Session.
func (s StaticSession) SafeAddress() common.Address { return s.Safe }

// ChainID implements Session.
func (s StaticSession) ChainID() types.ChainID { return s.Chain }

// Validate checks the Safe is set and the chain is known.
func (s StaticSession) Validate() error {
	if s.Safe == (common.Address{}) {
		return errors.New("session safe address is required")
	}
	_, err := s.Chain.Details()

	return err
}

// ModuleFactory turns module parameters into the transactions that deploy the module and
// enable it on the Safe, or on attachTo when attaching to an existing modifier.
type ModuleFactory interface {
	CreateAndAddModule(
		ctx context.Context,
		session Session,
		params types.ModuleParams,
		attachTo *common.Address,
	) ([]types.Transaction, error)
}

// TxService proposes transactions to a Safe and looks them up afterwards.
type TxService interface {
	// Send proposes the transactions as one Safe transaction and returns its safeTxHash.
	Send(ctx context.Context, session Session, txs []types.Transaction) (common.Hash, error)

	// GetBySafeTxHash returns the queued Safe transaction for the hash.
	GetBySafeTxHash(ctx context.Context, safeTxHash common.Hash) (*types.SafeTransaction, error)
}
