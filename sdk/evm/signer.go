package evm

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/usbwallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer signs Safe transactions for a Safe owner.
type Signer interface {
	SignSafeTx(tx SafeTx) ([]byte, error)
	GetAddress() (common.Address, error)
}

var _ Signer = &PrivateKeySigner{}

// PrivateKeySigner signs Safe transactions using a private key.
type PrivateKeySigner struct {
	pk *ecdsa.PrivateKey
}

// NewPrivateKeySigner creates a new PrivateKeySigner.
func NewPrivateKeySigner(pk *ecdsa.PrivateKey) *PrivateKeySigner {
	return &PrivateKeySigner{pk: pk}
}

// SignSafeTx signs the EIP-712 safeTxHash.
func (s *PrivateKeySigner) SignSafeTx(tx SafeTx) ([]byte, error) {
	hash, err := tx.Hash()
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(hash.Bytes(), s.pk)
	if err != nil {
		return nil, err
	}

	return normalizeV(sig), nil
}

// GetAddress returns the address of the signer.
func (s *PrivateKeySigner) GetAddress() (common.Address, error) {
	return crypto.PubkeyToAddress(s.pk.PublicKey), nil
}

var _ Signer = &LedgerSigner{}

// LedgerSigner signs Safe transactions using a Ledger.
type LedgerSigner struct {
	derivationPath []uint32
}

// NewLedgerSigner creates a new LedgerSigner.
func NewLedgerSigner(derivationPath []uint32) *LedgerSigner {
	return &LedgerSigner{derivationPath: derivationPath}
}

// SignSafeTx signs the transaction as EIP-712 typed data on the first wallet found on a
// Ledger.
func (s *LedgerSigner) SignSafeTx(tx SafeTx) ([]byte, error) {
	domain, msg, err := tx.HashParts()
	if err != nil {
		return nil, err
	}

	wallet, account, err := s.setupLedgerAccount()
	if err != nil {
		return nil, err
	}
	defer wallet.Close()

	sig, err := wallet.SignData(account, accounts.MimetypeTypedData, typedDataPayload(domain, msg))
	if err != nil {
		return nil, err
	}

	return normalizeV(sig), nil
}

func (s *LedgerSigner) GetAddress() (common.Address, error) {
	wallet, account, err := s.setupLedgerAccount()
	if err != nil {
		return common.Address{}, err
	}
	defer wallet.Close()

	return account.Address, nil
}

// setupLedgerAccount loads the wallet and account from the ledger. Caller is responsible for closing the wallet.
func (s *LedgerSigner) setupLedgerAccount() (accounts.Wallet, accounts.Account, error) {
	ledgerhub, err := usbwallet.NewLedgerHub()
	if err != nil {
		return nil, accounts.Account{}, fmt.Errorf("failed to open ledger hub: %w", err)
	}

	wallets := ledgerhub.Wallets()
	if len(wallets) == 0 {
		return nil, accounts.Account{}, errors.New("no wallets found")
	}
	wallet := wallets[0]

	if err = wallet.Open(""); err != nil {
		return nil, accounts.Account{}, fmt.Errorf("failed to open wallet: %w", err)
	}

	account, err := wallet.Derive(s.derivationPath, true)
	if err != nil {
		wallet.Close() // Only close on error since caller won't be able to
		return nil, accounts.Account{}, fmt.Errorf("is your ledger ethereum app open? Failed to derive account: %w derivation path %v", err, s.derivationPath)
	}

	return wallet, account, nil
}
