package sdkerrors

import (
	"fmt"

	"github.com/gnosisguild/zodiac/types"
)

type UnsupportedChainError struct {
	ChainID types.ChainID
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("no zodiac contracts known for chain %s", e.ChainID.Name())
}

func NewUnsupportedChainError(chainID types.ChainID) *UnsupportedChainError {
	return &UnsupportedChainError{ChainID: chainID}
}

type UnsupportedModuleKindError struct {
	Kind types.ModuleKind
}

func (e *UnsupportedModuleKindError) Error() string {
	return fmt.Sprintf("unsupported module kind: %s", e.Kind)
}

func NewUnsupportedModuleKindError(kind types.ModuleKind) *UnsupportedModuleKindError {
	return &UnsupportedModuleKindError{Kind: kind}
}

// TxServiceError is returned when the Safe transaction service answers with a non 2xx status.
type TxServiceError struct {
	StatusCode int
	Body       string
}

// Error returns the error message.
func (e *TxServiceError) Error() string {
	return fmt.Sprintf("transaction service returned status %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether retrying the request may succeed.
func (e *TxServiceError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

func NewTxServiceError(statusCode int, body string) *TxServiceError {
	return &TxServiceError{StatusCode: statusCode, Body: body}
}
