package types

import "fmt"

// Operation is the Safe call type of a transaction.
type Operation uint8

const (
	// OperationCall is a regular CALL from the Safe.
	OperationCall Operation = 0
	// OperationDelegateCall runs the target code in the context of the Safe.
	OperationDelegateCall Operation = 1
)

// String implements fmt.Stringer.
func (o Operation) String() string {
	switch o {
	case OperationCall:
		return "call"
	case OperationDelegateCall:
		return "delegatecall"
	default:
		return fmt.Sprintf("operation(%d)", uint8(o))
	}
}

// Validate checks the operation is a call or a delegate call.
func (o Operation) Validate() error {
	if o > OperationDelegateCall {
		return fmt.Errorf("invalid operation: %d", uint8(o))
	}

	return nil
}
