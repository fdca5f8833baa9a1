package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// MinExpirationWindow is the smallest non-zero gap, in seconds, the module contracts accept
	// between the end of the cooldown and the expiration.
	MinExpirationWindow = 60
)

// ModuleParams is the variant specific configuration handed to a module factory.
type ModuleParams interface {
	ModuleKind() ModuleKind
	Validate() error
}

// InvalidParamError is returned when a module parameter would be rejected by the module's
// setUp function.
type InvalidParamError struct {
	Kind   ModuleKind
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid %s module parameter %s: %s", e.Kind, e.Field, e.Reason)
}

// NewInvalidParamError creates a new InvalidParamError.
func NewInvalidParamError(kind ModuleKind, field, reason string) *InvalidParamError {
	return &InvalidParamError{Kind: kind, Field: field, Reason: reason}
}

var _ ModuleParams = DelayModuleParams{}

// DelayModuleParams configures a transaction delay modifier.
type DelayModuleParams struct {
	// Executor is used as owner, avatar and target of the modifier.
	Executor     common.Address `json:"executor"`
	TxCooldown   uint64         `json:"txCooldown"`
	TxExpiration uint64         `json:"txExpiration"`
}

// ModuleKind implements ModuleParams.
func (p DelayModuleParams) ModuleKind() ModuleKind {
	return ModuleKindDelay
}

// Validate mirrors the checks done by the delay modifier's setUp.
func (p DelayModuleParams) Validate() error {
	if p.Executor == (common.Address{}) {
		return NewInvalidParamError(ModuleKindDelay, "executor", "must not be the zero address")
	}
	if p.TxExpiration != 0 && p.TxExpiration < MinExpirationWindow {
		return NewInvalidParamError(ModuleKindDelay, "txExpiration",
			fmt.Sprintf("must be 0 or at least %d seconds", MinExpirationWindow))
	}

	return nil
}

var _ ModuleParams = RealityModuleParams{}

// RealityModuleParams configures a Reality.eth module.
type RealityModuleParams struct {
	Kind       ModuleKind     `json:"kind"`
	Owner      common.Address `json:"owner"`
	Avatar     common.Address `json:"avatar"`
	Target     common.Address `json:"target"`
	Oracle     common.Address `json:"oracle"`
	Timeout    uint32         `json:"timeout"`
	Cooldown   uint32         `json:"cooldown"`
	Expiration uint32         `json:"expiration"`
	Bond       *big.Int       `json:"bond"`
	Arbitrator common.Address `json:"arbitrator"`

	// Template is the Reality.eth question template created before deployment. When
	// TemplateID is set the existing template is used and Template is ignored.
	Template   string   `json:"template,omitempty"`
	TemplateID *big.Int `json:"templateId,omitempty"`
}

// ModuleKind implements ModuleParams.
func (p RealityModuleParams) ModuleKind() ModuleKind {
	if p.Kind == "" {
		return ModuleKindRealityETH
	}

	return p.Kind
}

// Validate mirrors the checks done by the reality module's setUp.
func (p RealityModuleParams) Validate() error {
	kind := p.ModuleKind()
	if !kind.IsReality() {
		return NewInvalidParamError(kind, "kind", "not a reality module kind")
	}
	if p.Owner == (common.Address{}) || p.Avatar == (common.Address{}) || p.Target == (common.Address{}) {
		return NewInvalidParamError(kind, "owner/avatar/target", "must not be the zero address")
	}
	if p.Oracle == (common.Address{}) {
		return NewInvalidParamError(kind, "oracle", "must not be the zero address")
	}
	if p.Timeout == 0 {
		return NewInvalidParamError(kind, "timeout", "must be greater than 0")
	}
	if p.Expiration != 0 && (p.Expiration < p.Cooldown || p.Expiration-p.Cooldown < MinExpirationWindow) {
		return NewInvalidParamError(kind, "expiration",
			fmt.Sprintf("must be 0 or at least %d seconds after the cooldown", MinExpirationWindow))
	}
	if p.Bond == nil || p.Bond.Sign() < 0 {
		return NewInvalidParamError(kind, "bond", "must be a non-negative amount")
	}
	if p.TemplateID == nil && p.Template == "" {
		return NewInvalidParamError(kind, "template", "either a template or a template id is required")
	}

	return nil
}
