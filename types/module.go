package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ModuleKind selects a module variant known to the factory.
type ModuleKind string

const (
	ModuleKindDelay        ModuleKind = "delay"
	ModuleKindRealityETH   ModuleKind = "reality-eth"
	ModuleKindRealityERC20 ModuleKind = "reality-erc20"
	ModuleKindUnknown      ModuleKind = "unknown"
)

// StringToModuleKind converts a string to a ModuleKind.
var StringToModuleKind = map[string]ModuleKind{
	"delay":         ModuleKindDelay,
	"reality-eth":   ModuleKindRealityETH,
	"reality-erc20": ModuleKindRealityERC20,
}

// ParseModuleKind converts a string to a known ModuleKind.
func ParseModuleKind(s string) (ModuleKind, error) {
	kind, ok := StringToModuleKind[s]
	if !ok {
		return ModuleKindUnknown, fmt.Errorf("unknown module kind: %q", s)
	}

	return kind, nil
}

// IsModifier reports whether other modules can be enabled on a module of this kind.
func (k ModuleKind) IsModifier() bool {
	return k == ModuleKindDelay
}

// IsReality reports whether the kind is one of the Reality.eth module variants.
func (k ModuleKind) IsReality() bool {
	return k == ModuleKindRealityETH || k == ModuleKindRealityERC20
}

// Module is a module enabled on a Safe.
type Module struct {
	Address    common.Address `json:"address" yaml:"address"`
	Kind       ModuleKind     `json:"kind" yaml:"kind"`
	MasterCopy common.Address `json:"masterCopy" yaml:"masterCopy"`

	// SubModules lists the modules enabled on this module when it is a modifier.
	SubModules []common.Address `json:"subModules,omitempty" yaml:"subModules,omitempty"`
}
