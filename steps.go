package zodiac

import (
	"errors"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/gnosisguild/zodiac/types"
)

// TemplateType is the Reality.eth question type.
type TemplateType string

const (
	TemplateTypeBool           TemplateType = "bool"
	TemplateTypeSingleSelect   TemplateType = "single-select"
	TemplateTypeMultipleSelect TemplateType = "multiple-select"
)

const (
	TemplateDefault = "default"
	TemplateCustom  = "custom"
)

// Outcome is one answer of a select question.
type Outcome struct {
	Outcome string `json:"outcome" yaml:"outcome"`
}

// OracleTemplateData describes the question asked to the oracle.
type OracleTemplateData struct {
	Template     string       `json:"template" yaml:"template" validate:"oneof=default custom"`
	Language     string       `json:"language" yaml:"language" validate:"required"`
	Category     string       `json:"category" yaml:"category" validate:"required"`
	TemplateType TemplateType `json:"templateType" yaml:"templateType" validate:"oneof=bool single-select multiple-select"`
	Outcomes     []Outcome    `json:"outcomes" yaml:"outcomes"`
}

// DefaultOracleTemplateData is the template step's initial value.
func DefaultOracleTemplateData() OracleTemplateData {
	return OracleTemplateData{
		Template:     TemplateDefault,
		Language:     "english",
		Category:     "DAO",
		TemplateType: TemplateTypeBool,
		Outcomes:     []Outcome{{Outcome: ""}, {Outcome: ""}},
	}
}

// Clone implements Cloner.
func (d OracleTemplateData) Clone() OracleTemplateData {
	d.Outcomes = slices.Clone(d.Outcomes)
	return d
}

// Validate checks the template is well formed. Select questions need at least two named
// outcomes.
func (d OracleTemplateData) Validate() error {
	if err := validator.New().Struct(d); err != nil {
		return err
	}
	if d.TemplateType == TemplateTypeBool {
		return nil
	}

	named := 0
	for _, o := range d.Outcomes {
		if o.Outcome != "" {
			named++
		}
	}
	if named < 2 {
		return errors.New("select templates need at least two outcomes")
	}

	return nil
}

// OracleInstanceData selects the Reality.eth oracle contract.
type OracleInstanceData struct {
	InstanceAddress common.Address `json:"instanceAddress" yaml:"instanceAddress"`
	InstanceType    InstanceType   `json:"instanceType" yaml:"instanceType" validate:"oneof=ETH GNO custom"`
}

// DefaultOracleInstanceData selects the first oracle option of the chain.
func DefaultOracleInstanceData(chainID types.ChainID) OracleInstanceData {
	option := OracleOptions(chainID)[0]

	return OracleInstanceData{
		InstanceAddress: option.Address,
		InstanceType:    option.Type,
	}
}

// Validate checks the instance is usable.
func (d OracleInstanceData) Validate() error {
	if err := validator.New().Struct(d); err != nil {
		return err
	}
	if d.InstanceAddress == (common.Address{}) {
		return errors.New("oracle instance address is required")
	}

	return nil
}

// OracleDelayData holds the oracle timings in seconds. The units only record how the values
// are displayed.
type OracleDelayData struct {
	Timeout        uint64         `json:"timeout" yaml:"timeout"`
	TimeoutUnit    types.TimeUnit `json:"timeoutUnit" yaml:"timeoutUnit"`
	Cooldown       uint64         `json:"cooldown" yaml:"cooldown"`
	CooldownUnit   types.TimeUnit `json:"cooldownUnit" yaml:"cooldownUnit"`
	Expiration     uint64         `json:"expiration" yaml:"expiration"`
	ExpirationUnit types.TimeUnit `json:"expirationUnit" yaml:"expirationUnit"`
}

// DefaultOracleDelayData is the delay step's initial value.
func DefaultOracleDelayData() OracleDelayData {
	return OracleDelayData{
		TimeoutUnit:    types.UnitHours,
		CooldownUnit:   types.UnitHours,
		ExpirationUnit: types.UnitHours,
	}
}

// Validate checks the display units.
func (d OracleDelayData) Validate() error {
	return errors.Join(d.TimeoutUnit.Validate(), d.CooldownUnit.Validate(), d.ExpirationUnit.Validate())
}

// OracleBondData is the minimum bond, in the instance's currency.
type OracleBondData struct {
	Bond float64 `json:"bond" yaml:"bond" validate:"gte=0"`
}

// DefaultOracleBondData is the bond step's initial value.
func DefaultOracleBondData() OracleBondData {
	return OracleBondData{Bond: 0.01}
}

// Validate checks the bond is not negative.
func (d OracleBondData) Validate() error {
	return validator.New().Struct(d)
}

// OracleArbitratorData selects the arbitrator.
type OracleArbitratorData struct {
	ArbitratorOption ArbitratorOption `json:"arbitratorOption" yaml:"arbitratorOption" validate:"oneof=NO_ARBITRATOR KLEROS CUSTOM"`
	CustomArbitrator common.Address   `json:"customArbitrator,omitzero" yaml:"customArbitrator,omitempty"`
}

// DefaultOracleArbitratorData is the arbitrator step's initial value.
func DefaultOracleArbitratorData() OracleArbitratorData {
	return OracleArbitratorData{ArbitratorOption: ArbitratorNone}
}

// Validate checks the option is known.
func (d OracleArbitratorData) Validate() error {
	return validator.New().Struct(d)
}

// DelayParamsData holds the delay modifier timings in seconds.
type DelayParamsData struct {
	Timeout  uint64 `json:"timeout" yaml:"timeout"`
	Cooldown uint64 `json:"cooldown" yaml:"cooldown"`
}

// DefaultDelayParamsData is one day for both timings.
func DefaultDelayParamsData() DelayParamsData {
	return DelayParamsData{
		Timeout:  86400,
		Cooldown: 86400,
	}
}

// AttachData optionally names an existing modifier the new module is enabled on.
type AttachData struct {
	Module *common.Address `json:"module,omitempty" yaml:"module,omitempty"`
}

// Clone implements Cloner.
func (d AttachData) Clone() AttachData {
	if d.Module != nil {
		addr := *d.Module
		d.Module = &addr
	}

	return d
}

// SpaceData is the ENS name of the DAO's snapshot space.
type SpaceData struct {
	ENSName string `json:"ensName" yaml:"ensName" validate:"omitempty,fqdn"`
}

// Validate checks the ENS name looks like a domain.
func (d SpaceData) Validate() error {
	return validator.New().Struct(d)
}

// ExecutorData selects the account the module executes through. The zero address means the
// Safe itself.
type ExecutorData struct {
	Executor common.Address `json:"executor" yaml:"executor"`
}
