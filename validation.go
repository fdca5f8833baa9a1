package zodiac

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gnosisguild/zodiac/types"
)

// ValidateSection checks a collected payload before the wizard moves past it.
func ValidateSection(data SectionData) error {
	switch d := data.(type) {
	case OracleSectionData:
		return validateOracleSection(d)
	case DelaySectionData:
		return validateDelaySection(d)
	case DaoSectionData:
		return validateDaoSection(d)
	case nil:
		return errors.New("section data is nil")
	default:
		return fmt.Errorf("unsupported section data %T", data)
	}
}

func validateOracleSection(d OracleSectionData) error {
	if err := d.TemplateData.Validate(); err != nil {
		return fmt.Errorf("%s template: %w", SectionOracle, err)
	}
	if err := d.InstanceData.Validate(); err != nil {
		return fmt.Errorf("%s instance: %w", SectionOracle, err)
	}
	if err := d.DelayData.Validate(); err != nil {
		return fmt.Errorf("%s delay: %w", SectionOracle, err)
	}
	if d.DelayData.Timeout == 0 {
		return fmt.Errorf("%s delay: timeout must be greater than zero", SectionOracle)
	}
	if exp := d.DelayData.Expiration; exp != 0 && (exp < d.DelayData.Cooldown || exp-d.DelayData.Cooldown < types.MinExpirationWindow) {
		return fmt.Errorf("%s delay: expiration must be 0 or at least %ds longer than the cooldown", SectionOracle, types.MinExpirationWindow)
	}
	if err := d.BondData.Validate(); err != nil {
		return fmt.Errorf("%s bond: %w", SectionOracle, err)
	}
	if err := d.ArbitratorData.Validate(); err != nil {
		return fmt.Errorf("%s arbitrator: %w", SectionOracle, err)
	}
	if d.ArbitratorData.ArbitratorOption == ArbitratorCustom && d.ArbitratorData.CustomArbitrator == (common.Address{}) {
		return fmt.Errorf("%s arbitrator: custom arbitrator address is required", SectionOracle)
	}

	return nil
}

func validateDelaySection(d DelaySectionData) error {
	if exp := d.ParamsData.Timeout; exp != 0 && exp < types.MinExpirationWindow {
		return fmt.Errorf("%s params: timeout must be 0 or at least %ds", SectionDelay, types.MinExpirationWindow)
	}
	if d.AttachData.Module != nil && *d.AttachData.Module == (common.Address{}) {
		return fmt.Errorf("%s attach: module address is the zero address", SectionDelay)
	}

	return nil
}

func validateDaoSection(d DaoSectionData) error {
	if err := d.SpaceData.Validate(); err != nil {
		return fmt.Errorf("%s space: %w", SectionDao, err)
	}

	return nil
}
