package zodiac

import (
	"github.com/gnosisguild/zodiac/types"
)

// SectionName identifies a wizard section.
type SectionName string

const (
	SectionDao    SectionName = "dao"
	SectionOracle SectionName = "oracle"
	SectionDelay  SectionName = "delay"
)

// SectionData is the union of the per-section payloads produced on "Next". Each variant is
// keyed by its section name.
type SectionData interface {
	SectionName() SectionName
	cloneSection() SectionData
}

// Aggregator is a wizard section holding one Step per sub-step.
type Aggregator interface {
	Name() SectionName

	// Collect returns a fresh payload holding the current value of every slice.
	Collect() SectionData

	// Restore overwrites every slice from previously collected data.
	Restore(data SectionData) error
}

// OracleSectionData is the payload of the oracle section.
type OracleSectionData struct {
	TemplateData   OracleTemplateData   `json:"templateData" yaml:"templateData"`
	InstanceData   OracleInstanceData   `json:"instanceData" yaml:"instanceData"`
	DelayData      OracleDelayData      `json:"delayData" yaml:"delayData"`
	BondData       OracleBondData       `json:"bondData" yaml:"bondData"`
	ArbitratorData OracleArbitratorData `json:"arbitratorData" yaml:"arbitratorData"`
}

// SectionName implements SectionData.
func (OracleSectionData) SectionName() SectionName { return SectionOracle }

func (d OracleSectionData) cloneSection() SectionData {
	d.TemplateData = d.TemplateData.Clone()
	return d
}

// DelaySectionData is the payload of the delay module section.
type DelaySectionData struct {
	ParamsData DelayParamsData `json:"paramsData" yaml:"paramsData"`
	AttachData AttachData      `json:"attachData" yaml:"attachData"`
}

// SectionName implements SectionData.
func (DelaySectionData) SectionName() SectionName { return SectionDelay }

func (d DelaySectionData) cloneSection() SectionData {
	d.AttachData = d.AttachData.Clone()
	return d
}

// DaoSectionData is the payload of the DAO section.
type DaoSectionData struct {
	SpaceData    SpaceData    `json:"spaceData" yaml:"spaceData"`
	ExecutorData ExecutorData `json:"executorData" yaml:"executorData"`
}

// SectionName implements SectionData.
func (DaoSectionData) SectionName() SectionName { return SectionDao }

func (d DaoSectionData) cloneSection() SectionData { return d }

var _ Aggregator = (*OracleSection)(nil)

// OracleSection aggregates the oracle template, instance, delay, bond and arbitrator steps.
type OracleSection struct {
	Template   *Step[OracleTemplateData]
	Instance   *Step[OracleInstanceData]
	Delay      *Step[OracleDelayData]
	Bond       *Step[OracleBondData]
	Arbitrator *Step[OracleArbitratorData]
}

// NewOracleSection creates the section with its defaults. The default oracle instance depends
// on the chain.
func NewOracleSection(chainID types.ChainID) *OracleSection {
	return &OracleSection{
		Template:   NewStep(DefaultOracleTemplateData()),
		Instance:   NewStep(DefaultOracleInstanceData(chainID)),
		Delay:      NewStep(DefaultOracleDelayData()),
		Bond:       NewStep(DefaultOracleBondData()),
		Arbitrator: NewStep(DefaultOracleArbitratorData()),
	}
}

// Name implements Aggregator.
func (s *OracleSection) Name() SectionName { return SectionOracle }

// CollectData returns the current union of all slices.
func (s *OracleSection) CollectData() OracleSectionData {
	return OracleSectionData{
		TemplateData:   s.Template.Data(),
		InstanceData:   s.Instance.Data(),
		DelayData:      s.Delay.Data(),
		BondData:       s.Bond.Data(),
		ArbitratorData: s.Arbitrator.Data(),
	}
}

// InitializeFrom overwrites every slice from saved section data.
func (s *OracleSection) InitializeFrom(data OracleSectionData) {
	s.Template.Set(data.TemplateData)
	s.Instance.Set(data.InstanceData)
	s.Delay.Set(data.DelayData)
	s.Bond.Set(data.BondData)
	s.Arbitrator.Set(data.ArbitratorData)
}

// Collect implements Aggregator.
func (s *OracleSection) Collect() SectionData { return s.CollectData() }

// Restore implements Aggregator.
func (s *OracleSection) Restore(data SectionData) error {
	d, ok := data.(OracleSectionData)
	if !ok {
		return NewSectionMismatchError(SectionOracle, data)
	}
	s.InitializeFrom(d)

	return nil
}

var _ Aggregator = (*DelaySection)(nil)

// DelaySection aggregates the delay module parameters and the attach choice.
type DelaySection struct {
	Params *Step[DelayParamsData]
	Attach *Step[AttachData]
}

// NewDelaySection creates the section with its defaults.
func NewDelaySection() *DelaySection {
	return &DelaySection{
		Params: NewStep(DefaultDelayParamsData()),
		Attach: NewStep(AttachData{}),
	}
}

// Name implements Aggregator.
func (s *DelaySection) Name() SectionName { return SectionDelay }

// CollectData returns the current union of all slices.
func (s *DelaySection) CollectData() DelaySectionData {
	return DelaySectionData{
		ParamsData: s.Params.Data(),
		AttachData: s.Attach.Data(),
	}
}

// InitializeFrom overwrites every slice from saved section data.
func (s *DelaySection) InitializeFrom(data DelaySectionData) {
	s.Params.Set(data.ParamsData)
	s.Attach.Set(data.AttachData)
}

// Collect implements Aggregator.
func (s *DelaySection) Collect() SectionData { return s.CollectData() }

// Restore implements Aggregator.
func (s *DelaySection) Restore(data SectionData) error {
	d, ok := data.(DelaySectionData)
	if !ok {
		return NewSectionMismatchError(SectionDelay, data)
	}
	s.InitializeFrom(d)

	return nil
}

var _ Aggregator = (*DaoSection)(nil)

// DaoSection aggregates the snapshot space and executor choice.
type DaoSection struct {
	Space    *Step[SpaceData]
	Executor *Step[ExecutorData]
}

// NewDaoSection creates the section with its defaults.
func NewDaoSection() *DaoSection {
	return &DaoSection{
		Space:    NewStep(SpaceData{}),
		Executor: NewStep(ExecutorData{}),
	}
}

// Name implements Aggregator.
func (s *DaoSection) Name() SectionName { return SectionDao }

// CollectData returns the current union of all slices.
func (s *DaoSection) CollectData() DaoSectionData {
	return DaoSectionData{
		SpaceData:    s.Space.Data(),
		ExecutorData: s.Executor.Data(),
	}
}

// InitializeFrom overwrites every slice from saved section data.
func (s *DaoSection) InitializeFrom(data DaoSectionData) {
	s.Space.Set(data.SpaceData)
	s.Executor.Set(data.ExecutorData)
}

// Collect implements Aggregator.
func (s *DaoSection) Collect() SectionData { return s.CollectData() }

// Restore implements Aggregator.
func (s *DaoSection) Restore(data SectionData) error {
	d, ok := data.(DaoSectionData)
	if !ok {
		return NewSectionMismatchError(SectionDao, data)
	}
	s.InitializeFrom(d)

	return nil
}
