package zodiac

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// WizardState accumulates the section payloads collected so far. It is used to rehydrate a
// section when the user navigates back to it.
type WizardState struct {
	sections map[SectionName]SectionData
}

// NewWizardState returns a state holding copies of the given payloads.
func NewWizardState(data ...SectionData) WizardState {
	s := WizardState{sections: make(map[SectionName]SectionData, len(data))}
	for _, d := range data {
		s.sections[d.SectionName()] = d.cloneSection()
	}

	return s
}

// Get returns a copy of the payload stored for the section.
func (s WizardState) Get(name SectionName) (SectionData, bool) {
	d, ok := s.sections[name]
	if !ok {
		return nil, false
	}

	return d.cloneSection(), true
}

// Oracle returns the oracle section payload.
func (s WizardState) Oracle() (OracleSectionData, bool) {
	d, ok := s.Get(SectionOracle)
	if !ok {
		return OracleSectionData{}, false
	}
	o, ok := d.(OracleSectionData)

	return o, ok
}

// Delay returns the delay section payload.
func (s WizardState) Delay() (DelaySectionData, bool) {
	d, ok := s.Get(SectionDelay)
	if !ok {
		return DelaySectionData{}, false
	}
	o, ok := d.(DelaySectionData)

	return o, ok
}

// Dao returns the DAO section payload.
func (s WizardState) Dao() (DaoSectionData, bool) {
	d, ok := s.Get(SectionDao)
	if !ok {
		return DaoSectionData{}, false
	}
	o, ok := d.(DaoSectionData)

	return o, ok
}

// Len returns the number of collected sections.
func (s WizardState) Len() int {
	return len(s.sections)
}

func (s WizardState) with(data SectionData) WizardState {
	next := WizardState{sections: make(map[SectionName]SectionData, len(s.sections)+1)}
	for k, v := range s.sections {
		next.sections[k] = v
	}
	next.sections[data.SectionName()] = data.cloneSection()

	return next
}

// wizardStateFile is the serialized form of WizardState.
type wizardStateFile struct {
	Dao    *DaoSectionData    `json:"dao,omitempty" yaml:"dao,omitempty"`
	Oracle *OracleSectionData `json:"oracle,omitempty" yaml:"oracle,omitempty"`
	Delay  *DelaySectionData  `json:"delay,omitempty" yaml:"delay,omitempty"`
}

func (s WizardState) toFile() wizardStateFile {
	var f wizardStateFile
	if d, ok := s.Dao(); ok {
		f.Dao = &d
	}
	if d, ok := s.Oracle(); ok {
		f.Oracle = &d
	}
	if d, ok := s.Delay(); ok {
		f.Delay = &d
	}

	return f
}

func (f wizardStateFile) toState() WizardState {
	var data []SectionData
	if f.Dao != nil {
		data = append(data, *f.Dao)
	}
	if f.Oracle != nil {
		data = append(data, *f.Oracle)
	}
	if f.Delay != nil {
		data = append(data, *f.Delay)
	}

	return NewWizardState(data...)
}

// MarshalJSON implements json.Marshaler.
func (s WizardState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toFile())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *WizardState) UnmarshalJSON(data []byte) error {
	var f wizardStateFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = f.toState()

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s WizardState) MarshalYAML() (any, error) {
	return s.toFile(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *WizardState) UnmarshalYAML(node *yaml.Node) error {
	var f wizardStateFile
	if err := node.Decode(&f); err != nil {
		return err
	}
	*s = f.toState()

	return nil
}

// Wizard walks an ordered list of sections. Each Next stores the collected payload and moves
// forward, Back moves one section back without discarding what was collected.
type Wizard struct {
	id      uuid.UUID
	order   []SectionName
	current int
	state   WizardState
}

// NewWizard creates a wizard over the given sections, in order.
func NewWizard(order ...SectionName) (*Wizard, error) {
	if len(order) == 0 {
		return nil, ErrNoSections
	}
	seen := make(map[SectionName]bool, len(order))
	for _, name := range order {
		if seen[name] {
			return nil, NewDuplicateSectionError(name)
		}
		seen[name] = true
	}

	return &Wizard{
		id:    uuid.New(),
		order: slices.Clone(order),
		state: NewWizardState(),
	}, nil
}

// ID identifies the wizard session.
func (w *Wizard) ID() uuid.UUID { return w.id }

// Sections returns the section order.
func (w *Wizard) Sections() []SectionName { return slices.Clone(w.order) }

// Current returns the section being edited. It is empty once the wizard is done.
func (w *Wizard) Current() SectionName {
	if w.Done() {
		return ""
	}

	return w.order[w.current]
}

// Position returns the zero based index of the current section.
func (w *Wizard) Position() int { return w.current }

// Done reports whether every section has been collected.
func (w *Wizard) Done() bool { return w.current >= len(w.order) }

// Next records the payload of the current section and advances.
func (w *Wizard) Next(data SectionData) error {
	if w.Done() {
		return ErrWizardDone
	}
	if data == nil || data.SectionName() != w.order[w.current] {
		return NewSectionMismatchError(w.order[w.current], data)
	}

	w.state = w.state.with(data)
	w.current++

	return nil
}

// Back moves to the previous section.
func (w *Wizard) Back() error {
	if w.current == 0 {
		return ErrWizardAtStart
	}
	w.current--

	return nil
}

// SetupData returns the collected payloads.
func (w *Wizard) SetupData() WizardState { return w.state }

// Load replaces the collected payloads, for example from a saved setup file. Sections not
// part of the wizard are rejected.
func (w *Wizard) Load(state WizardState) error {
	for name := range state.sections {
		if !slices.Contains(w.order, name) {
			return NewUnknownSectionError(name)
		}
	}
	w.state = NewWizardState()
	for _, d := range state.sections {
		w.state = w.state.with(d)
	}

	return nil
}

// Rehydrate initializes the aggregator from the saved payload of its section, if one
// exists. It reports whether anything was restored.
func (w *Wizard) Rehydrate(agg Aggregator) (bool, error) {
	data, ok := w.state.Get(agg.Name())
	if !ok {
		return false, nil
	}
	if err := agg.Restore(data); err != nil {
		return false, err
	}

	return true, nil
}
