package zodiac

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnosisguild/zodiac"
)

var knownSections = []zodiac.SectionName{zodiac.SectionDao, zodiac.SectionOracle, zodiac.SectionDelay}

// loadSetup reads saved wizard answers. A missing path or file yields an empty state.
func loadSetup(path string) (zodiac.WizardState, error) {
	if path == "" {
		return zodiac.NewWizardState(), nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return zodiac.NewWizardState(), nil
	}
	if err != nil {
		return zodiac.WizardState{}, err
	}

	var state zodiac.WizardState
	if err := yaml.Unmarshal(b, &state); err != nil {
		return zodiac.WizardState{}, fmt.Errorf("failed to parse setup file %s: %w", path, err)
	}

	return state, nil
}

// saveSetup merges state into the answers saved at path.
func saveSetup(path string, state zodiac.WizardState) error {
	if path == "" {
		return nil
	}

	saved, err := loadSetup(path)
	if err != nil {
		return err
	}

	b, err := yaml.Marshal(mergeStates(saved, state))
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// subset keeps the sections of state named in names.
func subset(state zodiac.WizardState, names ...zodiac.SectionName) zodiac.WizardState {
	var data []zodiac.SectionData
	for _, name := range names {
		if d, ok := state.Get(name); ok {
			data = append(data, d)
		}
	}

	return zodiac.NewWizardState(data...)
}

// mergeStates returns base with every section of over applied.
func mergeStates(base, over zodiac.WizardState) zodiac.WizardState {
	var data []zodiac.SectionData
	for _, name := range knownSections {
		if d, ok := over.Get(name); ok {
			data = append(data, d)
		} else if d, ok := base.Get(name); ok {
			data = append(data, d)
		}
	}

	return zodiac.NewWizardState(data...)
}
