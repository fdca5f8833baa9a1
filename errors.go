package zodiac

import (
	"errors"
	"fmt"

	"github.com/gnosisguild/zodiac/types"
)

var (
	// ErrNoSections is returned when a wizard is created without sections.
	ErrNoSections = errors.New("wizard needs at least one section")

	// ErrWizardDone is returned when Next is called after the last section.
	ErrWizardDone = errors.New("wizard is already complete")

	// ErrWizardAtStart is returned when Back is called on the first section.
	ErrWizardAtStart = errors.New("wizard is at the first section")

	// ErrMissingSection is returned when the assembler needs a section that was not collected.
	ErrMissingSection = errors.New("section data not collected")
)

// SectionMismatchError is returned when section data is handed to the wrong section.
type SectionMismatchError struct {
	Expected SectionName
	Received SectionName
}

// Error implements the error interface.
func (e *SectionMismatchError) Error() string {
	return fmt.Sprintf("section mismatch: expected %q, received %q", e.Expected, e.Received)
}

// NewSectionMismatchError creates a new SectionMismatchError.
func NewSectionMismatchError(expected SectionName, received SectionData) *SectionMismatchError {
	var name SectionName
	if received != nil {
		name = received.SectionName()
	}

	return &SectionMismatchError{Expected: expected, Received: name}
}

// DuplicateSectionError is returned when a wizard lists the same section twice.
type DuplicateSectionError struct {
	Section SectionName
}

func (e *DuplicateSectionError) Error() string {
	return fmt.Sprintf("duplicate section %q", e.Section)
}

// NewDuplicateSectionError creates a new DuplicateSectionError.
func NewDuplicateSectionError(name SectionName) *DuplicateSectionError {
	return &DuplicateSectionError{Section: name}
}

// UnknownSectionError is returned when saved data names a section the wizard does not have.
type UnknownSectionError struct {
	Section SectionName
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section %q", e.Section)
}

// NewUnknownSectionError creates a new UnknownSectionError.
func NewUnknownSectionError(name SectionName) *UnknownSectionError {
	return &UnknownSectionError{Section: name}
}

// ArbitratorUnavailableError is returned when an arbitrator option cannot be resolved to an
// address on the chain.
type ArbitratorUnavailableError struct {
	Option  ArbitratorOption
	ChainID types.ChainID
}

func (e *ArbitratorUnavailableError) Error() string {
	return fmt.Sprintf("arbitrator %s is not available on chain %s", e.Option, e.ChainID.Name())
}

// NewArbitratorUnavailableError creates a new ArbitratorUnavailableError.
func NewArbitratorUnavailableError(option ArbitratorOption, chainID types.ChainID) *ArbitratorUnavailableError {
	return &ArbitratorUnavailableError{Option: option, ChainID: chainID}
}

// InvalidBondError is returned when a bond cannot be expressed in wei.
type InvalidBondError struct {
	Bond   float64
	Reason string
}

func (e *InvalidBondError) Error() string {
	return fmt.Sprintf("invalid bond %v: %s", e.Bond, e.Reason)
}

// NewInvalidBondError creates a new InvalidBondError.
func NewInvalidBondError(bond float64, reason string) *InvalidBondError {
	return &InvalidBondError{Bond: bond, Reason: reason}
}

// DeploymentError is returned when a deployment stage fails.
type DeploymentError struct {
	Stage DeploymentStage
	Err   error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("deployment failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DeploymentError) Unwrap() error {
	return e.Err
}

// NewDeploymentError creates a new DeploymentError.
func NewDeploymentError(stage DeploymentStage, err error) *DeploymentError {
	return &DeploymentError{Stage: stage, Err: err}
}
