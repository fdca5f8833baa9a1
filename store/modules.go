// Package store holds the modules list shared by the wizard commands.
package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gnosisguild/zodiac/sdk"
	"github.com/gnosisguild/zodiac/types"
)

// Status is the loading state of the modules list.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ErrNoInspector is returned when a fetch request has no inspector.
var ErrNoInspector = errors.New("modules inspector is required")

// FetchModulesListRequest is the payload of the FetchModulesList action.
type FetchModulesListRequest struct {
	Inspector   sdk.ModuleInspector
	ChainID     types.ChainID
	SafeAddress common.Address
}

// ModulesStore holds the modules enabled on the current Safe.
type ModulesStore struct {
	mu      sync.RWMutex
	seq     uint64
	modules []types.Module
	status  Status
	err     error
	safe    common.Address
	chainID types.ChainID
}

// NewModulesStore creates an empty store.
func NewModulesStore() *ModulesStore {
	return &ModulesStore{status: StatusIdle}
}

// FetchModulesList loads the modules of the Safe and replaces the list. When fetches
// overlap only the most recently started one is applied.
func (s *ModulesStore) FetchModulesList(ctx context.Context, req FetchModulesListRequest) error {
	if req.Inspector == nil {
		return ErrNoInspector
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.status = StatusLoading
	s.mu.Unlock()

	modules, err := req.Inspector.GetModules(ctx, req.ChainID, req.SafeAddress)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		sdk.LoggerFrom(ctx).Debugf("discarding stale modules list for %s", req.SafeAddress.Hex())
		return err
	}
	if err != nil {
		s.status = StatusError
		s.err = err

		return err
	}

	s.modules = modules
	s.status = StatusSuccess
	s.err = nil
	s.safe = req.SafeAddress
	s.chainID = req.ChainID

	return nil
}

// DaoModules returns a copy of the modules list.
func (s *ModulesStore) DaoModules() []types.Module {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.modules)
}

// AttachableModules returns the modules other modules can be enabled on.
func (s *ModulesStore) AttachableModules() []types.Module {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []types.Module
	for _, m := range s.modules {
		if m.Kind.IsModifier() {
			out = append(out, m)
		}
	}

	return out
}

// FindModule returns the module with the given address.
func (s *ModulesStore) FindModule(addr common.Address) (types.Module, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.modules {
		if m.Address == addr {
			return m, true
		}
	}

	return types.Module{}, false
}

// Status returns the loading state and the error of the last fetch.
func (s *ModulesStore) Status() (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status, s.err
}

// Safe returns the Safe and chain the list was loaded for.
func (s *ModulesStore) Safe() (common.Address, types.ChainID) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.safe, s.chainID
}
