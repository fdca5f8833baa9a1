package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gnosisguild/zodiac/types"
)

// ModuleInspector lists the modules enabled on a Safe.
type ModuleInspector interface {
	GetModules(ctx context.Context, chainID types.ChainID, safe common.Address) ([]types.Module, error)
}
