package evmsim_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnosisguild/zodiac/internal/testutils/chaintest"
	"github.com/gnosisguild/zodiac/internal/testutils/evmsim"
	"github.com/gnosisguild/zodiac/sdk/evm"
	"github.com/gnosisguild/zodiac/types"
)

func TestSimulatedChain_DeployCode(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	signer := sim.Signers[0]
	masterCopy := evm.DefaultMasterCopies[types.ModuleKindRealityETH]

	proxy, tx := sim.DeployCode(t, signer, evm.ProxyCreationCode(masterCopy))
	require.NotNil(t, tx)

	code, err := sim.Backend.Client().CodeAt(t.Context(), proxy, nil)
	require.NoError(t, err)
	assert.Equal(t, evm.ProxyRuntimeCode(masterCopy), code)
}

func TestInspector_InspectModule_Simulated(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	signer := sim.Signers[0]
	inspector := evm.NewInspector(sim.Backend.Client(), nil)

	realityETH, _ := sim.DeployCode(t, signer, evm.ProxyCreationCode(evm.DefaultMasterCopies[types.ModuleKindRealityETH]))
	realityERC20, _ := sim.DeployCode(t, signer, evm.ProxyCreationCode(evm.DefaultMasterCopies[types.ModuleKindRealityERC20]))
	unknown, _ := sim.DeployCode(t, signer, evm.ProxyCreationCode(common.HexToAddress("0x00000000000000000000000000000000000000c0")))

	tests := []struct {
		name string
		addr common.Address
		want types.Module
	}{
		{
			name: "reality eth proxy",
			addr: realityETH,
			want: types.Module{
				Address:    realityETH,
				Kind:       types.ModuleKindRealityETH,
				MasterCopy: evm.DefaultMasterCopies[types.ModuleKindRealityETH],
			},
		},
		{
			name: "reality erc20 proxy",
			addr: realityERC20,
			want: types.Module{
				Address:    realityERC20,
				Kind:       types.ModuleKindRealityERC20,
				MasterCopy: evm.DefaultMasterCopies[types.ModuleKindRealityERC20],
			},
		},
		{
			name: "proxy of an unknown master copy",
			addr: unknown,
			want: types.Module{
				Address:    unknown,
				Kind:       types.ModuleKindUnknown,
				MasterCopy: common.HexToAddress("0x00000000000000000000000000000000000000c0"),
			},
		},
		{
			name: "externally owned account",
			addr: signer.Address(t),
			want: types.Module{
				Address: signer.Address(t),
				Kind:    types.ModuleKindUnknown,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := inspector.InspectModule(t.Context(), chaintest.Chain1ID, tt.addr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := inspector.InspectModule(t.Context(), chaintest.TestInvalidChainID, realityETH)
	require.EqualError(t, err, "no zodiac contracts known for chain 987654321987")
}
