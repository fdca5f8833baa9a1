package zodiac

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnosisguild/zodiac/sdk/evm"
)

func TestCheckENS(t *testing.T) {
	t.Parallel()

	other := common.HexToAddress("0x00000000000000000000000000000000000000b0")

	tests := []struct {
		name     string
		owner    common.Address
		err      error
		wantErr  error
		wantText string
	}{
		{
			name:     "owned by the safe",
			owner:    testSafe,
			wantText: "gnosis.eth is owned by the Safe",
		},
		{
			name:     "owned by someone else",
			owner:    other,
			wantErr:  errSecurityRisk,
			wantText: "Security Risk Detected: gnosis.eth is owned by " + other.Hex(),
		},
		{
			name:    "lookup fails",
			err:     evm.ErrENSUnsupported,
			wantErr: evm.ErrENSUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			env.ens.owners["gnosis.eth"] = tt.owner
			env.ens.err = tt.err

			err := env.run("check-ens", "gnosis.eth")
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, env.out.String(), tt.wantText)
		})
	}
}

func TestCheckENS_RequiresName(t *testing.T) {
	t.Parallel()

	require.Error(t, newTestEnv(t).run("check-ens"))
}
