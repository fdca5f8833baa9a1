package abi

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Args(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `[{"type":"address"},{"type":"uint256"}]`, Args("address", "uint256"))
	assert.Equal(t, `[]`, Args())
}

func Test_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		giveABI    string
		giveValues []any
		want       string
		wantError  bool
	}{
		{
			name:       "success: encode single uint256",
			giveABI:    Args("uint256"),
			giveValues: []any{big.NewInt(86400)},
			want:       "0000000000000000000000000000000000000000000000000000000000015180",
		},
		{
			name:       "success: encode address and uint32",
			giveABI:    Args("address", "uint32"),
			giveValues: []any{common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4"), uint32(60)},
			want: "0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4" +
				"000000000000000000000000000000000000000000000000000000000000003c",
		},
		{
			name:       "success: encode string",
			giveABI:    Args("string"),
			giveValues: []any{"Hello World"},
			want: "0000000000000000000000000000000000000000000000000000000000000020" + // offset (32 bytes)
				"000000000000000000000000000000000000000000000000000000000000000b" + // string length (11 bytes)
				"48656c6c6f20576f726c64000000000000000000000000000000000000000000", // "Hello World"
		},
		{
			name:      "failure: invalid ABI string",
			giveABI:   Args("invalid"),
			wantError: true,
		},
		{
			name:       "failure: missing values",
			giveABI:    Args("uint256"),
			giveValues: []any{},
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.giveABI, tt.giveValues...)

			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)

				wantBytes, err := hex.DecodeString(tt.want)
				require.NoError(t, err)
				assert.Equal(t, wantBytes, got)
			}
		})
	}
}

func Test_Decode(t *testing.T) {
	t.Parallel()

	data, err := hex.DecodeString("0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4")
	require.NoError(t, err)

	got, err := Decode(Args("address"), data)
	require.NoError(t, err)
	assert.Equal(t, []any{common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")}, got)

	_, err = Decode(Args("uint256"), data[:16])
	require.Error(t, err)
}

func Test_Selector(t *testing.T) {
	t.Parallel()

	// enableModule(address) on the Safe contracts.
	assert.Equal(t, "610b5925", hex.EncodeToString(Selector("enableModule(address)")))
}
