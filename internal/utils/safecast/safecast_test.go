package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Uint64ToUint32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    uint64
		want    uint32
		wantErr bool
	}{
		{name: "Valid uint64 within range", give: 86400, want: 86400},
		{name: "Max uint32", give: math.MaxUint32, want: math.MaxUint32},
		{name: "Exceeds uint32 max value", give: math.MaxUint32 + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Uint64ToUint32(tt.give)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_StringToUint64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    uint64
		wantErr bool
	}{
		{name: "plain", give: "86400", want: 86400},
		{name: "whitespace", give: " 3600 ", want: 3600},
		{name: "empty", give: "", wantErr: true},
		{name: "negative", give: "-5", wantErr: true},
		{name: "not a number", give: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := StringToUint64(tt.give)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_StringToFloat64(t *testing.T) {
	t.Parallel()

	got, err := StringToFloat64("0.01")
	require.NoError(t, err)
	assert.InDelta(t, 0.01, got, 1e-12)

	_, err = StringToFloat64("ten")
	require.Error(t, err)
}
