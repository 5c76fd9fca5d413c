package uniswap_v3_math

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidityAddDelta(t *testing.T) {
	tests := []struct {
		name string
		x, y *big.Int
		want string
		err  string
	}{
		{"add", big.NewInt(1), big.NewInt(0), "1", ""},
		{"subtract", big.NewInt(1), big.NewInt(-1), "0", ""},
		{"to max", pow2Minus1(128), big.NewInt(0), MaxUint128.String(), ""},
		{"overflow", pow2Minus1(128), big.NewInt(1), "", "sum overflows uint128"},
		{"underflow", big.NewInt(0), big.NewInt(-1), "", "sum overflows uint128"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LiquidityAddDelta(tt.x, tt.y)
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				assert.ErrorIs(t, err, ErrMath)
				return
			}
			require.NoError(t, err)
			assertBig(t, tt.want, got)
		})
	}
}
