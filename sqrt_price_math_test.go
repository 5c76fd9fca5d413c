package uniswap_v3_math

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/daoleno/uniswapv3-sdk/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	e17 = new(big.Int).Exp(big.NewInt(10), big.NewInt(17), nil)
	e18 = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	// Q96 * 1.1, truncated
	sqrtPriceUp10Pct = mustParse("87150978765690771352898345369")
)

func TestGetAmountDeltaWithRoundUp(t *testing.T) {
	tests := []struct {
		name    string
		amount0 bool
		roundUp bool
		want    string
	}{
		{"amount0 up", true, true, "90909090909090910"},
		{"amount0 down", true, false, "90909090909090909"},
		{"amount1 up", false, true, "100000000000000000"},
		{"amount1 down", false, false, "99999999999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			get := GetAmount1DeltaWithRoundUp
			if tt.amount0 {
				get = GetAmount0DeltaWithRoundUp
			}
			got, err := get(Q96, sqrtPriceUp10Pct, e18, tt.roundUp)
			require.NoError(t, err)
			assertBig(t, tt.want, got)

			// argument order does not matter
			swapped, err := get(sqrtPriceUp10Pct, Q96, e18, tt.roundUp)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(swapped))
		})
	}
}

func TestGetAmountDeltaEdgeCases(t *testing.T) {
	_, err := GetAmount0DeltaWithRoundUp(big.NewInt(0), Q96, e18, true)
	assert.EqualError(t, err, "sqrt prices cannot be zero")
	assert.ErrorIs(t, err, ErrMath)

	got, err := GetAmount0DeltaWithRoundUp(Q96, sqrtPriceUp10Pct, big.NewInt(0), true)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Sign())

	got, err = GetAmount1DeltaWithRoundUp(Q96, Q96, e18, true)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Sign())
}

func TestGetAmountDeltaSigned(t *testing.T) {
	negL := new(big.Int).Neg(e18)

	got, err := GetAmount0Delta(Q96, sqrtPriceUp10Pct, e18)
	require.NoError(t, err)
	assertBig(t, "90909090909090910", got)
	got, err = GetAmount0Delta(Q96, sqrtPriceUp10Pct, negL)
	require.NoError(t, err)
	assertBig(t, "-90909090909090909", got)

	got, err = GetAmount1Delta(Q96, sqrtPriceUp10Pct, e18)
	require.NoError(t, err)
	assertBig(t, "100000000000000000", got)
	got, err = GetAmount1Delta(Q96, sqrtPriceUp10Pct, negL)
	require.NoError(t, err)
	assertBig(t, "-99999999999999999", got)
}

func TestGetNextSqrtPriceFromInput(t *testing.T) {
	tests := []struct {
		name       string
		price      *big.Int
		liquidity  *big.Int
		amount     *big.Int
		zeroForOne bool
		want       string
		err        string
	}{
		{"token0 in", Q96, e18, e17, true, "72025602285694852357767227579", ""},
		{"token1 in", Q96, e18, e17, false, "87150978765690771352898345369", ""},
		{"zero token0", Q96, e18, big.NewInt(0), true, Q96.String(), ""},
		{"zero token1", Q96, e18, big.NewInt(0), false, Q96.String(), ""},
		{"token0 product overflow", Q96, ONE, pow2(255), true, "1", ""},
		{"token1 price overflow", Q96, e18, pow2(170), false, "", "result overflows or underflows uint160"},
		{"token1 at max price", MAX_SQRT_RATIO, e18, pow2(200), false, "", "result overflows or underflows uint160"},
		{"zero price", big.NewInt(0), e18, e17, true, "", "sqrt price must be positive"},
		{"zero liquidity", Q96, big.NewInt(0), e17, true, "", "liquidity must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetNextSqrtPriceFromInput(tt.price, tt.liquidity, tt.amount, tt.zeroForOne)
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

func TestGetNextSqrtPriceFromOutput(t *testing.T) {
	tests := []struct {
		name       string
		amount     *big.Int
		zeroForOne bool
		want       string
		err        string
	}{
		{"token1 out", e17, true, "71305346262837903834189555302", ""},
		{"token0 out", e17, false, "88031291682515930659493278152", ""},
		{"zero token1", big.NewInt(0), true, Q96.String(), ""},
		{"zero token0", big.NewInt(0), false, Q96.String(), ""},
		{"all token1 reserves", e18, true, "", "quotient exceeds sqrt price"},
		{"all token0 reserves", e18, false, "", "product overflows uint256"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetNextSqrtPriceFromOutput(Q96, e18, tt.amount, tt.zeroForOne)
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assertBig(t, tt.want, got)
		})
	}
}

func TestNextSqrtPriceDirection(t *testing.T) {
	down, err := GetNextSqrtPriceFromInput(Q96, e18, e17, true)
	require.NoError(t, err)
	assert.Equal(t, -1, down.Cmp(Q96))
	up, err := GetNextSqrtPriceFromInput(Q96, e18, e17, false)
	require.NoError(t, err)
	assert.Equal(t, 1, up.Cmp(Q96))

	down, err = GetNextSqrtPriceFromOutput(Q96, e18, e17, true)
	require.NoError(t, err)
	assert.Equal(t, -1, down.Cmp(Q96))
	up, err = GetNextSqrtPriceFromOutput(Q96, e18, e17, false)
	require.NoError(t, err)
	assert.Equal(t, 1, up.Cmp(Q96))
}

func randomSqrtPrice(t *testing.T, rnd *rand.Rand) *big.Int {
	tick := rnd.Intn(MAX_TICK-MIN_TICK) + MIN_TICK
	p, err := GetSqrtPriceAtTick(tick)
	require.NoError(t, err)
	return p
}

func TestSqrtPriceMathMatchesSDK(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		a := randomSqrtPrice(t, rnd)
		b := randomSqrtPrice(t, rnd)
		liquidity := new(big.Int).Add(new(big.Int).Rand(rnd, pow2(100)), ONE)
		amount := new(big.Int).Rand(rnd, pow2(100))

		for _, roundUp := range []bool{true, false} {
			got0, err := GetAmount0DeltaWithRoundUp(a, b, liquidity, roundUp)
			if err == nil {
				assert.Equal(t, 0, got0.Cmp(utils.GetAmount0Delta(a, b, liquidity, roundUp)), "amount0 a=%s b=%s L=%s", a, b, liquidity)
			}
			got1, err := GetAmount1DeltaWithRoundUp(a, b, liquidity, roundUp)
			if err == nil {
				assert.Equal(t, 0, got1.Cmp(utils.GetAmount1Delta(a, b, liquidity, roundUp)), "amount1 a=%s b=%s L=%s", a, b, liquidity)
			}
		}

		for _, zeroForOne := range []bool{true, false} {
			got, err := GetNextSqrtPriceFromInput(a, liquidity, amount, zeroForOne)
			want, sdkErr := utils.GetNextSqrtPriceFromInput(a, liquidity, amount, zeroForOne)
			require.NoError(t, sdkErr)
			if err == nil {
				assert.Equal(t, 0, got.Cmp(want), "input p=%s L=%s amount=%s", a, liquidity, amount)
			} else {
				assert.True(t, want.Cmp(MaxUint160) > 0, "only uint160 overflow may diverge: %s", err)
			}

			got, err = GetNextSqrtPriceFromOutput(a, liquidity, amount, zeroForOne)
			want, sdkErr = utils.GetNextSqrtPriceFromOutput(a, liquidity, amount, zeroForOne)
			if sdkErr != nil {
				assert.Error(t, err, "output p=%s L=%s amount=%s", a, liquidity, amount)
				continue
			}
			if err == nil {
				assert.Equal(t, 0, got.Cmp(want), "output p=%s L=%s amount=%s", a, liquidity, amount)
			} else {
				assert.True(t, want.Cmp(MaxUint160) > 0, "only uint160 overflow may diverge: %s", err)
			}
		}
	}
}
