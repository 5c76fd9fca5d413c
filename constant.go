package uniswap_v3_math

import "math/big"

type FeeAmount uint32

const (
	FeeAmountLowest FeeAmount = 100
	FeeAmountLow    FeeAmount = 500
	FeeAmountMedium FeeAmount = 3000
	FeeAmountHigh   FeeAmount = 10000
)

var (
	TICK_SPACINGS = map[FeeAmount]int{
		FeeAmountLowest: 1,
		FeeAmountLow:    10,
		FeeAmountMedium: 60,
		FeeAmountHigh:   200,
	}

	MIN_TICK int = -887272
	MAX_TICK int = -MIN_TICK

	MIN_SQRT_RATIO = big.NewInt(4295128739)
	MAX_SQRT_RATIO = mustParse("1461446703485210103287273052203988822378723970342")

	MaxUint128 = pow2Minus1(128)
	MaxUint160 = pow2Minus1(160)
	MaxUint256 = pow2Minus1(256)

	Q32  = pow2(32)
	Q96  = pow2(96)
	Q128 = pow2(128)
	Q192 = pow2(192)

	// fee denominator, pips per unit
	MAX_FEE = big.NewInt(1_000_000)

	ZERO = big.NewInt(0)
	ONE  = big.NewInt(1)
)

const RESOLUTION = 96

func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

func pow2Minus1(n uint) *big.Int {
	return new(big.Int).Sub(pow2(n), big.NewInt(1))
}

func mustParse(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("invalid integer constant " + s)
	}
	return v
}
