package uniswap_v3_math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// PricePrecision is the number of fractional digits kept when a sqrt price is turned into
// a human-readable price.
const PricePrecision int32 = 40

var q192Decimal = decimal.NewFromBigInt(Q192, 0)

// SqrtPriceToPrice returns the price of one whole token0 in whole token1, given both
// tokens' decimals.
func SqrtPriceToPrice(sqrtPriceX96 *big.Int, decimals0, decimals1 int32) decimal.Decimal {
	ratioX192 := new(big.Int).Mul(sqrtPriceX96, sqrtPriceX96)
	return decimal.NewFromBigInt(ratioX192, 0).
		Shift(decimals0-decimals1).
		DivRound(q192Decimal, PricePrecision)
}

// PriceToSqrtPrice is the inverse of SqrtPriceToPrice, rounded down. The result must be a
// sqrt price that GetTickAtSqrtPrice accepts.
func PriceToSqrtPrice(price decimal.Decimal, decimals0, decimals1 int32) (*big.Int, error) {
	if !price.IsPositive() {
		return nil, newMathError("price must be positive")
	}
	ratioX192 := price.Shift(decimals1 - decimals0).Mul(q192Decimal).BigInt()
	sqrtPriceX96 := new(big.Int).Sqrt(ratioX192)
	if sqrtPriceX96.Cmp(MIN_SQRT_RATIO) < 0 || sqrtPriceX96.Cmp(MAX_SQRT_RATIO) >= 0 {
		return nil, newMathError("sqrt ratio is outside the range")
	}
	return sqrtPriceX96, nil
}

func TickToPrice(tick int, decimals0, decimals1 int32) (decimal.Decimal, error) {
	sqrtPriceX96, err := GetSqrtPriceAtTick(tick)
	if err != nil {
		return decimal.Zero, err
	}
	return SqrtPriceToPrice(sqrtPriceX96, decimals0, decimals1), nil
}
