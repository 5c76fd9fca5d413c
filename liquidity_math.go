package uniswap_v3_math

import (
	"math/big"
)

// LiquidityAddDelta adds a signed liquidity delta to a liquidity value.
func LiquidityAddDelta(x *big.Int, y *big.Int) (*big.Int, error) {
	sum := new(big.Int).Add(x, y)
	if !IsUint128(sum) {
		return nil, newMathError("sum overflows uint128")
	}
	return sum, nil
}
