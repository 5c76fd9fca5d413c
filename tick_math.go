package uniswap_v3_math

import (
	"math/big"
)

var (
	// sqrt(1.0001^-(2^i)) in Q128.128, one per bit of |tick|. Bit 0 doubles as the
	// starting ratio when set; otherwise the ratio starts at 1 (Q128).
	sqrtRatioFactors = [20]*big.Int{
		mustParse("0xfffcb933bd6fad37aa2d162d1a594001"),
		mustParse("0xfff97272373d413259a46990580e213a"),
		mustParse("0xfff2e50f5f656932ef12357cf3c7fdcc"),
		mustParse("0xffe5caca7e10e4e61c3624eaa0941cd0"),
		mustParse("0xffcb9843d60f6159c9db58835c926644"),
		mustParse("0xff973b41fa98c081472e6896dfb254c0"),
		mustParse("0xff2ea16466c96a3843ec78b326b52861"),
		mustParse("0xfe5dee046a99a2a811c461f1969c3053"),
		mustParse("0xfcbe86c7900a88aedcffc83b479aa3a4"),
		mustParse("0xf987a7253ac413176f2b074cf7815e54"),
		mustParse("0xf3392b0822b70005940c7a398e4b70f3"),
		mustParse("0xe7159475a2c29b7443b29c7fa6e889d9"),
		mustParse("0xd097f3bdfd2022b8845ad8f792aa5825"),
		mustParse("0xa9f746462d870fdf8a65dc1f90e061e5"),
		mustParse("0x70d869a156d2a1b890bb3df62baf32f7"),
		mustParse("0x31be135f97d08fd981231505542fcfa6"),
		mustParse("0x9aa508b5b7a84e1c677de54f3e99bc9"),
		mustParse("0x5d6af8dedb81196699c329225ee604"),
		mustParse("0x2216e584f5fa1ea926041bedfe98"),
		mustParse("0x48a170391f7dc42444e8fa2"),
	}

	// log_sqrt(1.0001)(2) in Q128 and the error bounds of the 14-bit log2 approximation
	logSqrt10001Factor = mustParse("255738958999603826347141")
	tickLowOffset      = mustParse("3402992956809132418596140100660247210")
	tickHighOffset     = mustParse("291339464771989622907027621153398088495")
)

// GetSqrtPriceAtTick returns sqrt(1.0001^tick) as a Q64.96, rounded up.
func GetSqrtPriceAtTick(tick int) (*big.Int, error) {
	if tick < MIN_TICK || tick > MAX_TICK {
		return nil, newMathError("tick is outside the range")
	}
	absTick := tick
	if tick < 0 {
		absTick = -tick
	}

	ratio := new(big.Int)
	if absTick&0x1 != 0 {
		ratio.Set(sqrtRatioFactors[0])
	} else {
		ratio.Set(Q128)
	}
	for i := 1; i < len(sqrtRatioFactors); i++ {
		if absTick&(1<<uint(i)) != 0 {
			ratio.Mul(ratio, sqrtRatioFactors[i])
			ratio.Rsh(ratio, 128)
		}
	}

	if tick > 0 {
		ratio.Quo(MaxUint256, ratio)
	}

	// Q128.128 -> Q64.96, rounding up so the price never undershoots the tick
	sqrtPriceX96 := new(big.Int).Rsh(ratio, 32)
	if new(big.Int).Rem(ratio, Q32).Sign() != 0 {
		sqrtPriceX96.Add(sqrtPriceX96, ONE)
	}
	return WrapUint160(sqrtPriceX96), nil
}

// mostSignificantBit locates the highest set bit of a positive x by binary search.
func mostSignificantBit(x *big.Int) uint {
	r := new(big.Int).Set(x)
	var msb uint
	for shift := uint(128); shift >= 2; shift >>= 1 {
		if r.Cmp(pow2Minus1(shift)) > 0 {
			msb |= shift
			r.Rsh(r, shift)
		}
	}
	if r.Cmp(ONE) > 0 {
		msb |= 1
	}
	return msb
}

// GetTickAtSqrtPrice returns the greatest tick whose sqrt price is less than or equal to
// sqrtPriceX96.
func GetTickAtSqrtPrice(sqrtPriceX96 *big.Int) (int, error) {
	if sqrtPriceX96.Cmp(MIN_SQRT_RATIO) < 0 || sqrtPriceX96.Cmp(MAX_SQRT_RATIO) >= 0 {
		return 0, newMathError("sqrt ratio is outside the range")
	}
	ratio := new(big.Int).Lsh(sqrtPriceX96, 32)
	msb := mostSignificantBit(ratio)

	// normalize the mantissa so that r is in [2^127, 2^128)
	r := new(big.Int)
	if msb >= 128 {
		r.Rsh(ratio, msb-127)
	} else {
		r.Lsh(ratio, 127-msb)
	}

	log2 := big.NewInt(int64(msb) - 128)
	log2.Lsh(log2, 64)

	f := new(big.Int)
	for bit := uint(63); bit >= 50; bit-- {
		r.Mul(r, r)
		r.Rsh(r, 127)
		f.Rsh(r, 128)
		log2.Or(log2, new(big.Int).Lsh(f, bit))
		r.Rsh(r, uint(f.Uint64()))
	}

	logSqrt10001 := new(big.Int).Mul(log2, logSqrt10001Factor)

	tickLow := new(big.Int).Sub(logSqrt10001, tickLowOffset)
	tickLow.Rsh(tickLow, 128)
	tickHigh := new(big.Int).Add(logSqrt10001, tickHighOffset)
	tickHigh.Rsh(tickHigh, 128)

	if tickLow.Cmp(tickHigh) == 0 {
		return int(tickLow.Int64()), nil
	}
	sqrtPriceHigh, err := GetSqrtPriceAtTick(int(tickHigh.Int64()))
	if err != nil {
		return 0, err
	}
	if sqrtPriceHigh.Cmp(sqrtPriceX96) <= 0 {
		return int(tickHigh.Int64()), nil
	}
	return int(tickLow.Int64()), nil
}

// TickSpacing returns the factory tick spacing of a named fee tier.
func TickSpacing(fee FeeAmount) (int, error) {
	spacing, ok := TICK_SPACINGS[fee]
	if !ok {
		return 0, newError("no tick spacing for fee %d", fee)
	}
	return spacing, nil
}

// MaxLiquidityPerTick returns the most gross liquidity a single tick may reference when
// ticks are spaced tickSpacing apart, so that total liquidity fits in a uint128.
func MaxLiquidityPerTick(tickSpacing int) (*big.Int, error) {
	if tickSpacing <= 0 {
		return nil, newError("tick spacing must be positive, got %d", tickSpacing)
	}
	// Go integer division truncates toward zero, like Solidity
	minTick := (MIN_TICK / tickSpacing) * tickSpacing
	maxTick := (MAX_TICK / tickSpacing) * tickSpacing
	numTicks := big.NewInt(int64((maxTick-minTick)/tickSpacing + 1))
	return new(big.Int).Quo(MaxUint128, numTicks), nil
}
