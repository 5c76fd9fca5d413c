package uniswap_v3_math

import "math/big"

func sortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96 *big.Int) (*big.Int, *big.Int) {
	if sqrtRatioAX96.Cmp(sqrtRatioBX96) > 0 {
		return sqrtRatioBX96, sqrtRatioAX96
	}
	return sqrtRatioAX96, sqrtRatioBX96
}

// GetAmount0DeltaWithRoundUp returns the amount of token0 between two sqrt prices at the
// given liquidity: liquidity * (sqrtB - sqrtA) / (sqrtA * sqrtB).
func GetAmount0DeltaWithRoundUp(
	sqrtRatioAX96 *big.Int,
	sqrtRatioBX96 *big.Int,
	liquidity *big.Int,
	roundUp bool,
) (*big.Int, error) {
	sqrtRatioAX96, sqrtRatioBX96 = sortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	if sqrtRatioAX96.Sign() == 0 || sqrtRatioBX96.Sign() == 0 {
		return nil, newMathError("sqrt prices cannot be zero")
	}

	numerator1 := new(big.Int).Lsh(liquidity, RESOLUTION)
	numerator2 := new(big.Int).Sub(sqrtRatioBX96, sqrtRatioAX96)

	if roundUp {
		tmp, err := MulDivCeil(numerator1, numerator2, sqrtRatioBX96)
		if err != nil {
			return nil, err
		}
		return UnsafeDivCeil(tmp, sqrtRatioAX96), nil
	}
	tmp, err := MulDivFloor(numerator1, numerator2, sqrtRatioBX96)
	if err != nil {
		return nil, err
	}
	return tmp.Quo(tmp, sqrtRatioAX96), nil
}

// GetAmount1DeltaWithRoundUp returns the amount of token1 between two sqrt prices at the
// given liquidity: liquidity * (sqrtB - sqrtA).
func GetAmount1DeltaWithRoundUp(
	sqrtRatioAX96 *big.Int,
	sqrtRatioBX96 *big.Int,
	liquidity *big.Int,
	roundUp bool,
) (*big.Int, error) {
	sqrtRatioAX96, sqrtRatioBX96 = sortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	diff := new(big.Int).Sub(sqrtRatioBX96, sqrtRatioAX96)
	if roundUp {
		return MulDivCeil(liquidity, diff, Q96)
	}
	return MulDivFloor(liquidity, diff, Q96)
}

// GetAmount0Delta is the signed form used when liquidity is added (positive delta, rounded
// up, owed to the pool) or removed (negative delta, rounded down, owed to the caller).
func GetAmount0Delta(
	sqrtRatioAX96 *big.Int,
	sqrtRatioBX96 *big.Int,
	liquidity *big.Int,
) (*big.Int, error) {
	if liquidity.Sign() < 0 {
		r, err := GetAmount0DeltaWithRoundUp(sqrtRatioAX96, sqrtRatioBX96, new(big.Int).Neg(liquidity), false)
		if err != nil {
			return nil, err
		}
		return ToInt256(r.Neg(r))
	}
	r, err := GetAmount0DeltaWithRoundUp(sqrtRatioAX96, sqrtRatioBX96, liquidity, true)
	if err != nil {
		return nil, err
	}
	return ToInt256(r)
}

func GetAmount1Delta(
	sqrtRatioAX96 *big.Int,
	sqrtRatioBX96 *big.Int,
	liquidity *big.Int,
) (*big.Int, error) {
	if liquidity.Sign() < 0 {
		r, err := GetAmount1DeltaWithRoundUp(sqrtRatioAX96, sqrtRatioBX96, new(big.Int).Neg(liquidity), false)
		if err != nil {
			return nil, err
		}
		return ToInt256(r.Neg(r))
	}
	r, err := GetAmount1DeltaWithRoundUp(sqrtRatioAX96, sqrtRatioBX96, liquidity, true)
	if err != nil {
		return nil, err
	}
	return ToInt256(r)
}

func checkPriceAndLiquidity(sqrtPX96, liquidity *big.Int) error {
	if sqrtPX96.Sign() <= 0 {
		return newMathError("sqrt price must be positive")
	}
	if liquidity.Sign() <= 0 {
		return newMathError("liquidity must be positive")
	}
	return nil
}

// GetNextSqrtPriceFromInput returns the sqrt price after adding amountIn of token0
// (zeroForOne) or token1 to the pool. Token0 rounds the price up, token1 rounds it down,
// so the price never moves further than the input pays for.
func GetNextSqrtPriceFromInput(
	sqrtPX96 *big.Int,
	liquidity *big.Int,
	amountIn *big.Int,
	zeroForOne bool,
) (*big.Int, error) {
	if err := checkPriceAndLiquidity(sqrtPX96, liquidity); err != nil {
		return nil, err
	}
	if zeroForOne {
		return getNextSqrtPriceFromAmount0RoundingUp(sqrtPX96, liquidity, amountIn)
	}
	return getNextSqrtPriceFromAmount1RoundingDown(sqrtPX96, liquidity, amountIn)
}

// GetNextSqrtPriceFromOutput returns the sqrt price after removing amountOut of token1
// (zeroForOne) or token0 from the pool.
func GetNextSqrtPriceFromOutput(
	sqrtPX96 *big.Int,
	liquidity *big.Int,
	amountOut *big.Int,
	zeroForOne bool,
) (*big.Int, error) {
	if err := checkPriceAndLiquidity(sqrtPX96, liquidity); err != nil {
		return nil, err
	}
	if zeroForOne {
		return getNextSqrtPriceFromAmount1RoundingUp(sqrtPX96, liquidity, amountOut)
	}
	return getNextSqrtPriceFromAmount0RemovedRoundingUp(sqrtPX96, liquidity, amountOut)
}

func getNextSqrtPriceFromAmount0RoundingUp(sqrtPX96, liquidity, amount *big.Int) (*big.Int, error) {
	if amount.Sign() == 0 {
		return new(big.Int).Set(sqrtPX96), nil
	}
	numerator1 := new(big.Int).Lsh(liquidity, RESOLUTION)

	// liquidity * sqrtPX96 / (liquidity +- amount * sqrtPX96) when amount * sqrtPX96 fits
	product := WrapUint256(new(big.Int).Mul(amount, sqrtPX96))
	if new(big.Int).Quo(product, amount).Cmp(sqrtPX96) == 0 {
		denominator := WrapUint256(new(big.Int).Add(numerator1, product))
		if denominator.Cmp(numerator1) >= 0 {
			r, err := MulDivCeil(numerator1, sqrtPX96, denominator)
			if err != nil {
				return nil, err
			}
			return WrapUint160(r), nil
		}
	}

	// liquidity / (liquidity / sqrtPX96 + amount)
	sum, err := SafeAdd(new(big.Int).Quo(numerator1, sqrtPX96), amount)
	if err != nil {
		return nil, err
	}
	return WrapUint160(UnsafeDivCeil(numerator1, sum)), nil
}

func getNextSqrtPriceFromAmount1RoundingDown(sqrtPX96, liquidity, amount *big.Int) (*big.Int, error) {
	var quotient *big.Int
	if IsUint160(amount) {
		quotient = new(big.Int).Lsh(amount, RESOLUTION)
		quotient.Quo(quotient, liquidity)
	} else {
		q, err := MulDivFloor(amount, Q96, liquidity)
		if err != nil {
			return nil, err
		}
		quotient = q
	}
	sum, err := SafeAdd(sqrtPX96, WrapUint256(quotient))
	if err != nil {
		return nil, err
	}
	return ToUint160(sum)
}

func getNextSqrtPriceFromAmount1RoundingUp(sqrtPX96, liquidity, amount *big.Int) (*big.Int, error) {
	var quotient *big.Int
	if IsUint160(amount) {
		quotient = UnsafeDivCeil(new(big.Int).Lsh(amount, RESOLUTION), liquidity)
	} else {
		q, err := MulDivCeil(amount, Q96, liquidity)
		if err != nil {
			return nil, err
		}
		quotient = q
	}
	quotient = WrapUint256(quotient)
	if sqrtPX96.Cmp(quotient) <= 0 {
		return nil, newMathError("quotient exceeds sqrt price")
	}
	return WrapUint160(new(big.Int).Sub(sqrtPX96, quotient)), nil
}

func getNextSqrtPriceFromAmount0RemovedRoundingUp(sqrtPX96, liquidity, amount *big.Int) (*big.Int, error) {
	if amount.Sign() == 0 {
		return new(big.Int).Set(sqrtPX96), nil
	}
	numerator1 := new(big.Int).Lsh(liquidity, RESOLUTION)
	product := WrapUint256(new(big.Int).Mul(amount, sqrtPX96))
	if new(big.Int).Quo(product, amount).Cmp(sqrtPX96) != 0 || numerator1.Cmp(product) <= 0 {
		return nil, newMathError("product overflows uint256")
	}
	r, err := MulDivCeil(numerator1, sqrtPX96, new(big.Int).Sub(numerator1, product))
	if err != nil {
		return nil, err
	}
	return ToUint160(r)
}
