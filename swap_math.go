package uniswap_v3_math

import (
	"math/big"
)

// SwapStep is the outcome of swapping within a single price range.
type SwapStep struct {
	// SqrtPrice is the sqrt price after the step.
	SqrtPrice *big.Int
	// QuantitySell is the amount paid into the pool, excluding the fee.
	QuantitySell *big.Int
	// QuantityBuy is the amount taken out of the pool.
	QuantityBuy *big.Int
	// QuantityFee is the fee paid on top of QuantitySell.
	QuantityFee *big.Int
}

func feeComplement(fee FeeAmount) (*big.Int, *big.Int) {
	feePips := big.NewInt(int64(fee))
	return feePips, new(big.Int).Sub(MAX_FEE, feePips)
}

// ComputeSwapStepBuy swaps an exact input amount: quantitySellRemaining (fee included) is
// sold until it runs out or the price reaches sqrtPriceTarget, whichever comes first.
// The direction is token0 for token1 when sqrtPriceCurrent >= sqrtPriceTarget.
func ComputeSwapStepBuy(
	sqrtPriceCurrent *big.Int,
	sqrtPriceTarget *big.Int,
	liquidity *big.Int,
	quantitySellRemaining *big.Int,
	fee FeeAmount,
) (*SwapStep, error) {
	zeroForOne := sqrtPriceCurrent.Cmp(sqrtPriceTarget) >= 0
	feePips, feeRest := feeComplement(fee)

	quantitySellRemainingLessFee, err := MulDivFloor(quantitySellRemaining, feeRest, MAX_FEE)
	if err != nil {
		return nil, err
	}

	var quantitySell *big.Int
	if zeroForOne {
		quantitySell, err = GetAmount0DeltaWithRoundUp(sqrtPriceTarget, sqrtPriceCurrent, liquidity, true)
	} else {
		quantitySell, err = GetAmount1DeltaWithRoundUp(sqrtPriceCurrent, sqrtPriceTarget, liquidity, true)
	}
	if err != nil {
		return nil, err
	}

	var sqrtPrice *big.Int
	reachesTarget := quantitySellRemainingLessFee.Cmp(quantitySell) >= 0
	if reachesTarget {
		sqrtPrice = new(big.Int).Set(sqrtPriceTarget)
	} else {
		sqrtPrice, err = GetNextSqrtPriceFromInput(sqrtPriceCurrent, liquidity, quantitySellRemainingLessFee, zeroForOne)
		if err != nil {
			return nil, err
		}
	}

	var quantityBuy *big.Int
	if zeroForOne {
		if !reachesTarget {
			if quantitySell, err = GetAmount0DeltaWithRoundUp(sqrtPrice, sqrtPriceCurrent, liquidity, true); err != nil {
				return nil, err
			}
		}
		quantityBuy, err = GetAmount1DeltaWithRoundUp(sqrtPrice, sqrtPriceCurrent, liquidity, false)
	} else {
		if !reachesTarget {
			if quantitySell, err = GetAmount1DeltaWithRoundUp(sqrtPriceCurrent, sqrtPrice, liquidity, true); err != nil {
				return nil, err
			}
		}
		quantityBuy, err = GetAmount0DeltaWithRoundUp(sqrtPriceCurrent, sqrtPrice, liquidity, false)
	}
	if err != nil {
		return nil, err
	}

	var quantityFee *big.Int
	if reachesTarget {
		quantityFee, err = MulDivCeil(quantitySell, feePips, feeRest)
		if err != nil {
			return nil, err
		}
	} else {
		// whatever was not sold is kept as fee
		quantityFee = new(big.Int).Sub(quantitySellRemaining, quantitySell)
	}

	return &SwapStep{
		SqrtPrice:    sqrtPrice,
		QuantitySell: quantitySell,
		QuantityBuy:  quantityBuy,
		QuantityFee:  quantityFee,
	}, nil
}

// ComputeSwapStepSell swaps for an exact output amount: up to quantityBuyRemaining is bought
// until the price reaches sqrtPriceTarget. QuantityBuy never exceeds quantityBuyRemaining.
func ComputeSwapStepSell(
	sqrtPriceCurrent *big.Int,
	sqrtPriceTarget *big.Int,
	liquidity *big.Int,
	quantityBuyRemaining *big.Int,
	fee FeeAmount,
) (*SwapStep, error) {
	zeroForOne := sqrtPriceCurrent.Cmp(sqrtPriceTarget) >= 0
	feePips, feeRest := feeComplement(fee)

	var (
		quantityBuy *big.Int
		err         error
	)
	if zeroForOne {
		quantityBuy, err = GetAmount1DeltaWithRoundUp(sqrtPriceTarget, sqrtPriceCurrent, liquidity, false)
	} else {
		quantityBuy, err = GetAmount0DeltaWithRoundUp(sqrtPriceCurrent, sqrtPriceTarget, liquidity, false)
	}
	if err != nil {
		return nil, err
	}

	var sqrtPrice *big.Int
	reachesTarget := quantityBuyRemaining.Cmp(quantityBuy) >= 0
	if reachesTarget {
		sqrtPrice = new(big.Int).Set(sqrtPriceTarget)
	} else {
		sqrtPrice, err = GetNextSqrtPriceFromOutput(sqrtPriceCurrent, liquidity, quantityBuyRemaining, zeroForOne)
		if err != nil {
			return nil, err
		}
	}

	var quantitySell *big.Int
	if zeroForOne {
		if quantitySell, err = GetAmount0DeltaWithRoundUp(sqrtPrice, sqrtPriceCurrent, liquidity, true); err != nil {
			return nil, err
		}
		if !reachesTarget {
			quantityBuy, err = GetAmount1DeltaWithRoundUp(sqrtPrice, sqrtPriceCurrent, liquidity, false)
		}
	} else {
		if quantitySell, err = GetAmount1DeltaWithRoundUp(sqrtPriceCurrent, sqrtPrice, liquidity, true); err != nil {
			return nil, err
		}
		if !reachesTarget {
			quantityBuy, err = GetAmount0DeltaWithRoundUp(sqrtPriceCurrent, sqrtPrice, liquidity, false)
		}
	}
	if err != nil {
		return nil, err
	}

	if quantityBuy.Cmp(quantityBuyRemaining) > 0 {
		quantityBuy = new(big.Int).Set(quantityBuyRemaining)
	}

	quantityFee, err := MulDivCeil(quantitySell, feePips, feeRest)
	if err != nil {
		return nil, err
	}

	return &SwapStep{
		SqrtPrice:    sqrtPrice,
		QuantitySell: quantitySell,
		QuantityBuy:  quantityBuy,
		QuantityFee:  quantityFee,
	}, nil
}
