package uniswap_v3_math

import (
	"math/big"
)

// Division truncates toward zero and remainders keep the sign of the dividend
// (big.Int Quo/Rem), which is what the contract arithmetic is checked against.

func SafeAdd(x, y *big.Int) (*big.Int, error) {
	sum := new(big.Int).Add(x, y)
	if !IsUint256(sum) {
		return nil, newMathError("sum overflows uint256")
	}
	return sum, nil
}

func SafeSub(x, y *big.Int) (*big.Int, error) {
	difference := new(big.Int).Sub(x, y)
	if !IsUint256(difference) {
		return nil, newMathError("difference underflows uint256")
	}
	return difference, nil
}

func SafeMul(x, y *big.Int) (*big.Int, error) {
	product := new(big.Int).Mul(x, y)
	if !IsUint256(product) {
		return nil, newMathError("product overflows uint256")
	}
	return product, nil
}

// MulDivFloor computes x*y/z with a full-width intermediate product.
func MulDivFloor(x, y, z *big.Int) (*big.Int, error) {
	if z.Sign() == 0 {
		return nil, newMathError("division by zero")
	}
	quotient := new(big.Int).Mul(x, y)
	quotient.Quo(quotient, z)
	if !IsUint256(quotient) {
		return nil, newMathError("quotient overflows uint256")
	}
	return quotient, nil
}

// MulDivCeil computes x*y/z rounded up. The range check applies to the truncated
// quotient, before the remainder bump.
func MulDivCeil(x, y, z *big.Int) (*big.Int, error) {
	if z.Sign() == 0 {
		return nil, newMathError("division by zero")
	}
	product := new(big.Int).Mul(x, y)
	quotient, remainder := new(big.Int).QuoRem(product, z, new(big.Int))
	if !IsUint256(quotient) {
		return nil, newMathError("quotient overflows uint256")
	}
	if remainder.Sign() != 0 {
		quotient.Add(quotient, ONE)
	}
	return quotient, nil
}

// UnsafeDivCeil returns ceil(x/y) without any checks. A zero divisor yields zero.
func UnsafeDivCeil(x, y *big.Int) *big.Int {
	if y.Sign() == 0 {
		return new(big.Int)
	}
	quotient, remainder := new(big.Int).QuoRem(x, y, new(big.Int))
	if remainder.Sign() != 0 {
		quotient.Add(quotient, ONE)
	}
	return quotient
}
