package uniswap_v3_math

import "math/big"

// Checked narrowing in the style of SafeCast: the value is returned unchanged or rejected.

func ToUint128(x *big.Int) (*big.Int, error) {
	return Uint128.Cast(x)
}

func ToUint160(x *big.Int) (*big.Int, error) {
	return Uint160.Cast(x)
}

func ToInt128(x *big.Int) (*big.Int, error) {
	return Int128.Cast(x)
}

func ToInt256(x *big.Int) (*big.Int, error) {
	return Int256.Cast(x)
}
