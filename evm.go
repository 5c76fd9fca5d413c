package uniswap_v3_math

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Domain is a fixed-width EVM integer type such as uint160 or int128.
// Values are plain *big.Int; a Domain only decides membership and how to wrap.
type Domain struct {
	Name   string
	Bits   uint
	Signed bool

	min  *big.Int
	max  *big.Int
	mask *big.Int
}

func newDomain(bits uint, signed bool) Domain {
	d := Domain{Bits: bits, Signed: signed, mask: pow2Minus1(bits)}
	if signed {
		d.Name = fmt.Sprintf("int%d", bits)
		d.min = new(big.Int).Neg(pow2(bits - 1))
		d.max = pow2Minus1(bits - 1)
	} else {
		d.Name = fmt.Sprintf("uint%d", bits)
		d.min = new(big.Int)
		d.max = pow2Minus1(bits)
	}
	return d
}

var (
	Uint128 = newDomain(128, false)
	Uint160 = newDomain(160, false)
	Uint256 = newDomain(256, false)
	Int128  = newDomain(128, true)
	Int160  = newDomain(160, true)
	Int256  = newDomain(256, true)
)

func (d Domain) String() string {
	return d.Name
}

func (d Domain) Min() *big.Int {
	return new(big.Int).Set(d.min)
}

func (d Domain) Max() *big.Int {
	return new(big.Int).Set(d.max)
}

// Contains reports whether x lies within the bounds of d. A nil value belongs to no domain.
func (d Domain) Contains(x *big.Int) bool {
	return x != nil && x.Cmp(d.min) >= 0 && x.Cmp(d.max) <= 0
}

// Cast returns a copy of x if it fits d and a math error otherwise.
func (d Domain) Cast(x *big.Int) (*big.Int, error) {
	if !d.Contains(x) {
		return nil, newMathError("result overflows or underflows " + d.Name)
	}
	return new(big.Int).Set(x), nil
}

// Wrap truncates x to the low d.Bits bits using two's complement, the way the EVM
// narrows an integer. Signed domains reinterpret the top bit as the sign.
func (d Domain) Wrap(x *big.Int) *big.Int {
	var z *big.Int
	if d.Bits == 256 {
		u, _ := uint256.FromBig(x)
		z = u.ToBig()
	} else {
		z = new(big.Int).And(x, d.mask)
	}
	if d.Signed && z.Bit(int(d.Bits)-1) == 1 {
		z.Sub(z, pow2(d.Bits))
	}
	return z
}

func IsUint128(x *big.Int) bool { return Uint128.Contains(x) }
func IsUint160(x *big.Int) bool { return Uint160.Contains(x) }
func IsUint256(x *big.Int) bool { return Uint256.Contains(x) }
func IsInt128(x *big.Int) bool  { return Int128.Contains(x) }
func IsInt160(x *big.Int) bool  { return Int160.Contains(x) }
func IsInt256(x *big.Int) bool  { return Int256.Contains(x) }

func WrapUint128(x *big.Int) *big.Int { return Uint128.Wrap(x) }
func WrapUint160(x *big.Int) *big.Int { return Uint160.Wrap(x) }
func WrapUint256(x *big.Int) *big.Int { return Uint256.Wrap(x) }
