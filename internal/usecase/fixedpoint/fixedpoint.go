// Package fixedpoint reproduces the integer fixed-point arithmetic of the
// pool contracts on arbitrary-precision decimals. Every operation is exact:
// products and quotients are taken with an integer quotient plus remainder,
// then rounded in the documented direction, so repeated calls never
// accumulate binary floating-point error.
package fixedpoint

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// MulCeil multiplies two raw fixed-point values against a common scalar,
// rounding the result up: ceil(a*b / scalar).
func MulCeil(a, b, scalar decimal.Decimal) decimal.Decimal {
	quo, rem := a.Mul(b).QuoRem(scalar, 0)
	if rem.IsZero() {
		return quo
	}
	// QuoRem truncates toward zero, which already is the ceiling for
	// negative quotients.
	if rem.Sign() > 0 {
		return quo.Add(one)
	}
	return quo
}

// MulFloor multiplies two raw fixed-point values against a common scalar,
// rounding the result down: floor(a*b / scalar).
func MulFloor(a, b, scalar decimal.Decimal) decimal.Decimal {
	quo, rem := a.Mul(b).QuoRem(scalar, 0)
	if rem.IsZero() {
		return quo
	}
	if rem.Sign() < 0 {
		return quo.Sub(one)
	}
	return quo
}

// DivCeil divides two raw fixed-point values against a common scalar,
// rounding the result up: ceil(a*scalar / b). A zero divisor returns zero:
// downstream rate math treats that as "no rate", not a fault.
func DivCeil(a, b, scalar decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	quo, rem := a.Mul(scalar).QuoRem(b, 0)
	if rem.IsZero() {
		return quo
	}
	// The remainder carries the dividend's sign, so matching signs mean a
	// positive true quotient, where truncation rounded down.
	if rem.Sign() == b.Sign() {
		return quo.Add(one)
	}
	return quo
}

// ToFloat converts a raw integer with the given implied decimal places to
// its human-unit value. The conversion is an exact decimal shift.
func ToFloat(raw decimal.Decimal, decimals int32) decimal.Decimal {
	return raw.Shift(-decimals)
}

// ToFixed converts a human-unit value back to its raw representation with
// the given implied decimal places.
func ToFixed(value decimal.Decimal, decimals int32) decimal.Decimal {
	return value.Shift(decimals)
}
