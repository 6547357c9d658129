package fixedpoint

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soroyield/soroyield-backend/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMulCeil_RoundsUpOnRemainder(t *testing.T) {
	// 3 * 5 = 15, 15 / 1e7 = 0.0000015 -> ceil = 1
	result := MulCeil(d("3"), d("5"), domain.ScalarFixed7)
	assert.True(t, result.Equal(d("1")), "expected 1, got %s", result)
}

func TestMulCeil_ExactMultiple(t *testing.T) {
	// 2e7 * 3 = 6e7, exactly 6 scalar units
	result := MulCeil(d("20000000"), d("3"), domain.ScalarFixed7)
	assert.True(t, result.Equal(d("6")))
}

func TestMulFloor_RoundsDownOnRemainder(t *testing.T) {
	// 19999999 * 1 / 1e7 = 1.9999999 -> floor = 1
	result := MulFloor(d("19999999"), d("1"), domain.ScalarFixed7)
	assert.True(t, result.Equal(d("1")))
}

func TestMulCeil_NeverBelowMulFloor(t *testing.T) {
	// Property: mulCeil >= mulFloor, equal only on exact multiples
	cases := []struct {
		a, b  string
		exact bool
	}{
		{"10000000", "10000000", true}, // 1.0 * 1.0
		{"10000001", "9999999", false},
		{"12345678", "87654321", false},
		{"5000000", "2", true}, // product exactly 1e7
		{"0", "12345", true},
	}

	for _, tc := range cases {
		ceil := MulCeil(d(tc.a), d(tc.b), domain.ScalarFixed7)
		floor := MulFloor(d(tc.a), d(tc.b), domain.ScalarFixed7)

		assert.True(t, ceil.GreaterThanOrEqual(floor),
			"ceil(%s*%s) < floor", tc.a, tc.b)
		if tc.exact {
			assert.True(t, ceil.Equal(floor),
				"exact multiple %s*%s should have ceil == floor", tc.a, tc.b)
		} else {
			assert.True(t, ceil.Equal(floor.Add(d("1"))),
				"inexact %s*%s should have ceil == floor+1", tc.a, tc.b)
		}
	}
}

func TestDivCeil_RoundsUp(t *testing.T) {
	// 1 * 1e7 / 3 = 3333333.33... -> ceil = 3333334
	result := DivCeil(d("1"), d("3"), domain.ScalarFixed7)
	assert.True(t, result.Equal(d("3333334")))
}

func TestDivCeil_ZeroDivisorReturnsZero(t *testing.T) {
	// Explicit non-error policy: no rate, not a fault
	result := DivCeil(d("123456"), decimal.Zero, domain.ScalarFixed7)
	assert.True(t, result.IsZero())
}

func TestDivCeil_NegativeDividendTruncatesTowardCeiling(t *testing.T) {
	// -1 * 1e7 / 3 = -3333333.33... -> ceil = -3333333
	result := DivCeil(d("-1"), d("3"), domain.ScalarFixed7)
	assert.True(t, result.Equal(d("-3333333")))
}

func TestToFloat_ShiftsScale(t *testing.T) {
	raw := d("123456789")
	human := ToFloat(raw, 7)
	assert.True(t, human.Equal(d("12.3456789")))
}

func TestToFixed_RoundTripsExactValues(t *testing.T) {
	// Property: toFixed(toFloat(raw, 7), 7) == raw for values exact at
	// 7 decimals
	cases := []string{"0", "1", "9999999", "10000000", "123456789012345"}
	for _, raw := range cases {
		got := ToFixed(ToFloat(d(raw), 7), 7)
		require.True(t, got.Equal(d(raw)), "round trip broke for %s: %s", raw, got)
	}
}

func TestToFixed_NineAndTwelveDecimals(t *testing.T) {
	assert.True(t, ToFixed(d("0.300326158"), 9).Equal(d("300326158")))
	assert.True(t, ToFloat(d("1000000000000"), 12).Equal(d("1")))
}
