package fixedpoint

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecodeInt128_UnsignedFastPath(t *testing.T) {
	// hi == 0 returns lo as an unsigned value, even above math.MaxInt64
	assert.True(t, DecodeInt128(0, 0).Equal(d("0")))
	assert.True(t, DecodeInt128(0, 42).Equal(d("42")))
	assert.True(t, DecodeInt128(0, 18446744073709551615).Equal(d("18446744073709551615")))
}

func TestDecodeInt128_NegativeFastPath(t *testing.T) {
	// hi == -1 with the top bit of lo set reinterprets lo as signed 64-bit
	assert.True(t, DecodeInt128(-1, 18446744073709551615).Equal(d("-1")))
	// 2^63 as lo -> math.MinInt64
	assert.True(t, DecodeInt128(-1, 9223372036854775808).Equal(d("-9223372036854775808")))
}

func TestDecodeInt128_GeneralCombination(t *testing.T) {
	// hi == 1, lo == 0 is exactly 2^64
	assert.True(t, DecodeInt128(1, 0).Equal(d("18446744073709551616")))

	// hi == 2, lo == 5 -> 2*2^64 + 5
	assert.True(t, DecodeInt128(2, 5).Equal(d("36893488147419103237")))

	// Large negative: hi == -2, lo == 0 -> -2^65
	assert.True(t, DecodeInt128(-2, 0).Equal(d("-36893488147419103232")))
}

func TestDecodeInt128_NegativeOneHiWithTopBitClear(t *testing.T) {
	// The boundary between the two fast paths: hi == -1 but the top bit of
	// lo is clear. Neither special case applies; the value is
	// -2^64 + lo, which is large-magnitude negative.
	got := DecodeInt128(-1, 0)
	assert.True(t, got.Equal(d("-18446744073709551616")), "got %s", got)

	got = DecodeInt128(-1, 1)
	assert.True(t, got.Equal(d("-18446744073709551615")), "got %s", got)

	// Just below the top bit: lo == 2^63 - 1
	got = DecodeInt128(-1, 9223372036854775807)
	assert.True(t, got.Equal(d("-9223372036854775809")), "got %s", got)
}

func TestDecodeInt128_RawScaledBalances(t *testing.T) {
	// A realistic raw balance: 12.3456789 tokens at scalar 1e7 sits well
	// inside the unsigned fast path
	raw := DecodeInt128(0, 123456789)
	human := ToFloat(raw, 7)
	assert.True(t, human.Equal(decimal.RequireFromString("12.3456789")))
}
