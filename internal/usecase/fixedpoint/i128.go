package fixedpoint

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// DecodeInt128 reassembles a 128-bit integer from the signed high half and
// unsigned low half returned by the contract runtime, as an exact decimal.
//
// Two fast paths cover the values seen in practice: a non-negative value
// that fits in 64 bits (hi == 0), and a negative value whose two's
// complement fits in 64 bits (hi == -1 with the top bit of lo set). Every
// other input, including hi == -1 with the top bit of lo clear, takes the
// general hi*2^64 + lo combination. There is no error path: every (hi, lo)
// pair denotes a definite value.
func DecodeInt128(hi int64, lo uint64) decimal.Decimal {
	if hi == 0 {
		return decimal.NewFromBigInt(new(big.Int).SetUint64(lo), 0)
	}
	if hi == -1 && lo&(1<<63) != 0 {
		return decimal.NewFromInt(int64(lo))
	}

	v := new(big.Int).Lsh(big.NewInt(hi), 64)
	v.Add(v, new(big.Int).SetUint64(lo))
	return decimal.NewFromBigInt(v, 0)
}
