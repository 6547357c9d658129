package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueJSON_ScalarVariants(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want ContractValue
	}{
		{"void", `{"void": true}`, VoidVal()},
		{"bool", `{"bool": true}`, BoolVal(true)},
		{"u32", `{"u32": 7500000}`, U32Val(7500000)},
		{"u64 max", `{"u64": "18446744073709551615"}`, U64Val(18446744073709551615)},
		{"symbol", `{"sym": "d_rate"}`, SymbolVal("d_rate")},
		{"address", `{"address": "CAS3J7GYLGXMF6TDJBBYYSE3HQ6BBSMLNUQ34T6TZMYMW2EVH34XOWMA"}`,
			AddressVal("CAS3J7GYLGXMF6TDJBBYYSE3HQ6BBSMLNUQ34T6TZMYMW2EVH34XOWMA")},
		{"bytes", `{"bytes": "aGVsbG8="}`, BytesVal([]byte("hello"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseValueJSON([]byte(tc.doc))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseValueJSON_Int128Halves(t *testing.T) {
	got, err := ParseValueJSON([]byte(`{"i128": {"hi": "-1", "lo": "9223372036854775808"}}`))
	require.NoError(t, err)
	assert.Equal(t, I128Val(-1, 9223372036854775808), got)
}

func TestParseValueJSON_NestedReserveShape(t *testing.T) {
	doc := `{
		"map": [
			{"key": {"sym": "asset"}, "val": {"address": "CAS3J7GY"}},
			{"key": {"sym": "data"}, "val": {"map": [
				{"key": {"sym": "d_supply"}, "val": {"i128": {"hi": "0", "lo": "5000000000"}}}
			]}}
		]
	}`

	got, err := ParseValueJSON([]byte(doc))
	require.NoError(t, err)
	require.True(t, got.IsMap())

	data, ok := got.Lookup("data")
	require.True(t, ok)
	dSupply, ok := data.Lookup("d_supply")
	require.True(t, ok)
	assert.Equal(t, I128Val(0, 5000000000), dSupply)
}

func TestParseValueJSON_Malformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", `{{`},
		{"no variant", `{}`},
		{"two variants", `{"u32": 1, "sym": "x"}`},
		{"bad u64", `{"u64": "not-a-number"}`},
		{"bad i128 hi", `{"i128": {"hi": "x", "lo": "0"}}`},
		{"bad i128 lo", `{"i128": {"hi": "0", "lo": "-5"}}`},
		{"bad base64", `{"bytes": "%%%"}`},
		{"map entry without val", `{"map": [{"key": {"sym": "asset"}}]}`},
		{"malformed vec item", `{"vec": [{"u64": "zz"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseValueJSON([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestLookup_SkipsNonSymbolKeys(t *testing.T) {
	m := MapVal(
		MapEntry{Key: U32Val(1), Val: SymbolVal("ignored")},
		MapEntry{Key: SymbolVal("wanted"), Val: U32Val(42)},
	)

	got, ok := m.Lookup("wanted")
	require.True(t, ok)
	assert.Equal(t, U32Val(42), got)

	_, ok = m.Lookup("missing")
	assert.False(t, ok)

	// Lookup on a non-map never matches
	_, ok = U32Val(1).Lookup("wanted")
	assert.False(t, ok)
}
