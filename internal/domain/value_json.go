package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

// The upstream codec layer decodes contract responses from their wire-level
// binary envelope and ships each tree to this service as a self-describing
// JSON document. Exactly one variant key must be present per node:
//
//	{"void": true}
//	{"bool": true}
//	{"u32": 7}
//	{"u64": "18446744073709551615"}
//	{"i128": {"hi": "-1", "lo": "9223372036854775808"}}
//	{"sym": "d_rate"}
//	{"address": "CCEVW3EEW4GRUZTZRTAMJAXD6XIF5IG7YQJMEEMKMVVGFPESTRXY2ZAV"}
//	{"bytes": "<base64>"}
//	{"vec": [ ... ]}
//	{"map": [{"key": {...}, "val": {...}}, ...]}
//
// 64-bit and 128-bit integers travel as strings because JSON numbers lose
// precision past 2^53.

type jsonInt128 struct {
	Hi string `json:"hi"`
	Lo string `json:"lo"`
}

type jsonMapEntry struct {
	Key json.RawMessage `json:"key"`
	Val json.RawMessage `json:"val"`
}

type jsonValue struct {
	Void    *bool             `json:"void,omitempty"`
	Bool    *bool             `json:"bool,omitempty"`
	U32     *uint32           `json:"u32,omitempty"`
	U64     *string           `json:"u64,omitempty"`
	I128    *jsonInt128       `json:"i128,omitempty"`
	Sym     *string           `json:"sym,omitempty"`
	Address *string           `json:"address,omitempty"`
	Bytes   *string           `json:"bytes,omitempty"`
	Vec     []json.RawMessage `json:"vec,omitempty"`
	Map     []jsonMapEntry    `json:"map,omitempty"`
}

// ParseValueJSON decodes a self-describing snapshot document into a
// ContractValue tree. Any node that is empty, ambiguous, or carries an
// unparsable payload makes the whole document malformed.
func ParseValueJSON(data []byte) (ContractValue, error) {
	var raw jsonValue
	if err := json.Unmarshal(data, &raw); err != nil {
		return ContractValue{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return raw.toValue()
}

func (j *jsonValue) toValue() (ContractValue, error) {
	if err := j.checkSingleVariant(); err != nil {
		return ContractValue{}, err
	}

	switch {
	case j.Void != nil:
		return VoidVal(), nil

	case j.Bool != nil:
		return BoolVal(*j.Bool), nil

	case j.U32 != nil:
		return U32Val(*j.U32), nil

	case j.U64 != nil:
		v, err := strconv.ParseUint(*j.U64, 10, 64)
		if err != nil {
			return ContractValue{}, fmt.Errorf("%w: bad u64 %q", ErrMalformed, *j.U64)
		}
		return U64Val(v), nil

	case j.I128 != nil:
		hi, err := strconv.ParseInt(j.I128.Hi, 10, 64)
		if err != nil {
			return ContractValue{}, fmt.Errorf("%w: bad i128 hi %q", ErrMalformed, j.I128.Hi)
		}
		lo, err := strconv.ParseUint(j.I128.Lo, 10, 64)
		if err != nil {
			return ContractValue{}, fmt.Errorf("%w: bad i128 lo %q", ErrMalformed, j.I128.Lo)
		}
		return I128Val(hi, lo), nil

	case j.Sym != nil:
		return SymbolVal(*j.Sym), nil

	case j.Address != nil:
		return AddressVal(*j.Address), nil

	case j.Bytes != nil:
		b, err := base64.StdEncoding.DecodeString(*j.Bytes)
		if err != nil {
			return ContractValue{}, fmt.Errorf("%w: bad bytes payload", ErrMalformed)
		}
		return BytesVal(b), nil

	case j.Vec != nil:
		items := make([]ContractValue, 0, len(j.Vec))
		for _, rawItem := range j.Vec {
			item, err := ParseValueJSON(rawItem)
			if err != nil {
				return ContractValue{}, err
			}
			items = append(items, item)
		}
		return VecVal(items...), nil

	case j.Map != nil:
		entries := make([]MapEntry, 0, len(j.Map))
		for _, rawEntry := range j.Map {
			if rawEntry.Key == nil || rawEntry.Val == nil {
				return ContractValue{}, fmt.Errorf("%w: map entry missing key or val", ErrMalformed)
			}
			key, err := ParseValueJSON(rawEntry.Key)
			if err != nil {
				return ContractValue{}, err
			}
			val, err := ParseValueJSON(rawEntry.Val)
			if err != nil {
				return ContractValue{}, err
			}
			entries = append(entries, MapEntry{Key: key, Val: val})
		}
		return MapVal(entries...), nil
	}

	return ContractValue{}, fmt.Errorf("%w: value has no variant", ErrMalformed)
}

// checkSingleVariant rejects nodes that set more than one variant key
func (j *jsonValue) checkSingleVariant() error {
	count := 0
	if j.Void != nil {
		count++
	}
	if j.Bool != nil {
		count++
	}
	if j.U32 != nil {
		count++
	}
	if j.U64 != nil {
		count++
	}
	if j.I128 != nil {
		count++
	}
	if j.Sym != nil {
		count++
	}
	if j.Address != nil {
		count++
	}
	if j.Bytes != nil {
		count++
	}
	if j.Vec != nil {
		count++
	}
	if j.Map != nil {
		count++
	}
	if count > 1 {
		return fmt.Errorf("%w: value sets %d variants", ErrMalformed, count)
	}
	return nil
}
