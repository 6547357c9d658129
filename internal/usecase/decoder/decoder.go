// Package decoder turns a decoded contract-response tree into a structured
// Reserve record. It only extracts and reassembles raw scaled integers;
// converting them to human units is the rate engine's job at calculation
// time, because several formulas need raw-domain multiplication before any
// division happens.
package decoder

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/soroyield/soroyield-backend/internal/domain"
	"github.com/soroyield/soroyield-backend/internal/usecase/fixedpoint"
)

// Reserve entry schema, as returned by the pool contract's get_reserve.
// Unknown keys at any level are ignored so that contract upgrades which add
// fields do not break older deployments of this service.
const (
	keyAsset  = "asset"
	keyScalar = "scalar"
	keyConfig = "config"
	keyData   = "data"

	keyEnabled    = "enabled"
	keyIndex      = "index"
	keyCFactor    = "c_factor"
	keyLFactor    = "l_factor"
	keyMaxUtil    = "max_util"
	keyRBase      = "r_base"
	keyROne       = "r_one"
	keyRTwo       = "r_two"
	keyRThree     = "r_three"
	keyReactivity = "reactivity"
	keySupplyCap  = "supply_cap"
	keyUtilTarget = "util"

	keyBSupply        = "b_supply"
	keyDSupply        = "d_supply"
	keyBRate          = "b_rate"
	keyDRate          = "d_rate"
	keyIRMod          = "ir_mod"
	keyBackstopCredit = "backstop_credit"
	keyLastTime       = "last_time"
)

// Decode walks a reserve entry tree and builds the Reserve record.
//
// The root must be a map; its `asset` field is required. Everything else is
// optional and defaults to zero (or false), matching the contract's own
// zero-initialized storage. The returned Reserve holds raw scaled integers
// only.
func Decode(v domain.ContractValue) (*domain.Reserve, error) {
	if !v.IsMap() {
		return nil, fmt.Errorf("%w: reserve root is %s, want MAP", domain.ErrMalformed, v.Kind)
	}

	assetVal, ok := v.Lookup(keyAsset)
	if !ok {
		return nil, &domain.MissingFieldError{Field: keyAsset}
	}
	assetID, err := decodeAddress(assetVal)
	if err != nil {
		return nil, err
	}

	reserve := &domain.Reserve{
		AssetID: assetID,
		Scalar:  decodeScalar(v),
	}

	if configVal, ok := v.Lookup(keyConfig); ok && configVal.IsMap() {
		reserve.Config = decodeConfig(configVal)
	}
	if dataVal, ok := v.Lookup(keyData); ok && dataVal.IsMap() {
		reserve.Data = decodeData(dataVal)
	}

	return reserve, nil
}

// decodeAddress accepts ADDRESS payloads and, for older pool versions that
// returned the asset as a raw byte identifier, BYTES payloads.
func decodeAddress(v domain.ContractValue) (string, error) {
	switch v.Kind {
	case domain.KindAddress:
		return v.Str, nil
	case domain.KindBytes:
		return string(v.Bytes), nil
	default:
		return "", fmt.Errorf("%w: asset field is %s, want ADDRESS", domain.ErrMalformed, v.Kind)
	}
}

// decodeScalar reads the asset's own power-of-ten scalar. Absent or
// unusable values default to 1e7, the scalar of a 7-decimal token.
func decodeScalar(root domain.ContractValue) decimal.Decimal {
	v, ok := root.Lookup(keyScalar)
	if !ok {
		return domain.ScalarFixed7
	}
	scalar := numberField(v)
	if scalar.Sign() <= 0 {
		return domain.ScalarFixed7
	}
	return scalar
}

func decodeConfig(v domain.ContractValue) domain.ReserveConfig {
	return domain.ReserveConfig{
		Enabled:           boolField(v, keyEnabled),
		Index:             u32Field(v, keyIndex),
		CollateralFactor:  numberFieldOf(v, keyCFactor),
		LiabilityFactor:   numberFieldOf(v, keyLFactor),
		MaxUtilization:    numberFieldOf(v, keyMaxUtil),
		RBase:             numberFieldOf(v, keyRBase),
		ROne:              numberFieldOf(v, keyROne),
		RTwo:              numberFieldOf(v, keyRTwo),
		RThree:            numberFieldOf(v, keyRThree),
		Reactivity:        numberFieldOf(v, keyReactivity),
		SupplyCap:         numberFieldOf(v, keySupplyCap),
		TargetUtilization: numberFieldOf(v, keyUtilTarget),
	}
}

func decodeData(v domain.ContractValue) domain.ReserveData {
	return domain.ReserveData{
		TotalSupplied:  numberFieldOf(v, keyBSupply),
		TotalBorrowed:  numberFieldOf(v, keyDSupply),
		SupplyRate:     numberFieldOf(v, keyBRate),
		DRate:          numberFieldOf(v, keyDRate),
		IRModifier:     numberFieldOf(v, keyIRMod),
		BackstopCredit: numberFieldOf(v, keyBackstopCredit),
		LastUpdate:     timeField(v, keyLastTime),
	}
}

// boolField reads an optional BOOL map field, defaulting to false
func boolField(m domain.ContractValue, key string) bool {
	v, ok := m.Lookup(key)
	if !ok || v.Kind != domain.KindBool {
		return false
	}
	return v.Bool
}

// u32Field reads an optional U32 map field verbatim, defaulting to zero
func u32Field(m domain.ContractValue, key string) uint32 {
	v, ok := m.Lookup(key)
	if !ok || v.Kind != domain.KindU32 {
		return 0
	}
	return v.U32
}

// timeField reads an optional U64 ledger close time, defaulting to the zero
// time when absent
func timeField(m domain.ContractValue, key string) time.Time {
	v, ok := m.Lookup(key)
	if !ok || v.Kind != domain.KindU64 {
		return time.Time{}
	}
	return time.Unix(int64(v.U64), 0).UTC()
}

// numberFieldOf reads an optional numeric map field, defaulting to zero
func numberFieldOf(m domain.ContractValue, key string) decimal.Decimal {
	v, ok := m.Lookup(key)
	if !ok {
		return decimal.Zero
	}
	return numberField(v)
}

// numberField widens any integer variant to an exact decimal. 128-bit
// values route through the wide-integer decoder; 32- and 64-bit values are
// copied verbatim. Non-numeric variants decode as zero, the documented
// default for optional fields.
func numberField(v domain.ContractValue) decimal.Decimal {
	switch v.Kind {
	case domain.KindU32:
		return decimal.NewFromInt(int64(v.U32))
	case domain.KindU64:
		return decimal.NewFromUint64(v.U64)
	case domain.KindI128:
		return fixedpoint.DecodeInt128(v.I128.Hi, v.I128.Lo)
	default:
		return decimal.Zero
	}
}
