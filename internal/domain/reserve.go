package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixed-point scalars used by the pool contracts. Raw integers carry an
// implied number of decimal places given by their scalar; they are divided
// by it only at the human-unit boundary, inside the rate calculations.
var (
	// ScalarFixed7 scales rate-curve parameters, factors and take-rates
	ScalarFixed7 = decimal.New(1, 7)
	// ScalarFixed9 scales the interest-rate modifier
	ScalarFixed9 = decimal.New(1, 9)
	// ScalarFixed12 scales the accrual indexes (b_rate / d_rate)
	ScalarFixed12 = decimal.New(1, 12)
)

// ReserveConfig holds the immutable per-asset parameters of a reserve.
// All decimal fields are RAW scaled integers exactly as decoded from the
// contract; the scalar for each field is documented alongside it.
type ReserveConfig struct {
	// Enabled reports whether the reserve accepts deposits and borrows
	Enabled bool
	// Index is the position of the reserve in the pool's reserve list
	Index uint32
	// CollateralFactor discounts deposits for collateral purposes (1e7)
	CollateralFactor decimal.Decimal
	// LiabilityFactor inflates borrows for liability purposes (1e7)
	LiabilityFactor decimal.Decimal
	// MaxUtilization is the utilization ceiling for new borrows (1e7)
	MaxUtilization decimal.Decimal
	// RBase, ROne, RTwo, RThree are the kinked-curve rate parameters (1e7)
	RBase  decimal.Decimal
	ROne   decimal.Decimal
	RTwo   decimal.Decimal
	RThree decimal.Decimal
	// Reactivity controls how fast the rate modifier adapts (1e7)
	Reactivity decimal.Decimal
	// SupplyCap bounds total deposits, in raw asset units
	SupplyCap decimal.Decimal
	// TargetUtilization is the kink point of the rate curve (1e7)
	TargetUtilization decimal.Decimal
}

// ReserveData holds the live accounting state of a reserve at one snapshot.
// As with ReserveConfig, decimal fields are raw scaled integers.
type ReserveData struct {
	// TotalSupplied is the supplied balance in raw asset units
	TotalSupplied decimal.Decimal
	// TotalBorrowed is the borrowed balance in raw asset units
	TotalBorrowed decimal.Decimal
	// SupplyRate is the supply-side accrual index (1e12)
	SupplyRate decimal.Decimal
	// DRate is the borrow-side accrual index (1e12); multiplying raw
	// borrows by its human value yields accrued liabilities
	DRate decimal.Decimal
	// IRModifier is the reactive interest-rate modifier (1e9)
	IRModifier decimal.Decimal
	// BackstopCredit is interest owed to the backstop, raw asset units
	BackstopCredit decimal.Decimal
	// LastUpdate is the ledger close time of the last accrual
	LastUpdate time.Time
}

// Reserve is one asset's configuration plus live state within a lending
// pool. It is constructed once per decode and replaced wholesale on the next
// refresh; nothing mutates it in place, so independent calculations may read
// it concurrently without coordination.
type Reserve struct {
	// AssetID is the contract address of the reserve asset
	AssetID string
	// Scalar is the asset's own power-of-ten scalar (e.g. 1e7 for a
	// 7-decimal token), applied to TotalSupplied/TotalBorrowed/SupplyCap
	Scalar decimal.Decimal
	Config ReserveConfig
	Data   ReserveData
}

// TotalSuppliedHuman converts the raw supplied balance to human units
func (r *Reserve) TotalSuppliedHuman() decimal.Decimal {
	return r.Data.TotalSupplied.Div(r.Scalar)
}

// TotalBorrowedHuman converts the raw borrowed balance to human units
func (r *Reserve) TotalBorrowedHuman() decimal.Decimal {
	return r.Data.TotalBorrowed.Div(r.Scalar)
}

// DRateHuman converts the borrow accrual index to human units (1e12)
func (r *Reserve) DRateHuman() decimal.Decimal {
	return r.Data.DRate.Div(ScalarFixed12)
}

// IRModifierHuman converts the rate modifier to human units (1e9)
func (r *Reserve) IRModifierHuman() decimal.Decimal {
	return r.Data.IRModifier.Div(ScalarFixed9)
}
