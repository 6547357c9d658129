package rates

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/soroyield/soroyield-backend/internal/domain"
)

// Compounding schedules are protocol policy, not caller input: supplier
// interest compounds when the weekly emissions cycle settles, borrower
// interest accrues every ledger day.
const (
	SupplyCompoundingPeriods = 52
	BorrowCompoundingPeriods = 365
)

var (
	// aprCap bounds displayed simple rates at 500%
	aprCap = decimal.NewFromInt(5)
	// apyCap bounds displayed compound yields at 1000%
	apyCap = decimal.NewFromInt(10)
	// negligibleAPR is the 0.01% threshold below which compounding is not
	// worth the precision loss of the float64 exponentiation
	negligibleAPR = decimal.RequireFromString("0.0001")

	hundred = decimal.NewFromInt(100)
)

// YieldResult carries the annualized rates for one reserve. Rate fields are
// percentages; Utilization is a fraction in [0, 1]. Results are ephemeral:
// recomputed on demand from the latest snapshot, never persisted by the
// engine itself.
type YieldResult struct {
	AssetID     string
	Utilization decimal.Decimal
	SupplyAPR   decimal.Decimal
	SupplyAPY   decimal.Decimal
	BorrowAPR   decimal.Decimal
	BorrowAPY   decimal.Decimal
}

// SupplyAPR computes the simple annual rate paid to suppliers, as a
// percentage. backstopTakeRate is the raw 1e7-scaled fraction of borrower
// interest diverted to the backstop before suppliers are paid.
//
// Suppliers capture (1 - takeRate) of borrower interest, in proportion to
// utilization. An idle pool pays nothing.
func SupplyAPR(r *domain.Reserve, backstopTakeRate decimal.Decimal) (decimal.Decimal, error) {
	if backstopTakeRate.Sign() < 0 || backstopTakeRate.GreaterThan(domain.ScalarFixed7) {
		return decimal.Decimal{}, fmt.Errorf("%w: backstop take-rate %s outside [0, %s]",
			domain.ErrOutOfBounds, backstopTakeRate, domain.ScalarFixed7)
	}
	if err := validateBalances(r); err != nil {
		return decimal.Decimal{}, err
	}

	utilization := CalculateUtilization(r, true)
	if utilization.IsZero() {
		return decimal.Zero, nil
	}

	currentRate, err := CalculateKinkedRate(r, utilization)
	if err != nil {
		return decimal.Decimal{}, err
	}

	takeRateHuman := backstopTakeRate.Div(domain.ScalarFixed7)
	supplyCapture := one.Sub(takeRateHuman).Mul(utilization)

	apr := clampRate(currentRate.Mul(supplyCapture))
	return apr.Mul(hundred), nil
}

// BorrowAPR computes the simple annual rate charged to borrowers, as a
// percentage.
func BorrowAPR(r *domain.Reserve) (decimal.Decimal, error) {
	if err := validateBalances(r); err != nil {
		return decimal.Decimal{}, err
	}

	utilization := CalculateUtilization(r, true)
	currentRate, err := CalculateKinkedRate(r, utilization)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return clampRate(currentRate).Mul(hundred), nil
}

// AprToApy converts a simple annual rate to a compound annual yield:
// (1 + apr/n)^n - 1. Both apr and the result are fractions, not
// percentages.
//
// The exponentiation step alone runs in float64 — exact-decimal powers are
// impractical — and the result is converted straight back to decimal.
// Rates below 0.01% are returned unchanged: the compounding benefit is
// negligible and the float round trip would only lose precision. A
// non-finite exponentiation result is an Overflow error.
func AprToApy(apr decimal.Decimal, compoundingPeriods int64) (decimal.Decimal, error) {
	if apr.LessThan(negligibleAPR) {
		return apr, nil
	}

	periods := decimal.NewFromInt(compoundingPeriods)
	base, _ := one.Add(apr.Div(periods)).Float64()
	compounded := math.Pow(base, float64(compoundingPeriods))
	if math.IsNaN(compounded) || math.IsInf(compounded, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: compounding %s over %d periods is not finite",
			domain.ErrOverflow, apr, compoundingPeriods)
	}

	apy := decimal.NewFromFloat(compounded).Sub(one)
	if apy.GreaterThan(apyCap) {
		apy = apyCap
	}
	return apy, nil
}

// ComputeYield evaluates the full yield picture of one reserve: supply and
// borrow APR plus their compounded APY counterparts, all as percentages.
func ComputeYield(r *domain.Reserve, backstopTakeRate decimal.Decimal) (*YieldResult, error) {
	supplyAPR, err := SupplyAPR(r, backstopTakeRate)
	if err != nil {
		return nil, err
	}
	borrowAPR, err := BorrowAPR(r)
	if err != nil {
		return nil, err
	}

	supplyAPY, err := AprToApy(supplyAPR.Div(hundred), SupplyCompoundingPeriods)
	if err != nil {
		return nil, err
	}
	borrowAPY, err := AprToApy(borrowAPR.Div(hundred), BorrowCompoundingPeriods)
	if err != nil {
		return nil, err
	}

	return &YieldResult{
		AssetID:     r.AssetID,
		Utilization: CalculateUtilization(r, true),
		SupplyAPR:   supplyAPR,
		SupplyAPY:   supplyAPY.Mul(hundred),
		BorrowAPR:   borrowAPR,
		BorrowAPY:   borrowAPY.Mul(hundred),
	}, nil
}

// validateBalances rejects reserves whose raw balances violate the
// non-negativity invariant. Negative balances are not expected in normal
// operation; surfacing them beats displaying a nonsense rate.
func validateBalances(r *domain.Reserve) error {
	if r.Data.TotalSupplied.Sign() < 0 {
		return fmt.Errorf("%w: total supplied %s is negative",
			domain.ErrInvalidInput, r.Data.TotalSupplied)
	}
	if r.Data.TotalBorrowed.Sign() < 0 {
		return fmt.Errorf("%w: total borrowed %s is negative",
			domain.ErrInvalidInput, r.Data.TotalBorrowed)
	}
	return nil
}

// clampRate bounds a non-negative rate fraction at the display cap
func clampRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(aprCap) {
		return aprCap
	}
	if rate.Sign() < 0 {
		return decimal.Zero
	}
	return rate
}
