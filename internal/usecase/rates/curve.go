// Package rates computes pool utilization, the kinked interest-rate curve
// and annualized yields from decoded reserve snapshots. Every calculation
// here is pure and side-effect free: one Reserve in, one result out, no
// shared state, so independent calls may run concurrently.
package rates

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/soroyield/soroyield-backend/internal/domain"
	"github.com/soroyield/soroyield-backend/internal/usecase/fixedpoint"
)

// The rate curve switches to its emergency segment at 95% utilization
// regardless of pool configuration.
var (
	emergencyUtilization = decimal.RequireFromString("0.95")
	emergencyWidth       = decimal.RequireFromString("0.05")

	one = decimal.NewFromInt(1)
)

// curvePrecision is the number of decimal places kept on utilization and
// interest-rate results. Banker's rounding keeps chained calls idempotent
// and boundary comparisons deterministic.
const curvePrecision = 8

// CalculateUtilization computes the fraction of supplied liquidity
// currently borrowed, in [0, 1].
//
// With includeAccrued set, raw borrows are grown by the borrow accrual
// index (d_rate, scalar 1e12) so that interest earned since the last ledger
// update counts as outstanding liability. An empty pool utilizes nothing;
// a pool with borrows but no supply is fully utilized.
func CalculateUtilization(r *domain.Reserve, includeAccrued bool) decimal.Decimal {
	supplied := r.TotalSuppliedHuman()
	borrowed := r.TotalBorrowedHuman()

	if supplied.IsZero() {
		if borrowed.IsPositive() {
			return one
		}
		return decimal.Zero
	}

	liabilities := borrowed
	if includeAccrued {
		// Accrue in the raw domain with a ceiling, the same direction the
		// ledger rounds debt, then rescale to human units.
		accruedRaw := fixedpoint.MulCeil(r.Data.TotalBorrowed, r.Data.DRate, domain.ScalarFixed12)
		liabilities = accruedRaw.Div(r.Scalar)
	}

	utilization := liabilities.Div(supplied.Add(liabilities))
	return utilization.RoundBank(curvePrecision)
}

// CalculateKinkedRate evaluates the three-segment interest-rate curve at
// the given utilization and returns the periodic rate in human units.
//
// The segments are mutually exclusive by utilization value:
//
//	u == 0:               rBase, unmodified
//	0 < u <= target:      ((u/target)*rOne + rBase) * irModifier
//	target < u <= 0.95:   (((u-target)/(0.95-target))*rTwo + rOne + rBase) * irModifier
//	u > 0.95:             ((u-0.95)/0.05)*rThree + irModifier*(rTwo+rOne+rBase)
//
// Above the emergency threshold the rThree term is deliberately NOT scaled
// by the modifier, so a depegged pool prices liquidity steeply even when
// the reactive modifier has drifted low.
func CalculateKinkedRate(r *domain.Reserve, utilization decimal.Decimal) (decimal.Decimal, error) {
	if utilization.Sign() < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: utilization %s is negative",
			domain.ErrInvalidInput, utilization)
	}

	rBase := r.Config.RBase.Div(domain.ScalarFixed7)
	rOne := r.Config.ROne.Div(domain.ScalarFixed7)
	rTwo := r.Config.RTwo.Div(domain.ScalarFixed7)
	rThree := r.Config.RThree.Div(domain.ScalarFixed7)
	target := r.Config.TargetUtilization.Div(domain.ScalarFixed7)
	irModifier := r.IRModifierHuman()

	var rate decimal.Decimal
	switch {
	case utilization.IsZero():
		rate = rBase

	case utilization.LessThanOrEqual(target):
		slope := safeDiv(utilization, target)
		rate = slope.Mul(rOne).Add(rBase).Mul(irModifier)

	case utilization.LessThanOrEqual(emergencyUtilization):
		slope := safeDiv(utilization.Sub(target), emergencyUtilization.Sub(target))
		rate = slope.Mul(rTwo).Add(rOne).Add(rBase).Mul(irModifier)

	default:
		surge := utilization.Sub(emergencyUtilization).Div(emergencyWidth).Mul(rThree)
		modified := irModifier.Mul(rTwo.Add(rOne).Add(rBase))
		rate = surge.Add(modified)
	}

	if rate.Sign() < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: interest rate %s is negative",
			domain.ErrInvalidInput, rate)
	}
	return rate.RoundBank(curvePrecision), nil
}

// safeDiv divides two human-unit values, treating a zero denominator as a
// zero quotient. A pool configured with a degenerate target utilization
// then simply loses the sloped term instead of faulting, mirroring the
// raw-domain divide-by-zero policy.
func safeDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}
