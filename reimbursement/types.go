// Package reimbursement implements the legacy travel reimbursement policy.
// It uses the generic engine with reimbursement-specific tables and rules.
package reimbursement

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/warp/reimbursement-engine/generic"
)

// =============================================================================
// TRIP - Calculator input
// =============================================================================

// Trip is one reimbursement claim.
type Trip struct {
	Days     int
	Miles    float64
	Receipts decimal.Decimal
}

// NewTrip builds a validated trip.
func NewTrip(days int, miles float64, receipts decimal.Decimal) (Trip, error) {
	t := Trip{Days: days, Miles: miles, Receipts: receipts}
	if err := t.Validate(); err != nil {
		return Trip{}, err
	}
	return t, nil
}

// Validate checks the trip lies in the calculator's domain.
func (t Trip) Validate() error {
	if t.Days <= 0 {
		return &generic.InputError{Field: "trip_duration_days", Value: t.Days, Err: generic.ErrInvalidDays}
	}
	if t.Miles < 0 || math.IsNaN(t.Miles) || math.IsInf(t.Miles, 0) {
		return &generic.InputError{Field: "miles_traveled", Value: t.Miles, Err: generic.ErrNegativeMiles}
	}
	if t.Receipts.IsNegative() {
		return &generic.InputError{Field: "total_receipts_amount", Value: t.Receipts, Err: generic.ErrNegativeReceipts}
	}
	return nil
}

// Efficiency is miles per day, or 0 for a trip without days.
func (t Trip) Efficiency() float64 {
	if t.Days > 0 {
		return t.Miles / float64(t.Days)
	}
	return 0
}

// ReceiptCents is the cent remainder of the receipts total (1234.49 -> 49).
func (t Trip) ReceiptCents() int64 {
	return generic.Cents(t.Receipts)
}

// =============================================================================
// RULE NAMES
// =============================================================================

// RuleName identifies which rule of the policy produced an amount.
type RuleName string

const (
	RuleExtremePenaltyOverride   RuleName = "extreme_penalty_override"
	RuleSingleDayHighMileage     RuleName = "single_day_high_mileage"
	RuleHighReceiptLowEfficiency RuleName = "high_receipt_low_efficiency"
	RuleHighReceiptPercentage    RuleName = "high_receipt_percentage"
	RuleReceiptCentsArtifact     RuleName = "receipt_cents_artifact"
	RuleStandardPerDiem          RuleName = "standard_per_diem"
)

// =============================================================================
// RESULT / CASE
// =============================================================================

// Result is a computed reimbursement.
type Result struct {
	Amount generic.Amount // dollars, rounded to cents
	Rule   RuleName
}

// Float64 returns the amount as the nearest float64.
func (r Result) Float64() float64 {
	return r.Amount.Float64()
}

// Case is a historical claim with the amount the legacy system paid.
type Case struct {
	Trip     Trip
	Expected decimal.Decimal
}
