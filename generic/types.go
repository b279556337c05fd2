/*
Package generic provides the core rule-evaluation engine.

PURPOSE:
  This package contains domain-agnostic types and algorithms for turning
  a handful of numeric inputs into a money amount through an ordered set
  of heuristic rules. The reimbursement package supplies the concrete
  tables and rules; this package supplies amounts, bracket lookups,
  the first-match-wins cascade and the error vocabulary.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a unit (e.g., $979.00)
  - Unit: What an amount measures
  - RoundCents: Rounds a float result to a 2-decimal money value

DESIGN PRINCIPLES:
  1. Precision: Money leaves the engine as decimal.Decimal
  2. Reproducibility: Rules compute in float64 so fitted coefficients
     reproduce historical outputs; only the final value is converted
  3. Type Safety: Results carry their unit into reports and logs

USAGE:
  amount := generic.Dollars(decimal.NewFromInt(979))
  cents := generic.RoundCents(321.995) // 322.00

SEE ALSO:
  - bracket.go: Half-open bracket tables
  - cascade.go: Ordered rule evaluation
  - errors.go: Sentinel and structured errors
*/
package generic

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit
// =============================================================================

// Amount is a computed quantity tagged with what it measures.
type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const UnitDollars Unit = "dollars"

// Dollars wraps a currency value.
func Dollars(v decimal.Decimal) Amount {
	return Amount{Value: v, Unit: UnitDollars}
}

func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (a Amount) Sub(b Amount) Amount { return Amount{Value: a.Value.Sub(b.Value), Unit: a.Unit} }
func (a Amount) Abs() Amount         { return Amount{Value: a.Value.Abs(), Unit: a.Unit} }
func (a Amount) Float64() float64    { return a.Value.InexactFloat64() }
func (a Amount) Cents() string       { return a.Value.StringFixed(2) }
func (a Amount) String() string      { return a.Cents() + " " + string(a.Unit) }

// =============================================================================
// ROUNDING
// =============================================================================

// RoundCents rounds v to two decimal places.
//
// Rounding is decided on the exact binary value of v, so 321.995 (stored
// as 321.99500000000000454...) becomes 322.00 while 0.125 (an exact tie)
// becomes 0.12. Non-finite values round to zero.
func RoundCents(v float64) decimal.Decimal {
	return MustParseDecimal(strconv.FormatFloat(v, 'f', 2, 64))
}

// Cents returns the two-digit cent remainder of a currency value,
// e.g. 1234.49 -> 49. Digits beyond the cents are truncated.
func Cents(d decimal.Decimal) int64 {
	return d.Abs().Shift(2).IntPart() % 100
}
