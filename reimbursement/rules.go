/*
rules.go - The legacy reimbursement policy as an ordered rule cascade

PURPOSE:
  Reconstructs an undocumented legacy payout policy from historical
  claims. Each rule below was fitted to a cluster of past cases; they are
  evaluated in order and the first match wins. Guards overlap, so the
  order is part of the policy.

RULE ORDER:
  1. extreme_penalty_override    4-day, <80 mile, >$2300 claim
  2. single_day_high_mileage     1 day, >1000 miles
  3. high_receipt_low_efficiency receipts >$1500, <20 miles/day
  4. high_receipt_percentage     receipts >$1500
  5. receipt_cents_artifact      receipts <=$1500 ending in .49 or .99
  6. standard_per_diem           everything else (catch-all)

ARITHMETIC:
  Formulas run in float64 in the order the coefficients were fitted.
  Products are wrapped in float64() so the compiler cannot fuse them into
  a multiply-add, which would change the last bit on some platforms.
  Rounding to cents happens once, in the calculator.

SEE ALSO:
  - perdiem.go: Daily rate table
  - percentage.go: High-receipt percentages and day multipliers
  - calculator.go: Evaluation, rounding and logging
*/
package reimbursement

import "github.com/warp/reimbursement-engine/generic"

// claim is the rule input: a trip with its derived values precomputed.
type claim struct {
	days       int
	miles      float64
	receipts   float64
	efficiency float64
	cents      int64
}

const mileageRate = 0.655

// Sweet-spot efficiency range, inclusive on both ends.
const (
	sweetSpotMin = 180.0
	sweetSpotMax = 220.0
)

// policy is the full cascade. It ends in a catch-all and is therefore total.
var policy = generic.NewCascade(
	generic.Rule[claim]{Name: string(RuleExtremePenaltyOverride), When: isExtremePenaltyCase, Then: extremePenalty},
	generic.Rule[claim]{Name: string(RuleSingleDayHighMileage), When: isSingleDayHighMileage, Then: singleDayHighMileage},
	generic.Rule[claim]{Name: string(RuleHighReceiptLowEfficiency), When: isHighReceiptLowEfficiency, Then: highReceiptLowEfficiency},
	generic.Rule[claim]{Name: string(RuleHighReceiptPercentage), When: isHighReceipt, Then: highReceiptPercentage},
	generic.Rule[claim]{Name: string(RuleReceiptCentsArtifact), When: isReceiptCentsArtifact, Then: receiptCentsArtifact},
	generic.Rule[claim]{Name: string(RuleStandardPerDiem), When: generic.Always[claim], Then: standardPerDiem},
)

// =============================================================================
// 1. EXTREME PENALTY OVERRIDE
// =============================================================================

// Tuned to a single historical claim (4 days, 69 miles, $2321 -> $322).
// It does not generalize and should go once the percentage model covers it.
func isExtremePenaltyCase(c claim) bool {
	return c.efficiency < 20 && c.receipts > 2300 && c.days == 4 && c.miles < 80
}

func extremePenalty(c claim) float64 {
	return float64(69.2*float64(c.days)) + float64(mileageRate*c.miles)
}

// =============================================================================
// 2. SINGLE-DAY HIGH MILEAGE
// =============================================================================

func isSingleDayHighMileage(c claim) bool {
	return c.days == 1 && c.miles > 1000
}

func singleDayHighMileage(c claim) float64 {
	if c.receipts > 2000 {
		return c.receipts * 0.636
	}
	return float64(c.miles*0.35) + 80
}

// =============================================================================
// 3-4. HIGH RECEIPTS
// =============================================================================

func isHighReceipt(c claim) bool {
	return c.receipts > 1500
}

func isHighReceiptLowEfficiency(c claim) bool {
	return isHighReceipt(c) && c.efficiency < 20
}

func highReceiptLowEfficiency(c claim) float64 {
	return c.receipts * lowEfficiencyRatio(c.days, c.efficiency)
}

func highReceiptPercentage(c claim) float64 {
	// Never true alongside receipts > 1500; kept as fitted.
	if c.efficiency > 140 && c.receipts < 1200 {
		return perDiemWithMileage(c)
	}
	percentage := ReceiptPercentage(c.receipts) * DayMultiplier(c.days)
	return c.receipts * percentage
}

// =============================================================================
// 5. RECEIPT CENTS ARTIFACT
// =============================================================================

// Totals ending in .49 or .99 were paid on separate linear formulas.
func isReceiptCentsArtifact(c claim) bool {
	return c.receipts <= 1500 && (c.cents == 49 || c.cents == 99)
}

func receiptCentsArtifact(c claim) float64 {
	if c.days == 1 {
		if c.miles > 500 {
			return float64(c.miles*0.35) + float64(c.receipts*0.2) + 120
		}
		return float64(c.miles*0.45) + float64(c.receipts*0.3) + 100
	}
	if c.efficiency > 150 {
		return float64(c.miles*0.4) + float64(c.receipts*0.25) + float64(c.days*75)
	}
	return float64(c.miles*0.5) + float64(c.receipts*0.35) + float64(c.days*85)
}

// =============================================================================
// 6. STANDARD PER-DIEM
// =============================================================================

func standardPerDiem(c claim) float64 {
	return perDiemWithMileage(c) + float64(sweetSpotBonus(c.days, c.efficiency))
}

func perDiemWithMileage(c claim) float64 {
	return float64(BasePerDiem(c.days, c.receipts)*float64(c.days)) + float64(mileageRate*c.miles)
}

// sweetSpotBonus rewards trips driven at 180-220 miles/day. Five-day trips
// in range collect both bonuses (+40); the historical data never settled
// whether that stacking was intended, so it is kept as observed.
func sweetSpotBonus(days int, efficiency float64) int {
	inRange := efficiency >= sweetSpotMin && efficiency <= sweetSpotMax
	bonus := 0
	if days == 5 && inRange {
		bonus += 25
	}
	if inRange {
		bonus += 15
	}
	return bonus
}
