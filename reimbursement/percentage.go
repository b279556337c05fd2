package reimbursement

import "github.com/warp/reimbursement-engine/generic"

// =============================================================================
// HIGH-RECEIPT PERCENTAGE MODEL
// =============================================================================

// receiptPercentages is the share of receipts paid back, by receipts total.
var receiptPercentages = generic.Brackets{
	Bounds: []generic.Bracket{
		{Below: 1700, Value: 1.035},
		{Below: 1900, Value: 0.933},
		{Below: 2100, Value: 0.843},
		{Below: 2300, Value: 0.754},
	},
	Above: 0.676,
}

// dayAdjustments[days-1] are observed payout ratios, normalized against
// dayAdjustmentBase (the 6-day ratio) at lookup time.
var dayAdjustments = [14]float64{
	0.688, 0.755, 0.720, 0.737, 0.830, 0.910, 0.892,
	0.803, 0.867, 0.842, 0.920, 0.851, 0.997, 0.954,
}

var dayAdjustmentBase = 0.896

// ReceiptPercentage returns the base payout percentage for high receipts.
func ReceiptPercentage(receipts float64) float64 {
	return receiptPercentages.Lookup(receipts)
}

// DayMultiplier returns the trip-length adjustment for the percentage model.
// Trips outside 1..14 days are not adjusted.
func DayMultiplier(days int) float64 {
	if days < 1 || days > len(dayAdjustments) {
		return 1.0
	}
	// Divided at runtime: constant folding would round differently.
	return dayAdjustments[days-1] / dayAdjustmentBase
}

// =============================================================================
// LOW-EFFICIENCY RATIOS
// =============================================================================

// lowEfficiencyRatio picks the receipts ratio for high-receipt trips with
// little driving. Checked in order; the first match wins.
func lowEfficiencyRatio(days int, efficiency float64) float64 {
	switch {
	case days == 5 && efficiency < 10:
		return 0.67
	case days == 2 && efficiency < 10:
		return 0.482
	case days == 1 && efficiency < 15:
		return 0.499
	case days >= 8:
		return 0.65
	default:
		return 0.6
	}
}
