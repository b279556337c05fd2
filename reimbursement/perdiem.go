package reimbursement

import "github.com/warp/reimbursement-engine/generic"

// =============================================================================
// PER-DIEM TABLE
// =============================================================================

// DefaultPerDiem is the daily rate for trips longer than the table covers.
const DefaultPerDiem = 90.0

// receiptBrackets maps a receipts total to its per-diem table column:
// [0,200) [200,500) [500,1000) [1000,1500) [1500,inf).
var receiptBrackets = generic.Brackets{
	Bounds: []generic.Bracket{
		{Below: 200, Value: 0},
		{Below: 500, Value: 1},
		{Below: 1000, Value: 2},
		{Below: 1500, Value: 3},
	},
	Above: 4,
}

// perDiemTable[days-1][bracket] is the daily rate in dollars.
var perDiemTable = [14][5]float64{
	{79.6, 63.6, 409.4, 824.1, 920.2}, // 1 day
	{88.7, 67.9, 264.1, 465.9, 494.8},
	{87.6, 64.2, 170.2, 328.2, 340.2},
	{70.5, 83.2, 158.6, 250.3, 282.3},
	{69.9, 96.8, 162.8, 230.0, 239.1},
	{78.6, 90.3, 144.0, 207.9, 216.3},
	{74.8, 82.2, 118.5, 187.7, 191.2},
	{54.8, 74.4, 109.2, 155.9, 153.6},
	{63.4, 68.0, 96.5, 146.4, 131.6},
	{43.2, 63.7, 108.7, 140.5, 129.6},
	{58.2, 62.1, 81.9, 119.2, 123.0},
	{54.6, 63.0, 93.7, 121.4, 113.9},
	{49.6, 60.8, 98.7, 110.6, 106.5},
	{53.1, 59.9, 74.8, 103.2, 103.5}, // 14 days
}

// BasePerDiem returns the daily rate for a trip length and receipts total.
// Trips outside 1..14 days get DefaultPerDiem regardless of receipts.
func BasePerDiem(days int, receipts float64) float64 {
	if days < 1 || days > len(perDiemTable) {
		return DefaultPerDiem
	}
	return perDiemTable[days-1][int(receiptBrackets.Lookup(receipts))]
}
