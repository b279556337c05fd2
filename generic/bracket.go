package generic

// =============================================================================
// BRACKETS - Half-open lookup tables
// =============================================================================

// Bracket maps every value strictly below Below (and at or above the
// previous bracket's bound) to Value.
type Bracket struct {
	Below float64
	Value float64
}

// Brackets is an ordered table of half-open ranges. Bounds must be
// ascending. Values at or above the last bound map to Above, so the table
// is exhaustive.
//
//	Brackets{Bounds: []Bracket{{200, 1}, {500, 2}}, Above: 3}
//	  x < 200        -> 1
//	  200 <= x < 500 -> 2
//	  x >= 500       -> 3
type Brackets struct {
	Bounds []Bracket
	Above  float64
}

// Lookup returns the value of the bracket containing x.
// A value exactly on a bound belongs to the upper bracket.
func (b Brackets) Lookup(x float64) float64 {
	i := b.Index(x)
	if i == len(b.Bounds) {
		return b.Above
	}
	return b.Bounds[i].Value
}

// Index returns the position of the bracket containing x, with
// len(b.Bounds) meaning the open-ended top bracket.
func (b Brackets) Index(x float64) int {
	for i, br := range b.Bounds {
		if x < br.Below {
			return i
		}
	}
	return len(b.Bounds)
}
