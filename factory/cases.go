/*
Package factory provides JSON to Go conversion for historical claims.

PURPOSE:
  Converts the legacy case-file format into reimbursement.Case values.
  The legacy system's past payouts are the only ground truth for the
  policy, so every rule change is checked against these files.

JSON SCHEMA:
  [
    {
      "input": {
        "trip_duration_days": 3,
        "miles_traveled": 93,
        "total_receipts_amount": 1.42
      },
      "expected_output": 364.51
    }
  ]

KEY FEATURES:
  - Currency fields decode straight into decimal.Decimal (no float detour)
  - Every trip is validated through reimbursement.NewTrip
  - A bad record is reported with its position in the file

USAGE:
  f := factory.NewCaseFactory()
  cases, err := f.ParseCases(data)

SEE ALSO:
  - reimbursement/types.go: Case and Trip
  - evaluation/evaluate.go: Scores a calculator against cases
*/
package factory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/warp/reimbursement-engine/reimbursement"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// CaseJSON is the JSON representation of a historical claim.
type CaseJSON struct {
	Input          InputJSON        `json:"input"`
	ExpectedOutput *decimal.Decimal `json:"expected_output"`
}

// InputJSON holds the three calculator inputs.
type InputJSON struct {
	TripDurationDays    int             `json:"trip_duration_days"`
	MilesTraveled       float64         `json:"miles_traveled"`
	TotalReceiptsAmount decimal.Decimal `json:"total_receipts_amount"`
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrMissingExpected is returned for a record without expected_output.
var ErrMissingExpected = errors.New("missing expected_output")

// CaseError locates a bad record in a case file.
type CaseError struct {
	Index int
	Err   error
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("case %d: %v", e.Index, e.Err)
}

func (e *CaseError) Unwrap() error {
	return e.Err
}

// =============================================================================
// CASE FACTORY
// =============================================================================

// CaseFactory converts JSON case records to reimbursement cases.
type CaseFactory struct{}

// NewCaseFactory creates a new case factory.
func NewCaseFactory() *CaseFactory {
	return &CaseFactory{}
}

// ParseCases parses a JSON array of case records.
func (f *CaseFactory) ParseCases(data []byte) ([]reimbursement.Case, error) {
	var records []CaseJSON
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse cases JSON: %w", err)
	}
	return f.FromJSON(records)
}

// DecodeCases reads a JSON array of case records from r.
func (f *CaseFactory) DecodeCases(r io.Reader) ([]reimbursement.Case, error) {
	var records []CaseJSON
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode cases JSON: %w", err)
	}
	return f.FromJSON(records)
}

// FromJSON converts decoded records, stopping at the first invalid one.
func (f *CaseFactory) FromJSON(records []CaseJSON) ([]reimbursement.Case, error) {
	cases := make([]reimbursement.Case, 0, len(records))
	for i, cj := range records {
		c, err := f.caseFromJSON(cj)
		if err != nil {
			return nil, &CaseError{Index: i, Err: err}
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func (f *CaseFactory) caseFromJSON(cj CaseJSON) (reimbursement.Case, error) {
	if cj.ExpectedOutput == nil {
		return reimbursement.Case{}, ErrMissingExpected
	}

	trip, err := reimbursement.NewTrip(
		cj.Input.TripDurationDays,
		cj.Input.MilesTraveled,
		cj.Input.TotalReceiptsAmount,
	)
	if err != nil {
		return reimbursement.Case{}, err
	}

	return reimbursement.Case{Trip: trip, Expected: *cj.ExpectedOutput}, nil
}

// ToJSON converts a case back to its JSON representation.
func (f *CaseFactory) ToJSON(c reimbursement.Case) CaseJSON {
	expected := c.Expected
	return CaseJSON{
		Input: InputJSON{
			TripDurationDays:    c.Trip.Days,
			MilesTraveled:       c.Trip.Miles,
			TotalReceiptsAmount: c.Trip.Receipts,
		},
		ExpectedOutput: &expected,
	}
}
