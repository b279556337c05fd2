package evaluation_test

import (
	_ "embed"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/reimbursement-engine/evaluation"
	"github.com/warp/reimbursement-engine/factory"
	"github.com/warp/reimbursement-engine/generic"
	"github.com/warp/reimbursement-engine/reimbursement"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Outputs of the legacy program for inputs spread over every rule.
//
//go:embed testdata/legacy_cases.json
var legacyCases []byte

// =============================================================================
// TEST HELPERS
// =============================================================================

type fixedCalculator struct {
	amount decimal.Decimal
	err    error
}

func (f fixedCalculator) Calculate(reimbursement.Trip) (reimbursement.Result, error) {
	return reimbursement.Result{Amount: generic.Dollars(f.amount), Rule: reimbursement.RuleStandardPerDiem}, f.err
}

func mustCase(t *testing.T, days int, miles float64, receipts, expected string) reimbursement.Case {
	t.Helper()
	trip, err := reimbursement.NewTrip(days, miles, decimal.RequireFromString(receipts))
	require.NoError(t, err)
	return reimbursement.Case{Trip: trip, Expected: decimal.RequireFromString(expected)}
}

// =============================================================================
// LEGACY REGRESSION
// =============================================================================

func TestEvaluate_ReproducesLegacyOutputs(t *testing.T) {
	// GIVEN: Cases recorded from the legacy program
	// WHEN: Replaying them through the calculator
	// THEN: Every case matches to the cent

	cases, err := factory.NewCaseFactory().ParseCases(legacyCases)
	require.NoError(t, err)
	require.Len(t, cases, 40)

	report, err := evaluation.Evaluate(reimbursement.New(), cases)
	require.NoError(t, err)

	for _, o := range report.Worst {
		assert.True(t, o.AbsError.Value.IsZero(), "case %d (%d days, %v miles, $%s): expected %s, got %s via %s",
			o.Index, o.Case.Trip.Days, o.Case.Trip.Miles, o.Case.Trip.Receipts,
			o.Case.Expected, o.Actual, o.Rule)
	}
	assert.Equal(t, 40, report.ExactMatches)
	assert.Equal(t, 40, report.CloseMatches)
	assert.True(t, report.Score.IsZero(), "score %s", report.Score)
	assert.Equal(t, 1.0, report.ExactRate())
}

func TestEvaluate_LegacyCasesCoverEveryRule(t *testing.T) {
	cases, err := factory.NewCaseFactory().ParseCases(legacyCases)
	require.NoError(t, err)

	calc := reimbursement.New()
	report, err := evaluation.Evaluate(calc, cases)
	require.NoError(t, err)

	for _, rule := range calc.Rules() {
		assert.Positive(t, report.RuleHits[rule], "no fixture exercises %s", rule)
	}
}

// =============================================================================
// STATISTICS
// =============================================================================

func TestEvaluate_Statistics(t *testing.T) {
	cases := []reimbursement.Case{
		mustCase(t, 1, 10, "5", "100"),
		mustCase(t, 2, 10, "5", "100.50"),
		mustCase(t, 3, 10, "5", "300.50"),
	}

	report, err := evaluation.Evaluate(fixedCalculator{amount: decimal.NewFromInt(100)}, cases, evaluation.WithWorst(2))
	require.NoError(t, err)

	assert.Equal(t, 3, report.Cases)
	assert.Equal(t, 1, report.ExactMatches)
	assert.Equal(t, 2, report.CloseMatches)
	assert.Equal(t, "201.00", report.TotalError.StringFixed(2))
	assert.Equal(t, "67.00", report.AverageError.StringFixed(2))
	assert.Equal(t, "200.50", report.MaxError.StringFixed(2))
	// 67*100 + 2*0.1
	assert.Equal(t, "6700.20", report.Score.StringFixed(2))
	assert.Equal(t, 3, report.RuleHits[reimbursement.RuleStandardPerDiem])

	require.Len(t, report.Worst, 2)
	assert.Equal(t, 2, report.Worst[0].Index)
	assert.Equal(t, 1, report.Worst[1].Index)
	assert.False(t, report.Worst[0].Close())
	assert.True(t, report.Worst[1].Close())
	assert.False(t, report.Worst[1].Exact())
	assert.Equal(t, "200.50 dollars", report.Worst[0].AbsError.String())
	assert.Equal(t, generic.UnitDollars, report.Worst[0].Actual.Unit)
}

func TestEvaluate_Empty(t *testing.T) {
	report, err := evaluation.Evaluate(reimbursement.New(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Cases)
	assert.True(t, report.Score.IsZero())
	assert.Equal(t, 0.0, report.ExactRate())
	assert.Empty(t, report.Worst)
}

func TestEvaluate_CalculatorError(t *testing.T) {
	boom := errors.New("boom")
	cases := []reimbursement.Case{mustCase(t, 1, 10, "5", "100")}

	_, err := evaluation.Evaluate(fixedCalculator{err: boom}, cases)
	assert.True(t, errors.Is(err, boom))
	assert.ErrorContains(t, err, "case 0")
}

func TestReport_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cases := []reimbursement.Case{
		mustCase(t, 1, 10, "5", "100"),
		mustCase(t, 2, 10, "5", "150"),
	}

	report, err := evaluation.Evaluate(fixedCalculator{amount: decimal.NewFromInt(100)}, cases)
	require.NoError(t, err)
	report.Log(zap.New(core))

	require.Equal(t, 1, logs.FilterMessage("evaluation complete").Len())
	high := logs.FilterMessage("high error case").All()
	require.Len(t, high, 1, "zero-error cases are not logged")
	assert.Equal(t, "150.00", high[0].ContextMap()["expected"])
	assert.Equal(t, "50.00", high[0].ContextMap()["error"])
}
