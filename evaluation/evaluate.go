/*
Package evaluation scores a calculator against historical claims.

PURPOSE:
  The reimbursement policy is a fit to past payouts, so the only useful
  measure of a change is how far its outputs land from what the legacy
  system paid. Evaluate replays every case and reports match counts,
  error statistics and the cases that miss worst.

SCORING:
  exact match  |actual - expected| < 0.01
  close match  |actual - expected| < 1.00
  score        avgError*100 + (cases - exactMatches)*0.1   (lower is better)

USAGE:
  cases, _ := factory.NewCaseFactory().ParseCases(data)
  report, err := evaluation.Evaluate(reimbursement.New(), cases)
  fmt.Println(report.ExactMatches, report.Score)

SEE ALSO:
  - factory/cases.go: Case file decoding
  - reimbursement/calculator.go: The calculator under test
*/
package evaluation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/warp/reimbursement-engine/generic"
	"github.com/warp/reimbursement-engine/reimbursement"
	"go.uber.org/zap"
)

// =============================================================================
// THRESHOLDS
// =============================================================================

var (
	ExactThreshold = decimal.RequireFromString("0.01")
	CloseThreshold = decimal.RequireFromString("1.00")

	errorWeight   = decimal.NewFromInt(100)
	missPenalty   = decimal.RequireFromString("0.1")
	defaultWorstN = 5
)

// Calculator is what Evaluate needs from a reimbursement calculator.
type Calculator interface {
	Calculate(trip reimbursement.Trip) (reimbursement.Result, error)
}

// =============================================================================
// REPORT
// =============================================================================

// Outcome is one replayed case.
type Outcome struct {
	Index    int
	Case     reimbursement.Case
	Actual   generic.Amount
	Rule     reimbursement.RuleName
	AbsError generic.Amount
}

// Exact reports whether the outcome is within a cent.
func (o Outcome) Exact() bool { return o.AbsError.Value.LessThan(ExactThreshold) }

// Close reports whether the outcome is within a dollar.
func (o Outcome) Close() bool { return o.AbsError.Value.LessThan(CloseThreshold) }

// Report summarizes an evaluation run.
type Report struct {
	Cases        int
	ExactMatches int
	CloseMatches int
	TotalError   decimal.Decimal
	AverageError decimal.Decimal
	MaxError     decimal.Decimal
	Score        decimal.Decimal
	RuleHits     map[reimbursement.RuleName]int
	Worst        []Outcome // largest errors first
}

// ExactRate is the share of cases matched within a cent, in [0,1].
func (r Report) ExactRate() float64 {
	if r.Cases == 0 {
		return 0
	}
	return float64(r.ExactMatches) / float64(r.Cases)
}

// Log writes the report summary and worst cases at info level.
func (r Report) Log(logger *zap.Logger) {
	logger.Info("evaluation complete",
		zap.Int("cases", r.Cases),
		zap.Int("exact_matches", r.ExactMatches),
		zap.Int("close_matches", r.CloseMatches),
		zap.String("average_error", r.AverageError.StringFixed(2)),
		zap.String("max_error", r.MaxError.StringFixed(2)),
		zap.String("score", r.Score.StringFixed(2)),
	)
	for _, o := range r.Worst {
		if o.AbsError.Value.IsZero() {
			continue
		}
		logger.Info("high error case",
			zap.Int("case", o.Index),
			zap.Int("days", o.Case.Trip.Days),
			zap.Float64("miles", o.Case.Trip.Miles),
			zap.String("receipts", o.Case.Trip.Receipts.StringFixed(2)),
			zap.String("expected", o.Case.Expected.StringFixed(2)),
			zap.String("actual", o.Actual.Cents()),
			zap.String("error", o.AbsError.Cents()),
			zap.String("rule", string(o.Rule)),
		)
	}
}

// =============================================================================
// EVALUATE
// =============================================================================

// Option configures an evaluation run.
type Option func(*options)

type options struct {
	worstN int
}

// WithWorst sets how many of the worst cases the report keeps.
func WithWorst(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.worstN = n
		}
	}
}

// Evaluate replays every case through calc.
func Evaluate(calc Calculator, cases []reimbursement.Case, opts ...Option) (Report, error) {
	o := options{worstN: defaultWorstN}
	for _, opt := range opts {
		opt(&o)
	}

	report := Report{
		Cases:    len(cases),
		RuleHits: make(map[reimbursement.RuleName]int),
	}
	outcomes := make([]Outcome, 0, len(cases))

	for i, c := range cases {
		res, err := calc.Calculate(c.Trip)
		if err != nil {
			return Report{}, fmt.Errorf("case %d: %w", i, err)
		}

		out := Outcome{
			Index:    i,
			Case:     c,
			Actual:   res.Amount,
			Rule:     res.Rule,
			AbsError: res.Amount.Sub(generic.Dollars(c.Expected)).Abs(),
		}
		outcomes = append(outcomes, out)

		report.RuleHits[res.Rule]++
		report.TotalError = report.TotalError.Add(out.AbsError.Value)
		if out.AbsError.Value.GreaterThan(report.MaxError) {
			report.MaxError = out.AbsError.Value
		}
		if out.Exact() {
			report.ExactMatches++
		}
		if out.Close() {
			report.CloseMatches++
		}
	}

	if report.Cases > 0 {
		report.AverageError = report.TotalError.Div(decimal.NewFromInt(int64(report.Cases)))
	}
	misses := decimal.NewFromInt(int64(report.Cases - report.ExactMatches))
	report.Score = report.AverageError.Mul(errorWeight).Add(misses.Mul(missPenalty))

	sort.SliceStable(outcomes, func(a, b int) bool {
		return outcomes[a].AbsError.Value.GreaterThan(outcomes[b].AbsError.Value)
	})
	if len(outcomes) > o.worstN {
		outcomes = outcomes[:o.worstN]
	}
	report.Worst = outcomes

	return report, nil
}
