package reimbursement

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/warp/reimbursement-engine/generic"
	"go.uber.org/zap"
)

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator computes reimbursements under the legacy policy.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	rules  *generic.Cascade[claim]
	logger *zap.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger logs every computation at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a calculator for the legacy policy.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		rules:  policy,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCalculator = New()

// Compute returns the reimbursement for a trip, rounded to cents.
// Inputs are not validated; days <= 0 is evaluated with zero efficiency.
func Compute(days int, miles, receipts float64) float64 {
	return defaultCalculator.Compute(days, miles, receipts)
}

// Compute returns the reimbursement for a trip, rounded to cents.
// Inputs are not validated; days <= 0 is evaluated with zero efficiency.
func (c *Calculator) Compute(days int, miles, receipts float64) float64 {
	t := Trip{Days: days, Miles: miles, Receipts: receiptsDecimal(receipts)}
	res, err := c.evaluate(t, receipts)
	if err != nil {
		// unreachable: policy ends in a catch-all rule
		c.logger.Error("reimbursement policy has no matching rule", zap.Error(err))
		return 0
	}
	return res.Float64()
}

// Calculate validates the trip and returns the reimbursement with the rule
// that produced it.
func (c *Calculator) Calculate(t Trip) (Result, error) {
	if err := t.Validate(); err != nil {
		return Result{}, err
	}
	return c.evaluate(t, t.Receipts.InexactFloat64())
}

// Explain returns the rule that would price the trip, without computing it.
func (c *Calculator) Explain(t Trip) RuleName {
	return RuleName(c.rules.Match(newClaim(t, t.Receipts.InexactFloat64())))
}

// Rules lists the policy's rules in evaluation order.
func (c *Calculator) Rules() []RuleName {
	names := c.rules.Names()
	rules := make([]RuleName, len(names))
	for i, n := range names {
		rules[i] = RuleName(n)
	}
	return rules
}

func (c *Calculator) evaluate(t Trip, receipts float64) (Result, error) {
	in := newClaim(t, receipts)
	out, err := c.rules.Evaluate(in)
	if err != nil {
		return Result{}, fmt.Errorf("evaluate trip (%d days, %v miles, %s receipts): %w",
			t.Days, t.Miles, t.Receipts, err)
	}

	res := Result{Amount: generic.Dollars(generic.RoundCents(out.Value)), Rule: RuleName(out.Rule)}
	c.logger.Debug("reimbursement computed",
		zap.String("rule", out.Rule),
		zap.Int("days", in.days),
		zap.Float64("miles", in.miles),
		zap.Float64("receipts", in.receipts),
		zap.Float64("efficiency", in.efficiency),
		zap.String("amount", res.Amount.Cents()),
	)
	return res, nil
}

// newClaim takes receipts as a float separately so Compute can use the
// caller's float unchanged.
func newClaim(t Trip, receipts float64) claim {
	return claim{
		days:       t.Days,
		miles:      t.Miles,
		receipts:   receipts,
		efficiency: t.Efficiency(),
		cents:      t.ReceiptCents(),
	}
}

// receiptsDecimal converts a float receipts total for cent detection.
// decimal.NewFromFloat panics on NaN and infinities.
func receiptsDecimal(receipts float64) decimal.Decimal {
	if math.IsNaN(receipts) || math.IsInf(receipts, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(receipts)
}
