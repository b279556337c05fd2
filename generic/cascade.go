/*
cascade.go - Ordered first-match-wins rule evaluation

PURPOSE:
  A Cascade is the generic form of a heuristic policy: an ordered list of
  named rules, each a guard plus a formula. Evaluation walks the list and
  the first rule whose guard accepts the input produces the result. Later
  rules are not guarded against earlier ones, so order is part of the
  policy and must be preserved exactly.

KEY CONCEPTS:
  - Rule: Name + When (guard) + Then (formula)
  - Outcome: Which rule fired and the raw (unrounded) value it produced
  - Catch-all: A final rule whose guard is Always; a cascade ending in one
    is total and never returns ErrNoRuleMatched

EXAMPLE:
  c := generic.NewCascade(
      generic.Rule[float64]{Name: "big", When: func(x float64) bool { return x > 10 },
          Then: func(x float64) float64 { return x * 0.5 }},
      generic.Rule[float64]{Name: "default", When: generic.Always[float64],
          Then: func(x float64) float64 { return x }},
  )
  out, err := c.Evaluate(12) // out.Rule == "big", out.Value == 6
*/
package generic

// =============================================================================
// RULE
// =============================================================================

// Rule is one guarded formula of a cascade.
type Rule[T any] struct {
	Name string
	When func(T) bool
	Then func(T) float64
}

// Always is a guard that accepts every input.
func Always[T any](T) bool { return true }

// Outcome is the result of evaluating a cascade.
type Outcome struct {
	Rule  string
	Value float64
}

// =============================================================================
// CASCADE
// =============================================================================

// Cascade evaluates rules in order; the first matching rule wins.
// A Cascade is immutable after construction and safe for concurrent use.
type Cascade[T any] struct {
	rules []Rule[T]
}

// NewCascade creates a cascade evaluating rules in the given order.
func NewCascade[T any](rules ...Rule[T]) *Cascade[T] {
	return &Cascade[T]{rules: append([]Rule[T](nil), rules...)}
}

// Evaluate returns the outcome of the first rule whose guard accepts in.
func (c *Cascade[T]) Evaluate(in T) (Outcome, error) {
	for _, r := range c.rules {
		if r.When(in) {
			return Outcome{Rule: r.Name, Value: r.Then(in)}, nil
		}
	}
	return Outcome{}, ErrNoRuleMatched
}

// Match returns the name of the rule that would fire for in, or "" if none.
func (c *Cascade[T]) Match(in T) string {
	for _, r := range c.rules {
		if r.When(in) {
			return r.Name
		}
	}
	return ""
}

// Names lists rule names in evaluation order.
func (c *Cascade[T]) Names() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name
	}
	return names
}
