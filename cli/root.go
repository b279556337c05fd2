/*
Package cli is the command-line boundary of the reimbursement engine.

PURPOSE:
  Turns three positional arguments into a validated trip, computes the
  reimbursement and prints it. Everything outside the calculation lives
  here: argument count, number parsing, validation and output format.

USAGE:
  reimburse <trip_duration_days> <miles_traveled> <total_receipts_amount>

  $ reimburse 5 900 100
  979.0

EXIT CODES (see cmd/reimburse):
  0  amount printed
  1  wrong argument count (usage on stdout) or unparseable/invalid input

FLAGS:
  None. Flag parsing is disabled so that every argument, including one
  that starts with "-", is positional.
*/
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/warp/reimbursement-engine/reimbursement"
	"go.uber.org/zap"
)

// Usage is printed to stdout when the argument count is wrong.
const Usage = "Usage: reimburse <trip_duration_days> <miles_traveled> <total_receipts_amount>"

// ErrUsage is returned when the command is not given exactly three arguments.
var ErrUsage = errors.New("expected 3 arguments")

// ParseError reports an argument that is not a number of the expected kind.
type ParseError struct {
	Arg   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s %q: %v", e.Arg, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewRootCommand builds the reimburse command around calc.
func NewRootCommand(calc *reimbursement.Calculator, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "reimburse <trip_duration_days> <miles_traveled> <total_receipts_amount>",
		Short:              "Compute a travel reimbursement",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				fmt.Fprintln(cmd.OutOrStdout(), Usage)
				return ErrUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := ParseTrip(args)
			if err != nil {
				return err
			}

			res, err := calc.Calculate(trip)
			if err != nil {
				return err
			}

			logger.Debug("reimbursement printed",
				zap.String("rule", string(res.Rule)),
				zap.Stringer("amount", res.Amount),
			)
			fmt.Fprintln(cmd.OutOrStdout(), FormatAmount(res.Float64()))
			return nil
		},
	}
}

// ParseTrip parses and validates the three positional arguments.
func ParseTrip(args []string) (reimbursement.Trip, error) {
	if len(args) != 3 {
		return reimbursement.Trip{}, ErrUsage
	}

	days, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return reimbursement.Trip{}, &ParseError{Arg: "trip_duration_days", Value: args[0], Err: err}
	}
	miles, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
	if err != nil {
		return reimbursement.Trip{}, &ParseError{Arg: "miles_traveled", Value: args[1], Err: err}
	}
	receipts, err := decimal.NewFromString(strings.TrimSpace(args[2]))
	if err != nil {
		return reimbursement.Trip{}, &ParseError{Arg: "total_receipts_amount", Value: args[2], Err: err}
	}

	return reimbursement.NewTrip(days, miles, receipts)
}

// FormatAmount prints the shortest representation of v with at least one
// fractional digit: 322 -> "322.0", 1475.52 -> "1475.52".
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
