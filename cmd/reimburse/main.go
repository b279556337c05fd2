/*
main.go - Application entry point

PURPOSE:
  Runs the reimburse command: three positional arguments in, one amount
  out on stdout.

STARTUP SEQUENCE:
  1. Build the stderr logger
  2. Build the calculator
  3. Execute the cobra command
  4. Map the outcome to an exit code

EXIT CODES:
  0  amount printed
  1  wrong argument count (usage already printed to stdout)
  1  invalid input, logged to stderr

EXAMPLES:
  ./reimburse 4 69 2321.00     # 322.0
  ./reimburse 5 900 100        # 979.0

ENVIRONMENT:
  None. No flags, no environment variables, no files.

SEE ALSO:
  - cli/root.go: Argument parsing and output format
  - reimbursement/calculator.go: The calculation
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/warp/reimbursement-engine/cli"
	"github.com/warp/reimbursement-engine/logging"
	"github.com/warp/reimbursement-engine/reimbursement"
	"go.uber.org/zap"
)

func main() {
	logger, err := logging.New(logging.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	code := run(os.Args[1:], os.Stdout, logger)
	logger.Sync()
	os.Exit(code)
}

// run executes the command against args and returns the process exit code.
func run(args []string, stdout io.Writer, logger *zap.Logger) int {
	calc := reimbursement.New(reimbursement.WithLogger(logger))
	cmd := cli.NewRootCommand(calc, logger)
	cmd.SetOut(stdout)
	// cobra reads os.Args when given nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			logger.Error("reimbursement failed", zap.Error(err))
		}
		return 1
	}
	return 0
}
