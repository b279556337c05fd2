package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/reimbursement-engine/cli"
	"github.com/warp/reimbursement-engine/generic"
	"github.com/warp/reimbursement-engine/reimbursement"
	"go.uber.org/zap"
)

func run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := cli.NewRootCommand(reimbursement.New(), zap.NewNop())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// a nil slice makes cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_PrintsAmount(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"4", "69", "2321.00"}, "322.0\n"},
		{[]string{"1", "1002", "2320.00"}, "1475.52\n"},
		{[]string{"1", "1500", "500"}, "605.0\n"},
		{[]string{"5", "900", "100.00"}, "979.0\n"},
		{[]string{"2", "50", "1600.49"}, "1395.83\n"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			out, err := run(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRoot_WrongArgumentCountPrintsUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"1"}, {"1", "2"}, {"1", "2", "3", "4"}, {"--help"}} {
		out, err := run(args...)
		assert.True(t, errors.Is(err, cli.ErrUsage), "args %v", args)
		assert.Equal(t, cli.Usage+"\n", out)
	}
}

func TestRoot_ParseErrors(t *testing.T) {
	tests := []struct {
		args []string
		arg  string
	}{
		{[]string{"three", "10", "10"}, "trip_duration_days"},
		{[]string{"2.5", "10", "10"}, "trip_duration_days"},
		{[]string{"3", "far", "10"}, "miles_traveled"},
		{[]string{"3", "10", "$10"}, "total_receipts_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, err := run(tt.args...)
			var parseErr *cli.ParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			assert.Equal(t, tt.arg, parseErr.Arg)
			assert.Empty(t, out)
		})
	}
}

func TestRoot_NegativeNumbersArePositional(t *testing.T) {
	// Flag parsing is off, so "-5" reaches validation instead of cobra.
	_, err := run("3", "-5", "10")
	assert.True(t, errors.Is(err, generic.ErrNegativeMiles), "got %v", err)
}

func TestRoot_ZeroDaysRejected(t *testing.T) {
	_, err := run("0", "5", "10")
	assert.True(t, generic.IsClientError(err))
}

func TestParseTrip_TrimsWhitespace(t *testing.T) {
	trip, err := cli.ParseTrip([]string{" 3 ", "93", "1.42\n"})
	require.NoError(t, err)
	assert.Equal(t, 3, trip.Days)
	assert.Equal(t, "1.42", trip.Receipts.String())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "322.0", cli.FormatAmount(322))
	assert.Equal(t, "1475.52", cli.FormatAmount(1475.52))
	assert.Equal(t, "0.5", cli.FormatAmount(0.5))
	assert.Equal(t, "0.0", cli.FormatAmount(0))
}
