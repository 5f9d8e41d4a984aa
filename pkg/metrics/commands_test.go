package metrics_test

import (
	"errors"
	"fmt"
	"loanbook/pkg/metrics"
	"loanbook/pkg/serrors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	require.Equal(t, metrics.ResultSuccess, metrics.Result(nil))
	require.Equal(t, "command_failed", metrics.Result(fmt.Errorf("x: %w", serrors.With(serrors.ErrCommand, "failed"))))
	require.Equal(t, "invalid_format", metrics.Result(serrors.With(serrors.ErrInvalidFormat, "bad")))
	require.Equal(t, "error", metrics.Result(errors.New("plain")))
}

func TestCommands_Observe(t *testing.T) {
	c := metrics.NewCommands("")

	c.Observe("markloan", time.Millisecond, nil)
	c.Observe("markloan", 2*time.Millisecond, nil)
	c.Observe("markloan", time.Millisecond, serrors.With(serrors.ErrCommand, "failed"))
	c.Observe("", time.Millisecond, serrors.With(serrors.ErrInvalidFormat, "bad"))

	expected := `
# HELP loanbook_commands_total Number of executed commands by command word and result.
# TYPE loanbook_commands_total counter
loanbook_commands_total{command="markloan",result="command_failed"} 1
loanbook_commands_total{command="markloan",result="success"} 2
loanbook_commands_total{command="unknown",result="invalid_format"} 1
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected),
		"loanbook_commands_total"))
	require.Equal(t, 2, testutil.CollectAndCount(c.Registry(), "loanbook_command_duration_seconds"))

	// no path configured
	require.NoError(t, c.WriteTextfile())
}

func TestCommands_WriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loanbook.prom")
	c := metrics.NewCommands(path)
	c.Observe("list", time.Millisecond, nil)

	require.NoError(t, c.WriteTextfile())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `loanbook_commands_total{command="list",result="success"} 1`)
	require.Contains(t, string(raw), `loanbook_command_duration_seconds_bucket{command="list",le="0.001"} 1`)
}
