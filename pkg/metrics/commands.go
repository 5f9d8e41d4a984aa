package metrics

import (
	"fmt"
	"loanbook/pkg/serrors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ResultSuccess is the result label of a command that succeeded.
const ResultSuccess = "success"

// Commands records how often each command ran, how it ended and how long it
// took. It owns a private registry so that nothing else ends up in the
// textfile it writes.
type Commands struct {
	registry     *prometheus.Registry
	total        *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	textfilePath string
}

// NewCommands creates the command collectors. When textfilePath is empty,
// WriteTextfile does nothing.
func NewCommands(textfilePath string) *Commands {
	c := &Commands{
		registry:     prometheus.NewRegistry(),
		textfilePath: textfilePath,
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loanbook",
			Name:      "commands_total",
			Help:      "Number of executed commands by command word and result.",
		}, []string{"command", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "loanbook",
			Name:      "command_duration_seconds",
			Help:      "Command execution latency in seconds, persistence included.",
			Buckets:   DefaultBuckets,
		}, []string{"command"}),
	}
	c.registry.MustRegister(c.total, c.duration)

	return c
}

// Observe records one execution of command. err decides the result label:
// "success", or the lowercased error kind such as "command_failed".
func (c *Commands) Observe(command string, took time.Duration, err error) {
	if command == "" {
		command = "unknown"
	}

	c.total.WithLabelValues(command, Result(err)).Inc()
	c.duration.WithLabelValues(command).Observe(took.Seconds())
}

// Result maps err to a result label.
func Result(err error) string {
	if err == nil {
		return ResultSuccess
	}
	if kind := serrors.KindOf(err); kind != nil {
		return strings.ToLower(kind.Error())
	}

	return "error"
}

// Registry returns the registry holding the command collectors.
func (c *Commands) Registry() *prometheus.Registry { return c.registry }

// WriteTextfile writes the current values in the node-exporter textfile
// format, replacing the previous file.
func (c *Commands) WriteTextfile() error {
	if c.textfilePath == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(c.textfilePath, c.registry); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}
