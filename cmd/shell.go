package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"loanbook/internal/config"
	"loanbook/internal/logic"
	"loanbook/pkg/logger"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const welcome = "Welcome to the loan book! Type 'help' to see the available commands."

// shellCommand constructs the 'shell' subcommand that reads commands line by
// line until 'exit' or the end of input.
func shellCommand(cfg *config.Config) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Starts an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			l := mustSetupLogic(ctx, cfg, logic.Options{DryRun: dryRun})

			runShell(ctx, l, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Shell.Prompt)

			// the interrupt context may be done already
			if err := l.Shutdown(context.WithoutCancel(ctx)); err != nil {
				logger.Error(ctx, "could not shutdown cleanly", zap.Error(err))

				return err //nolint: wrapcheck
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Do not write changes to the data file")

	return cmd
}

// runShell executes each input line until exit, end of input or ctx is done.
func runShell(ctx context.Context, l logic.Logic, in io.Reader, out io.Writer, prompt string) {
	_, _ = fmt.Fprintln(out, welcome)
	renderPersons(out, l)

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	for {
		_, _ = fmt.Fprint(out, prompt)

		select {
		case <-ctx.Done():
			logger.Info(ctx, "interrupted, leaving shell")

			return
		case line, ok := <-lines:
			if !ok {
				_, _ = fmt.Fprintln(out)

				return
			}

			res, err := l.Execute(ctx, line)
			render(out, l, res, err)
			if err == nil && res.Exit {
				return
			}
		}
	}
}
