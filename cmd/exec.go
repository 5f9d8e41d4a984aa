package main

import (
	"context"
	"loanbook/internal/config"
	"loanbook/internal/logic"
	"loanbook/pkg/logger"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// execCommand constructs the 'exec' subcommand that runs a single command and
// exits with a non-zero status if it fails.
func execCommand(cfg *config.Config) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:           "exec [flags] -- <command>",
		Short:         "Runs a single command",
		Example:       "  loanbook exec -- linkloan 1 v/50 d/lunch",
		Args:          cobra.MinimumNArgs(1),
		// the command outcome is already printed
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			l := mustSetupLogic(ctx, cfg, logic.Options{DryRun: dryRun})

			res, execErr := l.Execute(ctx, strings.Join(args, " "))
			render(cmd.OutOrStdout(), l, res, execErr)

			if err := l.Shutdown(ctx); err != nil {
				logger.Error(ctx, "could not save user prefs", zap.Error(err))
			}

			return execErr //nolint: wrapcheck
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Do not write changes to the data file")

	return cmd
}
