package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"loanbook/internal/config"
	"loanbook/pkg/addressbook"
	"loanbook/pkg/logger"
	"loanbook/pkg/storage/jsonfile"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCommand constructs the 'seed' subcommand that writes the sample address
// book to the data file.
func seedCommand(cfg *config.Config) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Writes the sample address book to the data file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			path := readPrefs(ctx, cfg).AddressBookFilePath
			ctx = logger.WithFields(ctx, zap.String("path", path))

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite it", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("could not stat %s: %w", path, err)
			}

			strg := jsonfile.New(jsonfile.Options{AddressBookPath: path})
			if err := strg.SaveAddressBook(ctx, addressbook.SampleData()); err != nil {
				logger.Error(ctx, "could not seed address book", zap.Error(err))

				return err //nolint: wrapcheck
			}

			logger.Info(ctx, "address book seeded")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sample address book written to %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing data file")

	return cmd
}
