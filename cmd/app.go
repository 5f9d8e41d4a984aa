package main

import (
	"context"
	"errors"
	"loanbook/internal/config"
	"loanbook/internal/logic"
	"loanbook/pkg/domain"
	"loanbook/pkg/logger"
	"loanbook/pkg/metrics"
	"loanbook/pkg/serrors"
	"loanbook/pkg/storage/jsonfile"

	"go.uber.org/zap"
)

// readPrefs loads the user preferences. Missing or unreadable preferences fall
// back to the defaults derived from cfg.
func readPrefs(ctx context.Context, cfg *config.Config) domain.UserPrefs {
	defaults := domain.DefaultUserPrefs(cfg.Storage.AddressBookPath)

	prefs, err := jsonfile.New(jsonfile.Options{UserPrefsPath: cfg.Storage.UserPrefsPath}).ReadUserPrefs(ctx)
	switch {
	case errors.Is(err, serrors.ErrInvalidValue):
		logger.Warn(ctx, "user prefs file is not in the correct format, using defaults", zap.Error(err))

		return defaults
	case err != nil:
		logger.Warn(ctx, "could not read user prefs, using defaults", zap.Error(err))

		return defaults
	case prefs == nil:
		return defaults
	}

	if prefs.AddressBookFilePath == "" {
		prefs.AddressBookFilePath = defaults.AddressBookFilePath
	}

	return *prefs
}

// setupLogic wires storage, model and metrics into a logic instance.
func setupLogic(ctx context.Context, cfg *config.Config, options logic.Options) (logic.Logic, error) {
	prefs := readPrefs(ctx, cfg)

	strg := jsonfile.New(jsonfile.Options{
		AddressBookPath: prefs.AddressBookFilePath,
		UserPrefsPath:   cfg.Storage.UserPrefsPath,
	})

	m, err := logic.LoadModel(ctx, strg, prefs)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Debug(ctx, "address book loaded",
		zap.String("path", strg.AddressBookFilePath()),
		zap.Int("persons", len(m.AddressBook().PersonList())),
		zap.Int("loans", len(m.AddressBook().LoanList())),
		zap.Bool("dryRun", options.DryRun))

	return logic.New(logic.Deps{
		Model:   m,
		Storage: strg,
		Metrics: metrics.NewCommands(cfg.Metrics.TextfilePath),
	}, options), nil
}

// mustSetupLogic is setupLogic for commands that cannot run without data. It
// exits the process when the address book cannot be loaded.
func mustSetupLogic(ctx context.Context, cfg *config.Config, options logic.Options) logic.Logic {
	l, err := setupLogic(ctx, cfg, options)
	if err != nil {
		logger.Fatal(ctx, "could not load address book", zap.Error(err))
	}

	return l
}
