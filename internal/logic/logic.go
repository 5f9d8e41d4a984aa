// Package logic runs user commands: it parses the input, executes the command
// against the model and persists the address book when it changed.
package logic

import (
	"context"
	"errors"
	"fmt"
	"loanbook/internal/logic/command"
	"loanbook/internal/logic/parser"
	"loanbook/internal/model"
	"loanbook/pkg/addressbook"
	"loanbook/pkg/domain"
	"loanbook/pkg/logger"
	"loanbook/pkg/metrics"
	"loanbook/pkg/serrors"
	"loanbook/pkg/storage"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MessageSaveFailed is reported when the address book could not be written.
const MessageSaveFailed = "Could not save data to file: %s"

// Options configure how commands are executed.
type Options struct {
	// DryRun keeps every change in memory and never writes the address book.
	DryRun bool
}

// Deps are the collaborators of the logic service.
type Deps struct {
	Model   model.Model
	Storage storage.Storage
	// Metrics is optional.
	Metrics *metrics.Commands
}

// logic is the concrete implementation of the Logic interface.
type logic struct {
	options Options
	model   model.Model
	storage storage.Storage
	metrics *metrics.Commands
}

// Execute parses and runs text. Every call gets its own command ID in the
// logs. When the command changed the address book it is saved before
// returning; a failed save is reported as an serrors.ErrStorage error.
func (l *logic) Execute(ctx context.Context, text string) (res command.Result, err error) {
	word, _ := parser.SplitCommandWord(text)
	if !parser.IsCommandWord(word) {
		word = "unknown"
	}
	ctx = logger.WithFields(ctx,
		zap.String("commandID", uuid.New().String()),
		zap.String("command", word))

	start := time.Now()
	defer func() { l.record(ctx, word, time.Since(start), err) }()

	cmd, err := parser.Parse(text)
	if err != nil {
		logger.Debug(ctx, "could not parse command", zap.Error(err))

		return command.Result{}, err //nolint: wrapcheck
	}

	res, err = cmd.Execute(ctx, l.model)
	if err != nil {
		logger.Debug(ctx, "command failed", zap.Error(err))

		return command.Result{}, err //nolint: wrapcheck
	}

	if err := l.persist(ctx); err != nil {
		return command.Result{}, err
	}

	logger.Info(ctx, "command executed")
	if logger.IsDebug(ctx) {
		book := l.model.AddressBook()
		logger.Debug(ctx, "address book state",
			zap.Int("persons", len(book.PersonList())),
			zap.Int("loans", len(book.LoanList())),
			zap.Bool("dirty", l.model.Dirty()))
	}

	return res, nil
}

// persist saves the address book if the model changed since the last save.
func (l *logic) persist(ctx context.Context) error {
	if !l.model.Dirty() || l.options.DryRun {
		return nil
	}

	path := l.storage.AddressBookFilePath()
	if err := l.storage.SaveAddressBook(ctx, l.model.AddressBook()); err != nil {
		logger.Error(ctx, "could not save address book", zap.String("path", path), zap.Error(err))

		return serrors.Wrap(serrors.ErrStorage, err, MessageSaveFailed, path)
	}
	l.model.MarkSaved()

	return nil
}

func (l *logic) record(ctx context.Context, word string, took time.Duration, err error) {
	if l.metrics == nil {
		return
	}

	l.metrics.Observe(word, took, err)
	if err := l.metrics.WriteTextfile(); err != nil {
		logger.Warn(ctx, "could not write metrics", zap.Error(err))
	}
}

func (l *logic) FilteredPersonList() []domain.Person { return l.model.FilteredPersonList() }

func (l *logic) SortedLoanList() []domain.Loan { return l.model.SortedLoanList() }

func (l *logic) PersonInView() (domain.Person, bool) { return l.model.PersonInView() }

func (l *logic) AddressBookFilePath() string { return l.storage.AddressBookFilePath() }

// Shutdown saves the user preferences, including the person in view.
func (l *logic) Shutdown(ctx context.Context) error {
	prefs := l.model.UserPrefs()
	prefs.AddressBookFilePath = l.storage.AddressBookFilePath()

	if err := l.storage.SaveUserPrefs(ctx, prefs); err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "Could not save preferences to file: %s",
			l.storage.UserPrefsFilePath())
	}
	logger.Debug(ctx, "user prefs saved", zap.String("viewedPerson", string(prefs.ViewedPerson)))

	return nil
}

// New creates a new Logic instance operating on deps.Model and persisting
// through deps.Storage.
func New(deps Deps, options Options) Logic {
	return &logic{
		options: options,
		model:   deps.Model,
		storage: deps.Storage,
		metrics: deps.Metrics,
	}
}

// LoadModel reads the address book from s and builds a model from it and
// prefs. A missing file starts with the sample data; a file that cannot be
// understood starts with an empty address book.
func LoadModel(ctx context.Context, s storage.AddressBookStorage, prefs domain.UserPrefs) (*model.Manager, error) {
	ctx = logger.WithFields(ctx, zap.String("path", s.AddressBookFilePath()))

	book, err := s.ReadAddressBook(ctx)
	switch {
	case errors.Is(err, serrors.ErrInvalidValue):
		logger.Warn(ctx, "data file is not in the correct format, starting with an empty address book",
			zap.Error(err))

		return model.New(nil, prefs) //nolint: wrapcheck
	case err != nil:
		return nil, fmt.Errorf("could not read address book: %w", err)
	case book == nil:
		logger.Info(ctx, "data file not found, starting with a sample address book")

		return model.New(addressbook.SampleData(), prefs) //nolint: wrapcheck
	default:
		return model.New(book, prefs) //nolint: wrapcheck
	}
}
