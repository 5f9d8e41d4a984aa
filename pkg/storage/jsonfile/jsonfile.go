// Package jsonfile provides a storage.Storage implementation that keeps the
// address book and the user preferences in JSON files on the local disk.
//
// The address book codec is written by hand on top of go-faster/jx so that
// missing and malformed fields can be reported precisely. Preferences are a
// flat struct and go through json-iterator.
package jsonfile

import (
	"context"
	"loanbook/pkg/addressbook"
	"loanbook/pkg/domain"
	"loanbook/pkg/logger"
	"loanbook/pkg/serrors"
	"loanbook/pkg/storage"

	"github.com/go-faster/jx"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Options defines where the JSON files live.
type Options struct {
	// AddressBookPath is the address book file.
	AddressBookPath string
	// UserPrefsPath is the preferences file.
	UserPrefsPath string
}

// BackupSuffix is appended to the address book path to name the copy of a
// rejected file.
const BackupSuffix = ".bak"

// Storage implements storage.Storage on top of two JSON files.
type Storage struct {
	options Options
	// rejected is set when the last read refused the address book file. The
	// next save keeps a copy of that file before replacing it.
	rejected bool
}

var _ storage.Storage = (*Storage)(nil)

// New returns a Storage reading and writing the files named in options.
// Files are created on the first save.
func New(options Options) *Storage {
	return &Storage{options: options}
}

// AddressBookFilePath returns the address book file path.
func (s *Storage) AddressBookFilePath() string { return s.options.AddressBookPath }

// UserPrefsFilePath returns the preferences file path.
func (s *Storage) UserPrefsFilePath() string { return s.options.UserPrefsPath }

// ReadAddressBook loads the address book file. It returns nil when the file
// does not exist.
func (s *Storage) ReadAddressBook(ctx context.Context) (*addressbook.AddressBook, error) {
	ctx = logger.WithFields(ctx, zap.String("path", s.options.AddressBookPath))

	data, err := readFile(s.options.AddressBookPath)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrStorage, err, "could not read address book")
	}
	if data == nil {
		logger.Info(ctx, "address book file not found")

		return nil, nil //nolint: nilnil
	}

	book, err := decodeAddressBook(data)
	if err != nil {
		s.rejected = true
		logger.Warn(ctx, "address book file rejected", zap.Error(err))

		return nil, err
	}
	s.rejected = false

	logger.Debug(ctx, "address book loaded",
		zap.Int("persons", len(book.PersonList())),
		zap.Int("loans", len(book.LoanList())))

	return book, nil
}

func decodeAddressBook(data []byte) (*addressbook.AddressBook, error) {
	d := jx.DecodeBytes(data)

	var raw JSONAddressBook
	if err := raw.Decode(d); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidValue, err, "address book file is not valid JSON")
	}
	if d.Next() != jx.Invalid {
		return nil, serrors.With(serrors.ErrInvalidValue, "address book file has data after the top-level object")
	}

	return raw.ToDomain() //nolint: wrapcheck
}

// SaveAddressBook writes book to the address book file, replacing it
// atomically. Missing parent directories are created. If the last read
// rejected the file, it is first copied to the path with BackupSuffix.
func (s *Storage) SaveAddressBook(ctx context.Context, book addressbook.ReadOnly) error {
	if s.rejected {
		backup := s.options.AddressBookPath + BackupSuffix
		if err := copyFile(s.options.AddressBookPath, backup); err != nil {
			return serrors.Wrap(serrors.ErrStorage, err, "could not back up rejected address book")
		}
		s.rejected = false
		logger.Warn(ctx, "rejected address book file backed up", zap.String("backup", backup))
	}

	var raw JSONAddressBook
	raw.FromDomain(book)

	e := &jx.Encoder{}
	e.SetIdent(2)
	raw.Encode(e)

	if err := writeFileAtomic(s.options.AddressBookPath, e.Bytes()); err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "could not save address book")
	}

	logger.Debug(ctx, "address book saved", zap.String("path", s.options.AddressBookPath))

	return nil
}

// userPrefs is the on-disk form of domain.UserPrefs.
type userPrefs struct {
	AddressBookFilePath string `json:"addressBookFilePath"`
	ViewedPerson        string `json:"viewedPerson,omitempty"`
}

var prefsJSON = jsoniter.ConfigCompatibleWithStandardLibrary //nolint: gochecknoglobals

// ReadUserPrefs loads the preferences file. It returns nil when the file does
// not exist.
func (s *Storage) ReadUserPrefs(ctx context.Context) (*domain.UserPrefs, error) {
	data, err := readFile(s.options.UserPrefsPath)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrStorage, err, "could not read user prefs")
	}
	if data == nil {
		logger.Info(ctx, "user prefs file not found", zap.String("path", s.options.UserPrefsPath))

		return nil, nil //nolint: nilnil
	}

	var raw userPrefs
	if err := prefsJSON.Unmarshal(data, &raw); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidValue, err, "user prefs file is not valid JSON")
	}

	return &domain.UserPrefs{
		AddressBookFilePath: raw.AddressBookFilePath,
		ViewedPerson:        domain.Name(raw.ViewedPerson),
	}, nil
}

// SaveUserPrefs writes prefs to the preferences file.
func (s *Storage) SaveUserPrefs(ctx context.Context, prefs domain.UserPrefs) error {
	data, err := prefsJSON.MarshalIndent(userPrefs{
		AddressBookFilePath: prefs.AddressBookFilePath,
		ViewedPerson:        string(prefs.ViewedPerson),
	}, "", "  ")
	if err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "could not encode user prefs")
	}

	if err := writeFileAtomic(s.options.UserPrefsPath, data); err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "could not save user prefs")
	}

	logger.Debug(ctx, "user prefs saved", zap.String("path", s.options.UserPrefsPath))

	return nil
}
