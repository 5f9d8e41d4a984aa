package jsonfile_test

import (
	"context"
	"loanbook/pkg/addressbook"
	"loanbook/pkg/domain"
	"loanbook/pkg/serrors"
	"loanbook/pkg/storage"
	"loanbook/pkg/storage/jsonfile"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testdata(name string) string { return filepath.Join("testdata", name) }

func typicalBook(t *testing.T) *addressbook.AddressBook {
	t.Helper()

	ab := addressbook.New()
	require.NoError(t, ab.SetPersons([]domain.Person{
		domain.NewPerson("Alice Pauline", "94351253", "alice@example.com",
			"123, Jurong West Ave 6, #08-111", []domain.Tag{"friends"}),
		domain.NewPerson("Benson Meier", "98765432", "johnd@example.com",
			"311, Clementi Ave 2, #02-25", []domain.Tag{"owesMoney", "friends"}),
		domain.NewPerson("Carl Kurz", "95352563", "heinz@example.com", "wall street", nil),
	}))
	require.NoError(t, ab.SetLoans([]domain.Loan{
		domain.NewLoan(5000, "lunch", "Alice Pauline"),
		domain.NewLoan(1000, "coffee", "Benson Meier").MarkPaid(),
		domain.NewLoan(2550, "books", "Alice Pauline"),
	}))

	return ab
}

func read(t *testing.T, path string) (*addressbook.AddressBook, error) {
	t.Helper()

	return jsonfile.New(jsonfile.Options{AddressBookPath: path}).ReadAddressBook(context.Background())
}

func TestReadAddressBook_Typical(t *testing.T) {
	got, err := read(t, testdata("typicalAddressBook.json"))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.Equal(typicalBook(t)))
}

func TestReadAddressBook_MissingFile(t *testing.T) {
	got, err := read(t, filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestReadAddressBook_Rejections(t *testing.T) {
	cases := map[string]struct {
		file    string
		message string
	}{
		"invalid person":   {file: "invalidPersonAddressBook.json", message: domain.EmailConstraints},
		"missing field":    {file: "missingFieldAddressBook.json", message: "Person's Phone field is missing!"},
		"invalid loan":     {file: "invalidLoanAddressBook.json", message: domain.MoneyConstraints},
		"duplicate person": {file: "duplicatePersonAddressBook.json", message: storage.MessageDuplicatePerson},
		"duplicate loan":   {file: "duplicateLoanAddressBook.json", message: storage.MessageDuplicateLoan},
		"missing assignee": {file: "missingAssigneeAddressBook.json", message: storage.MessageMissingAssignee},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := read(t, testdata(tc.file))
			require.Nil(t, got)
			require.ErrorIs(t, err, serrors.ErrInvalidValue)
			require.Equal(t, tc.message, serrors.MessageOf(err))
		})
	}
}

func TestReadAddressBook_DuplicateCarriesEntity(t *testing.T) {
	_, err := read(t, testdata("duplicateLoanAddressBook.json"))
	entity, ok := serrors.EntityOf(err)
	require.True(t, ok)
	require.Equal(t, domain.NewLoan(5000, "lunch", "Alice Pauline").MarkPaid(), entity)
}

func TestReadAddressBook_NotJSON(t *testing.T) {
	_, err := read(t, testdata("notJsonAddressBook.json"))
	require.ErrorIs(t, err, serrors.ErrInvalidValue)
}

func TestReadAddressBook_TrailingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"persons":[],"loans":[]} {"persons":[]}`), 0o600))

	_, err := read(t, path)
	require.ErrorIs(t, err, serrors.ErrInvalidValue)

	require.NoError(t, os.WriteFile(path, []byte("{\"persons\":[],\"loans\":[]}\n\n"), 0o600))
	got, err := read(t, path)
	require.NoError(t, err)
	require.Empty(t, got.PersonList())
}

func TestSaveAddressBook_BacksUpRejectedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ab.json")
	rejected, err := os.ReadFile(testdata("invalidPersonAddressBook.json"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, rejected, 0o600))

	s := jsonfile.New(jsonfile.Options{AddressBookPath: path})
	_, err = s.ReadAddressBook(ctx)
	require.ErrorIs(t, err, serrors.ErrInvalidValue)

	require.NoError(t, s.SaveAddressBook(ctx, typicalBook(t)))

	backup, err := os.ReadFile(path + jsonfile.BackupSuffix)
	require.NoError(t, err)
	require.Equal(t, rejected, backup)

	got, err := s.ReadAddressBook(ctx)
	require.NoError(t, err)
	require.True(t, got.Equal(typicalBook(t)))

	// later saves leave the backup alone
	require.NoError(t, s.SaveAddressBook(ctx, addressbook.New()))
	backup, err = os.ReadFile(path + jsonfile.BackupSuffix)
	require.NoError(t, err)
	require.Equal(t, rejected, backup)
}

func TestSaveAddressBook_FileMode(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ab.json")
	s := jsonfile.New(jsonfile.Options{AddressBookPath: path})

	require.NoError(t, s.SaveAddressBook(ctx, addressbook.New()))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	require.NoError(t, os.Chmod(path, 0o600))
	require.NoError(t, s.SaveAddressBook(ctx, typicalBook(t)))
	info, err = os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "an existing file keeps its mode")
}

func TestAddressBook_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "addressbook.json")
	s := jsonfile.New(jsonfile.Options{AddressBookPath: path})
	require.Equal(t, path, s.AddressBookFilePath())

	original := typicalBook(t)
	require.NoError(t, s.SaveAddressBook(ctx, original))

	got, err := s.ReadAddressBook(ctx)
	require.NoError(t, err)
	require.True(t, got.Equal(original))

	// modify, overwrite and read back
	_, err = original.MarkLoan(domain.NewLoan(5000, "lunch", "Alice Pauline"))
	require.NoError(t, err)
	_, err = original.RemovePerson(original.PersonList()[2])
	require.NoError(t, err)
	require.NoError(t, s.SaveAddressBook(ctx, original))

	got, err = s.ReadAddressBook(ctx)
	require.NoError(t, err)
	require.True(t, got.Equal(original))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestAddressBook_RoundTripEmpty(t *testing.T) {
	ctx := context.Background()
	s := jsonfile.New(jsonfile.Options{AddressBookPath: filepath.Join(t.TempDir(), "ab.json")})

	require.NoError(t, s.SaveAddressBook(ctx, addressbook.New()))
	got, err := s.ReadAddressBook(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got.PersonList())
	require.Empty(t, got.LoanList())
}

func TestSaveAddressBook_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	s := jsonfile.New(jsonfile.Options{AddressBookPath: filepath.Join(blocker, "ab.json")})
	err := s.SaveAddressBook(context.Background(), addressbook.New())
	require.ErrorIs(t, err, serrors.ErrStorage)
}

func TestUserPrefs_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := jsonfile.New(jsonfile.Options{UserPrefsPath: path})
	require.Equal(t, path, s.UserPrefsFilePath())

	got, err := s.ReadUserPrefs(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	prefs := domain.UserPrefs{AddressBookFilePath: "data/ab.json", ViewedPerson: "Alice Pauline"}
	require.NoError(t, s.SaveUserPrefs(ctx, prefs))

	got, err = s.ReadUserPrefs(ctx)
	require.NoError(t, err)
	require.Equal(t, prefs, *got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"addressBookFilePath":"data/ab.json","viewedPerson":"Alice Pauline"}`, string(raw))
}

func TestUserPrefs_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o600))

	_, err := jsonfile.New(jsonfile.Options{UserPrefsPath: path}).ReadUserPrefs(context.Background())
	require.ErrorIs(t, err, serrors.ErrInvalidValue)
}
