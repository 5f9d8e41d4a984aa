// Package storage defines the persistence interfaces the application relies
// on. It abstracts reading and saving the address book and the user
// preferences so that different backends (e.g. JSON files) can provide
// concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"loanbook/pkg/addressbook"
	"loanbook/pkg/domain"
)

// AddressBookStorage reads and writes the address book.
type AddressBookStorage interface {
	// AddressBookFilePath returns the location the address book is stored at.
	AddressBookFilePath() string
	// ReadAddressBook loads the address book. It returns nil and no error when
	// nothing has been stored yet. Stored data that is invalid or contains
	// duplicates yields an error of kind serrors.ErrInvalidValue.
	ReadAddressBook(ctx context.Context) (*addressbook.AddressBook, error)
	// SaveAddressBook replaces the stored address book with book.
	SaveAddressBook(ctx context.Context, book addressbook.ReadOnly) error
}

// UserPrefsStorage reads and writes the user preferences.
type UserPrefsStorage interface {
	// UserPrefsFilePath returns the location the preferences are stored at.
	UserPrefsFilePath() string
	// ReadUserPrefs loads the preferences. It returns nil and no error when
	// nothing has been stored yet.
	ReadUserPrefs(ctx context.Context) (*domain.UserPrefs, error)
	// SaveUserPrefs replaces the stored preferences with prefs.
	SaveUserPrefs(ctx context.Context, prefs domain.UserPrefs) error
}

// Storage is a composite interface that includes every storage capability
// required by the application.
type Storage interface {
	AddressBookStorage
	UserPrefsStorage
}
