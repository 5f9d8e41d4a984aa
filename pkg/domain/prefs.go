package domain

// UserPrefs holds settings that survive between sessions.
type UserPrefs struct {
	// AddressBookFilePath is where the address book is read from and saved to.
	AddressBookFilePath string
	// ViewedPerson is the person that was in view when the last session ended.
	// Empty means nobody was in view.
	ViewedPerson Name
}

// DefaultUserPrefs returns the preferences used when no preferences file exists.
func DefaultUserPrefs(addressBookFilePath string) UserPrefs {
	return UserPrefs{AddressBookFilePath: addressBookFilePath}
}
