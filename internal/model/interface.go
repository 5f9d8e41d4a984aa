package model

import (
	"loanbook/pkg/addressbook"
	"loanbook/pkg/domain"
)

// PersonPredicate selects the persons shown in the filtered person list.
type PersonPredicate func(domain.Person) bool

// ShowAllPersons keeps every person.
func ShowAllPersons(domain.Person) bool { return true }

// Model is what commands operate on: the address book plus the state of the
// session around it.
type Model interface {
	// AddressBook returns a read-only view of the current data.
	AddressBook() addressbook.ReadOnly
	// SetAddressBook replaces all persons and loans with data.
	SetAddressBook(data addressbook.ReadOnly) error

	HasPerson(p domain.Person) bool
	AddPerson(p domain.Person) error
	SetPerson(target, edited domain.Person) error
	DeletePerson(p domain.Person) error

	// FilteredPersonList returns the persons matching the current predicate.
	FilteredPersonList() []domain.Person
	UpdateFilteredPersonList(pred PersonPredicate)

	// ViewPerson puts p in view. Loan commands then operate on p's loans.
	ViewPerson(p domain.Person) error
	ClearView()
	PersonInView() (domain.Person, bool)

	// SortedLoanList returns the loans of the person in view, or every loan
	// when nobody is in view. Unpaid loans come first.
	SortedLoanList() []domain.Loan
	LinkLoan(desc addressbook.LoanDescriptor, assignee domain.Person) (domain.Loan, error)
	MarkLoan(l domain.Loan) (domain.Loan, error)
	UnmarkLoan(l domain.Loan) (domain.Loan, error)
	SetLoan(target, edited domain.Loan) error
	DeleteLoan(l domain.Loan) error

	UserPrefs() domain.UserPrefs
	SetUserPrefs(prefs domain.UserPrefs)

	// Dirty reports whether the address book changed since the last MarkSaved.
	Dirty() bool
	MarkSaved()
}
