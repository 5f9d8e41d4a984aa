// Package model holds the in-memory state of a session: the address book, the
// person filter, the person in view and the user preferences.
package model

import (
	"fmt"
	"loanbook/pkg/addressbook"
	"loanbook/pkg/domain"
	"loanbook/pkg/serrors"
	"loanbook/pkg/uniquelist"
	"slices"
)

// Manager is the Model implementation used by the application.
type Manager struct {
	book   *addressbook.AddressBook
	filter PersonPredicate
	prefs  domain.UserPrefs
	// viewed is the name of the person in view, empty when nobody is.
	viewed domain.Name
	dirty  bool
}

var _ Model = (*Manager)(nil)

// New returns a Manager holding a copy of data, or an empty address book when
// data is nil. If prefs names a viewed person that exists, that person is put
// back in view.
func New(data addressbook.ReadOnly, prefs domain.UserPrefs) (*Manager, error) {
	book := addressbook.New()
	if data != nil {
		var err error
		if book, err = addressbook.NewFrom(data); err != nil {
			return nil, fmt.Errorf("could not load address book: %w", err)
		}
	}

	m := &Manager{
		book:   book,
		filter: ShowAllPersons,
		prefs:  prefs,
	}
	if _, ok := book.FindPerson(prefs.ViewedPerson); ok {
		m.viewed = prefs.ViewedPerson
	}

	book.SubscribePersons(m.onPersonChange)
	book.SubscribeLoans(func(uniquelist.Change[domain.Loan]) { m.dirty = true })

	return m, nil
}

// onPersonChange keeps the view pointed at the right person and tracks
// unsaved changes.
func (m *Manager) onPersonChange(c uniquelist.Change[domain.Person]) {
	m.dirty = true
	if m.viewed == "" {
		return
	}

	switch c.Kind {
	case uniquelist.Replaced:
		if c.Old.Name == m.viewed {
			m.viewed = c.New.Name
		}
	case uniquelist.Removed:
		if c.Old.Name == m.viewed {
			m.viewed = ""
		}
	case uniquelist.Reset:
		if _, ok := m.book.FindPerson(m.viewed); !ok {
			m.viewed = ""
		}
	case uniquelist.Added:
	}
}

//// address book

func (m *Manager) AddressBook() addressbook.ReadOnly { return m.book }

func (m *Manager) SetAddressBook(data addressbook.ReadOnly) error {
	return m.book.ResetData(data) //nolint: wrapcheck
}

//// persons

func (m *Manager) HasPerson(p domain.Person) bool { return m.book.HasPerson(p) }

func (m *Manager) AddPerson(p domain.Person) error {
	if err := m.book.AddPerson(p); err != nil {
		return err //nolint: wrapcheck
	}
	m.filter = ShowAllPersons

	return nil
}

func (m *Manager) SetPerson(target, edited domain.Person) error {
	return m.book.SetPerson(target, edited) //nolint: wrapcheck
}

func (m *Manager) DeletePerson(p domain.Person) error {
	_, err := m.book.RemovePerson(p)

	return err //nolint: wrapcheck
}

func (m *Manager) FilteredPersonList() []domain.Person {
	var out []domain.Person
	for _, p := range m.book.PersonList() {
		if m.filter(p) {
			out = append(out, p)
		}
	}

	return out
}

func (m *Manager) UpdateFilteredPersonList(pred PersonPredicate) {
	if pred == nil {
		pred = ShowAllPersons
	}
	m.filter = pred
}

//// view

func (m *Manager) ViewPerson(p domain.Person) error {
	if !m.book.HasPerson(p) {
		return serrors.With(serrors.ErrNotFound, "person not found").WithEntity(p)
	}
	m.viewed = p.Name

	return nil
}

func (m *Manager) ClearView() { m.viewed = "" }

func (m *Manager) PersonInView() (domain.Person, bool) {
	if m.viewed == "" {
		return domain.Person{}, false
	}

	return m.book.FindPerson(m.viewed)
}

//// loans

func (m *Manager) SortedLoanList() []domain.Loan {
	loans := m.book.LoanList()
	if m.viewed != "" {
		loans = m.book.LoansOf(m.viewed)
	}

	slices.SortStableFunc(loans, func(a, b domain.Loan) int {
		switch {
		case a.Paid == b.Paid:
			return 0
		case !a.Paid:
			return -1
		default:
			return 1
		}
	})

	return loans
}

func (m *Manager) LinkLoan(desc addressbook.LoanDescriptor, assignee domain.Person) (domain.Loan, error) {
	return m.book.LinkLoan(desc, assignee) //nolint: wrapcheck
}

func (m *Manager) MarkLoan(l domain.Loan) (domain.Loan, error) {
	return m.book.MarkLoan(l) //nolint: wrapcheck
}

func (m *Manager) UnmarkLoan(l domain.Loan) (domain.Loan, error) {
	return m.book.UnmarkLoan(l) //nolint: wrapcheck
}

func (m *Manager) SetLoan(target, edited domain.Loan) error {
	return m.book.SetLoan(target, edited) //nolint: wrapcheck
}

func (m *Manager) DeleteLoan(l domain.Loan) error {
	return m.book.RemoveLoan(l) //nolint: wrapcheck
}

//// preferences

// UserPrefs returns the preferences with the person currently in view.
func (m *Manager) UserPrefs() domain.UserPrefs {
	prefs := m.prefs
	prefs.ViewedPerson = m.viewed

	return prefs
}

// SetUserPrefs replaces the stored preferences. The view is not affected.
func (m *Manager) SetUserPrefs(prefs domain.UserPrefs) { m.prefs = prefs }

//// change tracking

func (m *Manager) Dirty() bool { return m.dirty }

func (m *Manager) MarkSaved() { m.dirty = false }
