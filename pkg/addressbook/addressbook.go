// Package addressbook implements the in-memory aggregate that owns every
// person and loan. It keeps the two lists unique and keeps loans pointing at
// persons that exist: removing a person removes their loans, and editing a
// person moves their loans to the edited identity.
package addressbook

import (
	"loanbook/pkg/domain"
	"loanbook/pkg/serrors"
	"loanbook/pkg/uniquelist"
)

// ReadOnly is an unmodifiable view of an address book.
type ReadOnly interface {
	// PersonList returns the persons in insertion order.
	PersonList() []domain.Person
	// LoanList returns the loans in insertion order.
	LoanList() []domain.Loan
}

// LoanDescriptor carries the raw fields of a loan that is about to be linked
// to a person.
type LoanDescriptor struct {
	Amount      domain.Money
	Description domain.Description
}

// AddressBook wraps all data at the address book level. Persons are unique by
// name and loans are unique by owner, amount and description.
type AddressBook struct {
	persons *PersonList
	loans   *LoanList
}

var _ ReadOnly = (*AddressBook)(nil)

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{
		persons: NewPersonList(),
		loans:   NewLoanList(),
	}
}

// NewFrom returns an address book holding a copy of data.
func NewFrom(data ReadOnly) (*AddressBook, error) {
	ab := New()
	if err := ab.ResetData(data); err != nil {
		return nil, err
	}

	return ab, nil
}

//// list overwrite operations

// SetPersons replaces the person list. persons must not contain duplicates.
// Loans are not touched; use ResetData to replace both consistently.
func (ab *AddressBook) SetPersons(persons []domain.Person) error {
	return ab.persons.SetAll(persons) //nolint: wrapcheck
}

// SetLoans replaces the loan list. loans must not contain duplicates and every
// loan must be owned by a present person.
func (ab *AddressBook) SetLoans(loans []domain.Loan) error {
	if err := checkAssignees(ab.persons, loans); err != nil {
		return err
	}

	return ab.loans.SetAll(loans) //nolint: wrapcheck
}

// ResetData replaces the whole content with data. Nothing changes unless data
// is consistent: no duplicate persons, no duplicate loans, no loan owned by a
// missing person.
func (ab *AddressBook) ResetData(data ReadOnly) error {
	persons := NewPersonList()
	if err := persons.SetAll(data.PersonList()); err != nil {
		return err //nolint: wrapcheck
	}

	loans := data.LoanList()
	if err := checkAssignees(persons, loans); err != nil {
		return err
	}
	if err := NewLoanList().SetAll(loans); err != nil {
		return err //nolint: wrapcheck
	}

	// both inputs are known to be valid at this point, so neither call fails
	_ = ab.persons.SetAll(persons.Items())
	_ = ab.loans.SetAll(loans)

	return nil
}

//// person-level operations

// HasPerson reports whether a person with the same identity as p exists.
func (ab *AddressBook) HasPerson(p domain.Person) bool {
	return ab.persons.Contains(p)
}

// AddPerson adds p. It fails with serrors.ErrDuplicate if a person with the
// same identity exists.
func (ab *AddressBook) AddPerson(p domain.Person) error {
	return ab.persons.Add(p) //nolint: wrapcheck
}

// SetPerson replaces target with edited. Every loan owned by target is moved
// to edited, keeping its other fields and its position in the loan list.
// It fails with serrors.ErrNotFound if target is absent and with
// serrors.ErrDuplicate if edited collides with another person.
func (ab *AddressBook) SetPerson(target, edited domain.Person) error {
	if err := ab.persons.Set(target, edited); err != nil {
		return err //nolint: wrapcheck
	}

	reassignLoans(ab.loans, target.Name, edited.Name)

	return nil
}

// RemovePerson removes key together with every loan it owns. The remaining
// loans keep their order. It fails with serrors.ErrNotFound if key is absent.
func (ab *AddressBook) RemovePerson(key domain.Person) ([]domain.Loan, error) {
	if err := ab.persons.Remove(key); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return removeLoansOf(ab.loans, key.Name), nil
}

// FindPerson returns the person named name.
func (ab *AddressBook) FindPerson(name domain.Name) (domain.Person, bool) {
	p, _, ok := ab.persons.Find(domain.Person{Name: name})

	return p, ok
}

//// loan-level operations

// HasLoan reports whether a loan with the same identity as l exists.
func (ab *AddressBook) HasLoan(l domain.Loan) bool {
	return ab.loans.Contains(l)
}

// AddLoan adds l. It fails with serrors.ErrNotFound if l's assignee is not in
// the address book and with serrors.ErrDuplicate if the loan already exists.
func (ab *AddressBook) AddLoan(l domain.Loan) error {
	if err := checkAssignees(ab.persons, []domain.Loan{l}); err != nil {
		return err
	}

	return ab.loans.Add(l) //nolint: wrapcheck
}

// LinkLoan creates an unpaid loan from desc owed by assignee, adds it and
// returns it.
func (ab *AddressBook) LinkLoan(desc LoanDescriptor, assignee domain.Person) (domain.Loan, error) {
	l := domain.NewLoan(desc.Amount, desc.Description, assignee.Name)
	if err := ab.AddLoan(l); err != nil {
		return domain.Loan{}, err
	}

	return l, nil
}

// MarkLoan finds the loan that is the same as l and flags it as paid, keeping
// its position. Marking a paid loan again succeeds and changes nothing. It
// fails with serrors.ErrNotFound if no such loan exists.
func (ab *AddressBook) MarkLoan(l domain.Loan) (domain.Loan, error) {
	return ab.replaceLoan(l, domain.Loan.MarkPaid)
}

// UnmarkLoan finds the loan that is the same as l and flags it as unpaid. It
// mirrors MarkLoan.
func (ab *AddressBook) UnmarkLoan(l domain.Loan) (domain.Loan, error) {
	return ab.replaceLoan(l, domain.Loan.MarkUnpaid)
}

// SetLoan replaces target with edited. edited must be owned by a present
// person and must not collide with another loan.
func (ab *AddressBook) SetLoan(target, edited domain.Loan) error {
	if err := checkAssignees(ab.persons, []domain.Loan{edited}); err != nil {
		return err
	}

	return ab.loans.Set(target, edited) //nolint: wrapcheck
}

// RemoveLoan removes key. It fails with serrors.ErrNotFound if key is absent.
func (ab *AddressBook) RemoveLoan(key domain.Loan) error {
	return ab.loans.Remove(key) //nolint: wrapcheck
}

// LoansOf returns the loans owned by name in list order.
func (ab *AddressBook) LoansOf(name domain.Name) []domain.Loan {
	var out []domain.Loan
	for _, l := range ab.loans.Items() {
		if l.IsOwnedBy(name) {
			out = append(out, l)
		}
	}

	return out
}

func (ab *AddressBook) replaceLoan(l domain.Loan, fn func(domain.Loan) domain.Loan) (domain.Loan, error) {
	current, _, ok := ab.loans.Find(l)
	if !ok {
		return domain.Loan{}, serrors.With(serrors.ErrNotFound, "loan not found").WithEntity(l)
	}

	updated := fn(current)
	if updated == current {
		return current, nil
	}
	if err := ab.loans.Set(current, updated); err != nil {
		return domain.Loan{}, err //nolint: wrapcheck
	}

	return updated, nil
}

//// util methods

// PersonList returns a copy of the persons in insertion order.
func (ab *AddressBook) PersonList() []domain.Person { return ab.persons.Items() }

// LoanList returns a copy of the loans in insertion order.
func (ab *AddressBook) LoanList() []domain.Loan { return ab.loans.Items() }

// SubscribePersons registers fn for person list changes.
func (ab *AddressBook) SubscribePersons(fn func(uniquelist.Change[domain.Person])) func() {
	return ab.persons.Subscribe(fn)
}

// SubscribeLoans registers fn for loan list changes.
func (ab *AddressBook) SubscribeLoans(fn func(uniquelist.Change[domain.Loan])) func() {
	return ab.loans.Subscribe(fn)
}

// Equal reports whether both address books hold exactly the same persons and
// loans in the same order.
func (ab *AddressBook) Equal(other *AddressBook) bool {
	return ab.persons.Equal(other.persons) && ab.loans.Equal(other.loans)
}

func checkAssignees(persons *PersonList, loans []domain.Loan) error {
	for _, l := range loans {
		if !persons.Contains(domain.Person{Name: l.Assignee}) {
			return serrors.With(serrors.ErrNotFound, "no person named %s", l.Assignee).WithEntity(l)
		}
	}

	return nil
}
