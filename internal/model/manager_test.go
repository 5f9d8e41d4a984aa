package model_test

import (
	"loanbook/internal/model"
	"loanbook/pkg/addressbook"
	"loanbook/pkg/domain"
	"loanbook/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	alice  = domain.NewPerson("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6", nil)
	benson = domain.NewPerson("Benson Meier", "98765432", "johnd@example.com", "311, Clementi Ave 2", nil)

	lunch  = domain.NewLoan(5000, "lunch", "Alice Pauline")
	coffee = domain.NewLoan(500, "coffee", "Alice Pauline").MarkPaid()
	books  = domain.NewLoan(2550, "books", "Benson Meier")
	taxi   = domain.NewLoan(1200, "taxi", "Alice Pauline")
)

func newManager(t *testing.T, prefs domain.UserPrefs) *model.Manager {
	t.Helper()

	ab := addressbook.New()
	require.NoError(t, ab.SetPersons([]domain.Person{alice, benson}))
	require.NoError(t, ab.SetLoans([]domain.Loan{coffee, lunch, books, taxi}))

	m, err := model.New(ab, prefs)
	require.NoError(t, err)
	require.False(t, m.Dirty())

	return m
}

func TestNew_Empty(t *testing.T) {
	m, err := model.New(nil, domain.DefaultUserPrefs("ab.json"))
	require.NoError(t, err)
	require.Empty(t, m.FilteredPersonList())
	require.Empty(t, m.SortedLoanList())
	require.Equal(t, "ab.json", m.UserPrefs().AddressBookFilePath)
}

func TestNew_RestoresView(t *testing.T) {
	m := newManager(t, domain.UserPrefs{ViewedPerson: "Benson Meier"})
	p, ok := m.PersonInView()
	require.True(t, ok)
	require.Equal(t, benson, p)

	m = newManager(t, domain.UserPrefs{ViewedPerson: "Nobody"})
	_, ok = m.PersonInView()
	require.False(t, ok)
}

func TestSortedLoanList(t *testing.T) {
	m := newManager(t, domain.UserPrefs{})

	// nobody in view: every loan, unpaid first, insertion order within a group
	require.Equal(t, []domain.Loan{lunch, books, taxi, coffee}, m.SortedLoanList())

	require.NoError(t, m.ViewPerson(alice))
	require.Equal(t, []domain.Loan{lunch, taxi, coffee}, m.SortedLoanList())

	m.ClearView()
	require.Len(t, m.SortedLoanList(), 4)
}

func TestMarkLoanScenario(t *testing.T) {
	m := newManager(t, domain.UserPrefs{})
	require.NoError(t, m.ViewPerson(alice))

	first := m.SortedLoanList()[0]
	marked, err := m.MarkLoan(first)
	require.NoError(t, err)
	require.True(t, marked.Paid)
	require.True(t, m.Dirty())

	require.Equal(t, []domain.Loan{taxi, coffee, lunch.MarkPaid()}, m.SortedLoanList())

	_, err = m.MarkLoan(domain.NewLoan(1, "nothing", "Alice Pauline"))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestViewFollowsEdit(t *testing.T) {
	m := newManager(t, domain.UserPrefs{})
	require.NoError(t, m.ViewPerson(alice))

	renamed := alice
	renamed.Name = "Alice Tan"
	require.NoError(t, m.SetPerson(alice, renamed))

	p, ok := m.PersonInView()
	require.True(t, ok)
	require.Equal(t, renamed, p)
	require.Len(t, m.SortedLoanList(), 3)
	require.Equal(t, domain.Name("Alice Tan"), m.UserPrefs().ViewedPerson)
}

func TestViewClearedOnDelete(t *testing.T) {
	m := newManager(t, domain.UserPrefs{})
	require.NoError(t, m.ViewPerson(benson))
	require.NoError(t, m.DeletePerson(benson))

	_, ok := m.PersonInView()
	require.False(t, ok)
	require.Empty(t, m.UserPrefs().ViewedPerson)
	require.Equal(t, []domain.Loan{lunch, taxi, coffee}, m.SortedLoanList())
}

func TestViewPerson_Missing(t *testing.T) {
	m := newManager(t, domain.UserPrefs{})
	err := m.ViewPerson(domain.NewPerson("Nobody", "123", "a@bc.de", "x", nil))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestSetAddressBook(t *testing.T) {
	m := newManager(t, domain.UserPrefs{})
	require.NoError(t, m.ViewPerson(alice))

	require.NoError(t, m.SetAddressBook(addressbook.New()))
	require.True(t, m.Dirty())
	require.Empty(t, m.AddressBook().PersonList())
	require.Empty(t, m.AddressBook().LoanList())
	_, ok := m.PersonInView()
	require.False(t, ok)
}

func TestFilteredPersonList(t *testing.T) {
	m := newManager(t, domain.UserPrefs{})
	require.Equal(t, []domain.Person{alice, benson}, m.FilteredPersonList())

	m.UpdateFilteredPersonList(func(p domain.Person) bool { return p.Name == "Benson Meier" })
	require.Equal(t, []domain.Person{benson}, m.FilteredPersonList())

	// adding a person shows everyone again
	carl := domain.NewPerson("Carl Kurz", "95352563", "heinz@example.com", "wall street", nil)
	require.NoError(t, m.AddPerson(carl))
	require.Equal(t, []domain.Person{alice, benson, carl}, m.FilteredPersonList())

	m.UpdateFilteredPersonList(nil)
	require.Len(t, m.FilteredPersonList(), 3)
}

func TestDirtyTracking(t *testing.T) {
	m := newManager(t, domain.UserPrefs{})

	m.UpdateFilteredPersonList(model.ShowAllPersons)
	require.NoError(t, m.ViewPerson(alice))
	require.False(t, m.Dirty(), "view and filter changes are not persisted")

	_, err := m.LinkLoan(addressbook.LoanDescriptor{Amount: 100, Description: "gum"}, benson)
	require.NoError(t, err)
	require.True(t, m.Dirty())

	m.MarkSaved()
	require.False(t, m.Dirty())

	require.ErrorIs(t, m.AddPerson(alice), serrors.ErrDuplicate)
	require.False(t, m.Dirty(), "failed mutations change nothing")

	require.NoError(t, m.DeleteLoan(books))
	require.True(t, m.Dirty())
}

func TestSetLoan(t *testing.T) {
	m := newManager(t, domain.UserPrefs{})
	edited := domain.NewLoan(6000, "dinner", "Alice Pauline")

	require.NoError(t, m.SetLoan(lunch, edited))
	require.Contains(t, m.AddressBook().LoanList(), edited)
	require.ErrorIs(t, m.SetLoan(lunch, edited), serrors.ErrNotFound)

	unmarked, err := m.UnmarkLoan(coffee)
	require.NoError(t, err)
	require.False(t, unmarked.Paid)
}

func TestUserPrefs(t *testing.T) {
	m := newManager(t, domain.UserPrefs{})
	m.SetUserPrefs(domain.UserPrefs{AddressBookFilePath: "other.json", ViewedPerson: "ignored"})
	require.NoError(t, m.ViewPerson(alice))

	require.Equal(t, domain.UserPrefs{AddressBookFilePath: "other.json", ViewedPerson: "Alice Pauline"}, m.UserPrefs())
}
