package addressbook

import (
	"loanbook/pkg/domain"
	"loanbook/pkg/uniquelist"
)

// PersonList is a unique list of persons keyed by name.
type PersonList = uniquelist.List[domain.Person]

// LoanList is a unique list of loans. Two loans with the same owner, amount
// and description cannot coexist.
type LoanList = uniquelist.List[domain.Loan]

// NewPersonList returns an empty PersonList.
func NewPersonList() *PersonList {
	return uniquelist.New("person", domain.SamePerson, domain.ExactPerson)
}

// NewLoanList returns an empty LoanList.
func NewLoanList() *LoanList {
	return uniquelist.New("loan", domain.SameLoan, domain.ExactLoan)
}

// reassignLoans points every loan owned by from at to and returns how many
// loans moved. Positions in the list are kept.
func reassignLoans(loans *LoanList, from, to domain.Name) int {
	if from == to {
		return 0
	}

	return loans.ReplaceFunc(func(l domain.Loan) (domain.Loan, bool) {
		if !l.IsOwnedBy(from) {
			return l, false
		}

		return l.WithAssignee(to), true
	})
}

// removeLoansOf deletes every loan owned by name and returns them.
func removeLoansOf(loans *LoanList, name domain.Name) []domain.Loan {
	return loans.RemoveFunc(func(l domain.Loan) bool { return l.IsOwnedBy(name) })
}
