package logic

import (
	"context"
	"loanbook/internal/logic/command"
	"loanbook/pkg/domain"
)

//go:generate mockgen -package mocklogic -source=interface.go -destination=mock/mocklogic.go *
type Logic interface {
	Execute(ctx context.Context, text string) (command.Result, error)
	FilteredPersonList() []domain.Person
	SortedLoanList() []domain.Loan
	PersonInView() (domain.Person, bool)
	AddressBookFilePath() string
	Shutdown(ctx context.Context) error
}
