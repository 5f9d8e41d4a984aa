package command

import (
	"context"
	"fmt"
	"loanbook/internal/model"
	"loanbook/pkg/addressbook"
	"loanbook/pkg/domain"
)

// Command words and usage texts of the loan commands. Loan numbers refer to
// the displayed loan list: the loans of the person in view, unpaid first.
const (
	LinkLoanWord  = "linkloan"
	LinkLoanUsage = LinkLoanWord + ": Links a loan to the person identified by the index number used in the " +
		"displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer) v/VALUE d/DESCRIPTION\n" +
		"Example: " + LinkLoanWord + " 1 v/50.00 d/lunch"

	MarkLoanWord  = "markloan"
	MarkLoanUsage = MarkLoanWord + ": Marks the current person in view's loan(of loan number) as paid.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + MarkLoanWord + " 1\n"

	UnmarkLoanWord  = "unmarkloan"
	UnmarkLoanUsage = UnmarkLoanWord + ": Marks the current person in view's loan(of loan number) as unpaid.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + UnmarkLoanWord + " 1\n"

	EditLoanWord  = "editloan"
	EditLoanUsage = EditLoanWord + ": Edits the loan identified by the loan number used in the displayed " +
		"loan list. Existing values will be overwritten by the input values.\n" +
		"Parameters: l/LOAN_NUMBER [v/VALUE] [d/DESCRIPTION]\n" +
		"Example: " + EditLoanWord + " l/1 v/60.50"

	DeleteLoanWord  = "deleteloan"
	DeleteLoanUsage = DeleteLoanWord + ": Deletes the loan identified by the loan number used in the displayed " +
		"loan list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteLoanWord + " 1"
)

// Feedback of the loan commands.
const (
	MessageLinkLoanSuccess   = "New loan added: %s"
	MessageMarkLoanSuccess   = "Loan marked.\nLoan: %s"
	MessageUnmarkLoanSuccess = "Loan unmarked.\nLoan: %s"
	MessageEditLoanSuccess   = "Edited loan: %s"
	MessageDeleteLoanSuccess = "Loan deleted.\nLoan: %s"
)

// LinkLoan adds an unpaid loan owed by the person at Index and puts that
// person in view.
type LinkLoan struct {
	Index      Index
	Descriptor addressbook.LoanDescriptor
}

func (c LinkLoan) Execute(_ context.Context, m model.Model) (Result, error) {
	assignee, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	loan, err := m.LinkLoan(c.Descriptor, assignee)
	if err != nil {
		return Result{}, duplicateAs(err, MessageDuplicateLoan, "link loan")
	}
	if err := m.ViewPerson(assignee); err != nil {
		return Result{}, fmt.Errorf("could not view person: %w", err)
	}

	return Result{Feedback: fmt.Sprintf(MessageLinkLoanSuccess, loan.Format()), ShowLoans: true}, nil
}

// MarkLoan marks the loan numbered LoanNumber as paid. Marking a paid loan
// succeeds and leaves it paid.
type MarkLoan struct {
	LoanNumber Index
}

func (c MarkLoan) Execute(_ context.Context, m model.Model) (Result, error) {
	target, err := loanAt(m, c.LoanNumber)
	if err != nil {
		return Result{}, err
	}

	marked, err := m.MarkLoan(target)
	if err != nil {
		return Result{}, fmt.Errorf("could not mark loan: %w", err)
	}

	return Result{Feedback: fmt.Sprintf(MessageMarkLoanSuccess, marked), ShowLoans: true}, nil
}

// UnmarkLoan marks the loan numbered LoanNumber as unpaid.
type UnmarkLoan struct {
	LoanNumber Index
}

func (c UnmarkLoan) Execute(_ context.Context, m model.Model) (Result, error) {
	target, err := loanAt(m, c.LoanNumber)
	if err != nil {
		return Result{}, err
	}

	unmarked, err := m.UnmarkLoan(target)
	if err != nil {
		return Result{}, fmt.Errorf("could not unmark loan: %w", err)
	}

	return Result{Feedback: fmt.Sprintf(MessageUnmarkLoanSuccess, unmarked), ShowLoans: true}, nil
}

// EditLoan changes the amount or the description of the loan numbered
// LoanNumber. Nil fields keep their current value.
type EditLoan struct {
	LoanNumber  Index
	Amount      *domain.Money
	Description *domain.Description
}

func (c EditLoan) Execute(_ context.Context, m model.Model) (Result, error) {
	target, err := loanAt(m, c.LoanNumber)
	if err != nil {
		return Result{}, err
	}

	edited := target
	if c.Amount != nil {
		edited.Amount = *c.Amount
	}
	if c.Description != nil {
		edited.Description = *c.Description
	}

	if err := m.SetLoan(target, edited); err != nil {
		return Result{}, duplicateAs(err, MessageDuplicateLoan, "edit loan")
	}

	return Result{Feedback: fmt.Sprintf(MessageEditLoanSuccess, edited), ShowLoans: true}, nil
}

// DeleteLoan deletes the loan numbered LoanNumber.
type DeleteLoan struct {
	LoanNumber Index
}

func (c DeleteLoan) Execute(_ context.Context, m model.Model) (Result, error) {
	target, err := loanAt(m, c.LoanNumber)
	if err != nil {
		return Result{}, err
	}

	if err := m.DeleteLoan(target); err != nil {
		return Result{}, fmt.Errorf("could not delete loan: %w", err)
	}

	return Result{Feedback: fmt.Sprintf(MessageDeleteLoanSuccess, target), ShowLoans: true}, nil
}
