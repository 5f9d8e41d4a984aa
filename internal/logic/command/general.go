package command

import (
	"context"
	"fmt"
	"loanbook/internal/model"
	"loanbook/pkg/addressbook"
	"strings"
)

// Command words and usage texts of the remaining commands.
const (
	ClearWord  = "clear"
	ClearUsage = ClearWord + ": Deletes every person and loan."

	HelpWord  = "help"
	HelpUsage = HelpWord + ": Shows program usage instructions.\n" +
		"Example: " + HelpWord

	ExitWord  = "exit"
	ExitUsage = ExitWord + ": Exits the program."
)

// Feedback of the remaining commands.
const (
	MessageClearSuccess = "Address book has been cleared!"
	MessageExitSuccess  = "Exiting Address Book as requested ..."
)

// Usages lists the usage text of every command in the order help shows them.
func Usages() []string {
	return []string{
		AddUsage, EditUsage, DeleteUsage, ListUsage, FindUsage, ViewUsage,
		LinkLoanUsage, MarkLoanUsage, UnmarkLoanUsage, EditLoanUsage, DeleteLoanUsage,
		ClearUsage, HelpUsage, ExitUsage,
	}
}

// Clear deletes every person and loan.
type Clear struct{}

func (Clear) Execute(_ context.Context, m model.Model) (Result, error) {
	if err := m.SetAddressBook(addressbook.New()); err != nil {
		return Result{}, fmt.Errorf("could not clear address book: %w", err)
	}

	return Result{Feedback: MessageClearSuccess}, nil
}

// Help shows the usage of every command.
type Help struct{}

func (Help) Execute(context.Context, model.Model) (Result, error) {
	usages := Usages()
	for i, u := range usages {
		usages[i] = strings.TrimRight(u, "\n")
	}

	return Result{Feedback: strings.Join(usages, "\n\n"), ShowHelp: true}, nil
}

// Exit ends the session.
type Exit struct{}

func (Exit) Execute(context.Context, model.Model) (Result, error) {
	return Result{Feedback: MessageExitSuccess, Exit: true}, nil
}
