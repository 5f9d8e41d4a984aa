// Package command defines the commands a user can run against the model and
// the result each of them reports back.
package command

import (
	"context"
	"errors"
	"fmt"
	"loanbook/internal/model"
	"loanbook/pkg/domain"
	"loanbook/pkg/serrors"
)

// Messages shared by several commands.
const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidPersonIndex   = "The person index provided is invalid"
	MessageLoanNotFound         = "No loan has been found for loan number: %d"
	MessagePersonsListed        = "%d persons listed!"
	MessageDuplicatePerson      = "This person already exists in the address book"
	MessageDuplicateLoan        = "This loan already exists"
)

// Result is what a command reports back to the user interface.
type Result struct {
	// Feedback is shown to the user.
	Feedback string
	// ShowHelp asks the interface to show the usage of every command.
	ShowHelp bool
	// Exit asks the interface to stop.
	Exit bool
	// ShowLoans asks the interface to show the sorted loan list.
	ShowLoans bool
}

// Command is a parsed user request.
type Command interface {
	// Execute runs the command. Failures the user can fix are returned as
	// serrors.ErrCommand errors whose message is meant for display.
	Execute(ctx context.Context, m model.Model) (Result, error)
}

// Index is a one-based position in a list shown to the user.
type Index int

// Zero returns the zero-based position.
func (i Index) Zero() int { return int(i) - 1 }

func failure(format string, args ...any) error {
	return serrors.With(serrors.ErrCommand, format, args...)
}

// personAt returns the person at index in the filtered person list.
func personAt(m model.Model, index Index) (domain.Person, error) {
	persons := m.FilteredPersonList()
	if index.Zero() < 0 || index.Zero() >= len(persons) {
		return domain.Person{}, failure(MessageInvalidPersonIndex)
	}

	return persons[index.Zero()], nil
}

// loanAt returns the loan numbered number in the sorted loan list.
func loanAt(m model.Model, number Index) (domain.Loan, error) {
	loans := m.SortedLoanList()
	if number.Zero() < 0 || number.Zero() >= len(loans) {
		return domain.Loan{}, failure(MessageLoanNotFound, int(number))
	}

	return loans[number.Zero()], nil
}

// duplicateAs turns a duplicate error from the model into a command failure
// showing msg. Other errors are wrapped with action.
func duplicateAs(err error, msg, action string) error {
	if errors.Is(err, serrors.ErrDuplicate) {
		e := serrors.With(serrors.ErrCommand, "%s", msg)
		if entity, ok := serrors.EntityOf(err); ok {
			e = e.WithEntity(entity)
		}

		return e
	}

	return fmt.Errorf("could not %s: %w", action, err)
}
