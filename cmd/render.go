package main

import (
	"fmt"
	"io"
	"loanbook/internal/logic"
	"loanbook/internal/logic/command"
	"loanbook/pkg/serrors"
)

// render prints the outcome of a command the way the shell shows it.
func render(w io.Writer, l logic.Logic, res command.Result, err error) {
	if err != nil {
		_, _ = fmt.Fprintln(w, serrors.MessageOf(err))

		return
	}

	_, _ = fmt.Fprintln(w, res.Feedback)

	switch {
	case res.Exit, res.ShowHelp:
	case res.ShowLoans:
		renderLoans(w, l)
	default:
		renderPersons(w, l)
	}
}

func renderPersons(w io.Writer, l logic.Logic) {
	for i, p := range l.FilteredPersonList() {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, p)
	}
}

func renderLoans(w io.Writer, l logic.Logic) {
	if p, ok := l.PersonInView(); ok {
		_, _ = fmt.Fprintf(w, "Loans of %s:\n", p.Name)
	} else {
		_, _ = fmt.Fprintln(w, "All loans:")
	}

	loans := l.SortedLoanList()
	if len(loans) == 0 {
		_, _ = fmt.Fprintln(w, "(none)")
	}
	for i, loan := range loans {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, loan.Format())
	}
}
