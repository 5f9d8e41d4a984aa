// Package parser turns user input into commands.
//
// Input is a command word followed by arguments: an optional preamble (usually
// an index) and prefixed values such as "v/50" or "d/lunch".
package parser

import (
	"loanbook/internal/logic/command"
	"loanbook/pkg/addressbook"
	"loanbook/pkg/domain"
	"loanbook/pkg/serrors"
	"strings"
)

type parseFunc func(args string) (command.Command, error)

var parsers = map[string]parseFunc{ //nolint: gochecknoglobals, lll
	command.AddWord:        parseAdd,
	command.EditWord:       parseEdit,
	command.DeleteWord:     indexParser(command.DeleteUsage, func(i command.Index) command.Command { return command.Delete{Index: i} }),
	command.ListWord:       fixed(command.List{}),
	command.FindWord:       parseFind,
	command.ViewWord:       indexParser(command.ViewUsage, func(i command.Index) command.Command { return command.View{Index: i} }),
	command.LinkLoanWord:   parseLinkLoan,
	command.MarkLoanWord:   indexParser(command.MarkLoanUsage, func(i command.Index) command.Command { return command.MarkLoan{LoanNumber: i} }),
	command.UnmarkLoanWord: indexParser(command.UnmarkLoanUsage, func(i command.Index) command.Command { return command.UnmarkLoan{LoanNumber: i} }),
	command.EditLoanWord:   parseEditLoan,
	command.DeleteLoanWord: indexParser(command.DeleteLoanUsage, func(i command.Index) command.Command { return command.DeleteLoan{LoanNumber: i} }),
	command.ClearWord:      fixed(command.Clear{}),
	command.HelpWord:       fixed(command.Help{}),
	command.ExitWord:       fixed(command.Exit{}),
}

// SplitCommandWord returns the first word of input and the rest of it.
func SplitCommandWord(input string) (word, args string) {
	input = strings.TrimSpace(input)
	i := strings.IndexFunc(input, isSpace)
	if i < 0 {
		return input, ""
	}

	return input[:i], input[i:]
}

// Parse parses one line of user input.
func Parse(input string) (command.Command, error) {
	word, args := SplitCommandWord(input)
	if word == "" {
		return nil, invalidFormat(command.HelpUsage)
	}

	parse, ok := parsers[word]
	if !ok {
		return nil, serrors.With(serrors.ErrInvalidFormat, command.MessageUnknownCommand)
	}

	return parse(args)
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }

// fixed parses commands that take no arguments. Trailing text is ignored.
func fixed(c command.Command) parseFunc {
	return func(string) (command.Command, error) { return c, nil }
}

// indexParser parses commands whose only argument is an index.
func indexParser(usage string, build func(command.Index) command.Command) parseFunc {
	return func(args string) (command.Command, error) {
		index, err := ParseIndex(args)
		if err != nil {
			return nil, invalidFormat(usage)
		}

		return build(index), nil
	}
}

func parseAdd(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	if !am.Has(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress) || am.Preamble() != "" {
		return nil, invalidFormat(command.AddUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}

	v, _ := am.Value(PrefixName)
	name, err := domain.NewName(v)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	v, _ = am.Value(PrefixPhone)
	phone, err := domain.NewPhone(v)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	v, _ = am.Value(PrefixEmail)
	email, err := domain.NewEmail(v)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	v, _ = am.Value(PrefixAddress)
	address, err := domain.NewAddress(v)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	tags, err := ParseTags(am.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	return command.Add{Person: domain.NewPerson(name, phone, email, address, tags)}, nil
}

func parseEdit(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	index, err := ParseIndex(am.Preamble())
	if err != nil {
		return nil, invalidFormat(command.EditUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}

	var d command.EditPersonDescriptor
	if v, ok := am.Value(PrefixName); ok {
		name, err := domain.NewName(v)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		d.Name = &name
	}
	if v, ok := am.Value(PrefixPhone); ok {
		phone, err := domain.NewPhone(v)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		d.Phone = &phone
	}
	if v, ok := am.Value(PrefixEmail); ok {
		email, err := domain.NewEmail(v)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		d.Email = &email
	}
	if v, ok := am.Value(PrefixAddress); ok {
		address, err := domain.NewAddress(v)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		d.Address = &address
	}
	if values := am.AllValues(PrefixTag); len(values) > 0 {
		tags, err := ParseTags(values)
		if err != nil {
			return nil, err
		}
		d.Tags = &tags
	}

	if !d.IsAnyFieldEdited() {
		return nil, serrors.With(serrors.ErrInvalidFormat, command.MessageNotEdited)
	}

	return command.Edit{Index: index, Descriptor: d}, nil
}

func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.FindUsage)
	}

	return command.Find{Keywords: keywords}, nil
}

func parseLinkLoan(args string) (command.Command, error) {
	am := Tokenize(args, PrefixValue, PrefixDescription)
	index, err := ParseIndex(am.Preamble())
	if err != nil || !am.Has(PrefixValue, PrefixDescription) {
		return nil, invalidFormat(command.LinkLoanUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(PrefixValue, PrefixDescription); err != nil {
		return nil, err
	}

	v, _ := am.Value(PrefixValue)
	amount, err := domain.ParseMoney(v)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	v, _ = am.Value(PrefixDescription)
	description, err := domain.NewDescription(v)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return command.LinkLoan{
		Index:      index,
		Descriptor: addressbook.LoanDescriptor{Amount: amount, Description: description},
	}, nil
}

func parseEditLoan(args string) (command.Command, error) {
	am := Tokenize(args, PrefixLoanNumber, PrefixValue, PrefixDescription)
	raw, ok := am.Value(PrefixLoanNumber)
	if !ok || am.Preamble() != "" {
		return nil, invalidFormat(command.EditLoanUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(PrefixLoanNumber, PrefixValue, PrefixDescription); err != nil {
		return nil, err
	}
	number, err := ParseIndex(raw)
	if err != nil {
		return nil, invalidFormat(command.EditLoanUsage)
	}

	c := command.EditLoan{LoanNumber: number}
	if v, ok := am.Value(PrefixValue); ok {
		amount, err := domain.ParseMoney(v)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		c.Amount = &amount
	}
	if v, ok := am.Value(PrefixDescription); ok {
		description, err := domain.NewDescription(v)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		c.Description = &description
	}
	if c.Amount == nil && c.Description == nil {
		return nil, serrors.With(serrors.ErrInvalidFormat, command.MessageNotEdited)
	}

	return c, nil
}

// IsCommandWord reports whether word names a command.
func IsCommandWord(word string) bool {
	_, ok := parsers[word]

	return ok
}
