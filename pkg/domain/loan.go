package domain

import (
	"fmt"
	"loanbook/pkg/serrors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Constraint messages reported when a loan field fails validation.
const (
	MoneyConstraints       = "Loan values should be positive numbers with at most 2 decimal places"
	DescriptionConstraints = "Loan descriptions should not be blank and should be at most 100 characters long"
)

// MaxDescriptionLength bounds the number of characters in a loan description.
const MaxDescriptionLength = 100

// maxMoney bounds amounts so that the value in cents fits an int64.
var maxMoney = decimal.New(math.MaxInt64, -2) //nolint: gochecknoglobals

// Money is an amount in cents. Loans compare by value, so the amount is kept
// as an integer and converted to a decimal for parsing and rendering.
type Money int64

// ParseMoney parses a positive decimal amount such as "50", "$12.5" or "0.99".
// At most two decimal places are accepted.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if s == "" || strings.ContainsAny(s, "+-eE") || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return 0, serrors.With(serrors.ErrInvalidValue, MoneyConstraints)
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() || d.Exponent() < -2 || d.GreaterThan(maxMoney) {
		return 0, serrors.With(serrors.ErrInvalidValue, MoneyConstraints)
	}

	return Money(d.Shift(2).IntPart()), nil
}

// Decimal returns the amount in currency units.
func (m Money) Decimal() decimal.Decimal { return decimal.New(int64(m), -2) }

// String renders the amount with two decimals and no currency sign, the form
// used on disk.
func (m Money) String() string { return m.Decimal().StringFixed(2) }

// Format renders the amount for display, e.g. "$50.00".
func (m Money) Format() string { return "$" + m.String() }

// Description says what a loan was for.
type Description string

// NewDescription validates and returns a Description.
func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if err := check(s, descriptionRules, DescriptionConstraints); err != nil {
		return "", err
	}

	return Description(s), nil
}

func (d Description) String() string { return string(d) }

// Loan is money owed by a person. Assignee holds the owning person's Name; the
// address book owns the loan's lifecycle, the person only identifies it.
//
// Loans are values: MarkPaid, MarkUnpaid and WithAssignee return modified
// copies and the address book swaps them into its list.
type Loan struct {
	Amount      Money
	Description Description
	Paid        bool
	Assignee    Name
}

// NewLoan returns an unpaid loan owed by assignee.
func NewLoan(amount Money, description Description, assignee Name) Loan {
	return Loan{
		Amount:      amount,
		Description: description,
		Assignee:    assignee,
	}
}

// SameLoan reports whether a and b describe the same loan: same owner, amount
// and description. The paid flag is ignored so that a loan can be found
// regardless of its state.
func SameLoan(a, b Loan) bool {
	return a.Assignee == b.Assignee &&
		a.Amount == b.Amount &&
		a.Description == b.Description
}

// ExactLoan reports whether a and b are equal in every field.
func ExactLoan(a, b Loan) bool { return a == b }

// MarkPaid returns a copy of l flagged as paid.
func (l Loan) MarkPaid() Loan {
	l.Paid = true

	return l
}

// MarkUnpaid returns a copy of l flagged as unpaid.
func (l Loan) MarkUnpaid() Loan {
	l.Paid = false

	return l
}

// WithAssignee returns a copy of l owned by name.
func (l Loan) WithAssignee(name Name) Loan {
	l.Assignee = name

	return l
}

// IsOwnedBy reports whether name owns l.
func (l Loan) IsOwnedBy(name Name) bool { return l.Assignee == name }

// Status returns "paid" or "unpaid".
func (l Loan) Status() string {
	if l.Paid {
		return "paid"
	}

	return "unpaid"
}

// String renders the loan without its owner, e.g. "$50.00 for lunch (unpaid)".
func (l Loan) String() string {
	return fmt.Sprintf("%s for %s (%s)", l.Amount.Format(), l.Description, l.Status())
}

// Format renders the loan together with its owner.
func (l Loan) Format() string {
	return l.String() + ", owed by " + string(l.Assignee)
}
