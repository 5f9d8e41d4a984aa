package jsonfile

import (
	"fmt"
	"loanbook/pkg/addressbook"
	"loanbook/pkg/domain"
	"loanbook/pkg/serrors"
	"loanbook/pkg/storage"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// JSONPerson is the on-disk form of a domain.Person. Pointer fields are nil
// when the key is absent so that missing fields can be reported by name.
type JSONPerson struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Tags    []string
}

// JSONLoan is the on-disk form of a domain.Loan.
type JSONLoan struct {
	Amount      *string
	Description *string
	Paid        bool
	Assignee    *string
}

// JSONAddressBook is the on-disk form of an address book.
type JSONAddressBook struct {
	Persons []JSONPerson
	Loans   []JSONLoan
}

func missingField(entity, field string) error {
	return serrors.With(serrors.ErrInvalidValue, storage.MissingFieldMessageFormat, entity, field)
}

//// person

// FromDomain fills p from person.
func (p *JSONPerson) FromDomain(person domain.Person) {
	name, phone, email, address := string(person.Name), string(person.Phone), string(person.Email),
		string(person.Address)
	tags := make([]string, 0, len(person.Tags))
	for _, t := range person.Tags {
		tags = append(tags, string(t))
	}

	*p = JSONPerson{
		Name:    &name,
		Phone:   &phone,
		Email:   &email,
		Address: &address,
		Tags:    tags,
	}
}

// ToDomain validates p and converts it into a domain.Person.
func (p *JSONPerson) ToDomain() (domain.Person, error) {
	if p.Name == nil {
		return domain.Person{}, missingField("Person", "Name")
	}
	name, err := domain.NewName(*p.Name)
	if err != nil {
		return domain.Person{}, err //nolint: wrapcheck
	}

	if p.Phone == nil {
		return domain.Person{}, missingField("Person", "Phone")
	}
	phone, err := domain.NewPhone(*p.Phone)
	if err != nil {
		return domain.Person{}, err //nolint: wrapcheck
	}

	if p.Email == nil {
		return domain.Person{}, missingField("Person", "Email")
	}
	email, err := domain.NewEmail(*p.Email)
	if err != nil {
		return domain.Person{}, err //nolint: wrapcheck
	}

	if p.Address == nil {
		return domain.Person{}, missingField("Person", "Address")
	}
	address, err := domain.NewAddress(*p.Address)
	if err != nil {
		return domain.Person{}, err //nolint: wrapcheck
	}

	tags := make([]domain.Tag, 0, len(p.Tags))
	for _, raw := range p.Tags {
		tag, err := domain.NewTag(raw)
		if err != nil {
			return domain.Person{}, err //nolint: wrapcheck
		}
		tags = append(tags, tag)
	}

	return domain.NewPerson(name, phone, email, address, tags), nil
}

// Encode writes p as a JSON object.
func (p *JSONPerson) Encode(e *jx.Encoder) {
	e.ObjStart()
	encodeOptStr(e, "name", p.Name)
	encodeOptStr(e, "phone", p.Phone)
	encodeOptStr(e, "email", p.Email)
	encodeOptStr(e, "address", p.Address)
	e.FieldStart("tags")
	e.ArrStart()
	for _, t := range p.Tags {
		e.Str(t)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// Decode reads p from a JSON object. Unknown keys are skipped.
func (p *JSONPerson) Decode(d *jx.Decoder) error {
	if p == nil {
		return errors.New("invalid: unable to decode JSONPerson to nil")
	}

	return d.Obj(func(d *jx.Decoder, k string) error {
		var err error
		switch k {
		case "name":
			p.Name, err = decodeOptStr(d)
		case "phone":
			p.Phone, err = decodeOptStr(d)
		case "email":
			p.Email, err = decodeOptStr(d)
		case "address":
			p.Address, err = decodeOptStr(d)
		case "tags":
			p.Tags, err = decodeStrArr(d)
		default:
			return d.Skip()
		}

		if err != nil {
			return errors.Wrapf(err, "decode field %q", k)
		}

		return nil
	})
}

//// loan

// FromDomain fills l from loan.
func (l *JSONLoan) FromDomain(loan domain.Loan) {
	amount, description, assignee := loan.Amount.String(), string(loan.Description), string(loan.Assignee)

	*l = JSONLoan{
		Amount:      &amount,
		Description: &description,
		Paid:        loan.Paid,
		Assignee:    &assignee,
	}
}

// ToDomain validates l and converts it into a domain.Loan.
func (l *JSONLoan) ToDomain() (domain.Loan, error) {
	if l.Amount == nil {
		return domain.Loan{}, missingField("Loan", "Amount")
	}
	amount, err := domain.ParseMoney(*l.Amount)
	if err != nil {
		return domain.Loan{}, err //nolint: wrapcheck
	}

	if l.Description == nil {
		return domain.Loan{}, missingField("Loan", "Description")
	}
	description, err := domain.NewDescription(*l.Description)
	if err != nil {
		return domain.Loan{}, err //nolint: wrapcheck
	}

	if l.Assignee == nil {
		return domain.Loan{}, missingField("Loan", "Assignee")
	}
	assignee, err := domain.NewName(*l.Assignee)
	if err != nil {
		return domain.Loan{}, err //nolint: wrapcheck
	}

	loan := domain.NewLoan(amount, description, assignee)
	if l.Paid {
		loan = loan.MarkPaid()
	}

	return loan, nil
}

// Encode writes l as a JSON object.
func (l *JSONLoan) Encode(e *jx.Encoder) {
	e.ObjStart()
	encodeOptStr(e, "amount", l.Amount)
	encodeOptStr(e, "description", l.Description)
	e.FieldStart("paid")
	e.Bool(l.Paid)
	encodeOptStr(e, "assignee", l.Assignee)
	e.ObjEnd()
}

// Decode reads l from a JSON object. A missing "paid" key means unpaid.
func (l *JSONLoan) Decode(d *jx.Decoder) error {
	if l == nil {
		return errors.New("invalid: unable to decode JSONLoan to nil")
	}

	return d.Obj(func(d *jx.Decoder, k string) error {
		var err error
		switch k {
		case "amount":
			l.Amount, err = decodeOptStr(d)
		case "description":
			l.Description, err = decodeOptStr(d)
		case "paid":
			l.Paid, err = d.Bool()
		case "assignee":
			l.Assignee, err = decodeOptStr(d)
		default:
			return d.Skip()
		}

		if err != nil {
			return errors.Wrapf(err, "decode field %q", k)
		}

		return nil
	})
}

//// address book

// FromDomain fills a from book.
func (a *JSONAddressBook) FromDomain(book addressbook.ReadOnly) {
	persons := book.PersonList()
	loans := book.LoanList()

	*a = JSONAddressBook{
		Persons: make([]JSONPerson, len(persons)),
		Loans:   make([]JSONLoan, len(loans)),
	}
	for i := range persons {
		a.Persons[i].FromDomain(persons[i])
	}
	for i := range loans {
		a.Loans[i].FromDomain(loans[i])
	}
}

// ToDomain converts a into an address book. It rejects invalid fields,
// duplicate persons, duplicate loans and loans owed by unknown persons. Every
// rejection is an serrors.ErrInvalidValue error carrying the offending entity.
func (a *JSONAddressBook) ToDomain() (*addressbook.AddressBook, error) {
	book := addressbook.New()

	for i := range a.Persons {
		person, err := a.Persons[i].ToDomain()
		if err != nil {
			return nil, fmt.Errorf("person #%d: %w", i+1, err)
		}
		if book.HasPerson(person) {
			return nil, serrors.With(serrors.ErrInvalidValue, storage.MessageDuplicatePerson).WithEntity(person)
		}
		if err := book.AddPerson(person); err != nil {
			return nil, fmt.Errorf("could not add person: %w", err)
		}
	}

	for i := range a.Loans {
		loan, err := a.Loans[i].ToDomain()
		if err != nil {
			return nil, fmt.Errorf("loan #%d: %w", i+1, err)
		}
		if book.HasLoan(loan) {
			return nil, serrors.With(serrors.ErrInvalidValue, storage.MessageDuplicateLoan).WithEntity(loan)
		}
		if _, ok := book.FindPerson(loan.Assignee); !ok {
			return nil, serrors.With(serrors.ErrInvalidValue, storage.MessageMissingAssignee).WithEntity(loan)
		}
		if err := book.AddLoan(loan); err != nil {
			return nil, fmt.Errorf("could not add loan: %w", err)
		}
	}

	return book, nil
}

// Encode writes a as a JSON object.
func (a *JSONAddressBook) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("persons")
	e.ArrStart()
	for i := range a.Persons {
		a.Persons[i].Encode(e)
	}
	e.ArrEnd()
	e.FieldStart("loans")
	e.ArrStart()
	for i := range a.Loans {
		a.Loans[i].Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// Decode reads a from a JSON object. Missing lists are treated as empty.
func (a *JSONAddressBook) Decode(d *jx.Decoder) error {
	if a == nil {
		return errors.New("invalid: unable to decode JSONAddressBook to nil")
	}

	return d.Obj(func(d *jx.Decoder, k string) error {
		var err error
		switch k {
		case "persons":
			err = d.Arr(func(d *jx.Decoder) error {
				var p JSONPerson
				if err := p.Decode(d); err != nil {
					return err
				}
				a.Persons = append(a.Persons, p)

				return nil
			})
		case "loans":
			err = d.Arr(func(d *jx.Decoder) error {
				var l JSONLoan
				if err := l.Decode(d); err != nil {
					return err
				}
				a.Loans = append(a.Loans, l)

				return nil
			})
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", k)
		}

		return nil
	})
}

func encodeOptStr(e *jx.Encoder, field string, v *string) {
	if v == nil {
		return
	}
	e.FieldStart(field)
	e.Str(*v)
}

// decodeOptStr reads a string; JSON null yields nil.
func decodeOptStr(d *jx.Decoder) (*string, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	s, err := d.Str()
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func decodeStrArr(d *jx.Decoder) ([]string, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	var out []string
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		if err != nil {
			return err
		}
		out = append(out, s)

		return nil
	})

	return out, err
}
