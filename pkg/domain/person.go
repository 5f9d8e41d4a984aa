package domain

import (
	"slices"
	"strings"
)

// Constraint messages reported when a person field fails validation.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	TagConstraints     = "Tags names should be alphanumeric"
	EmailConstraints   = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, " +
		"excluding the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."
)

// Name is a person's full name. It is also the key loans use to refer to
// their owner.
type Name string

// NewName validates and returns a Name. Surrounding whitespace is trimmed.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if err := check(s, nameRules, NameConstraints); err != nil {
		return "", err
	}

	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Phone is a person's phone number.
type Phone string

// NewPhone validates and returns a Phone.
func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if err := check(s, phoneRules, PhoneConstraints); err != nil {
		return "", err
	}

	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// Email is a person's email address.
type Email string

// NewEmail validates and returns an Email.
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if err := check(s, emailRules, EmailConstraints); err != nil {
		return "", err
	}

	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Address is a person's postal address.
type Address string

// NewAddress validates and returns an Address.
func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if err := check(s, addressRules, AddressConstraints); err != nil {
		return "", err
	}

	return Address(s), nil
}

func (a Address) String() string { return string(a) }

// Tag is a free-form label attached to a person.
type Tag string

// NewTag validates and returns a Tag.
func NewTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if err := check(s, tagRules, TagConstraints); err != nil {
		return "", err
	}

	return Tag(s), nil
}

func (t Tag) String() string { return "[" + string(t) + "]" }

// Person is a contact tracked by the address book. Tags are kept sorted and
// free of repeats by NewPerson.
type Person struct {
	Name    Name
	Phone   Phone
	Email   Email
	Address Address
	Tags    []Tag
}

// NewPerson assembles a Person from already validated fields.
func NewPerson(name Name, phone Phone, email Email, address Address, tags []Tag) Person {
	return Person{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    normalizeTags(tags),
	}
}

// SamePerson reports whether a and b refer to the same person. Two persons
// with the same name are the same person regardless of their other fields.
func SamePerson(a, b Person) bool {
	return a.Name == b.Name
}

// ExactPerson reports whether every field of a and b is equal. Tags are
// compared as sets.
func ExactPerson(a, b Person) bool {
	return a.Name == b.Name &&
		a.Phone == b.Phone &&
		a.Email == b.Email &&
		a.Address == b.Address &&
		slices.Equal(normalizeTags(a.Tags), normalizeTags(b.Tags))
}

// String renders the person the way command feedback shows it.
func (p Person) String() string {
	var sb strings.Builder
	sb.WriteString(string(p.Name))
	sb.WriteString("; Phone: ")
	sb.WriteString(string(p.Phone))
	sb.WriteString("; Email: ")
	sb.WriteString(string(p.Email))
	sb.WriteString("; Address: ")
	sb.WriteString(string(p.Address))
	sb.WriteString("; Tags: ")
	for _, t := range normalizeTags(p.Tags) {
		sb.WriteString(t.String())
	}

	return sb.String()
}

func normalizeTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.Sort(out)

	return slices.Compact(out)
}
