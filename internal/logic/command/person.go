package command

import (
	"context"
	"fmt"
	"loanbook/internal/model"
	"loanbook/pkg/domain"
	"slices"
	"strings"
)

// Command words and usage texts of the person commands.
const (
	AddWord  = "add"
	AddUsage = AddWord + ": Adds a person to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: " + AddWord + " n/John Doe p/98765432 e/johnd@example.com " +
		"a/311, Clementi Ave 2, #02-25 t/friends t/owesMoney"

	EditWord  = "edit"
	EditUsage = EditWord + ": Edits the details of the person identified by the index number used in the " +
		"displayed person list. Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
		"Example: " + EditWord + " 1 p/91234567 e/johndoe@example.com"

	DeleteWord  = "delete"
	DeleteUsage = DeleteWord + ": Deletes the person identified by the index number used in the displayed " +
		"person list, together with their loans.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteWord + " 1"

	ListWord  = "list"
	ListUsage = ListWord + ": Lists all persons."

	FindWord  = "find"
	FindUsage = FindWord + ": Finds all persons whose names contain any of the specified keywords " +
		"(case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindWord + " alice bob charlie"

	ViewWord  = "view"
	ViewUsage = ViewWord + ": Shows the loans of the person identified by the index number used in the " +
		"displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + ViewWord + " 1"
)

// Feedback of the person commands.
const (
	MessageAddSuccess    = "New person added: %s"
	MessageEditSuccess   = "Edited Person: %s"
	MessageNotEdited     = "At least one field to edit must be provided."
	MessageDeleteSuccess = "Deleted Person: %s"
	MessageListSuccess   = "Listed all persons"
	MessageViewSuccess   = "Viewing loans of: %s"
)

// Add adds a person.
type Add struct {
	Person domain.Person
}

func (c Add) Execute(_ context.Context, m model.Model) (Result, error) {
	if err := m.AddPerson(c.Person); err != nil {
		return Result{}, duplicateAs(err, MessageDuplicatePerson, "add person")
	}

	return Result{Feedback: fmt.Sprintf(MessageAddSuccess, c.Person)}, nil
}

// EditPersonDescriptor holds the fields to change on a person. Nil fields
// keep their current value.
type EditPersonDescriptor struct {
	Name    *domain.Name
	Phone   *domain.Phone
	Email   *domain.Email
	Address *domain.Address
	// Tags replaces every tag when non-nil. An empty slice removes all tags.
	Tags *[]domain.Tag
}

// IsAnyFieldEdited reports whether d changes anything.
func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil
}

// Apply returns p with the fields of d applied.
func (d EditPersonDescriptor) Apply(p domain.Person) domain.Person {
	name, phone, email, address, tags := p.Name, p.Phone, p.Email, p.Address, p.Tags
	if d.Name != nil {
		name = *d.Name
	}
	if d.Phone != nil {
		phone = *d.Phone
	}
	if d.Email != nil {
		email = *d.Email
	}
	if d.Address != nil {
		address = *d.Address
	}
	if d.Tags != nil {
		tags = *d.Tags
	}

	return domain.NewPerson(name, phone, email, address, slices.Clone(tags))
}

// Edit edits the person at Index. Loans follow the person.
type Edit struct {
	Index      Index
	Descriptor EditPersonDescriptor
}

func (c Edit) Execute(_ context.Context, m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	edited := c.Descriptor.Apply(target)
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, duplicateAs(err, MessageDuplicatePerson, "edit person")
	}
	m.UpdateFilteredPersonList(model.ShowAllPersons)

	return Result{Feedback: fmt.Sprintf(MessageEditSuccess, edited)}, nil
}

// Delete deletes the person at Index and every loan they owe.
type Delete struct {
	Index Index
}

func (c Delete) Execute(_ context.Context, m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	if err := m.DeletePerson(target); err != nil {
		return Result{}, fmt.Errorf("could not delete person: %w", err)
	}

	return Result{Feedback: fmt.Sprintf(MessageDeleteSuccess, target)}, nil
}

// List shows every person.
type List struct{}

// Execute shows every person and clears the person in view.
func (List) Execute(_ context.Context, m model.Model) (Result, error) {
	m.UpdateFilteredPersonList(model.ShowAllPersons)
	m.ClearView()

	return Result{Feedback: MessageListSuccess}, nil
}

// Find shows the persons whose name contains any of Keywords as a whole
// word, ignoring case.
type Find struct {
	Keywords []string
}

// Matches reports whether p's name contains one of the keywords.
func (c Find) Matches(p domain.Person) bool {
	words := strings.Fields(string(p.Name))

	return slices.ContainsFunc(c.Keywords, func(k string) bool {
		return slices.ContainsFunc(words, func(w string) bool { return strings.EqualFold(w, k) })
	})
}

func (c Find) Execute(_ context.Context, m model.Model) (Result, error) {
	m.UpdateFilteredPersonList(c.Matches)

	return Result{Feedback: fmt.Sprintf(MessagePersonsListed, len(m.FilteredPersonList()))}, nil
}

// View puts the person at Index in view, so that loan numbers refer to
// their loans.
type View struct {
	Index Index
}

func (c View) Execute(_ context.Context, m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	if err := m.ViewPerson(target); err != nil {
		return Result{}, fmt.Errorf("could not view person: %w", err)
	}

	return Result{Feedback: fmt.Sprintf(MessageViewSuccess, target.Name), ShowLoans: true}, nil
}
