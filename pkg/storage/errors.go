package storage

// Messages attached to serrors.ErrInvalidValue errors when stored data is
// rejected on load.
const (
	// MessageDuplicatePerson is reported when two stored persons are the same person.
	MessageDuplicatePerson = "Persons list contains duplicate person(s)."
	// MessageDuplicateLoan is reported when two stored loans are the same loan.
	MessageDuplicateLoan = "Loans list contains duplicate loan(s)."
	// MessageMissingAssignee is reported when a stored loan is owned by a person
	// who is not stored.
	MessageMissingAssignee = "Loans list contains loan(s) owed by a person who does not exist."
	// MissingFieldMessageFormat is filled with the entity and field name of a
	// required field absent from stored data.
	MissingFieldMessageFormat = "%s's %s field is missing!"
)
