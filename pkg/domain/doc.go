// Package domain contains the entities of the loan book: persons, the loans
// they owe and the value types both are built from. Constructors validate
// their input and return serrors.ErrInvalidValue errors whose message is the
// constraint text shown to the user. The types carry no storage or UI concerns.
package domain
