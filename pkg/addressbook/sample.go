package addressbook

import "loanbook/pkg/domain"

// SampleData returns an address book populated with a few persons and loans.
// It is what `loanbook seed` writes to disk.
func SampleData() *AddressBook {
	persons := []domain.Person{
		domain.NewPerson("Alex Yeoh", "87438807", "alexyeoh@example.com",
			"Blk 30 Geylang Street 29, #06-40", []domain.Tag{"friends"}),
		domain.NewPerson("Bernice Yu", "99272758", "berniceyu@example.com",
			"Blk 30 Lorong 3 Serangoon Gardens, #07-18", []domain.Tag{"colleagues", "friends"}),
		domain.NewPerson("Charlotte Oliveiro", "93210283", "charlotte@example.com",
			"Blk 11 Ang Mo Kio Street 74, #11-04", []domain.Tag{"neighbours"}),
		domain.NewPerson("David Li", "91031282", "lidavid@example.com",
			"Blk 436 Serangoon Gardens Street 26, #16-43", []domain.Tag{"family"}),
	}
	loans := []domain.Loan{
		domain.NewLoan(5000, "lunch", "Alex Yeoh"),
		domain.NewLoan(12050, "concert tickets", "Alex Yeoh").MarkPaid(),
		domain.NewLoan(2000, "taxi fare", "Bernice Yu"),
		domain.NewLoan(30000, "laptop repair", "David Li"),
	}

	ab := New()
	// the fixed data above is consistent, so neither call can fail
	_ = ab.SetPersons(persons)
	_ = ab.SetLoans(loans)

	return ab
}
