package ports

import "github.com/AntonioJCosta/contactbook/internal/core/domain/contact"

// AddOutcome reports the contact added to a single store.
type AddOutcome struct {
	Store   string
	Contact contact.Contact
}

// RemoveOutcome reports whether a single store removed a contact.
type RemoveOutcome struct {
	Store   string
	Name    string
	Removed bool
}

// Listing holds the contacts one store returned for a list or search call.
type Listing struct {
	Store    string
	Contacts []contact.Contact
}

// Flatten concatenates the contacts of all listings, preserving store order.
func Flatten(listings []Listing) []contact.Contact {
	all := []contact.Contact{}
	for _, l := range listings {
		all = append(all, l.Contacts...)
	}
	return all
}

/*
ContactBook defines the contract for broadcasting contact operations across
every registered ContactStore, in registration order. This is the driving port
used by the console shell.
*/
type ContactBook interface {
	Register(store ContactStore)
	Stores() []ContactStore

	Add(name, phone, email string) []AddOutcome
	Remove(name string) []RemoveOutcome
	List() []Listing
	Search(query string) []Listing
}
