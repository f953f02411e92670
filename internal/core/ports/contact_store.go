package ports

import "github.com/AntonioJCosta/contactbook/internal/core/domain/contact"

// ContactStore defines the contract for an ordered, in-memory collection of contacts.
type ContactStore interface {
	// Name identifies the store when results from several stores are rendered together.
	Name() string

	// Add appends a new contact and returns it. It always succeeds.
	Add(name, phone, email string) contact.Contact

	// Remove deletes the first contact whose name equals name exactly.
	// It returns the removed contact and true, or a zero Contact and false if none matched.
	Remove(name string) (contact.Contact, bool)

	// List returns a snapshot of all contacts in insertion order.
	List() []contact.Contact

	// Search returns the contacts selected by the store's MatchStrategy.
	Search(query string) []contact.Contact

	// Len reports the number of stored contacts.
	Len() int
}
