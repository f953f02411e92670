package ports

import "github.com/AntonioJCosta/contactbook/internal/core/domain/contact"

/*
MatchStrategy defines the contract for deciding which contacts satisfy a search query.
This is a driven port, representing a domain capability.
Implementations return the matching contacts in their original relative order,
must not mutate the input, and return an empty slice when nothing matches.
*/
type MatchStrategy interface {
	Match(contacts []contact.Contact, query string) []contact.Contact
}
