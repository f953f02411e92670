package testutil

import (
	"github.com/AntonioJCosta/contactbook/internal/core/domain/contact"
	"github.com/AntonioJCosta/contactbook/internal/core/ports"
)

// MockMatchStrategy is a mock implementation of ports.MatchStrategy.
// It records the arguments of the last call.
type MockMatchStrategy struct {
	MatchFunc func(contacts []contact.Contact, query string) []contact.Contact

	GotContacts []contact.Contact
	GotQuery    string
	CallCount   int
}

func (m *MockMatchStrategy) Match(contacts []contact.Contact, query string) []contact.Contact {
	m.CallCount++
	m.GotContacts = contacts
	m.GotQuery = query
	if m.MatchFunc != nil {
		return m.MatchFunc(contacts, query)
	}
	return nil
}

var _ ports.MatchStrategy = (*MockMatchStrategy)(nil)
