package testutil

import (
	"github.com/AntonioJCosta/contactbook/internal/core/domain/contact"
	"github.com/AntonioJCosta/contactbook/internal/core/ports"
)

// MockContactStore is a mock implementation of ports.ContactStore for testing.
// Unset funcs fall back to zero values, except Name which returns StoreName.
type MockContactStore struct {
	StoreName  string
	AddFunc    func(name, phone, email string) contact.Contact
	RemoveFunc func(name string) (contact.Contact, bool)
	ListFunc   func() []contact.Contact
	SearchFunc func(query string) []contact.Contact
	LenFunc    func() int

	// Calls records the invoked method names in order.
	Calls []string
}

func (m *MockContactStore) Name() string {
	return m.StoreName
}

func (m *MockContactStore) Add(name, phone, email string) contact.Contact {
	m.Calls = append(m.Calls, "Add")
	if m.AddFunc != nil {
		return m.AddFunc(name, phone, email)
	}
	return contact.New(name, phone, email)
}

func (m *MockContactStore) Remove(name string) (contact.Contact, bool) {
	m.Calls = append(m.Calls, "Remove")
	if m.RemoveFunc != nil {
		return m.RemoveFunc(name)
	}
	return contact.Contact{}, false
}

func (m *MockContactStore) List() []contact.Contact {
	m.Calls = append(m.Calls, "List")
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return []contact.Contact{}
}

func (m *MockContactStore) Search(query string) []contact.Contact {
	m.Calls = append(m.Calls, "Search")
	if m.SearchFunc != nil {
		return m.SearchFunc(query)
	}
	return []contact.Contact{}
}

func (m *MockContactStore) Len() int {
	if m.LenFunc != nil {
		return m.LenFunc()
	}
	return 0
}

var _ ports.ContactStore = (*MockContactStore)(nil)
