package matching

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/contactbook/internal/core/domain/contact"
	"github.com/AntonioJCosta/contactbook/internal/core/ports"
	"github.com/bmatcuk/doublestar/v4"
)

// ErrNotImplemented is the panic value raised when a strategy without a Match implementation is invoked.
var ErrNotImplemented = errors.New("match strategy does not implement Match")

// ErrUnknownStrategy indicates that no strategy is registered under the requested name.
var ErrUnknownStrategy = errors.New("unknown match strategy")

/*
Unimplemented can be embedded by a strategy under construction. Calling Match
on it panics with ErrNotImplemented, so an incomplete strategy fails fast
instead of silently matching nothing.
*/
type Unimplemented struct{}

func (Unimplemented) Match([]contact.Contact, string) []contact.Contact {
	panic(ErrNotImplemented)
}

// Func adapts an ordinary function to the ports.MatchStrategy interface.
type Func func(contacts []contact.Contact, query string) []contact.Contact

func (f Func) Match(contacts []contact.Contact, query string) []contact.Contact {
	if f == nil {
		panic(ErrNotImplemented)
	}
	return f(contacts, query)
}

// SubstringName matches contacts whose name contains the query, ignoring case.
type SubstringName struct{}

// NewSubstringName returns the default strategy.
func NewSubstringName() ports.MatchStrategy {
	return SubstringName{}
}

func (SubstringName) Match(contacts []contact.Contact, query string) []contact.Contact {
	q := strings.ToLower(query)
	return filter(contacts, func(c contact.Contact) bool {
		return strings.Contains(strings.ToLower(c.Name), q)
	})
}

// ExactName matches contacts whose name equals the query, case-sensitively.
type ExactName struct{}

func (ExactName) Match(contacts []contact.Contact, query string) []contact.Contact {
	return filter(contacts, func(c contact.Contact) bool {
		return c.Name == query
	})
}

/*
PhoneDigits matches contacts whose phone number contains the digits of the
query. Formatting characters such as spaces, dashes and parentheses are
ignored on both sides. A query with no digits matches nothing.
*/
type PhoneDigits struct{}

func (PhoneDigits) Match(contacts []contact.Contact, query string) []contact.Contact {
	q := digitsOnly(query)
	if q == "" {
		return []contact.Contact{}
	}
	return filter(contacts, func(c contact.Contact) bool {
		return strings.Contains(digitsOnly(c.Phone), q)
	})
}

// GlobName matches names against a case-insensitive glob pattern such as "ana*" or "*silva".
// An invalid pattern matches nothing.
type GlobName struct{}

func (GlobName) Match(contacts []contact.Contact, query string) []contact.Contact {
	pattern := strings.ToLower(query)
	if !doublestar.ValidatePattern(pattern) {
		return []contact.Contact{}
	}
	return filter(contacts, func(c contact.Contact) bool {
		ok, err := doublestar.Match(pattern, strings.ToLower(c.Name))
		return err == nil && ok
	})
}

var registry = []struct {
	name        string
	description string
	strategy    ports.MatchStrategy
}{
	{"substring", "case-insensitive substring of the name (default)", SubstringName{}},
	{"exact", "exact, case-sensitive name", ExactName{}},
	{"phone", "digits contained in the phone number", PhoneDigits{}},
	{"glob", "case-insensitive glob over the name, e.g. 'ana*'", GlobName{}},
}

// Names lists the registered strategy names in a stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, r := range registry {
		names = append(names, r.name)
	}
	return names
}

// Description returns the one-line summary of a registered strategy, or "" for unknown names.
func Description(name string) string {
	for _, r := range registry {
		if r.name == name {
			return r.description
		}
	}
	return ""
}

// ByName resolves a strategy by its registered name. An empty name selects substring matching.
func ByName(name string) (ports.MatchStrategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return NewSubstringName(), nil
	}
	for _, r := range registry {
		if r.name == key {
			return r.strategy, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
}

func filter(contacts []contact.Contact, keep func(contact.Contact) bool) []contact.Contact {
	matched := []contact.Contact{}
	for _, c := range contacts {
		if keep(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
