/*
Package contact defines the core domain entity for a contact book entry.
*/
package contact

/*
Contact represents a named record holding a phone number and an email address.
This is a core domain entity; it is never mutated after construction.
*/
type Contact struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
}

// New creates a Contact. No validation is performed; empty fields are accepted.
func New(name, phone, email string) Contact {
	return Contact{Name: name, Phone: phone, Email: email}
}
