package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/contactbook/internal/core/ports"
)

// Operation names accepted by Dispatch.
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpList   = "list"
	OpSearch = "search"
	OpExit   = "exit"
)

// ErrUnknownCommand indicates an operation name Dispatch does not handle.
var ErrUnknownCommand = errors.New("unknown command")

// ErrInvalidArguments indicates a command with the wrong number of arguments.
var ErrInvalidArguments = errors.New("invalid arguments")

var arity = map[string]int{
	OpAdd:    3,
	OpRemove: 1,
	OpList:   0,
	OpSearch: 1,
	OpExit:   0,
}

// Command is a single user action: an operation name plus its string arguments.
type Command struct {
	Op   string
	Args []string
}

// Result carries what the contact book returned for a Command.
// Only the field matching Op is populated.
type Result struct {
	Op       string
	Query    string
	Added    []ports.AddOutcome
	Removed  []ports.RemoveOutcome
	Listings []ports.Listing
	Exit     bool
}

// Dispatch validates c and invokes the matching ContactBook operation.
func Dispatch(book ports.ContactBook, c Command) (Result, error) {
	want, ok := arity[c.Op]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownCommand, c.Op)
	}
	if len(c.Args) != want {
		return Result{}, fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrInvalidArguments, c.Op, want, len(c.Args))
	}

	res := Result{Op: c.Op}
	switch c.Op {
	case OpAdd:
		res.Added = book.Add(c.Args[0], c.Args[1], c.Args[2])
	case OpRemove:
		res.Removed = book.Remove(c.Args[0])
	case OpList:
		res.Listings = book.List()
	case OpSearch:
		res.Query = c.Args[0]
		res.Listings = book.Search(c.Args[0])
	case OpExit:
		res.Exit = true
	}
	return res, nil
}
