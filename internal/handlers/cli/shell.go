package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/contactbook/internal/core/ports"
	"github.com/AntonioJCosta/contactbook/internal/handlers/ui"
)

// ErrInvalidOption indicates a menu selection that maps to no command.
var ErrInvalidOption = errors.New("invalid menu option")

type menuOption struct {
	key    string
	label  string
	op     string
	fields []string
}

var menuOptions = []menuOption{
	{key: "1", label: "Add contact", op: OpAdd, fields: []string{"Name", "Phone", "Email"}},
	{key: "2", label: "Remove contact", op: OpRemove, fields: []string{"Name"}},
	{key: "3", label: "List contacts", op: OpList},
	{key: "4", label: "Search contact by name", op: OpSearch, fields: []string{"Name"}},
	{key: "0", label: "Exit", op: OpExit},
}

// shell drives one interactive session: one command is read, dispatched
// and rendered before the next menu is shown.
type shell struct {
	in   *bufio.Reader
	out  io.Writer
	book ports.ContactBook
}

func newShell(in io.Reader, out io.Writer, book ports.ContactBook) *shell {
	return &shell{in: bufio.NewReader(in), out: out, book: book}
}

// run loops until the user exits or input ends.
func (s *shell) run() error {
	for {
		s.printMenu()
		selection, err := s.prompt("Choose an option: ")
		if err != nil {
			return s.endOfInput(err)
		}

		cmd, err := s.collect(strings.TrimSpace(selection))
		if errors.Is(err, ErrInvalidOption) {
			fmt.Fprintln(s.out, ui.ErrorColor("Invalid option!"))
			continue
		}
		if err != nil {
			return s.endOfInput(err)
		}

		res, err := Dispatch(s.book, cmd)
		if err != nil {
			fmt.Fprintln(s.out, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
			continue
		}
		if res.Exit {
			fmt.Fprintln(s.out, ui.InfoColor("Exiting..."))
			return nil
		}
		s.render(res)
	}
}

// collect maps a menu selection to a Command, prompting for every field
// before returning so the command is only built once all arguments are known.
func (s *shell) collect(selection string) (Command, error) {
	for _, opt := range menuOptions {
		if opt.key != selection {
			continue
		}
		args := make([]string, 0, len(opt.fields))
		for _, field := range opt.fields {
			v, err := s.prompt(field + ": ")
			if err != nil {
				return Command{}, err
			}
			args = append(args, v)
		}
		return Command{Op: opt.op, Args: args}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrInvalidOption, selection)
}

// endOfInput treats a closed input stream like the exit option.
func (s *shell) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, ui.InfoColor("Exiting..."))
		return nil
	}
	return fmt.Errorf("failed to read input: %w", err)
}
