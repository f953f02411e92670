package cli

import (
	"testing"

	"github.com/AntonioJCosta/contactbook/internal/core/domain/contact"
	"github.com/AntonioJCosta/contactbook/internal/core/ports"
	"github.com/AntonioJCosta/contactbook/internal/core/services/contactbook"
	"github.com/AntonioJCosta/contactbook/internal/core/services/contactstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBook(stores ...string) ports.ContactBook {
	book := contactbook.NewService(nil)
	for _, name := range stores {
		book.Register(contactstore.NewService(name, nil, nil))
	}
	return book
}

func TestDispatch(t *testing.T) {
	book := newTestBook("a", "b")

	res, err := Dispatch(book, Command{Op: OpAdd, Args: []string{"Ana Silva", "555", "ana@example.com"}})
	require.NoError(t, err)
	assert.Len(t, res.Added, 2)

	res, err = Dispatch(book, Command{Op: OpSearch, Args: []string{"SILVA"}})
	require.NoError(t, err)
	assert.Equal(t, "SILVA", res.Query)
	assert.Equal(t, []contact.Contact{
		contact.New("Ana Silva", "555", "ana@example.com"),
		contact.New("Ana Silva", "555", "ana@example.com"),
	}, ports.Flatten(res.Listings))

	res, err = Dispatch(book, Command{Op: OpRemove, Args: []string{"Ana Silva"}})
	require.NoError(t, err)
	for _, o := range res.Removed {
		assert.True(t, o.Removed, "store %s", o.Store)
	}

	res, err = Dispatch(book, Command{Op: OpList})
	require.NoError(t, err)
	assert.Empty(t, ports.Flatten(res.Listings))

	res, err = Dispatch(book, Command{Op: OpExit})
	require.NoError(t, err)
	assert.True(t, res.Exit)
}

func TestDispatch_Errors(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want error
	}{
		{name: "unknown op", cmd: Command{Op: "rename"}, want: ErrUnknownCommand},
		{name: "add missing email", cmd: Command{Op: OpAdd, Args: []string{"Ana", "555"}}, want: ErrInvalidArguments},
		{name: "remove without name", cmd: Command{Op: OpRemove}, want: ErrInvalidArguments},
		{name: "list with args", cmd: Command{Op: OpList, Args: []string{"x"}}, want: ErrInvalidArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := newTestBook("a")
			_, err := Dispatch(book, tt.cmd)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, ports.Flatten(book.List()), "a rejected command must not touch the stores")
		})
	}
}
