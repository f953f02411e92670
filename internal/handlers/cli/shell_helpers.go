package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/contactbook/internal/core/ports"
	"github.com/AntonioJCosta/contactbook/internal/handlers/ui"
)

func (s *shell) printMenu() {
	fmt.Fprintln(s.out)
	for _, opt := range menuOptions {
		fmt.Fprintf(s.out, "%s %s\n", ui.MenuKeyColor(opt.key+"."), ui.MenuItemColor(opt.label))
	}
	fmt.Fprintln(s.out)
}

// prompt prints label and reads one line. Only the line terminator is
// stripped; a final line without a newline is still returned.
func (s *shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, ui.PromptColor(label))
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *shell) render(res Result) {
	switch res.Op {
	case OpAdd:
		renderAdded(s.out, res.Added)
	case OpRemove:
		renderRemoved(s.out, res.Removed)
	case OpList:
		renderListings(s.out, res.Listings, func(store string) string {
			return fmt.Sprintf("%s%s%s", ui.HeaderColor("Contact list ("), ui.StoreNameColor(store), ui.HeaderColor("):"))
		}, "No contacts.")
	case OpSearch:
		renderListings(s.out, res.Listings, func(store string) string {
			return fmt.Sprintf("%s%s%s%s%s",
				ui.HeaderColor("Search results for "),
				ui.ContactNameColor(res.Query),
				ui.HeaderColor(" ("),
				ui.StoreNameColor(store),
				ui.HeaderColor("):"))
		}, "No contacts found.")
	}
}

func renderAdded(w io.Writer, outcomes []ports.AddOutcome) {
	for _, o := range outcomes {
		fmt.Fprintf(w, "%s %s %s %s%s\n",
			ui.SuccessColor("Contact"),
			ui.ContactNameColor(o.Contact.Name),
			ui.SuccessColor("added to"),
			ui.StoreNameColor(o.Store),
			ui.SuccessColor("."))
	}
}

func renderRemoved(w io.Writer, outcomes []ports.RemoveOutcome) {
	for _, o := range outcomes {
		if o.Removed {
			fmt.Fprintf(w, "%s %s %s %s%s\n",
				ui.SuccessColor("Contact"),
				ui.ContactNameColor(o.Name),
				ui.SuccessColor("removed from"),
				ui.StoreNameColor(o.Store),
				ui.SuccessColor("."))
		} else {
			fmt.Fprintf(w, "%s %s %s %s%s\n",
				ui.WarningColor("Contact"),
				ui.ContactNameColor(o.Name),
				ui.WarningColor("not found in"),
				ui.StoreNameColor(o.Store),
				ui.WarningColor("."))
		}
	}
}

func renderListings(w io.Writer, listings []ports.Listing, header func(store string) string, empty string) {
	if len(listings) == 0 {
		fmt.Fprintln(w, ui.WarningColor("No contact stores are configured."))
		return
	}
	for _, l := range listings {
		fmt.Fprintln(w, header(l.Store))
		if len(l.Contacts) == 0 {
			fmt.Fprintln(w, ui.InfoColor(empty))
			continue
		}
		ui.RenderContacts(w, l.Contacts)
	}
}
