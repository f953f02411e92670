package ui

import (
	"io"

	"github.com/AntonioJCosta/contactbook/internal/core/domain/contact"
	"github.com/olekukonko/tablewriter"
)

// RenderContacts writes contacts as a bordered Name/Phone/Email table, in the given order.
func RenderContacts(w io.Writer, contacts []contact.Contact) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Phone", "Email"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, c := range contacts {
		table.Append([]string{c.Name, c.Phone, c.Email})
	}
	table.Render()
}
