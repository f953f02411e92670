package contactbook

import (
	"reflect"
	"testing"

	"github.com/AntonioJCosta/contactbook/internal/core/domain/contact"
	"github.com/AntonioJCosta/contactbook/internal/core/ports"
	"github.com/AntonioJCosta/contactbook/internal/core/services/contactstore"
	"github.com/AntonioJCosta/contactbook/internal/core/testutil"
)

func TestNewService(t *testing.T) {
	t.Run("should register stores in order", func(t *testing.T) {
		a := &testutil.MockContactStore{StoreName: "a"}
		b := &testutil.MockContactStore{StoreName: "b"}
		book := NewService(nil, a, b)

		got := book.Stores()
		if len(got) != 2 || got[0].Name() != "a" || got[1].Name() != "b" {
			t.Errorf("Stores() = %v, want [a b]", got)
		}
	})

	t.Run("should panic on a nil store", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with a nil store")
			}
		}()
		_ = NewService(nil, nil)
	})
}

func TestService_RegisterAllowsDuplicates(t *testing.T) {
	book := NewService(nil)
	s := contactstore.NewService("same", nil, nil)
	book.Register(s)
	book.Register(s)

	book.Add("Ana", "", "")

	if s.Len() != 2 {
		t.Errorf("store registered twice holds %d contacts, want 2", s.Len())
	}
}

func TestService_AddFansOut(t *testing.T) {
	personal := contactstore.NewService("personal", nil, nil)
	work := contactstore.NewService("work", nil, nil)
	book := NewService(nil, personal, work)

	outcomes := book.Add("Ana", "555", "ana@example.com")

	want := []ports.AddOutcome{
		{Store: "personal", Contact: contact.New("Ana", "555", "ana@example.com")},
		{Store: "work", Contact: contact.New("Ana", "555", "ana@example.com")},
	}
	if !reflect.DeepEqual(outcomes, want) {
		t.Errorf("Add() = %+v, want %+v", outcomes, want)
	}
	for _, st := range []ports.ContactStore{personal, work} {
		if got := st.List(); len(got) != 1 || got[0].Name != "Ana" {
			t.Errorf("store %s = %v, want [Ana]", st.Name(), got)
		}
	}
}

func TestService_RemoveContinuesAfterNotFound(t *testing.T) {
	empty := contactstore.NewService("empty", nil, nil)
	full := contactstore.NewService("full", nil, nil)
	full.Add("Ana", "", "")
	book := NewService(nil, empty, full)

	outcomes := book.Remove("Ana")

	want := []ports.RemoveOutcome{
		{Store: "empty", Name: "Ana", Removed: false},
		{Store: "full", Name: "Ana", Removed: true},
	}
	if !reflect.DeepEqual(outcomes, want) {
		t.Errorf("Remove() = %+v, want %+v", outcomes, want)
	}
	if full.Len() != 0 {
		t.Errorf("full store still holds %d contacts", full.Len())
	}
}

func TestService_AddThenRemoveBothStores(t *testing.T) {
	a := contactstore.NewService("a", nil, nil)
	b := contactstore.NewService("b", nil, nil)
	book := NewService(nil, a, b)

	book.Add("Ana", "1", "a@x")
	for _, o := range book.Remove("Ana") {
		if !o.Removed {
			t.Errorf("store %s did not remove Ana", o.Store)
		}
	}
	if a.Len() != 0 || b.Len() != 0 {
		t.Errorf("stores not emptied: a=%d b=%d", a.Len(), b.Len())
	}
}

func TestService_ListAndSearchPerStore(t *testing.T) {
	a := &testutil.MockContactStore{
		StoreName: "a",
		ListFunc:  func() []contact.Contact { return []contact.Contact{{Name: "Ana"}} },
		SearchFunc: func(q string) []contact.Contact {
			return []contact.Contact{{Name: "Ana " + q}}
		},
	}
	b := &testutil.MockContactStore{
		StoreName: "b",
		ListFunc:  func() []contact.Contact { return []contact.Contact{{Name: "Bia"}, {Name: "Caio"}} },
	}
	book := NewService(nil, a, b)

	listings := book.List()
	if len(listings) != 2 || listings[0].Store != "a" || listings[1].Store != "b" {
		t.Fatalf("List() = %+v, want one listing per store", listings)
	}
	names := []string{}
	for _, c := range ports.Flatten(listings) {
		names = append(names, c.Name)
	}
	if !reflect.DeepEqual(names, []string{"Ana", "Bia", "Caio"}) {
		t.Errorf("Flatten(List()) = %v, want [Ana Bia Caio]", names)
	}

	results := book.Search("q")
	if got := ports.Flatten(results); len(got) != 1 || got[0].Name != "Ana q" {
		t.Errorf("Flatten(Search()) = %v, want [Ana q]", got)
	}
	if len(results[1].Contacts) != 0 {
		t.Errorf("store b search = %v, want empty", results[1].Contacts)
	}

	if !reflect.DeepEqual(a.Calls, []string{"List", "Search"}) || !reflect.DeepEqual(b.Calls, []string{"List", "Search"}) {
		t.Errorf("calls a=%v b=%v, want [List Search] for both", a.Calls, b.Calls)
	}
}

func TestService_NoStores(t *testing.T) {
	book := NewService(nil)

	if got := book.Add("Ana", "", ""); len(got) != 0 {
		t.Errorf("Add() = %v, want no outcomes", got)
	}
	if got := ports.Flatten(book.List()); len(got) != 0 {
		t.Errorf("List() = %v, want empty", got)
	}
}
