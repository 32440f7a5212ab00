package record

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSet_OrderAndOverwrite(t *testing.T) {
	rec := New()
	rec.Set("a", "1")
	rec.Set("b", "2")
	rec.Set("a", "3")

	if diff := cmp.Diff([]string{"a", "b"}, rec.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	got, ok := rec.Get("a")
	if !ok || got != "3" {
		t.Fatalf("Get(a) = %v, want 3 (last write wins)", got)
	}
}

func TestAppend_PositionalKeys(t *testing.T) {
	rec := New()
	rec.Append("first")
	rec.Set("label", "x")
	rec.Append("second")

	if diff := cmp.Diff([]string{"0", "label", "1"}, rec.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_StringKeysOverwrite(t *testing.T) {
	a := New()
	a.Set("Email", "first@example.com")
	b := New()
	b.Set("Email", "second@example.com")

	a.Merge(b)

	got, _ := a.Get("Email")
	if got != "second@example.com" {
		t.Fatalf("merged Email = %v, want later value to win", got)
	}
	if a.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", a.Len())
	}
}

func TestMerge_PositionalKeysRenumber(t *testing.T) {
	a := New()
	a.Append("one")
	b := New()
	b.Append("two")

	a.Merge(b)

	if diff := cmp.Diff([]string{"0", "1"}, a.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Value{"one", "two"}, a.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_Nil(t *testing.T) {
	rec := New()
	rec.Set("a", "1")
	rec.Merge(nil)
	if rec.Len() != 1 {
		t.Fatalf("Len() = %d after nil merge, want 1", rec.Len())
	}
}

func TestEncode_Scalars(t *testing.T) {
	rec := New()
	rec.Set("Name", "Ada")
	rec.Set("I Agree", 1)

	vals := rec.Encode()
	if got := vals.Get("Name"); got != "Ada" {
		t.Fatalf("Name = %q", got)
	}
	if got := vals.Get("I Agree"); got != "1" {
		t.Fatalf("I Agree = %q, want 1", got)
	}
}

func TestEncode_SequenceBrackets(t *testing.T) {
	rec := New()
	rec.Set("Colors", []string{"Red", "Blue"})

	vals := rec.Encode()
	if got := vals.Get("Colors[0]"); got != "Red" {
		t.Fatalf("Colors[0] = %q", got)
	}
	if got := vals.Get("Colors[1]"); got != "Blue" {
		t.Fatalf("Colors[1] = %q", got)
	}
	if vals.Has("Colors") {
		t.Fatal("sequence value should not emit a bare key")
	}
}

func TestEncode_Rows(t *testing.T) {
	rec := New()
	rec.Set("Contacts", []Row{
		{"Name": "Ada", "Role": "Engineer"},
	})

	vals := rec.Encode()
	if got := vals.Get("Contacts[0][Name]"); got != "Ada" {
		t.Fatalf("Contacts[0][Name] = %q", got)
	}
	if got := vals.Get("Contacts[0][Role]"); got != "Engineer" {
		t.Fatalf("Contacts[0][Role] = %q", got)
	}
}

func TestValues_InsertionOrder(t *testing.T) {
	rec := New()
	rec.Set("b", "Bar")
	rec.Set("a", "Foo")

	if diff := cmp.Diff([]Value{"Bar", "Foo"}, rec.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}
