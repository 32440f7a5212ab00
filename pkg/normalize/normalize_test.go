package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbridge/pkg/forms"
	"github.com/goliatone/go-formbridge/pkg/record"
)

func recordPairs(t *testing.T, rec *record.Record) map[string]record.Value {
	t.Helper()
	out := make(map[string]record.Value, rec.Len())
	for _, key := range rec.Keys() {
		v, _ := rec.Get(key)
		out[key] = v
	}
	return out
}

func TestNormalize_AtomicFieldTruthyValue(t *testing.T) {
	n := New()
	field := forms.FieldDefinition{ID: "1", Type: forms.FieldTypeText, Label: "Name"}
	entry := forms.EntryValues{"1": "Ada"}

	got := n.Normalize(field, entry, forms.FormContext{})

	want := map[string]record.Value{"Name": "Ada"}
	if diff := cmp.Diff(want, recordPairs(t, got)); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_AtomicFieldFalsyValue(t *testing.T) {
	n := New()
	field := forms.FieldDefinition{ID: "1", Type: forms.FieldTypeText, Label: "Name"}

	for _, raw := range []string{"", "0"} {
		got := n.Normalize(field, forms.EntryValues{"1": raw}, forms.FormContext{})
		if got.Len() != 0 {
			t.Fatalf("raw %q: fragment should be empty, got %v", raw, recordPairs(t, got))
		}
	}

	got := n.Normalize(field, forms.EntryValues{}, forms.FormContext{})
	if got.Len() != 0 {
		t.Fatalf("absent value: fragment should be empty, got %v", recordPairs(t, got))
	}
}

func TestNormalize_LabelPrecedence(t *testing.T) {
	n := New()
	field := forms.FieldDefinition{
		ID:          "1",
		Type:        forms.FieldTypeText,
		Label:       "Name",
		CustomLabel: "Full Name",
		AdminLabel:  "name",
	}
	got := n.Normalize(field, forms.EntryValues{"1": "Ada"}, forms.FormContext{})

	if _, ok := got.Get("name"); !ok {
		t.Fatalf("expected admin label to key the fragment, got %v", recordPairs(t, got))
	}
}

func TestNormalize_CompositeOnePairPerTruthyInput(t *testing.T) {
	n := New()
	field := forms.FieldDefinition{
		ID:   "2",
		Type: forms.FieldTypeText,
		Inputs: []forms.Input{
			{ID: "2.1", Label: "First"},
			{ID: "2.2", Label: "Middle"},
			{ID: "2.3", Label: "Last"},
		},
	}
	entry := forms.EntryValues{"2.1": "Ada", "2.3": "Lovelace"}

	got := n.Normalize(field, entry, forms.FormContext{})

	want := map[string]record.Value{"First": "Ada", "Last": "Lovelace"}
	if diff := cmp.Diff(want, recordPairs(t, got)); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_UnlabeledInputAppendsPositionally(t *testing.T) {
	n := New()
	field := forms.FieldDefinition{
		ID:     "2",
		Type:   forms.FieldTypeText,
		Inputs: []forms.Input{{ID: "2.1"}},
	}
	got := n.Normalize(field, forms.EntryValues{"2.1": "value"}, forms.FormContext{})

	v, ok := got.Get("0")
	if !ok || v != "value" {
		t.Fatalf("expected positional key 0, got %v", recordPairs(t, got))
	}
}

func TestNormalize_UnknownTypePassesThrough(t *testing.T) {
	n := New()
	field := forms.FieldDefinition{ID: "1", Type: "website", Label: "Site"}
	got := n.Normalize(field, forms.EntryValues{"1": "https://example.com"}, forms.FormContext{})

	want := map[string]record.Value{"Site": "https://example.com"}
	if diff := cmp.Diff(want, recordPairs(t, got)); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatten_LaterFieldWinsOnCollision(t *testing.T) {
	n := New()
	form := forms.FormContext{
		Fields: []forms.FieldDefinition{
			{ID: "1", Type: forms.FieldTypeText, Label: "Email"},
			{ID: "2", Type: forms.FieldTypeText, Label: "Email"},
		},
	}
	entry := forms.EntryValues{"1": "first@example.com", "2": "second@example.com"}

	rec := n.Flatten(form, entry)

	got, _ := rec.Get("Email")
	if got != "second@example.com" {
		t.Fatalf("Email = %v, want the later field's value", got)
	}
	if rec.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", rec.Len())
	}
}

func TestFlatten_Idempotent(t *testing.T) {
	n := New()
	form := forms.FormContext{
		Fields: []forms.FieldDefinition{
			{ID: "1", Type: forms.FieldTypeText, Label: "Name"},
			{ID: "2", Type: forms.FieldTypeSelect, Label: "Color",
				Choices: []forms.Choice{{Value: "red", Text: "Red"}}},
		},
	}
	entry := forms.EntryValues{"1": "Ada", "2": "red"}

	first := n.Flatten(form, entry)
	second := n.Flatten(form, entry)

	if diff := cmp.Diff(first.Keys(), second.Keys()); diff != "" {
		t.Fatalf("key order differs between runs:\n%s", diff)
	}
	if diff := cmp.Diff(recordPairs(t, first), recordPairs(t, second)); diff != "" {
		t.Fatalf("records differ between runs:\n%s", diff)
	}
}

func TestFlatten_PreservesFieldOrder(t *testing.T) {
	n := New()
	form := forms.FormContext{
		Fields: []forms.FieldDefinition{
			{ID: "1", Type: forms.FieldTypeText, Label: "Zed"},
			{ID: "2", Type: forms.FieldTypeText, Label: "Alpha"},
		},
	}
	entry := forms.EntryValues{"1": "z", "2": "a"}

	rec := n.Flatten(form, entry)

	if diff := cmp.Diff([]string{"Zed", "Alpha"}, rec.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}
