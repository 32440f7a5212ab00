package forms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const formJSON = `{
  "id": "7",
  "title": "Contact Us",
  "remoteFormId": "abc-123",
  "fields": [
    {
      "id": "1",
      "type": "select",
      "label": "Color",
      "adminLabel": "color",
      "choices": [{"value": "red", "text": "Red"}],
      "allowsPrepopulate": true
    },
    {
      "id": "2",
      "type": "checkbox",
      "label": "Interests",
      "inputs": [
        {"id": "2.1", "label": "Foo"},
        {"id": "2.2", "label": "Bar"}
      ]
    }
  ]
}`

func TestParseForm(t *testing.T) {
	form, err := ParseForm([]byte(formJSON))
	if err != nil {
		t.Fatalf("ParseForm: %v", err)
	}

	want := FormContext{
		ID:           "7",
		Title:        "Contact Us",
		RemoteFormID: "abc-123",
		Fields: []FieldDefinition{
			{
				ID:                "1",
				Type:              FieldTypeSelect,
				Label:             "Color",
				AdminLabel:        "color",
				Choices:           []Choice{{Value: "red", Text: "Red"}},
				AllowsPrepopulate: true,
			},
			{
				ID:    "2",
				Type:  FieldTypeCheckbox,
				Label: "Interests",
				Inputs: []Input{
					{ID: "2.1", Label: "Foo"},
					{ID: "2.2", Label: "Bar"},
				},
			},
		},
	}

	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormYAML(t *testing.T) {
	doc := `
id: "3"
fields:
  - id: "1"
    type: text
    label: Name
`
	form, err := ParseFormYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseFormYAML: %v", err)
	}
	if form.ID != "3" || len(form.Fields) != 1 || form.Fields[0].Label != "Name" {
		t.Fatalf("unexpected form: %+v", form)
	}
}

func TestReadForm_SelectsDecoderByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "form.json")
	if err := os.WriteFile(jsonPath, []byte(formJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "form.yaml")
	if err := os.WriteFile(yamlPath, []byte("id: \"9\"\nfields: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	jsonForm, err := ReadForm(jsonPath)
	if err != nil {
		t.Fatalf("ReadForm(json): %v", err)
	}
	if jsonForm.ID != "7" {
		t.Fatalf("json form id = %q, want 7", jsonForm.ID)
	}

	yamlForm, err := ReadForm(yamlPath)
	if err != nil {
		t.Fatalf("ReadForm(yaml): %v", err)
	}
	if yamlForm.ID != "9" {
		t.Fatalf("yaml form id = %q, want 9", yamlForm.ID)
	}
}

func TestParseEntry(t *testing.T) {
	entry, err := ParseEntry([]byte(`{"1": "red", "2.1": "Foo"}`))
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	want := EntryValues{"1": "red", "2.1": "Foo"}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Fatalf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestParseForm_InvalidJSON(t *testing.T) {
	if _, err := ParseForm([]byte("{")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
