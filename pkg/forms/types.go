package forms

// FieldType enumerates the field kinds the normalizer knows how to treat
// specially. Any other value falls back to the base single-value behavior,
// so host frameworks can introduce new types without breaking submissions.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeList        FieldType = "list"
	FieldTypeConsent     FieldType = "consent"
	FieldTypeTime        FieldType = "time"
)

// Choice is one selectable option on a choice-bearing field. Value is the
// internal value stored with the entry; Text is what the visitor saw.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Text  string `json:"text" yaml:"text"`
}

// Input is a sub-field of a composite field (name parts, address parts,
// individual checkboxes). Each input carries its own entry slot.
type Input struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	CustomLabel string `json:"customLabel,omitempty" yaml:"customLabel,omitempty"`
}

// FieldDefinition describes one configured field on a form. A field either
// carries Inputs (composite) or is treated as a single atomic value slot.
type FieldDefinition struct {
	ID                string    `json:"id" yaml:"id"`
	Type              FieldType `json:"type" yaml:"type"`
	Label             string    `json:"label" yaml:"label"`
	CustomLabel       string    `json:"customLabel,omitempty" yaml:"customLabel,omitempty"`
	AdminLabel        string    `json:"adminLabel,omitempty" yaml:"adminLabel,omitempty"`
	Choices           []Choice  `json:"choices,omitempty" yaml:"choices,omitempty"`
	Inputs            []Input   `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	CheckboxLabel     string    `json:"checkboxLabel,omitempty" yaml:"checkboxLabel,omitempty"`
	AllowsPrepopulate bool      `json:"allowsPrepopulate,omitempty" yaml:"allowsPrepopulate,omitempty"`
}

// ResolvedLabel returns the label that keys this field's submitted value.
// Precedence: AdminLabel beats CustomLabel beats Label; the highest-precedence
// non-empty value wins.
func (f FieldDefinition) ResolvedLabel() string {
	if f.AdminLabel != "" {
		return f.AdminLabel
	}
	if f.CustomLabel != "" {
		return f.CustomLabel
	}
	return f.Label
}

// ResolvedLabel returns the label keying this input's submitted value.
func (in Input) ResolvedLabel() string {
	if in.CustomLabel != "" {
		return in.CustomLabel
	}
	return in.Label
}

// ChoiceText maps an internal choice value to its display text. If the field
// has no choices or no choice matches, the value is returned unchanged.
func (f FieldDefinition) ChoiceText(value string) string {
	for _, c := range f.Choices {
		if c.Value == value {
			return c.Text
		}
	}
	return value
}

// ChoiceValueForText reverse-maps display text to the internal choice value.
// The remote platform stores what the visitor saw, so prepopulation has to
// walk back from text to value. No match returns the text unchanged.
func (f FieldDefinition) ChoiceValueForText(text string) string {
	for _, c := range f.Choices {
		if c.Text == text {
			return c.Value
		}
	}
	return text
}

// EntryValues is one submission's raw values, keyed by field or input id.
type EntryValues map[string]string

// FormContext is the host form definition the bridge operates on.
// RemoteFormID holds the remote form GUID this form is mapped to; an empty
// value means the form is unmapped and submissions are not forwarded.
type FormContext struct {
	ID           string            `json:"id" yaml:"id"`
	Title        string            `json:"title,omitempty" yaml:"title,omitempty"`
	Fields       []FieldDefinition `json:"fields" yaml:"fields"`
	RemoteFormID string            `json:"remoteFormId,omitempty" yaml:"remoteFormId,omitempty"`
}

// Truthy reports whether a raw entry value counts as present. The host
// framework hands checkbox state over as "0"/"1" strings, so both the empty
// string and "0" are treated as absent.
func Truthy(value string) bool {
	return value != "" && value != "0"
}
