package forms

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseForm decodes a JSON form definition document.
func ParseForm(data []byte) (FormContext, error) {
	var form FormContext
	if err := json.Unmarshal(data, &form); err != nil {
		return FormContext{}, fmt.Errorf("forms: parse form definition: %w", err)
	}
	return form, nil
}

// ParseFormYAML decodes a YAML form definition document.
func ParseFormYAML(data []byte) (FormContext, error) {
	var form FormContext
	if err := yaml.Unmarshal(data, &form); err != nil {
		return FormContext{}, fmt.Errorf("forms: parse form definition: %w", err)
	}
	return form, nil
}

// ReadForm loads a form definition from disk, selecting the decoder by file
// extension (.yaml/.yml use YAML, everything else JSON).
func ReadForm(path string) (FormContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FormContext{}, fmt.Errorf("forms: read form definition: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseFormYAML(data)
	default:
		return ParseForm(data)
	}
}

// ParseEntry decodes a JSON object of field-id to raw value pairs.
func ParseEntry(data []byte) (EntryValues, error) {
	var entry EntryValues
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("forms: parse entry values: %w", err)
	}
	return entry, nil
}
