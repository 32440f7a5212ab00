// Package prepopulate fills form fields from a previously known contact's
// stored properties. The remote platform stores display text, so resolving a
// choice field means walking back from text to the internal choice value.
package prepopulate

import (
	"github.com/goliatone/go-formbridge/pkg/forms"
	"github.com/goliatone/go-formbridge/pkg/hubspot"
)

// Resolve computes the value to prepopulate for one field. It returns
// current unchanged unless the field allows prepopulation, a property name
// is supplied, and the contact actually carries that property. For fields
// with choices the stored display text is reverse-mapped to the matching
// choice's internal value; no match keeps the stored text as-is. Only single
// scalar values are resolved here, never composites.
func Resolve(field forms.FieldDefinition, property, current string, contact *hubspot.ContactRecord) string {
	if !field.AllowsPrepopulate || property == "" || contact == nil {
		return current
	}

	stored := contact.PropertyValue(property)
	if !forms.Truthy(stored) {
		return current
	}

	if len(field.Choices) > 0 {
		return field.ChoiceValueForText(stored)
	}
	return stored
}
