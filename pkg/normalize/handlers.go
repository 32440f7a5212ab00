package normalize

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/goliatone/go-formbridge/pkg/forms"
	"github.com/goliatone/go-formbridge/pkg/record"
)

func registerBuiltins(registry *HandlerRegistry) {
	registry.MustRegister(string(forms.FieldTypeTime), timeHandler)
	registry.MustRegister(string(forms.FieldTypeMultiSelect), multiselectHandler)
	registry.MustRegister(string(forms.FieldTypeSelect), selectHandler)
	registry.MustRegister(string(forms.FieldTypeCheckbox), checkboxHandler)
	registry.MustRegister(string(forms.FieldTypeList), listHandler)
	registry.MustRegister(string(forms.FieldTypeConsent), consentHandler)
}

// timeHandler replaces the per-component base fragments with the single
// pre-formatted composite value the host stores under the field's own id.
func timeHandler(_ *Fragment, ctx Context) *Fragment {
	out := record.New()
	out.Set(ctx.Field.Label, ctx.Entry[ctx.Field.ID])
	return out
}

// multiselectHandler decodes each value from its JSON array literal into an
// actual sequence, preserving the original keys. Values that are not valid
// JSON arrays pass through unchanged.
func multiselectHandler(fragment *Fragment, _ Context) *Fragment {
	for _, key := range fragment.Keys() {
		raw, _ := fragment.Get(key)
		value, ok := raw.(string)
		if !ok {
			continue
		}
		parsed := gjson.Parse(value)
		if !parsed.IsArray() {
			continue
		}
		items := parsed.Array()
		seq := make([]string, 0, len(items))
		for _, item := range items {
			seq = append(seq, item.String())
		}
		fragment.Set(key, seq)
	}
	return fragment
}

// selectHandler reverse-maps every stored value to its display text via the
// field's choices. Tolerates both the single-value shape and a multi-valued
// fragment from a select with inputs.
func selectHandler(fragment *Fragment, ctx Context) *Fragment {
	for _, key := range fragment.Keys() {
		raw, _ := fragment.Get(key)
		if value, ok := raw.(string); ok {
			fragment.Set(key, ctx.Field.ChoiceText(value))
		}
	}
	return fragment
}

// checkboxHandler collapses the per-checkbox pairs into a single pair keyed
// by the field label, value = checked values joined with ";" in insertion
// order. The remote platform splits multi-value properties on semicolons.
func checkboxHandler(fragment *Fragment, ctx Context) *Fragment {
	checked := make([]string, 0, fragment.Len())
	for _, value := range fragment.Values() {
		if s, ok := value.(string); ok {
			checked = append(checked, s)
		}
	}
	out := record.New()
	out.Set(ctx.Field.ResolvedLabel(), strings.Join(checked, ";"))
	return out
}

// listHandler decodes each value from the host's serialized-array encoding
// into an actual sequence. Undecodable values pass through unchanged.
func listHandler(fragment *Fragment, _ Context) *Fragment {
	for _, key := range fragment.Keys() {
		raw, _ := fragment.Get(key)
		value, ok := raw.(string)
		if !ok {
			continue
		}
		decoded, err := decodeSerializedArray(value)
		if err != nil {
			continue
		}
		fragment.Set(key, decoded)
	}
	return fragment
}

// consentHandler reduces the consent field's multiple inputs (label,
// checkbox, description) to a single pair. The checkbox state arrives keyed
// by the field's label rather than its id; when checked the output is the
// consent text mapped to 1, otherwise nothing at all.
func consentHandler(_ *Fragment, ctx Context) *Fragment {
	if !forms.Truthy(ctx.Entry[ctx.Field.Label]) {
		return nil
	}
	out := record.New()
	out.Set(ctx.Field.CheckboxLabel, 1)
	return out
}
