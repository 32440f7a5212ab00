// Package normalize converts heterogeneous form-field shapes into the flat
// canonical record posted to the remote platform. A base step resolves one
// key/value pair per field (or per input of a composite field); per-type
// handlers registered in a HandlerRegistry then reshape the result for field
// kinds with their own storage quirks.
package normalize

import (
	"github.com/goliatone/go-formbridge/pkg/forms"
	"github.com/goliatone/go-formbridge/pkg/record"
)

// Fragment is the partial record one field contributes to a submission.
type Fragment = record.Record

// Context carries the full submission context into type handlers.
type Context struct {
	Form  forms.FormContext
	Entry forms.EntryValues
	Field forms.FieldDefinition
}

// Option customises a Normalizer.
type Option func(*Normalizer)

// WithRegistry injects a handler registry. The built-in handlers are not
// installed on injected registries; callers own the full dispatch table.
func WithRegistry(registry *HandlerRegistry) Option {
	return func(n *Normalizer) {
		n.registry = registry
	}
}

// Normalizer applies the base resolution step and per-type handlers.
type Normalizer struct {
	registry *HandlerRegistry
}

// New constructs a Normalizer. Without options it carries the built-in
// handlers for time, multiselect, select, checkbox, list and consent fields.
func New(options ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(n)
	}
	if n.registry == nil {
		n.registry = NewHandlerRegistry()
		registerBuiltins(n.registry)
	}
	return n
}

// Registry exposes the handler registry so hosts can extend the dispatch.
func (n *Normalizer) Registry() *HandlerRegistry {
	return n.registry
}

// Normalize resolves one field's submitted values into a record fragment.
// Composite fields contribute one pair per truthy input value; atomic fields
// contribute at most one pair. Falsy raw values never enter the fragment.
func (n *Normalizer) Normalize(field forms.FieldDefinition, entry forms.EntryValues, form forms.FormContext) *Fragment {
	fragment := baseFragment(field, entry)

	if handler, ok := n.registry.Get(string(field.Type)); ok {
		fragment = handler(fragment, Context{Form: form, Entry: entry, Field: field})
	}

	if fragment == nil {
		return record.New()
	}
	return fragment
}

// Flatten normalizes every field of the form in definition order and merges
// the fragments into one record. The merge is an ordered overwrite-union:
// when two fields resolve to the same label the later field wins. That
// data-loss hazard is inherited behavior and deliberately left intact.
func (n *Normalizer) Flatten(form forms.FormContext, entry forms.EntryValues) *record.Record {
	rec := record.New()
	for _, field := range form.Fields {
		rec.Merge(n.Normalize(field, entry, form))
	}
	return rec
}

func baseFragment(field forms.FieldDefinition, entry forms.EntryValues) *Fragment {
	fragment := record.New()
	if len(field.Inputs) > 0 {
		for _, input := range field.Inputs {
			addEntryValue(fragment, entry, input.ID, input.ResolvedLabel())
		}
		return fragment
	}
	addEntryValue(fragment, entry, field.ID, field.ResolvedLabel())
	return fragment
}

func addEntryValue(fragment *Fragment, entry forms.EntryValues, id, label string) {
	value := entry[id]
	if !forms.Truthy(value) {
		return
	}
	if label == "" {
		fragment.Append(value)
		return
	}
	fragment.Set(label, value)
}
