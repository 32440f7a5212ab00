package bridge

import (
	"context"
	"sort"

	"github.com/microcosm-cc/bluemonday"
)

// SettingsChoice is one option for the host's form-settings dropdown mapping
// a local form to a remote one.
type SettingsChoice struct {
	Label string
	Value string
}

// ChoosePlaceholder is the label of the empty leading choice.
const ChoosePlaceholder = "-- Choose form --"

var choiceSanitizer = bluemonday.StrictPolicy()

// FormSettingsChoices builds the dropdown options for the remote-form
// mapping setting: remote form names sanitized of any markup, sorted
// alphabetically by label, with the placeholder choice first. With no API
// key configured the client returns no forms and the result is just the
// placeholder.
func FormSettingsChoices(ctx context.Context, client FormClient) ([]SettingsChoice, error) {
	remote, err := client.ListForms(ctx)
	if err != nil {
		return nil, err
	}

	choices := make([]SettingsChoice, 0, len(remote)+1)
	for _, form := range remote {
		choices = append(choices, SettingsChoice{
			Label: choiceSanitizer.Sanitize(form.Name),
			Value: form.GUID,
		})
	}
	sort.Slice(choices, func(i, j int) bool {
		return choices[i].Label < choices[j].Label
	})

	return append([]SettingsChoice{{Label: ChoosePlaceholder, Value: ""}}, choices...), nil
}
