// Package formbridge forwards host form submissions to a remote marketing
// platform's form endpoint and prepopulates rendered forms from known
// contacts. The root package re-exports the common types and offers one-call
// constructors; the pkg/* packages carry the implementation.
package formbridge

import (
	"github.com/goliatone/go-formbridge/pkg/bridge"
	"github.com/goliatone/go-formbridge/pkg/forms"
	"github.com/goliatone/go-formbridge/pkg/hubspot"
	"github.com/goliatone/go-formbridge/pkg/prepopulate"
	"github.com/goliatone/go-formbridge/pkg/settings"
)

// Submission aliases the host-supplied submission context.
type Submission = bridge.Submission

// Outcome aliases the terminal state of one submission event.
type Outcome = bridge.Outcome

const (
	OutcomeSubmitted       = bridge.OutcomeSubmitted
	OutcomeSkippedUnmapped = bridge.OutcomeSkippedUnmapped
	OutcomeSkippedSpam     = bridge.OutcomeSkippedSpam
	OutcomeFailed          = bridge.OutcomeFailed
)

// FormContext aliases the host form definition.
type FormContext = forms.FormContext

// FieldDefinition aliases a single configured form field.
type FieldDefinition = forms.FieldDefinition

// EntryValues aliases one submission's raw values.
type EntryValues = forms.EntryValues

// TrackingContext aliases the visitor context attached to submissions.
type TrackingContext = hubspot.TrackingContext

// New builds a Bridge over a settings store using the default remote client.
// It is the simplest entry point for hosts that just want submissions
// forwarded.
func New(store settings.Store, options ...bridge.Option) *bridge.Bridge {
	return bridge.New(hubspot.New(store), options...)
}

// NewWithClient builds a Bridge over a custom remote client, typically one
// constructed with hubspot.New plus client options, or a stand-in for tests.
func NewWithClient(client bridge.FormClient, options ...bridge.Option) *bridge.Bridge {
	return bridge.New(client, options...)
}

// RenderSession creates a prepopulation session for one page render outside
// the OnFormRender flow, for hosts that drive rendering themselves.
func RenderSession(store settings.Store, trackingToken string) *prepopulate.Session {
	return prepopulate.NewSession(hubspot.New(store), trackingToken)
}
