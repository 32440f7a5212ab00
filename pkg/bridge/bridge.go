// Package bridge wires the flattener and the remote client together on the
// host framework's form events: submissions are flattened, enriched with
// tracking context, and forwarded; renders get a per-request prepopulation
// session. Every outcome is non-fatal to the host request.
package bridge

import (
	"context"

	"github.com/goliatone/go-formbridge/pkg/forms"
	"github.com/goliatone/go-formbridge/pkg/hubspot"
	"github.com/goliatone/go-formbridge/pkg/logger"
	"github.com/goliatone/go-formbridge/pkg/normalize"
	"github.com/goliatone/go-formbridge/pkg/prepopulate"
	"github.com/goliatone/go-formbridge/pkg/record"
)

// Outcome is the terminal state of one submission event.
type Outcome string

const (
	// OutcomeSubmitted means the payload was handed to the remote endpoint.
	// The remote response is discarded; there is no success branch beyond
	// the call itself completing.
	OutcomeSubmitted Outcome = "submitted"
	// OutcomeSkippedUnmapped means the form has no remote form mapping.
	OutcomeSkippedUnmapped Outcome = "skipped_unmapped"
	// OutcomeSkippedSpam means the submission was flagged as spam.
	OutcomeSkippedSpam Outcome = "skipped_spam"
	// OutcomeFailed means the submit call could not be issued (missing
	// destination configuration or transport failure).
	OutcomeFailed Outcome = "failed"
)

// Submission is the host-supplied context for one form submission event.
type Submission struct {
	Values        forms.EntryValues
	Spam          bool
	TrackingToken string
	IPAddress     string
	PageURL       string
	PageTitle     string
}

// FormClient is the remote surface the bridge depends on.
type FormClient interface {
	ListForms(ctx context.Context) ([]hubspot.FormDescriptor, error)
	ContactByToken(ctx context.Context, token, property string) (*hubspot.ContactRecord, error)
	SubmitForm(ctx context.Context, rec *record.Record, formGUID string, tracking hubspot.TrackingContext) (*hubspot.SubmitResult, error)
}

// Option customises a Bridge.
type Option func(*Bridge)

// WithNormalizer injects a normalizer, typically one carrying extra or
// overridden field-type handlers.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(b *Bridge) {
		b.normalizer = n
	}
}

// WithLogger wires a logging hook. Without one the bridge is silent.
func WithLogger(log logger.Logger) Option {
	return func(b *Bridge) {
		b.log = log
	}
}

// Bridge orchestrates submission forwarding and render prepopulation.
type Bridge struct {
	client     FormClient
	normalizer *normalize.Normalizer
	log        logger.Logger
}

// New constructs a Bridge over the given remote client.
func New(client FormClient, options ...Option) *Bridge {
	b := &Bridge{client: client}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	if b.normalizer == nil {
		b.normalizer = normalize.New()
	}
	return b
}

// Normalizer exposes the bridge's normalizer so hosts can register handlers.
func (b *Bridge) Normalizer() *normalize.Normalizer {
	return b.normalizer
}

// OnFormSubmitted handles one submission event, one-shot: unmapped forms and
// spam submissions no-op, everything else is flattened and forwarded
// fire-and-forget. Payload construction always completes before the outbound
// call is issued. The returned Outcome is informational; failures never
// propagate to the host request.
func (b *Bridge) OnFormSubmitted(ctx context.Context, form forms.FormContext, sub Submission) Outcome {
	if form.RemoteFormID == "" {
		return OutcomeSkippedUnmapped
	}

	rec := b.normalizer.Flatten(form, sub.Values)
	tracking := hubspot.TrackingContext{
		HUTK:      sub.TrackingToken,
		IPAddress: sub.IPAddress,
		PageURL:   sub.PageURL,
		PageName:  sub.PageTitle,
	}

	if sub.Spam {
		return OutcomeSkippedSpam
	}

	if _, err := b.client.SubmitForm(ctx, rec, form.RemoteFormID, tracking); err != nil {
		if b.log != nil {
			b.log.Error("submission forwarding failed", "form", form.ID, "remote_form", form.RemoteFormID, "error", err)
		}
		return OutcomeFailed
	}

	if b.log != nil {
		b.log.Debug("submission forwarded", "form", form.ID, "remote_form", form.RemoteFormID, "fields", rec.Len())
	}
	return OutcomeSubmitted
}

// OnFormRender prepares a render: it returns the form unchanged and a
// prepopulation session scoped to this render. The session is handed to the
// host before the render completes so field-value hooks never outlive the
// page they were created for.
func (b *Bridge) OnFormRender(_ context.Context, form forms.FormContext, trackingToken string) (forms.FormContext, *prepopulate.Session) {
	return form, prepopulate.NewSession(b.client, trackingToken)
}
