package prepopulate

import (
	"context"

	"github.com/goliatone/go-formbridge/pkg/forms"
	"github.com/goliatone/go-formbridge/pkg/hubspot"
)

// ContactFetcher is the slice of the remote client the session needs.
type ContactFetcher interface {
	ContactByToken(ctx context.Context, token, property string) (*hubspot.ContactRecord, error)
}

// Session holds the lazily fetched contact for one page render. The contact
// is fetched at most once per session, read many times, and never refreshed;
// a failed or empty lookup memoizes the absence so render paths do not issue
// repeated remote calls. Sessions are request-scoped and not safe for
// concurrent use, matching the single-threaded render model.
type Session struct {
	fetcher  ContactFetcher
	token    string
	property string
	fetched  bool
	contact  *hubspot.ContactRecord
}

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithProperty narrows the contact fetch to a single property.
func WithProperty(name string) SessionOption {
	return func(s *Session) {
		s.property = name
	}
}

// NewSession creates a render session for the visitor identified by the
// tracking token. An empty token yields a session that never fetches.
func NewSession(fetcher ContactFetcher, token string, options ...SessionOption) *Session {
	s := &Session{fetcher: fetcher, token: token}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Contact returns the memoized contact, fetching it on first use. Lookup
// failures are swallowed; the render must not break because the remote
// platform is unreachable.
func (s *Session) Contact(ctx context.Context) *hubspot.ContactRecord {
	if s.fetched {
		return s.contact
	}
	s.fetched = true

	if s.fetcher == nil || s.token == "" {
		return nil
	}

	contact, err := s.fetcher.ContactByToken(ctx, s.token, s.property)
	if err != nil {
		return nil
	}
	s.contact = contact
	return s.contact
}

// FieldValue resolves the prepopulated value for one field against the
// session's contact. With no contact available the current value passes
// through unchanged.
func (s *Session) FieldValue(ctx context.Context, field forms.FieldDefinition, property, current string) string {
	return Resolve(field, property, current, s.Contact(ctx))
}
