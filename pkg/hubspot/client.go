// Package hubspot is the outbound edge of the bridge: contact lookup by
// tracking token, remote form listing, and form submission. Operations are
// synchronous fire-and-forget calls; remote responses come back raw with no
// status-code branching and no retries.
package hubspot

import (
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/goliatone/go-formbridge/pkg/logger"
	"github.com/goliatone/go-formbridge/pkg/settings"
)

const (
	// DefaultAPIBaseURL hosts the contact and forms read endpoints.
	DefaultAPIBaseURL = "https://api.hubapi.com"
	// DefaultFormsBaseURL hosts the form-submission upload endpoint.
	DefaultFormsBaseURL = "https://forms.hubspot.com"
)

// ErrMissingPortalID is returned by SubmitForm when no destination portal is
// configured; the call fails fast without a network attempt.
var ErrMissingPortalID = errors.New("hubspot: portal id is not configured")

// Property is one contact property value as returned by the profile
// endpoint in value_only mode.
type Property struct {
	Value string `json:"value"`
}

// ContactRecord is a known contact's property map.
type ContactRecord struct {
	Properties map[string]Property `json:"properties"`
}

// PropertyValue returns the stored value for a property name, empty when the
// property is absent.
func (c *ContactRecord) PropertyValue(name string) string {
	if c == nil {
		return ""
	}
	return c.Properties[name].Value
}

// FormDescriptor identifies one remote form available for mapping.
type FormDescriptor struct {
	GUID string `json:"guid"`
	Name string `json:"name"`
}

// SubmitResult is the raw outcome of a form submission. The bridge discards
// it; it exists so callers that do care (the CLI) can inspect what came back.
type SubmitResult struct {
	StatusCode int
	Body       []byte
}

// Option customises a Client.
type Option func(*Client)

// WithAPIBaseURL overrides the read-API host, mainly for tests.
func WithAPIBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.api.SetBaseURL(baseURL)
	}
}

// WithFormsBaseURL overrides the submission host, mainly for tests.
func WithFormsBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.forms.SetBaseURL(baseURL)
	}
}

// WithHTTPClient swaps the underlying http.Client on both resty clients.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		apiBase := c.api.BaseURL
		formsBase := c.forms.BaseURL
		c.api = resty.NewWithClient(hc).SetBaseURL(apiBase)
		c.forms = resty.NewWithClient(hc).SetBaseURL(formsBase)
	}
}

// WithLogger wires a logging hook. Without one the client is silent.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// Client talks to the remote marketing platform. Credentials are read from
// the settings store on every operation, never cached.
type Client struct {
	api   *resty.Client
	forms *resty.Client
	store settings.Store
	log   logger.Logger
}

// New constructs a Client over the given settings store.
func New(store settings.Store, options ...Option) *Client {
	c := &Client{
		api:   resty.New().SetBaseURL(DefaultAPIBaseURL),
		forms: resty.New().SetBaseURL(DefaultFormsBaseURL),
		store: store,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}
