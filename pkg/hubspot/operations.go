package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListForms fetches the remote forms available for mapping. A missing API
// key short-circuits to an empty result without a network attempt. An
// unparseable response body is treated the same as an empty one.
func (c *Client) ListForms(ctx context.Context) ([]FormDescriptor, error) {
	cfg, err := c.store.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("hubspot: read settings: %w", err)
	}
	if !cfg.HasAPIKey() {
		c.debug("skipping form list, no api key configured")
		return nil, nil
	}

	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("hapikey", cfg.APIKey).
		Get("/forms/v2/forms/")
	if err != nil {
		return nil, fmt.Errorf("hubspot: list forms: %w", err)
	}

	var forms []FormDescriptor
	if err := json.Unmarshal(resp.Body(), &forms); err != nil {
		c.debug("form list response did not decode", "status", resp.StatusCode())
		return nil, nil
	}
	return forms, nil
}

// ContactByToken looks up a known contact by its tracking-cookie token. The
// optional property narrows the response to a single property. Missing token
// or API key short-circuits to nil without a network attempt; a response
// that does not decode as a contact also yields nil.
func (c *Client) ContactByToken(ctx context.Context, token, property string) (*ContactRecord, error) {
	if token == "" {
		return nil, nil
	}

	cfg, err := c.store.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("hubspot: read settings: %w", err)
	}
	if !cfg.HasAPIKey() {
		c.debug("skipping contact lookup, no api key configured")
		return nil, nil
	}

	req := c.api.R().
		SetContext(ctx).
		SetQueryParam("hapikey", cfg.APIKey).
		SetQueryParam("propertyMode", "value_only")
	if property != "" {
		req.SetQueryParam("property", property)
	}

	resp, err := req.Get(fmt.Sprintf("/contacts/v1/contact/utk/%s/profile", token))
	if err != nil {
		return nil, fmt.Errorf("hubspot: contact lookup: %w", err)
	}

	var contact ContactRecord
	if err := json.Unmarshal(resp.Body(), &contact); err != nil || contact.Properties == nil {
		c.debug("contact lookup returned no usable profile", "status", resp.StatusCode())
		return nil, nil
	}
	return &contact, nil
}
