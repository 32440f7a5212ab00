package hubspot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formbridge/pkg/record"
)

// TrackingContext is the visitor context attached to every submission as the
// hs_context payload.
type TrackingContext struct {
	HUTK      string `json:"hutk"`
	IPAddress string `json:"ipAddress"`
	PageURL   string `json:"pageUrl"`
	PageName  string `json:"pageName"`
}

// JSON renders the payload as the JSON string the submission endpoint
// expects in the hs_context form field.
func (t TrackingContext) JSON() string {
	data, err := json.Marshal(t)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// SubmitForm posts a flattened record to the remote form identified by
// formGUID. A missing portal id fails fast with ErrMissingPortalID and no
// network attempt. The remote response is returned raw; the status code is
// captured but never branched on here.
func (c *Client) SubmitForm(ctx context.Context, rec *record.Record, formGUID string, tracking TrackingContext) (*SubmitResult, error) {
	cfg, err := c.store.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("hubspot: read settings: %w", err)
	}
	if !cfg.HasPortalID() {
		c.error("cannot post submission, no portal id configured", "form", formGUID)
		return nil, ErrMissingPortalID
	}

	body := rec.Encode()
	body.Set("hs_context", tracking.JSON())

	resp, err := c.forms.R().
		SetContext(ctx).
		SetFormDataFromValues(body).
		Post(fmt.Sprintf("/uploads/form/v2/%s/%s", cfg.PortalID, formGUID))
	if err != nil {
		return nil, fmt.Errorf("hubspot: submit form: %w", err)
	}

	return &SubmitResult{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}

func (c *Client) debug(msg string, keyvals ...any) {
	if c.log != nil {
		c.log.Debug(msg, keyvals...)
	}
}

func (c *Client) error(msg string, keyvals ...any) {
	if c.log != nil {
		c.log.Error(msg, keyvals...)
	}
}
