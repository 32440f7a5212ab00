// Package settings models the two values the bridge needs from the host's
// configuration store: the destination portal id and the API credential.
// Stores are consulted per call; nothing is cached at this layer.
package settings

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Settings holds the remote platform credentials and destination.
type Settings struct {
	PortalID string `json:"portal_id" koanf:"portal_id" yaml:"portal_id" validate:"omitempty,numeric"`
	APIKey   string `json:"apikey" koanf:"apikey" yaml:"apikey" validate:"omitempty,printascii,min=8"`
}

// HasAPIKey reports whether an API credential is configured.
func (s Settings) HasAPIKey() bool {
	return s.APIKey != ""
}

// HasPortalID reports whether a destination portal is configured.
func (s Settings) HasPortalID() bool {
	return s.PortalID != ""
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the shape of whatever values are present. Empty values are
// allowed here; the individual client operations decide what missing
// configuration means for them.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

// Store supplies settings on demand. Implementations must be safe to call
// once per operation; the bridge never caches the result.
type Store interface {
	Settings(ctx context.Context) (Settings, error)
}

// Static is a Store that always returns a fixed Settings value. Useful for
// hosts that manage configuration themselves and for tests.
type Static struct {
	Value Settings
}

// Settings implements Store.
func (s Static) Settings(context.Context) (Settings, error) {
	return s.Value, nil
}
