package settings

import (
	"context"
	"fmt"
	"os"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix namespaces the environment variables the KoanfStore reads
// (FORMBRIDGE_PORTAL_ID, FORMBRIDGE_APIKEY).
const DefaultEnvPrefix = "FORMBRIDGE_"

// KoanfStore reads settings from an optional YAML file overlaid with
// environment variables. The sources are re-read on every Settings call so a
// changed credential takes effect without a restart, matching the original
// integration's read-per-operation behavior.
type KoanfStore struct {
	path   string
	prefix string
}

// KoanfOption customises a KoanfStore.
type KoanfOption func(*KoanfStore)

// WithFile points the store at a YAML settings file. A missing file is not
// an error; the store then relies on environment variables alone.
func WithFile(path string) KoanfOption {
	return func(s *KoanfStore) {
		s.path = path
	}
}

// WithEnvPrefix overrides the environment variable prefix.
func WithEnvPrefix(prefix string) KoanfOption {
	return func(s *KoanfStore) {
		s.prefix = prefix
	}
}

// NewKoanfStore builds a Store over koanf's file and env providers.
func NewKoanfStore(options ...KoanfOption) *KoanfStore {
	s := &KoanfStore{prefix: DefaultEnvPrefix}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Settings implements Store.
func (s *KoanfStore) Settings(ctx context.Context) (Settings, error) {
	if err := ctx.Err(); err != nil {
		return Settings{}, err
	}

	k := koanf.New(".")

	if s.path != "" {
		if _, err := os.Stat(s.path); err == nil {
			if err := k.Load(file.Provider(s.path), kyaml.Parser()); err != nil {
				return Settings{}, fmt.Errorf("settings: load %s: %w", s.path, err)
			}
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: s.prefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, s.prefix)), value
		},
	}), nil); err != nil {
		return Settings{}, fmt.Errorf("settings: load environment: %w", err)
	}

	var out Settings
	if err := k.Unmarshal("", &out); err != nil {
		return Settings{}, fmt.Errorf("settings: unmarshal: %w", err)
	}
	return out, nil
}
