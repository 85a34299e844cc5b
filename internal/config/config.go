package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix starts every environment override. A double underscore
// separates nesting levels: SITE_CHAT__MODEL sets chat.model.
const EnvPrefix = "SITE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// A provider switch without an explicit model picks that provider's default.
	if k.Exists("chat.provider") && !k.Exists("chat.model") {
		cfg.Chat.Model = DefaultModel(cfg.Chat.Provider)
	}

	return cfg, nil
}

// envKey maps SITE_CHAT__MAX_TOKENS to chat.max_tokens.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderGemini:    true,
	ProviderOpenAI:    true,
	ProviderAnthropic: true,
}

var validSources = map[I18nSource]bool{
	SourceEmbedded: true,
	SourceDir:      true,
	SourceRemote:   true,
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen is required")
	}

	if !validSources[c.I18n.Source] {
		return fmt.Errorf("invalid i18n.source %q: must be one of embedded, dir, remote", c.I18n.Source)
	}
	if c.I18n.Source == SourceDir && c.I18n.LocalesDir == "" {
		return fmt.Errorf("i18n.locales_dir is required when i18n.source is dir")
	}
	if c.I18n.Source == SourceRemote && c.I18n.RemoteURL == "" {
		return fmt.Errorf("i18n.remote_url is required when i18n.source is remote")
	}

	if c.UI.NavThreshold < 0 {
		return fmt.Errorf("ui.nav_threshold must be non-negative")
	}
	if c.UI.RevealFraction <= 0 || c.UI.RevealFraction > 1 {
		return fmt.Errorf("ui.reveal_fraction must be in (0, 1]")
	}
	if c.UI.ZoomEnterMS < 0 || c.UI.ZoomExitMS < 0 {
		return fmt.Errorf("ui zoom delays must be non-negative")
	}

	if c.Chat.Enabled {
		if !validProviders[c.Chat.Provider] {
			return fmt.Errorf("invalid chat.provider %q: must be one of gemini, openai, anthropic", c.Chat.Provider)
		}
		if c.Chat.Model == "" {
			return fmt.Errorf("chat.model is required")
		}
		if c.Chat.Temperature < 0 || c.Chat.Temperature > 2 {
			return fmt.Errorf("chat.temperature must be between 0 and 2")
		}
		if c.Chat.MaxTokens < 0 || c.Chat.RequestsPerMinute < 0 || c.Chat.TimeoutSeconds < 0 {
			return fmt.Errorf("chat limits must be non-negative")
		}
	}

	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("session.ttl_minutes must be positive")
	}
	if c.Session.MaxViews <= 0 {
		return fmt.Errorf("session.max_views must be positive")
	}

	if c.Contact.Enabled && c.DataDir == "" {
		return fmt.Errorf("data_dir is required when the contact form is enabled")
	}

	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}

	return nil
}

// APIKeyEnvVar returns the environment variable holding the API key of
// the given provider.
func APIKeyEnvVar(provider ProviderType) string {
	switch provider {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return ""
	}
}
