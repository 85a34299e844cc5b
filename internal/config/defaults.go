package config

import (
	"path/filepath"
	"time"
)

// defaultModels maps each provider to the model used when none is set.
var defaultModels = map[ProviderType]string{
	ProviderGemini:    "gemini-2.0-flash",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-haiku-latest",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Listen:  ":8080",
		DataDir: "data",
		I18n: I18nConfig{
			Source:              SourceEmbedded,
			FetchTimeoutSeconds: 5,
		},
		UI: UIConfig{
			NavThreshold:   40,
			RevealFraction: 0.95,
			ZoomEnterMS:    10,
			ZoomExitMS:     400,
		},
		Chat: ChatConfig{
			Enabled:           true,
			Provider:          ProviderGemini,
			Model:             defaultModels[ProviderGemini],
			Temperature:       0.7,
			MaxTokens:         1024,
			RequestsPerMinute: 30,
			TimeoutSeconds:    30,
		},
		Session: SessionConfig{
			TTLMinutes:   30,
			MaxViews:     1000,
			SweepSeconds: 60,
		},
		Contact: ContactConfig{Enabled: true},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultModel returns the default model of a provider, or "".
func DefaultModel(p ProviderType) string {
	return defaultModels[p]
}

// DatabasePath is the SQLite file holding contact inquiries.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "site.db")
}

// ZoomEnterDelay is the pause before the zoom transition starts.
func (c *Config) ZoomEnterDelay() time.Duration {
	return time.Duration(c.UI.ZoomEnterMS) * time.Millisecond
}

// ZoomExitDelay is the length of the zoom exit transition.
func (c *Config) ZoomExitDelay() time.Duration {
	return time.Duration(c.UI.ZoomExitMS) * time.Millisecond
}

// ChatTimeout bounds one assistant call.
func (c *Config) ChatTimeout() time.Duration {
	return time.Duration(c.Chat.TimeoutSeconds) * time.Second
}

// SessionTTL is how long an idle page view is kept.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// SweepInterval is how often expired page views are removed.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Session.SweepSeconds) * time.Second
}
