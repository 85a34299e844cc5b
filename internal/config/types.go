package config

// ProviderType identifies an LLM provider for the chat assistant.
type ProviderType string

const (
	ProviderGemini    ProviderType = "gemini"
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
)

// I18nSource selects where translation dictionaries come from.
type I18nSource string

const (
	// SourceEmbedded uses the dictionaries compiled into the binary.
	SourceEmbedded I18nSource = "embedded"
	// SourceDir loads <locales_dir>/<lang>.json at startup.
	SourceDir I18nSource = "dir"
	// SourceRemote fetches <remote_url>/<lang>.json on every switch.
	SourceRemote I18nSource = "remote"
)

// Config is the top-level site configuration, corresponding to site.yml.
type Config struct {
	Listen  string        `yaml:"listen" koanf:"listen"`
	DataDir string        `yaml:"data_dir" koanf:"data_dir"`
	I18n    I18nConfig    `yaml:"i18n" koanf:"i18n"`
	UI      UIConfig      `yaml:"ui" koanf:"ui"`
	Chat    ChatConfig    `yaml:"chat" koanf:"chat"`
	Session SessionConfig `yaml:"session" koanf:"session"`
	Contact ContactConfig `yaml:"contact" koanf:"contact"`
	CORS    CORSConfig    `yaml:"cors" koanf:"cors"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// I18nConfig configures dictionary loading.
type I18nConfig struct {
	Source              I18nSource `yaml:"source" koanf:"source"`
	LocalesDir          string     `yaml:"locales_dir" koanf:"locales_dir"`
	RemoteURL           string     `yaml:"remote_url" koanf:"remote_url"`
	FetchTimeoutSeconds int        `yaml:"fetch_timeout_seconds" koanf:"fetch_timeout_seconds"`
}

// UIConfig holds the scroll and overlay tuning.
type UIConfig struct {
	NavThreshold   float64 `yaml:"nav_threshold" koanf:"nav_threshold"`
	RevealFraction float64 `yaml:"reveal_fraction" koanf:"reveal_fraction"`
	ZoomEnterMS    int     `yaml:"zoom_enter_ms" koanf:"zoom_enter_ms"`
	ZoomExitMS     int     `yaml:"zoom_exit_ms" koanf:"zoom_exit_ms"`
}

// ChatConfig configures the assistant. The API key is never part of the
// file; it is read from GEMINI_API_KEY, OPENAI_API_KEY or
// ANTHROPIC_API_KEY.
type ChatConfig struct {
	Enabled           bool         `yaml:"enabled" koanf:"enabled"`
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	BaseURL           string       `yaml:"base_url" koanf:"base_url"`
	Temperature       float64      `yaml:"temperature" koanf:"temperature"`
	MaxTokens         int          `yaml:"max_tokens" koanf:"max_tokens"`
	RequestsPerMinute int          `yaml:"requests_per_minute" koanf:"requests_per_minute"`
	TimeoutSeconds    int          `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// SessionConfig bounds the live page views.
type SessionConfig struct {
	TTLMinutes   int `yaml:"ttl_minutes" koanf:"ttl_minutes"`
	MaxViews     int `yaml:"max_views" koanf:"max_views"`
	SweepSeconds int `yaml:"sweep_seconds" koanf:"sweep_seconds"`
}

// ContactConfig configures the contact form endpoint.
type ContactConfig struct {
	Enabled bool `yaml:"enabled" koanf:"enabled"`
}

// CORSConfig lists the origins allowed to call the JSON API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
