package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"minerva/pkg/errors"
)

type Config struct {
	App           AppConfig
	AI            AIConfig
	Agents        AgentsConfig
	Search        SearchConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"minerva"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

type AIConfig struct {
	// GoogleAPIKey authenticates against the Gemini API. The ADK model layer
	// reads GOOGLE_API_KEY from the environment, so Load mirrors GEMINI_API_KEY
	// into it when only the alias is set.
	GoogleAPIKey string `envconfig:"GOOGLE_API_KEY"`
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	Provider     string `envconfig:"AI_PROVIDER" default:"gemini"`
	Model        string `envconfig:"AI_MODEL" default:"gemini-2.5-flash-lite"`
}

type AgentsConfig struct {
	ExecutionTimeout  time.Duration `envconfig:"AGENT_EXECUTION_TIMEOUT" default:"5m"`
	RetryAttempts     int           `envconfig:"AGENT_RETRY_ATTEMPTS" default:"5"`
	RetryInitialDelay time.Duration `envconfig:"AGENT_RETRY_INITIAL_DELAY" default:"1s"`
	LoopMaxIterations uint          `envconfig:"AGENT_LOOP_MAX_ITERATIONS" default:"2"`
}

type SearchConfig struct {
	// Google Programmable Search JSON API credentials. When unset the search
	// tool degrades to a stub result so the demos still run end to end.
	APIKey         string        `envconfig:"SEARCH_API_KEY"`
	EngineID       string        `envconfig:"SEARCH_ENGINE_ID"`
	MaxResults     int           `envconfig:"SEARCH_MAX_RESULTS" default:"3"`
	Timeout        time.Duration `envconfig:"SEARCH_TIMEOUT" default:"10s"`
	RequestsPerMin float64       `envconfig:"SEARCH_REQUESTS_PER_MIN" default:"60"`
}

// Configured reports whether real search credentials are present.
func (c SearchConfig) Configured() bool {
	return c.APIKey != "" && c.EngineID != ""
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"development"`
}

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	// Accept GEMINI_API_KEY as an alias and expose the key where the ADK
	// expects to find it.
	if cfg.AI.GoogleAPIKey == "" && cfg.AI.GeminiAPIKey != "" {
		cfg.AI.GoogleAPIKey = cfg.AI.GeminiAPIKey
	}
	if cfg.AI.GoogleAPIKey != "" {
		_ = os.Setenv("GOOGLE_API_KEY", cfg.AI.GoogleAPIKey)
	}

	return &cfg, nil
}

// RequireAPIKey returns an actionable error when no Gemini key is configured.
func (c *Config) RequireAPIKey() error {
	if c.AI.GoogleAPIKey == "" {
		return errors.Wrap(errors.ErrMissingAPIKey,
			"set GOOGLE_API_KEY (or GEMINI_API_KEY) in the environment or a .env file; "+
				"keys are available at https://aistudio.google.com/app/apikey")
	}
	return nil
}
