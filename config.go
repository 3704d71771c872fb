package hssctl

import (
	"net/url"
	"os"
	"time"
)

// DefaultAPIURL is used when neither the --api flag nor PYHSS_API is set.
const DefaultAPIURL = "http://127.0.0.1:8080"

// DefaultTimeout bounds every provisioning request.
const DefaultTimeout = 30 * time.Second

// Config configures the hssctl client. It is built once at startup
// (flags, then environment, then defaults) and passed explicitly;
// nothing reads ambient process state after construction.
type Config struct {
	// APIURL is the base URL of the pyHSS provisioning API.
	APIURL string

	// APIKey is sent as the Provisioning-Key header when non-empty.
	APIKey string

	// Timeout bounds each HTTP request. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Debug enables verbose logging of all API communications.
	Debug bool

	// DebugLogPath is the path to write debug logs.
	// Defaults to stderr if empty.
	DebugLogPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		APIURL:  DefaultAPIURL,
		Timeout: DefaultTimeout,
	}
}

// ConfigFromEnv reads configuration from environment variables.
//
//	PYHSS_API        → APIURL
//	PYHSS_APIKEY     → APIKey
//	HSSCTL_TIMEOUT   → Timeout (Go duration string, e.g. "10s")
//	HSSCTL_DEBUG     → Debug (any non-empty value enables)
//	HSSCTL_DEBUG_LOG → DebugLogPath
func ConfigFromEnv() Config {
	cfg := Config{
		APIURL:       os.Getenv("PYHSS_API"),
		APIKey:       os.Getenv("PYHSS_APIKEY"),
		Debug:        os.Getenv("HSSCTL_DEBUG") != "",
		DebugLogPath: os.Getenv("HSSCTL_DEBUG_LOG"),
	}
	if v := os.Getenv("HSSCTL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}

// Validate checks the configuration for errors.
// Returns *ValidationError for invalid fields.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return &ValidationError{Field: "api", Message: "required: URL of the pyHSS API"}
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ValidationError{Field: "api", Message: "must be an absolute URL, e.g. http://127.0.0.1:8080"}
	}

	if c.Timeout < 0 {
		return &ValidationError{Field: "timeout", Message: "must be non-negative"}
	}

	return nil
}

// WithDefaults fills in default values for unset fields.
func (c Config) WithDefaults() Config {
	defaults := DefaultConfig()

	if c.APIURL == "" {
		c.APIURL = defaults.APIURL
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}

	return c
}
