package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openepc/hssctl"
	"github.com/openepc/hssctl/internal/api"
)

var (
	cfgAPIURL   string
	cfgAPIKey   string
	cfgTimeout  time.Duration
	cfgDebug    bool
	cfgDebugLog string

	outputJSON bool
	outputYAML bool
)

var rootCmd = &cobra.Command{
	Use:   "hssctl",
	Short: "hssctl - pyHSS provisioning CLI",
	Long: `hssctl provisions subscribers and APNs on a pyHSS LTE HSS/PCRF
through its REST API.

The API endpoint and key can be given via --api and --api-key or the
PYHSS_API and PYHSS_APIKEY environment variables; flags take precedence.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgAPIURL, "api", "", "URL of the pyHSS API (default: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringVar(&cfgAPIKey, "api-key", "", "API key, see provisioning_key in the pyHSS config")
	rootCmd.PersistentFlags().DurationVar(&cfgTimeout, "timeout", 0, "HTTP request timeout (default: 30s)")
	rootCmd.PersistentFlags().BoolVar(&cfgDebug, "debug", false, "Log all API requests and responses to stderr")
	rootCmd.PersistentFlags().StringVar(&cfgDebugLog, "debug-log", "", "Write debug logs to a file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&outputYAML, "yaml", false, "Output as YAML")

	rootCmd.AddCommand(listSubscribersCmd)
	rootCmd.AddCommand(addSubscriberCmd)
	rootCmd.AddCommand(removeSubscriberCmd)
	rootCmd.AddCommand(listAPNsCmd)
	rootCmd.AddCommand(addAPNCmd)
	rootCmd.AddCommand(removeAPNCmd)
	rootCmd.AddCommand(listIMSSubscribersCmd)
	rootCmd.AddCommand(addIMSSubscriberCmd)
	rootCmd.AddCommand(removeIMSSubscriberCmd)
}

// loadConfig resolves configuration: flags, then environment, then defaults.
func loadConfig() hssctl.Config {
	cfg := hssctl.ConfigFromEnv()

	if cfgAPIURL != "" {
		cfg.APIURL = cfgAPIURL
	}
	if cfgAPIKey != "" {
		cfg.APIKey = cfgAPIKey
	}
	if cfgTimeout != 0 {
		cfg.Timeout = cfgTimeout
	}
	if cfgDebug {
		cfg.Debug = true
	}
	if cfgDebugLog != "" {
		cfg.DebugLogPath = cfgDebugLog
	}

	return cfg.WithDefaults()
}

// newClient builds the provisioning client from the resolved configuration.
// The returned cleanup closes the debug logger.
func newClient() (*hssctl.Client, func(), error) {
	cfg := loadConfig()

	logger, err := hssctl.NewDebugLogger(cfg.Debug, cfg.DebugLogPath)
	if err != nil {
		return nil, nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIURL, cfg.APIKey, cfg.Timeout).
		WithDebugLogger(logger)

	client, err := hssctl.New(cfg, apiClient)
	if err != nil {
		_ = logger.Close()
		return nil, nil, err
	}

	cleanup := func() { _ = logger.Close() }
	return client, cleanup, nil
}

func isTTY() bool {
	return isTerminal(os.Stdout.Fd()) && os.Getenv("NO_COLOR") == ""
}
